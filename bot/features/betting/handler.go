package betting

import (
	"context"
	"errors"
	"strings"

	"fozi/bot/common"
	"fozi/models"
	"fozi/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const pickCustomIDPrefix = "coinflip_pick_"

// HandleCoinflip processes the /coinflip and /ballflip commands
func (f *Feature) HandleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	bet := i.ApplicationCommandData().Options[0].IntValue()

	account, err := f.accountService.GetOrCreateAccount(ctx, discordID)
	if err != nil {
		log.Errorf("Error getting account %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	if bet < common.MinBetAmount || bet > account.Balance {
		common.RespondWithError(s, i, "Invalid bet amount.")
		return
	}

	session := f.sessions.Create(discordID, bet)

	embed := betPromptEmbed(bet, account.Balance)
	components := pickComponents(session.ID)

	if err := common.RespondWithEmbed(s, i, embed, components, false); err != nil {
		log.Errorf("Error responding to coinflip command: %v", err)
	}
}

// HandleInteraction handles the heads/tails selection on a proposed bet
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, pickCustomIDPrefix) {
		common.RespondWithError(s, i, "Unknown coinflip interaction")
		return
	}
	sessionID := strings.TrimPrefix(customID, pickCustomIDPrefix)

	discordID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	session, ok := f.sessions.Get(sessionID)
	if !ok {
		common.RespondWithError(s, i, "This bet is no longer active.")
		return
	}

	// Only the proposer may pick a side. Anyone else gets an ephemeral
	// rejection and the bet stays open.
	if session.UserID != discordID {
		common.RespondWithError(s, i, "This isn't your coinflip!")
		return
	}

	session, err = f.sessions.Resolve(sessionID)
	if err != nil {
		if errors.Is(err, errSessionExpired) {
			f.expireMessage(s, i, sessionID)
			return
		}
		common.RespondWithError(s, i, "This bet is no longer active.")
		return
	}

	values := i.MessageComponentData().Values
	if len(values) == 0 {
		f.sessions.Reopen(sessionID)
		common.RespondWithError(s, i, "No side selected.")
		return
	}
	choice := models.CoinSide(values[0])

	ctx := context.Background()
	result, err := f.economyService.ResolveCoinflip(ctx, discordID, session.BetAmount, choice)
	if err != nil {
		var insufficientErr *service.InsufficientBalanceError
		if errors.As(err, &insufficientErr) {
			f.sessions.Reopen(sessionID)
			common.RespondWithError(s, i, "You don't have enough balls for this bet anymore!")
			return
		}
		f.sessions.Reopen(sessionID)
		log.Errorf("Error resolving coinflip for user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to resolve the bet. Please try again.")
		return
	}

	embed := betResultEmbed(result)
	components := common.DisableComponents(pickComponents(sessionID))

	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Error updating coinflip message: %v", err)
	}
}

// expireMessage replaces an expired bet prompt with a timeout notice
func (f *Feature) expireMessage(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) {
	embed := betExpiredEmbed()
	components := common.DisableComponents(pickComponents(sessionID))

	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Error updating expired coinflip message: %v", err)
	}
}
