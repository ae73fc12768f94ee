package economy

import (
	"context"
	"errors"

	"fozi/bot/common"
	"fozi/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleDaily processes the /daily command
func (f *Feature) HandleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.economyService.ClaimDaily(ctx, discordID)
	if err != nil {
		var cooldownErr *service.CooldownError
		if errors.As(err, &cooldownErr) {
			if respErr := common.RespondWithEmbed(s, i, dailyCooldownEmbed(cooldownErr.NextClaim), nil, true); respErr != nil {
				log.Errorf("Error responding to daily command: %v", respErr)
			}
			return
		}
		log.Errorf("Error claiming daily for user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to claim your daily reward. Please try again.")
		return
	}

	if err := common.RespondWithEmbed(s, i, dailyClaimedEmbed(result), nil, false); err != nil {
		log.Errorf("Error responding to daily command: %v", err)
	}
}

// HandleRob processes the /rob command
func (f *Feature) HandleRob(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	options := i.ApplicationCommandData().Options
	victim := options[0].UserValue(s)
	if victim == nil {
		common.RespondWithError(s, i, "Unable to resolve the target user.")
		return
	}

	victimID, err := common.ParseUserID(victim.ID)
	if err != nil {
		log.Errorf("Error parsing victim ID %s: %v", victim.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	victimName := common.GetDisplayName(s, i.GuildID, victim.ID)

	result, err := f.economyService.Rob(ctx, discordID, victimID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfRobbery):
			if respErr := common.RespondWithEmbed(s, i, robSelfEmbed(), nil, true); respErr != nil {
				log.Errorf("Error responding to rob command: %v", respErr)
			}
		case errors.Is(err, service.ErrTargetTooPoor):
			if respErr := common.RespondWithEmbed(s, i, robTargetTooPoorEmbed(victimName), nil, true); respErr != nil {
				log.Errorf("Error responding to rob command: %v", respErr)
			}
		default:
			log.Errorf("Error processing robbery %d -> %d: %v", discordID, victimID, err)
			common.RespondWithError(s, i, "Unable to process the robbery. Please try again.")
		}
		return
	}

	if err := common.RespondWithEmbed(s, i, robResultEmbed(result, victimName), nil, false); err != nil {
		log.Errorf("Error responding to rob command: %v", err)
	}
}

// HandleBalls processes the /balls command
func (f *Feature) HandleBalls(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	target := i.Member.User
	if options := i.ApplicationCommandData().Options; len(options) > 0 {
		if user := options[0].UserValue(s); user != nil {
			target = user
		}
	}

	targetID, err := common.ParseUserID(target.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", target.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	account, err := f.accountService.GetOrCreateAccount(ctx, targetID)
	if err != nil {
		log.Errorf("Error getting account %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	isSelf := target.ID == i.Member.User.ID
	displayName := common.GetDisplayName(s, i.GuildID, target.ID)

	embed := balanceEmbed(account.Balance, displayName, isSelf)
	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: target.AvatarURL("")}

	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to balls command: %v", err)
	}
}
