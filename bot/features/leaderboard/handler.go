package leaderboard

import (
	"context"
	"errors"
	"strings"

	"fozi/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	prevCustomIDPrefix = "leaderboard_prev_"
	nextCustomIDPrefix = "leaderboard_next_"
)

// HandleLeaderboard processes the /leaderboard command
func (f *Feature) HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	openerID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	accounts, err := f.accountService.TopBalances(ctx)
	if err != nil {
		log.Errorf("Error loading leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	session := f.sessions.Create(openerID, accounts, common.LeaderboardPageSize)

	embed := f.renderPage(s, i.GuildID, session)
	components := pagerComponents(session.ID, session.Page, session.totalPages())

	if err := common.RespondWithEmbed(s, i, embed, components, false); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

// HandleInteraction handles the previous/next pager buttons
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var sessionID string
	var delta int
	switch {
	case strings.HasPrefix(customID, prevCustomIDPrefix):
		sessionID = strings.TrimPrefix(customID, prevCustomIDPrefix)
		delta = -1
	case strings.HasPrefix(customID, nextCustomIDPrefix):
		sessionID = strings.TrimPrefix(customID, nextCustomIDPrefix)
		delta = 1
	default:
		common.RespondWithError(s, i, "Unknown leaderboard interaction")
		return
	}

	clickerID, err := common.ParseUserID(i.Member.User.ID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Only whoever opened the leaderboard may page through it
	if session, ok := f.sessions.Get(sessionID); ok && session.OpenerID != clickerID {
		common.RespondWithError(s, i, "This isn't your leaderboard!")
		return
	}

	session, err := f.sessions.Navigate(sessionID, delta)
	if err != nil {
		if errors.Is(err, errPagerExpired) {
			f.expireMessage(s, i, sessionID)
			return
		}
		common.RespondWithError(s, i, "This leaderboard is no longer active.")
		return
	}

	embed := f.renderPage(s, i.GuildID, session)
	components := pagerComponents(session.ID, session.Page, session.totalPages())

	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Error updating leaderboard message: %v", err)
	}
}

// expireMessage disables the pager buttons once the session has timed out
func (f *Feature) expireMessage(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) {
	embeds := i.Message.Embeds
	var embed *discordgo.MessageEmbed
	if len(embeds) > 0 {
		embed = embeds[0]
	}

	components := common.DisableComponents(pagerComponents(sessionID, 0, 1))
	if err := common.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Errorf("Error updating expired leaderboard message: %v", err)
	}
}

func (f *Feature) renderPage(s *discordgo.Session, guildID string, session *pagerSession) *discordgo.MessageEmbed {
	entries := session.pageEntries()

	names := make([]string, len(entries))
	for idx, account := range entries {
		names[idx] = common.GetDisplayName(s, guildID, common.FormatUserID(account.DiscordID))
	}

	rankOffset := session.Page * session.PageSize
	return leaderboardEmbed(entries, names, rankOffset, session.Page, session.totalPages())
}
