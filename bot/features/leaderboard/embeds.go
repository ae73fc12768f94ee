package leaderboard

import (
	"fmt"
	"strings"

	"fozi/bot/common"
	"fozi/models"

	"github.com/bwmarrin/discordgo"
)

var rankMedals = map[int]string{
	0: "🥇",
	1: "🥈",
	2: "🥉",
}

// rankLabel returns the medal for the top three overall ranks, a plain
// number for everything below.
func rankLabel(rank int) string {
	if medal, ok := rankMedals[rank]; ok {
		return medal
	}
	return fmt.Sprintf("`#%d`", rank+1)
}

func leaderboardEmbed(entries []*models.Account, names []string, rankOffset, page, totalPages int) *discordgo.MessageEmbed {
	var body strings.Builder
	if len(entries) == 0 {
		body.WriteString("Nobody has any balls yet. Claim your `/daily`!")
	} else {
		for idx, account := range entries {
			rank := rankOffset + idx
			fmt.Fprintf(&body, "%s **%s** — %s\n", rankLabel(rank), names[idx], common.FormatBalls(account.Balance))
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: body.String(),
		Color:       common.ColorPrimary,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d", page+1, totalPages),
		},
	}
}

// pagerComponents renders the prev/next buttons, disabling whichever
// direction has no further page.
func pagerComponents(sessionID string, page, totalPages int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.Button{
					CustomID: prevCustomIDPrefix + sessionID,
					Label:    "Previous",
					Style:    discordgo.SecondaryButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "◀️"},
					Disabled: page <= 0,
				},
				&discordgo.Button{
					CustomID: nextCustomIDPrefix + sessionID,
					Label:    "Next",
					Style:    discordgo.SecondaryButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "▶️"},
					Disabled: page >= totalPages-1,
				},
			},
		},
	}
}
