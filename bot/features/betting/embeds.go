package betting

import (
	"fmt"
	"strings"

	"fozi/bot/common"
	"fozi/models"

	"github.com/bwmarrin/discordgo"
)

func betPromptEmbed(bet, balance int64) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🪙 Coinflip",
		Description: fmt.Sprintf("You're betting %s!\nChoose heads or tails using the dropdown below.", common.FormatBalls(bet)),
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Current Balance",
				Value:  common.FormatBalls(balance),
				Inline: false,
			},
		},
	}
}

func betResultEmbed(result *models.CoinflipResult) *discordgo.MessageEmbed {
	landed := titleSide(result.Landed)

	var embed *discordgo.MessageEmbed
	if result.Won {
		embed = &discordgo.MessageEmbed{
			Title:       "🎉 You Won!",
			Description: fmt.Sprintf("The coin landed on **%s**!\nYou won %s!", landed, common.FormatBalls(result.BetAmount)),
			Color:       common.ColorSuccess,
		}
	} else {
		embed = &discordgo.MessageEmbed{
			Title:       "💸 You Lost!",
			Description: fmt.Sprintf("The coin landed on **%s**!\nYou lost %s.", landed, common.FormatBalls(result.BetAmount)),
			Color:       common.ColorDanger,
		}
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "New Balance",
			Value:  common.FormatBalls(result.NewBalance),
			Inline: false,
		},
	}
	return embed
}

func titleSide(side models.CoinSide) string {
	s := string(side)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func betExpiredEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⏰ Bet Expired",
		Description: "This coinflip timed out before a side was chosen. No balls were moved.",
		Color:       common.ColorWarning,
	}
}

func pickComponents(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		&discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.SelectMenu{
					CustomID:    pickCustomIDPrefix + sessionID,
					Placeholder: "Choose heads or tails...",
					Options: []discordgo.SelectMenuOption{
						{
							Label:       "Heads",
							Value:       string(models.CoinSideHeads),
							Description: "Bet on heads",
							Emoji:       &discordgo.ComponentEmoji{Name: "🪙"},
						},
						{
							Label:       "Tails",
							Value:       string(models.CoinSideTails),
							Description: "Bet on tails",
							Emoji:       &discordgo.ComponentEmoji{Name: "🎯"},
						},
					},
				},
			},
		},
	}
}
