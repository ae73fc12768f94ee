package economy

import (
	"fmt"
	"time"

	"fozi/bot/common"
	"fozi/models"

	"github.com/bwmarrin/discordgo"
)

func dailyClaimedEmbed(result *models.DailyResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎁 Daily Reward Claimed!",
		Description: fmt.Sprintf("You earned %s!", common.FormatBalls(result.Reward)),
		Color:       common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "New Balance",
				Value:  common.FormatBalls(result.NewBalance),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Come back tomorrow for another reward!",
		},
	}
}

func dailyCooldownEmbed(nextClaim time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⏰ Too Early!",
		Description: fmt.Sprintf("You already claimed your daily reward!\nCome back %s.",
			common.FormatDiscordTimestamp(nextClaim, "R")),
		Color: common.ColorWarning,
	}
}

func robSelfEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🤔 Nice Try!",
		Description: "You can't rob yourself, silly!",
		Color:       common.ColorDanger,
	}
}

func robTargetTooPoorEmbed(victimName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "💸 Target Too Poor!",
		Description: fmt.Sprintf("%s doesn't have enough balls to be worth robbing.", victimName),
		Color:       common.ColorDanger,
	}
}

func robResultEmbed(result *models.RobberyResult, victimName string) *discordgo.MessageEmbed {
	var embed *discordgo.MessageEmbed
	if result.Success {
		embed = &discordgo.MessageEmbed{
			Title:       "🎭 Robbery Successful!",
			Description: fmt.Sprintf("You successfully robbed %s from %s!", common.FormatBalls(result.Stolen), victimName),
			Color:       common.ColorSuccess,
		}
	} else {
		embed = &discordgo.MessageEmbed{
			Title:       "🚨 Caught Red-Handed!",
			Description: fmt.Sprintf("You failed and got caught! You paid a fine of %s.", common.FormatBalls(result.Fine)),
			Color:       common.ColorDanger,
		}
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "Your New Balance",
			Value:  common.FormatBalls(result.ActorBalance),
			Inline: false,
		},
	}
	return embed
}

func balanceEmbed(balance int64, displayName string, isSelf bool) *discordgo.MessageEmbed {
	if isSelf {
		return &discordgo.MessageEmbed{
			Title:       "💰 Your Balance",
			Description: fmt.Sprintf("You have %s in your pocket.", common.FormatBalls(balance)),
			Color:       common.ColorInfo,
		}
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💰 %s's Balance", displayName),
		Description: fmt.Sprintf("%s has %s in their pocket.", displayName, common.FormatBalls(balance)),
		Color:       common.ColorInfo,
	}
}
