package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord. Commands are
// registered against the configured guild so they appear immediately; with
// no guild configured they register globally.
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "daily",
			Description: "Claim your daily balls",
		},
		{
			Name:        "coinflip",
			Description: "Bet on heads or tails",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bet",
					Description: "Amount to bet",
					Required:    true,
				},
			},
		},
		{
			Name:        "ballflip",
			Description: "Bet on heads or tails",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bet",
					Description: "Amount to bet",
					Required:    true,
				},
			},
		},
		{
			Name:        "rob",
			Description: "Rob another user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "victim",
					Description: "The user you want to rob",
					Required:    true,
				},
			},
		},
		{
			Name:        "balls",
			Description: "Check someone's ball balance",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to check",
					Required:    false,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "See who has the most balls",
		},
		{
			Name:        "nowplaying",
			Description: "Show what you're listening to on Spotify",
		},
		{
			Name:        "lyrics",
			Description: "Look up song lyrics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "artist",
					Description: "Artist name (defaults to your Spotify presence)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Song title (defaults to your Spotify presence)",
					Required:    false,
				},
			},
		},
		{
			Name:        "dadjoke",
			Description: "Get a random dad joke",
		},
		{
			Name:        "vibe",
			Description: "Check the vibe",
		},
		{
			Name:        "fortune",
			Description: "Open a fortune cookie",
		},
		{
			Name:        "waifu",
			Description: "Get a random waifu",
		},
		{
			Name:        "husbando",
			Description: "Get a random husbando",
		},
		{
			Name:        "rate",
			Description: "Rate anything out of 10",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "thing",
					Description: "The thing to rate",
					Required:    true,
				},
			},
		},
		{
			Name:        "drip",
			Description: "Check someone's drip",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to check",
					Required:    true,
				},
			},
		},
		{
			Name:        "battleroyale",
			Description: "Pit up to four fighters against each other",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "fighter1",
					Description: "First fighter",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "fighter2",
					Description: "Second fighter",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "fighter3",
					Description: "Third fighter",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "fighter4",
					Description: "Fourth fighter",
					Required:    false,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
