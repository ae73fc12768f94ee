package fun

import (
	"fmt"
	"strings"

	"fozi/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleDadJoke processes the /dadjoke command
func (f *Feature) HandleDadJoke(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respond(s, i, funEmbed(i, "Dad Joke", f.pick(dadJokes)))
}

// HandleVibe processes the /vibe command
func (f *Feature) HandleVibe(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respond(s, i, funEmbed(i, "Vibe Check", f.pick(vibes)))
}

// HandleFortune processes the /fortune command
func (f *Feature) HandleFortune(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respond(s, i, funEmbed(i, "Fortune Cookie", f.pick(fortunes)))
}

// HandleWaifu processes the /waifu command
func (f *Feature) HandleWaifu(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respond(s, i, funEmbed(i, "Random Waifu", fmt.Sprintf("Your random waifu: %s UwU", f.pick(waifus))))
}

// HandleHusbando processes the /husbando command
func (f *Feature) HandleHusbando(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respond(s, i, funEmbed(i, "Random Husbando", fmt.Sprintf("Your random husbando: %s UwU", f.pick(husbandos))))
}

// HandleRate processes the /rate command
func (f *Feature) HandleRate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	thing := i.ApplicationCommandData().Options[0].StringValue()
	rating := f.rand.Intn(10) + 1
	f.respond(s, i, funEmbed(i, "Rating", fmt.Sprintf("I rate %s a %d/10 :3", thing, rating)))
}

// HandleDrip processes the /drip command
func (f *Feature) HandleDrip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := i.ApplicationCommandData().Options[0].UserValue(s)
	if user == nil {
		common.RespondWithError(s, i, "Unable to resolve the target user.")
		return
	}
	f.respond(s, i, funEmbed(i, "Drip Check", fmt.Sprintf("%s's drip: %s", user.Mention(), f.pick(dripLevels))))
}

// HandleBattleRoyale processes the /battleroyale command
func (f *Feature) HandleBattleRoyale(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var fighters []string
	for _, option := range i.ApplicationCommandData().Options {
		if user := option.UserValue(s); user != nil {
			fighters = append(fighters, user.Mention())
		}
	}

	if len(fighters) < 2 {
		f.respond(s, i, funEmbed(i, "Battle Royale", "You need at least two fighters!"))
		return
	}

	winner := f.pick(fighters)
	description := fmt.Sprintf("Battle Royale: %s\nWinner: %s!", strings.Join(fighters, ", "), winner)
	f.respond(s, i, funEmbed(i, "Battle Royale", description))
}

func (f *Feature) respond(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to fun command: %v", err)
	}
}

// funEmbed builds the purple embed with the invoker as the author line
func funEmbed(i *discordgo.InteractionCreate, title, description string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       common.ColorFun,
	}
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.Nick
		if name == "" {
			name = i.Member.User.Username
		}
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    name,
			IconURL: i.Member.User.AvatarURL(""),
		}
	}
	return embed
}
