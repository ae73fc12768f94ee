package welcome

import (
	"bytes"
	"context"
	"fmt"

	"fozi/bot/common"
	"fozi/render"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleMemberJoin renders a welcome banner for the new member and posts it
// to the configured channel. Failures are logged, never surfaced.
func (f *Feature) HandleMemberJoin(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if f.channelID == "" || m.User == nil || m.User.Bot {
		return
	}

	userID, err := common.ParseUserID(m.User.ID)
	if err != nil {
		log.Errorf("Error parsing joining member ID %s: %v", m.User.ID, err)
		return
	}

	guildName := "the server"
	if guild, err := s.State.Guild(m.GuildID); err == nil && guild.Name != "" {
		guildName = guild.Name
	}

	banner, err := f.generator.GenerateWelcomeBanner(context.Background(), render.WelcomeBanner{
		GuildName: guildName,
		Username:  m.User.Username,
		UserID:    userID,
		AvatarURL: m.User.AvatarURL("256"),
	})
	if err != nil {
		log.Errorf("Error generating welcome banner for %s: %v", m.User.ID, err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Welcome to %s", guildName),
		Description: fmt.Sprintf("Hey %s, glad to have you with us!", m.User.Mention()),
		Color:       common.ColorFun,
		Image: &discordgo.MessageEmbedImage{
			URL: "attachment://welcome.png",
		},
	}

	_, err = s.ChannelMessageSendComplex(f.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files: []*discordgo.File{
			{
				Name:        "welcome.png",
				ContentType: "image/png",
				Reader:      bytes.NewReader(banner),
			},
		},
	})
	if err != nil {
		log.Errorf("Error posting welcome message for %s: %v", m.User.ID, err)
	}
}
