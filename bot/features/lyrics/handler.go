package lyrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fozi/bot/common"
	"fozi/bot/features/nowplaying"
	lyricsclient "fozi/lyrics"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Discord caps embed descriptions at 4096 characters; stay under it
const embedChunkLimit = 4000

// HandleLyrics processes the /lyrics command. Artist and title come from
// the options, falling back to the member's Spotify presence.
func (f *Feature) HandleLyrics(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var artist, title string
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "artist":
			artist = option.StringValue()
		case "title":
			title = option.StringValue()
		}
	}

	if artist == "" || title == "" {
		track, ok := nowplaying.SpotifyTrack(s, i.GuildID, i.Member.User.ID)
		if !ok {
			common.RespondWithError(s, i, "Give me an artist and title, or play something on Spotify first.")
			return
		}
		if title == "" {
			title = track.Title
		}
		if artist == "" && len(track.Artists) > 0 {
			artist = track.Artists[0]
		}
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring lyrics response: %v", err)
		return
	}

	text, err := f.client.Fetch(context.Background(), artist, title)
	if err != nil {
		if errors.Is(err, lyricsclient.ErrNotFound) {
			common.FollowUpWithError(s, i, fmt.Sprintf("No lyrics found for **%s** by **%s**.", title, artist))
			return
		}
		log.Errorf("Error fetching lyrics for %s / %s: %v", artist, title, err)
		common.FollowUpWithError(s, i, "Unable to fetch lyrics. Please try again.")
		return
	}

	header := fmt.Sprintf("🎵 %s — %s", title, artist)
	for idx, chunk := range splitChunks(text, embedChunkLimit) {
		embed := &discordgo.MessageEmbed{
			Description: chunk,
			Color:       common.ColorSpotify,
		}
		if idx == 0 {
			embed.Title = header
		}
		if _, err := common.FollowUpWithEmbed(s, i, embed, nil); err != nil {
			log.Errorf("Error sending lyrics embed: %v", err)
			return
		}
	}
}

// splitChunks splits text into pieces under limit, preferring line boundaries
func splitChunks(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if current.Len()+len(line)+1 > limit && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		// A single line over the limit gets hard-split on a rune boundary
		for len(line) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		chunks = append(chunks, trimmed)
	}
	return chunks
}
