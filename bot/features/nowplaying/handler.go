package nowplaying

import (
	"bytes"
	"context"
	"strings"
	"time"

	"fozi/bot/common"
	"fozi/render"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const albumArtBaseURL = "https://i.scdn.co/image/"

// Track holds the fields extracted from a Spotify presence activity
type Track struct {
	Title    string
	Artists  []string
	CoverURL string
	Elapsed  time.Duration
	Duration time.Duration
}

// HandleNowPlaying processes the /nowplaying command
func (f *Feature) HandleNowPlaying(s *discordgo.Session, i *discordgo.InteractionCreate) {
	playing, ok := SpotifyTrack(s, i.GuildID, i.Member.User.ID)
	if !ok {
		respondPlain(s, i, "You're not listening to Spotify right now.")
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Error deferring nowplaying response: %v", err)
		return
	}

	card, err := f.generator.GenerateSpotifyCard(context.Background(), render.SpotifyCard{
		Title:    playing.Title,
		Artists:  playing.Artists,
		CoverURL: playing.CoverURL,
		Elapsed:  playing.Elapsed,
		Duration: playing.Duration,
	})
	if err != nil {
		log.Errorf("Error generating card for %s: %v", i.Member.User.ID, err)
		common.FollowUpWithError(s, i, "Unable to render the card. Please try again.")
		return
	}

	file := &discordgo.File{
		Name:        "spotify_card.png",
		ContentType: "image/png",
		Reader:      bytes.NewReader(card),
	}
	if _, err := common.FollowUpWithFile(s, i, file, nil); err != nil {
		log.Errorf("Error sending nowplaying card: %v", err)
	}
}

// SpotifyTrack reads the member's Spotify activity from gateway presence state
func SpotifyTrack(s *discordgo.Session, guildID, userID string) (Track, bool) {
	presence, err := s.State.Presence(guildID, userID)
	if err != nil || presence == nil {
		return Track{}, false
	}

	for _, activity := range presence.Activities {
		if activity == nil || activity.Type != discordgo.ActivityTypeListening || activity.Name != "Spotify" {
			continue
		}

		t := Track{
			Title:   activity.Details,
			Artists: strings.Split(activity.State, "; "),
		}

		if hash, ok := strings.CutPrefix(activity.Assets.LargeImageID, "spotify:"); ok {
			t.CoverURL = albumArtBaseURL + hash
		}
		if t.CoverURL == "" || t.Title == "" {
			continue
		}

		start := activity.Timestamps.StartTimestamp
		end := activity.Timestamps.EndTimestamp
		if start > 0 && end > start {
			t.Duration = time.Duration(end-start) * time.Millisecond
			t.Elapsed = time.Since(time.UnixMilli(start))
		}

		return t, true
	}

	return Track{}, false
}

func respondPlain(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to nowplaying command: %v", err)
	}
}
