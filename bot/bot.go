package bot

import (
	"fmt"
	"strings"
	"time"

	"fozi/bot/features/betting"
	"fozi/bot/features/economy"
	"fozi/bot/features/fun"
	"fozi/bot/features/leaderboard"
	lyricsfeature "fozi/bot/features/lyrics"
	"fozi/bot/features/nowplaying"
	"fozi/bot/features/welcome"
	"fozi/lyrics"
	"fozi/metrics"
	"fozi/render"
	"fozi/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token            string
	GuildID          string
	WelcomeChannelID string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config  Config
	session *discordgo.Session

	economy     *economy.Feature
	betting     *betting.Feature
	leaderboard *leaderboard.Feature
	welcome     *welcome.Feature
	nowPlaying  *nowplaying.Feature
	lyrics      *lyricsfeature.Feature
	fun         *fun.Feature

	stopCleanup chan struct{}
}

// New creates a new bot instance with all features and opens the gateway
// connection.
func New(config Config, accountService service.AccountService, economyService service.EconomyService, lyricsClient *lyrics.Client) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}

	// Presences are needed for the Spotify card, members for welcome images
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences

	generator := render.NewGenerator()

	bot := &Bot{
		config:      config,
		session:     dg,
		stopCleanup: make(chan struct{}),
	}

	bot.economy = economy.NewFeature(accountService, economyService)
	bot.betting = betting.NewFeature(accountService, economyService)
	bot.leaderboard = leaderboard.NewFeature(accountService)
	bot.welcome = welcome.NewFeature(generator, config.WelcomeChannelID)
	bot.nowPlaying = nowplaying.NewFeature(generator)
	bot.lyrics = lyricsfeature.NewFeature(lyricsClient)
	bot.fun = fun.NewFeature()

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleInteractions)
	dg.AddHandler(bot.welcome.HandleMemberJoin)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	go bot.runSessionCleanup()

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	close(b.stopCleanup)
	return b.session.Close()
}

// handleCommands routes slash commands to the feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.Member == nil || i.Member.User == nil {
		return
	}

	name := i.ApplicationCommandData().Name
	start := time.Now()
	defer func() {
		metrics.RecordCommand(name, "handled", time.Since(start))
	}()

	switch name {
	case "daily":
		b.economy.HandleDaily(s, i)
	case "rob":
		b.economy.HandleRob(s, i)
	case "balls":
		b.economy.HandleBalls(s, i)
	case "coinflip", "ballflip":
		b.betting.HandleCoinflip(s, i)
	case "leaderboard":
		b.leaderboard.HandleLeaderboard(s, i)
	case "nowplaying":
		b.nowPlaying.HandleNowPlaying(s, i)
	case "lyrics":
		b.lyrics.HandleLyrics(s, i)
	case "dadjoke":
		b.fun.HandleDadJoke(s, i)
	case "vibe":
		b.fun.HandleVibe(s, i)
	case "fortune":
		b.fun.HandleFortune(s, i)
	case "waifu":
		b.fun.HandleWaifu(s, i)
	case "husbando":
		b.fun.HandleHusbando(s, i)
	case "rate":
		b.fun.HandleRate(s, i)
	case "drip":
		b.fun.HandleDrip(s, i)
	case "battleroyale":
		b.fun.HandleBattleRoyale(s, i)
	}
}

// handleInteractions routes component interactions to the owning feature
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	if i.Member == nil || i.Member.User == nil {
		return
	}

	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "coinflip_"):
		b.betting.HandleInteraction(s, i)
	case strings.HasPrefix(customID, "leaderboard_"):
		b.leaderboard.HandleInteraction(s, i)
	}
}

// runSessionCleanup periodically drops stale bet and leaderboard sessions
func (b *Bot) runSessionCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.betting.CleanupSessions()
			b.leaderboard.CleanupSessions()
		case <-b.stopCleanup:
			log.Debug("Session cleanup stopped")
			return
		}
	}
}
