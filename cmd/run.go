package cmd

import (
	"context"
	"fmt"
	"time"

	"fozi/bot"
	"fozi/config"
	"fozi/database"
	"fozi/events"
	"fozi/lyrics"
	"fozi/metrics"
	"fozi/repository"
	"fozi/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	log.Info("Starting fozi bot...")

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	eventBus := events.NewBus()
	metrics.RegisterEventSubscribers(eventBus)

	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	accountService := service.NewAccountService(uowFactory, cfg.StartingBalance)
	economyService := service.NewEconomyService(uowFactory, cfg.StartingBalance)

	// Lyrics cache is optional; without Redis every lookup hits Genius
	var lyricsCache lyrics.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := lyrics.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisCache.Close()
		lyricsCache = redisCache
		log.WithField("addr", cfg.RedisAddr).Info("Lyrics cache enabled")
	}
	lyricsClient := lyrics.NewClient(lyricsCache)

	if cfg.MetricsAddr != "" {
		metricsServer := metrics.NewServer(cfg.MetricsAddr)
		go func() {
			if err := metricsServer.ListenAndServe(ctx); err != nil {
				log.Errorf("Metrics server error: %v", err)
			}
		}()
	}

	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.DiscordGuildID,
		WelcomeChannelID: cfg.WelcomeChannelID,
	}
	discordBot, err := bot.New(botConfig, accountService, economyService, lyricsClient)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
