package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken     string
	DiscordGuildID   string
	WelcomeChannelID string

	// Database configuration
	DatabaseURL string

	// Optional collaborators
	RedisAddr   string // lyrics cache; empty disables caching
	MetricsAddr string // prometheus listener; empty disables metrics

	// Economy settings
	StartingBalance int64

	// Logging
	LogLevel string

	// Environment: "development", "production" or "test"
	Environment string
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),
		WelcomeChannelID: os.Getenv("WELCOME_CHANNEL_ID"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		Environment:      os.Getenv("ENVIRONMENT"),

		// Accounts are created empty; grants come from daily claims
		StartingBalance: 0,
	}

	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		parsed, err := strconv.ParseInt(balance, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid STARTING_BALANCE %q: %w", balance, err)
		}
		config.StartingBalance = parsed
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
