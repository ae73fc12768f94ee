package service

import (
	"context"
	"time"

	"fozi/events"
	"fozi/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// GetByDiscordID retrieves an account by Discord ID; nil when absent
	GetByDiscordID(ctx context.Context, discordID int64) (*models.Account, error)

	// Create creates a new account with the initial balance
	Create(ctx context.Context, discordID int64, initialBalance int64) (*models.Account, error)

	// UpdateBalance sets an account's balance
	UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error

	// UpdateDaily sets balance and claim timestamp together
	UpdateDaily(ctx context.Context, discordID int64, newBalance int64, claimedAt time.Time) error

	// GetPositiveBalances returns accounts with balance > 0, richest first
	GetPositiveBalances(ctx context.Context) ([]*models.Account, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork bundles repository access with a database transaction and a
// transactional event buffer flushed on commit
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	AccountRepository() AccountRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// AccountService defines account lookup operations
type AccountService interface {
	// GetOrCreateAccount retrieves an account, creating it with the starting
	// balance when absent. Not a pure read: a missing row is written.
	GetOrCreateAccount(ctx context.Context, discordID int64) (*models.Account, error)

	// TopBalances returns the leaderboard snapshot: accounts with balance > 0
	// ordered by balance descending
	TopBalances(ctx context.Context) ([]*models.Account, error)
}

// EconomyService defines the balance-mutating game operations
type EconomyService interface {
	// ClaimDaily grants the once-per-24h reward or fails with *CooldownError
	ClaimDaily(ctx context.Context, discordID int64) (*models.DailyResult, error)

	// ResolveCoinflip settles a proposed bet with the bettor's choice. The
	// balance is re-validated here; a bet that no longer fits fails with
	// *InsufficientBalanceError and leaves the proposal open.
	ResolveCoinflip(ctx context.Context, discordID int64, amount int64, choice models.CoinSide) (*models.CoinflipResult, error)

	// Rob attempts to steal from another account
	Rob(ctx context.Context, actorID, targetID int64) (*models.RobberyResult, error)
}
