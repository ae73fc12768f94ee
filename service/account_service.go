package service

import (
	"context"
	"fmt"

	"fozi/events"
	"fozi/models"
)

// accountService implements the AccountService interface
type accountService struct {
	uowFactory      UnitOfWorkFactory
	startingBalance int64
}

// NewAccountService creates a new account service
func NewAccountService(uowFactory UnitOfWorkFactory, startingBalance int64) AccountService {
	return &accountService{
		uowFactory:      uowFactory,
		startingBalance: startingBalance,
	}
}

// GetOrCreateAccount retrieves an account, creating it lazily when absent
func (s *accountService) GetOrCreateAccount(ctx context.Context, discordID int64) (*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := getOrCreateAccount(ctx, uow, discordID, s.startingBalance)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return account, nil
}

// TopBalances returns the current leaderboard snapshot
func (s *accountService) TopBalances(ctx context.Context) ([]*models.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	accounts, err := uow.AccountRepository().GetPositiveBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get top balances: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return accounts, nil
}

// getOrCreateAccount is the shared get-or-create used by every operation that
// must see a row. Creation is a visible side effect of the read, published as
// an AccountCreatedEvent once the surrounding transaction commits.
func getOrCreateAccount(ctx context.Context, uow UnitOfWork, discordID int64, startingBalance int64) (*models.Account, error) {
	account, err := uow.AccountRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if account != nil {
		return account, nil
	}

	account, err = uow.AccountRepository().Create(ctx, discordID, startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uow.EventBus().Publish(events.AccountCreatedEvent{
		DiscordID:      discordID,
		InitialBalance: startingBalance,
	})

	return account, nil
}
