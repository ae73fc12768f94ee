package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"fozi/events"
	"fozi/models"
)

// Game tuning constants. Reward and penalty ranges are inclusive.
const (
	DailyRewardMin = 100
	DailyRewardMax = 500

	RobTargetThreshold = 100 // minimum target balance worth robbing
	RobStealMin        = 50
	RobStealCap        = 200
	RobFineMin         = 20
	RobFineMax         = 100
	RobSuccessChance   = 0.5
)

// rng is the randomness source for game outcomes. *rand.Rand satisfies it;
// tests substitute a stub to force outcomes, since a fair coin cannot be
// steered the way a probability parameter can.
type rng interface {
	Intn(n int) int
	Float64() float64
}

// economyService implements the EconomyService interface
type economyService struct {
	uowFactory      UnitOfWorkFactory
	startingBalance int64
	rand            rng
}

// NewEconomyService creates a new economy service
func NewEconomyService(uowFactory UnitOfWorkFactory, startingBalance int64) EconomyService {
	return &economyService{
		uowFactory:      uowFactory,
		startingBalance: startingBalance,
		rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClaimDaily grants a uniformly random reward once per 24 hours
func (s *economyService) ClaimDaily(ctx context.Context, discordID int64) (*models.DailyResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := getOrCreateAccount(ctx, uow, discordID, s.startingBalance)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !account.CanClaimDaily(now) {
		return nil, &CooldownError{NextClaim: account.NextDailyClaim()}
	}

	reward := int64(s.rand.Intn(DailyRewardMax-DailyRewardMin+1) + DailyRewardMin)
	newBalance := account.Balance + reward

	if err := uow.AccountRepository().UpdateDaily(ctx, discordID, newBalance, now); err != nil {
		return nil, fmt.Errorf("failed to record daily claim: %w", err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		DiscordID:       discordID,
		OldBalance:      account.Balance,
		NewBalance:      newBalance,
		ChangeAmount:    reward,
		TransactionType: models.TransactionTypeDailyClaim,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.DailyResult{
		Reward:     reward,
		NewBalance: newBalance,
	}, nil
}

// ResolveCoinflip settles a bet with the bettor's choice against a fair coin
func (s *economyService) ResolveCoinflip(ctx context.Context, discordID int64, amount int64, choice models.CoinSide) (*models.CoinflipResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("bet amount must be positive")
	}
	if !choice.Valid() {
		return nil, fmt.Errorf("invalid coin side %q", choice)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := getOrCreateAccount(ctx, uow, discordID, s.startingBalance)
	if err != nil {
		return nil, err
	}

	// The balance may have moved since the bet was proposed
	if account.Balance < amount {
		return nil, &InsufficientBalanceError{Have: account.Balance, Need: amount}
	}

	landed := models.CoinSideHeads
	if s.rand.Intn(2) == 1 {
		landed = models.CoinSideTails
	}

	won := landed == choice
	var newBalance int64
	var transactionType models.TransactionType
	if won {
		newBalance = account.Balance + amount
		transactionType = models.TransactionTypeBetWin
	} else {
		newBalance = account.Balance - amount
		transactionType = models.TransactionTypeBetLoss
	}

	if err := uow.AccountRepository().UpdateBalance(ctx, discordID, newBalance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		DiscordID:       discordID,
		OldBalance:      account.Balance,
		NewBalance:      newBalance,
		ChangeAmount:    newBalance - account.Balance,
		TransactionType: transactionType,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.CoinflipResult{
		Won:        won,
		Landed:     landed,
		BetAmount:  amount,
		NewBalance: newBalance,
	}, nil
}

// Rob attempts to steal from another account. Both balance writes happen in
// the same transaction, so a failure mid-way leaves the ledger untouched.
func (s *economyService) Rob(ctx context.Context, actorID, targetID int64) (*models.RobberyResult, error) {
	if actorID == targetID {
		return nil, ErrSelfRobbery
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	actor, err := getOrCreateAccount(ctx, uow, actorID, s.startingBalance)
	if err != nil {
		return nil, err
	}
	target, err := getOrCreateAccount(ctx, uow, targetID, s.startingBalance)
	if err != nil {
		return nil, err
	}

	if target.Balance < RobTargetThreshold {
		return nil, ErrTargetTooPoor
	}

	result := &models.RobberyResult{
		Success:       s.rand.Float64() < RobSuccessChance,
		ActorBalance:  actor.Balance,
		VictimBalance: target.Balance,
	}

	if result.Success {
		stealCap := int64(RobStealCap)
		if target.Balance < stealCap {
			stealCap = target.Balance
		}
		result.Stolen = int64(s.rand.Intn(int(stealCap)-RobStealMin+1) + RobStealMin)
		result.ActorBalance = actor.Balance + result.Stolen
		result.VictimBalance = target.Balance - result.Stolen

		if err := uow.AccountRepository().UpdateBalance(ctx, actorID, result.ActorBalance); err != nil {
			return nil, fmt.Errorf("failed to credit actor: %w", err)
		}
		if err := uow.AccountRepository().UpdateBalance(ctx, targetID, result.VictimBalance); err != nil {
			return nil, fmt.Errorf("failed to debit target: %w", err)
		}

		uow.EventBus().Publish(events.BalanceChangeEvent{
			DiscordID:       actorID,
			OldBalance:      actor.Balance,
			NewBalance:      result.ActorBalance,
			ChangeAmount:    result.Stolen,
			TransactionType: models.TransactionTypeRobSuccess,
		})
		uow.EventBus().Publish(events.BalanceChangeEvent{
			DiscordID:       targetID,
			OldBalance:      target.Balance,
			NewBalance:      result.VictimBalance,
			ChangeAmount:    -result.Stolen,
			TransactionType: models.TransactionTypeRobVictim,
		})
	} else {
		result.Fine = int64(s.rand.Intn(RobFineMax-RobFineMin+1) + RobFineMin)
		result.ActorBalance = actor.Balance - result.Fine
		if result.ActorBalance < 0 {
			result.ActorBalance = 0
		}

		if err := uow.AccountRepository().UpdateBalance(ctx, actorID, result.ActorBalance); err != nil {
			return nil, fmt.Errorf("failed to apply fine: %w", err)
		}

		uow.EventBus().Publish(events.BalanceChangeEvent{
			DiscordID:       actorID,
			OldBalance:      actor.Balance,
			NewBalance:      result.ActorBalance,
			ChangeAmount:    result.ActorBalance - actor.Balance,
			TransactionType: models.TransactionTypeRobFine,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}
