package models

// TransactionType represents the type of balance change
type TransactionType string

const (
	TransactionTypeInitial    TransactionType = "initial"
	TransactionTypeDailyClaim TransactionType = "daily_claim"
	TransactionTypeBetWin     TransactionType = "bet_win"
	TransactionTypeBetLoss    TransactionType = "bet_loss"
	TransactionTypeRobSuccess TransactionType = "rob_success"
	TransactionTypeRobVictim  TransactionType = "rob_victim"
	TransactionTypeRobFine    TransactionType = "rob_fine"
)

// CoinSide is one of the two symmetric coinflip outcomes
type CoinSide string

const (
	CoinSideHeads CoinSide = "heads"
	CoinSideTails CoinSide = "tails"
)

// Valid reports whether the side is one of the two accepted values.
func (s CoinSide) Valid() bool {
	return s == CoinSideHeads || s == CoinSideTails
}

// DailyResult is the outcome of a successful daily claim
type DailyResult struct {
	Reward     int64
	NewBalance int64
}

// CoinflipResult is the outcome of a resolved coinflip bet
type CoinflipResult struct {
	Won        bool
	Landed     CoinSide
	BetAmount  int64
	NewBalance int64
}

// RobberyResult is the outcome of a robbery attempt
type RobberyResult struct {
	Success       bool
	Stolen        int64 // amount transferred on success
	Fine          int64 // fine rolled on failure; the balance write is floored at zero
	ActorBalance  int64
	VictimBalance int64
}
