package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrSelfRobbery is returned when an account tries to rob itself
var ErrSelfRobbery = errors.New("cannot rob yourself")

// ErrTargetTooPoor is returned when a robbery target is below the minimum
// balance threshold
var ErrTargetTooPoor = errors.New("target balance below robbery threshold")

// CooldownError is returned when a daily claim arrives before the cooldown
// has elapsed
type CooldownError struct {
	NextClaim time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("daily reward already claimed, next claim at %s", e.NextClaim.UTC().Format(time.RFC3339))
}

// InsufficientBalanceError is returned when a bet no longer fits the
// account's balance
type InsufficientBalanceError struct {
	Have int64
	Need int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Have, e.Need)
}
