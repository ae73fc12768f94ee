package testutil

import (
	"time"

	"fozi/models"
)

// CreateTestAccount creates an account model with default values
func CreateTestAccount(discordID int64) *models.Account {
	now := time.Now()
	return &models.Account{
		DiscordID: discordID,
		Balance:   1000,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestAccountWithBalance creates an account model with a specific balance
func CreateTestAccountWithBalance(discordID int64, balance int64) *models.Account {
	account := CreateTestAccount(discordID)
	account.Balance = balance
	return account
}
