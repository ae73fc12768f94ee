package models

import (
	"time"
)

// Account represents a Discord user's economy record
type Account struct {
	DiscordID int64      `db:"discord_id"`
	Balance   int64      `db:"balance"`
	LastDaily *time.Time `db:"last_daily"` // nil until the first daily claim
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// CanClaimDaily reports whether the daily cooldown has elapsed at the given time.
func (a *Account) CanClaimDaily(now time.Time) bool {
	if a.LastDaily == nil {
		return true
	}
	return now.Sub(*a.LastDaily) >= DailyCooldown
}

// NextDailyClaim returns the time at which the next daily claim becomes
// available. Zero time if a claim is available immediately.
func (a *Account) NextDailyClaim() time.Time {
	if a.LastDaily == nil {
		return time.Time{}
	}
	return a.LastDaily.Add(DailyCooldown)
}

// DailyCooldown is the gap required between daily claims.
const DailyCooldown = 24 * time.Hour
