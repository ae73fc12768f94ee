package betting

import (
	"time"

	"fozi/bot/common"
	"fozi/service"
)

// Feature handles the coinflip and ballflip commands
type Feature struct {
	accountService service.AccountService
	economyService service.EconomyService
	sessions       *sessionStore
}

// NewFeature creates a new betting feature instance
func NewFeature(accountService service.AccountService, economyService service.EconomyService) *Feature {
	return &Feature{
		accountService: accountService,
		economyService: economyService,
		sessions:       newSessionStore(common.BetSessionTimeout * time.Second),
	}
}

// CleanupSessions drops resolved and expired bet sessions
func (f *Feature) CleanupSessions() {
	f.sessions.Cleanup()
}
