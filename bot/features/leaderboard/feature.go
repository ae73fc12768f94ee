package leaderboard

import (
	"time"

	"fozi/bot/common"
	"fozi/service"
)

// Feature handles the leaderboard command and its pager buttons
type Feature struct {
	accountService service.AccountService
	sessions       *pagerStore
}

// NewFeature creates a new leaderboard feature instance
func NewFeature(accountService service.AccountService) *Feature {
	return &Feature{
		accountService: accountService,
		sessions:       newPagerStore(common.LeaderboardTimeout * time.Second),
	}
}

// CleanupSessions drops expired leaderboard sessions
func (f *Feature) CleanupSessions() {
	f.sessions.Cleanup()
}
