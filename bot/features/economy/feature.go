package economy

import (
	"fozi/service"
)

// Feature handles the daily, rob and balls commands
type Feature struct {
	accountService service.AccountService
	economyService service.EconomyService
}

// NewFeature creates a new economy feature instance
func NewFeature(accountService service.AccountService, economyService service.EconomyService) *Feature {
	return &Feature{
		accountService: accountService,
		economyService: economyService,
	}
}
