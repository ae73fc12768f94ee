package service

import (
	"context"
	"testing"

	"fozi/events"
	"fozi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_GetOrCreateAccount_Existing(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockPublisher := new(MockEventPublisher)
	mockUoW.SetRepositories(mockAccountRepo, mockPublisher)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	existing := testAccount(123456, 700, nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(existing, nil)

	svc := NewAccountService(mockFactory, 0)
	account, err := svc.GetOrCreateAccount(ctx, 123456)

	assert.NoError(t, err)
	assert.Equal(t, existing, account)
	mockAccountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestAccountService_GetOrCreateAccount_CreatesMissing(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockPublisher := new(MockEventPublisher)
	mockUoW.SetRepositories(mockAccountRepo, mockPublisher)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	created := testAccount(123456, 0, nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockAccountRepo.On("Create", ctx, int64(123456), int64(0)).Return(created, nil)
	mockPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		ev, ok := e.(events.AccountCreatedEvent)
		return ok && ev.DiscordID == 123456 && ev.InitialBalance == 0
	})).Return()

	svc := NewAccountService(mockFactory, 0)
	account, err := svc.GetOrCreateAccount(ctx, 123456)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)
	assert.Nil(t, account.LastDaily)
	mockAccountRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestAccountService_TopBalances(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockPublisher := new(MockEventPublisher)
	mockUoW.SetRepositories(mockAccountRepo, mockPublisher)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	ranked := []*models.Account{
		testAccount(1, 900, nil),
		testAccount(2, 500, nil),
		testAccount(3, 100, nil),
	}
	mockAccountRepo.On("GetPositiveBalances", ctx).Return(ranked, nil)

	svc := NewAccountService(mockFactory, 0)
	accounts, err := svc.TopBalances(ctx)

	assert.NoError(t, err)
	assert.Len(t, accounts, 3)
	assert.Equal(t, int64(900), accounts[0].Balance)
	mockAccountRepo.AssertExpectations(t)
}
