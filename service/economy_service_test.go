package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"fozi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubRand feeds predetermined rolls to the service so fair-coin outcomes can
// be forced from a test
type stubRand struct {
	ints   []int
	floats []float64
}

func (s *stubRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *stubRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newEconomyFixture(t *testing.T, rolls *stubRand) (*economyService, *MockUnitOfWork, *MockAccountRepository, *MockEventPublisher) {
	t.Helper()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockAccountRepo := new(MockAccountRepository)
	mockPublisher := new(MockEventPublisher)
	mockUoW.SetRepositories(mockAccountRepo, mockPublisher)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", mock.Anything).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	svc := &economyService{
		uowFactory:      mockFactory,
		startingBalance: 0,
		rand:            rolls,
	}
	return svc, mockUoW, mockAccountRepo, mockPublisher
}

func testAccount(discordID, balance int64, lastDaily *time.Time) *models.Account {
	now := time.Now()
	return &models.Account{
		DiscordID: discordID,
		Balance:   balance,
		LastDaily: lastDaily,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestEconomyService_ClaimDaily_FirstClaim(t *testing.T) {
	ctx := context.Background()

	rolls := &stubRand{ints: []int{150}}
	svc, mockUoW, mockAccountRepo, mockPublisher := newEconomyFixture(t, rolls)

	mockUoW.On("Commit").Return(nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(testAccount(123456, 0, nil), nil)
	mockAccountRepo.On("UpdateDaily", ctx, int64(123456), int64(250), mock.AnythingOfType("time.Time")).Return(nil)
	mockPublisher.On("Publish", mock.Anything).Return()

	result, err := svc.ClaimDaily(ctx, 123456)

	assert.NoError(t, err)
	assert.Equal(t, int64(250), result.Reward) // 150 + DailyRewardMin
	assert.Equal(t, int64(250), result.NewBalance)
	assert.GreaterOrEqual(t, result.Reward, int64(DailyRewardMin))
	assert.LessOrEqual(t, result.Reward, int64(DailyRewardMax))

	mockAccountRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestEconomyService_ClaimDaily_Cooldown(t *testing.T) {
	ctx := context.Background()

	rolls := &stubRand{}
	svc, _, mockAccountRepo, _ := newEconomyFixture(t, rolls)

	lastClaim := time.Now().UTC().Add(-time.Hour)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(testAccount(123456, 400, &lastClaim), nil)

	result, err := svc.ClaimDaily(ctx, 123456)

	assert.Nil(t, result)
	var cooldown *CooldownError
	assert.ErrorAs(t, err, &cooldown)
	assert.Equal(t, lastClaim.Add(models.DailyCooldown), cooldown.NextClaim)
	mockAccountRepo.AssertNotCalled(t, "UpdateDaily", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEconomyService_ClaimDaily_AfterCooldown(t *testing.T) {
	ctx := context.Background()

	rolls := &stubRand{ints: []int{0}}
	svc, mockUoW, mockAccountRepo, mockPublisher := newEconomyFixture(t, rolls)

	lastClaim := time.Now().UTC().Add(-25 * time.Hour)
	mockUoW.On("Commit").Return(nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(testAccount(123456, 400, &lastClaim), nil)
	mockAccountRepo.On("UpdateDaily", ctx, int64(123456), int64(500), mock.AnythingOfType("time.Time")).Return(nil)
	mockPublisher.On("Publish", mock.Anything).Return()

	result, err := svc.ClaimDaily(ctx, 123456)

	assert.NoError(t, err)
	assert.Equal(t, int64(DailyRewardMin), result.Reward)
	assert.Equal(t, int64(500), result.NewBalance)
	mockAccountRepo.AssertExpectations(t)
}

func TestEconomyService_ResolveCoinflip_Win(t *testing.T) {
	ctx := context.Background()

	// Intn(2) == 0 lands heads
	rolls := &stubRand{ints: []int{0}}
	svc, mockUoW, mockAccountRepo, mockPublisher := newEconomyFixture(t, rolls)

	mockUoW.On("Commit").Return(nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(testAccount(123456, 1000, nil), nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(123456), int64(2000)).Return(nil)
	mockPublisher.On("Publish", mock.Anything).Return()

	result, err := svc.ResolveCoinflip(ctx, 123456, 1000, models.CoinSideHeads)

	assert.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, models.CoinSideHeads, result.Landed)
	assert.Equal(t, int64(2000), result.NewBalance)
	mockAccountRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestEconomyService_ResolveCoinflip_Loss(t *testing.T) {
	ctx := context.Background()

	// Intn(2) == 1 lands tails
	rolls := &stubRand{ints: []int{1}}
	svc, mockUoW, mockAccountRepo, mockPublisher := newEconomyFixture(t, rolls)

	mockUoW.On("Commit").Return(nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(testAccount(123456, 1000, nil), nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(123456), int64(0)).Return(nil)
	mockPublisher.On("Publish", mock.Anything).Return()

	result, err := svc.ResolveCoinflip(ctx, 123456, 1000, models.CoinSideHeads)

	assert.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, models.CoinSideTails, result.Landed)
	assert.Equal(t, int64(0), result.NewBalance)
	mockAccountRepo.AssertExpectations(t)
}

func TestEconomyService_ResolveCoinflip_InsufficientBalance(t *testing.T) {
	ctx := context.Background()

	rolls := &stubRand{ints: []int{0}}
	svc, _, mockAccountRepo, _ := newEconomyFixture(t, rolls)

	mockAccountRepo.On("GetByDiscordID", ctx, int64(123456)).Return(testAccount(123456, 500, nil), nil)

	result, err := svc.ResolveCoinflip(ctx, 123456, 1000, models.CoinSideHeads)

	assert.Nil(t, result)
	var insufficient *InsufficientBalanceError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(500), insufficient.Have)
	assert.Equal(t, int64(1000), insufficient.Need)
	mockAccountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestEconomyService_ResolveCoinflip_InvalidInputs(t *testing.T) {
	ctx := context.Background()

	svc, _, _, _ := newEconomyFixture(t, &stubRand{})

	_, err := svc.ResolveCoinflip(ctx, 123456, 0, models.CoinSideHeads)
	assert.Error(t, err)

	_, err = svc.ResolveCoinflip(ctx, 123456, 100, models.CoinSide("edge"))
	assert.Error(t, err)
}

func TestEconomyService_Rob_Success(t *testing.T) {
	ctx := context.Background()

	// Float64 below RobSuccessChance succeeds; Intn(101) == 25 steals 75
	rolls := &stubRand{ints: []int{25}, floats: []float64{0.25}}
	svc, mockUoW, mockAccountRepo, mockPublisher := newEconomyFixture(t, rolls)

	mockUoW.On("Commit").Return(nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(testAccount(111, 0, nil), nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(222)).Return(testAccount(222, 150, nil), nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(111), int64(75)).Return(nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(222), int64(75)).Return(nil)
	mockPublisher.On("Publish", mock.Anything).Return()

	result, err := svc.Rob(ctx, 111, 222)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(75), result.Stolen)
	assert.Equal(t, int64(75), result.ActorBalance)
	assert.Equal(t, int64(75), result.VictimBalance)
	mockAccountRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestEconomyService_Rob_FailureFineClampedAtZero(t *testing.T) {
	ctx := context.Background()

	// Float64 above RobSuccessChance fails; Intn(81) == 30 fines 50
	rolls := &stubRand{ints: []int{30}, floats: []float64{0.75}}
	svc, mockUoW, mockAccountRepo, mockPublisher := newEconomyFixture(t, rolls)

	mockUoW.On("Commit").Return(nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(testAccount(111, 10, nil), nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(222)).Return(testAccount(222, 500, nil), nil)
	mockAccountRepo.On("UpdateBalance", ctx, int64(111), int64(0)).Return(nil)
	mockPublisher.On("Publish", mock.Anything).Return()

	result, err := svc.Rob(ctx, 111, 222)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, int64(50), result.Fine)
	assert.Equal(t, int64(0), result.ActorBalance)
	// Victim is untouched on a failed robbery
	mockAccountRepo.AssertNotCalled(t, "UpdateBalance", ctx, int64(222), mock.Anything)
	mockAccountRepo.AssertExpectations(t)
}

func TestEconomyService_Rob_SelfTarget(t *testing.T) {
	svc, _, mockAccountRepo, _ := newEconomyFixture(t, &stubRand{})

	result, err := svc.Rob(context.Background(), 111, 111)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSelfRobbery)
	mockAccountRepo.AssertNotCalled(t, "GetByDiscordID", mock.Anything, mock.Anything)
}

func TestEconomyService_Rob_TargetBelowThreshold(t *testing.T) {
	ctx := context.Background()

	svc, _, mockAccountRepo, _ := newEconomyFixture(t, &stubRand{})

	mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(testAccount(111, 0, nil), nil)
	mockAccountRepo.On("GetByDiscordID", ctx, int64(222)).Return(testAccount(222, 50, nil), nil)

	result, err := svc.Rob(ctx, 111, 222)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTargetTooPoor)
	mockAccountRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestEconomyService_Rob_OutcomeBounds(t *testing.T) {
	ctx := context.Background()
	src := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		targetBalance := int64(100 + src.Intn(300))

		mockUoW := new(MockUnitOfWork)
		mockFactory := new(MockUnitOfWorkFactory)
		mockAccountRepo := new(MockAccountRepository)
		mockPublisher := new(MockEventPublisher)
		mockUoW.SetRepositories(mockAccountRepo, mockPublisher)

		mockFactory.On("Create").Return(mockUoW)
		mockUoW.On("Begin", mock.Anything).Return(nil)
		mockUoW.On("Rollback").Return(nil)
		mockUoW.On("Commit").Return(nil)
		mockAccountRepo.On("GetByDiscordID", ctx, int64(111)).Return(testAccount(111, 30, nil), nil)
		mockAccountRepo.On("GetByDiscordID", ctx, int64(222)).Return(testAccount(222, targetBalance, nil), nil)
		mockAccountRepo.On("UpdateBalance", ctx, mock.Anything, mock.Anything).Return(nil)
		mockPublisher.On("Publish", mock.Anything).Return()

		svc := &economyService{uowFactory: mockFactory, rand: src}

		result, err := svc.Rob(ctx, 111, 222)
		assert.NoError(t, err)

		if result.Success {
			assert.GreaterOrEqual(t, result.Stolen, int64(RobStealMin))
			stealCap := int64(RobStealCap)
			if targetBalance < stealCap {
				stealCap = targetBalance
			}
			assert.LessOrEqual(t, result.Stolen, stealCap)
			assert.Equal(t, targetBalance-result.Stolen, result.VictimBalance)
		} else {
			assert.GreaterOrEqual(t, result.Fine, int64(RobFineMin))
			assert.LessOrEqual(t, result.Fine, int64(RobFineMax))
			assert.GreaterOrEqual(t, result.ActorBalance, int64(0))
			assert.Equal(t, targetBalance, result.VictimBalance)
		}
	}
}
