package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"codecampus/internal/domain/platform"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

func newSyncStatsFixture() (*mockUserRepository, *mockStatRepository, *mockFetcherRegistry, *SyncStatsUseCase) {
	userRepo := new(mockUserRepository)
	statRepo := new(mockStatRepository)
	fetchers := new(mockFetcherRegistry)
	uc := NewSyncStatsUseCase(userRepo, statRepo, fetchers, 5, logger.NewLogger())
	return userRepo, statRepo, fetchers, uc
}

func TestSyncStatsNoConnections(t *testing.T) {
	userRepo, statRepo, _, uc := newSyncStatsFixture()

	userRepo.On("GetBySubjectID", mock.Anything, "sub-1").Return(testUser(1, "sub-1"), nil)
	statRepo.On("ListByUserID", mock.Anything, uint(1)).Return([]*platform.Stat{}, nil)

	_, err := uc.Execute(context.Background(), SyncStatsCommand{SubjectID: "sub-1"})
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	// No quota must be charged when there is nothing to sync.
	userRepo.AssertNotCalled(t, "ConsumeSyncQuota", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncStatsQuotaExhausted(t *testing.T) {
	userRepo, statRepo, _, uc := newSyncStatsFixture()

	userRepo.On("GetBySubjectID", mock.Anything, "sub-1").Return(testUser(1, "sub-1"), nil)
	statRepo.On("ListByUserID", mock.Anything, uint(1)).
		Return([]*platform.Stat{testStat(1, platform.LeetCode, "asha", 100)}, nil)
	userRepo.On("ConsumeSyncQuota", mock.Anything, uint(1), mock.Anything, 5).
		Return(false, 5, nil)

	_, err := uc.Execute(context.Background(), SyncStatsCommand{SubjectID: "sub-1"})
	assert.Error(t, err)
	assert.True(t, apperrors.IsRateLimitedError(err))
	statRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSyncStatsSuccess(t *testing.T) {
	userRepo, statRepo, fetchers, uc := newSyncStatsFixture()

	userRepo.On("GetBySubjectID", mock.Anything, "sub-1").Return(testUser(1, "sub-1"), nil)
	statRepo.On("ListByUserID", mock.Anything, uint(1)).Return([]*platform.Stat{
		testStat(1, platform.LeetCode, "asha", 100),
		testStat(1, platform.Codeforces, "asha_cf", 40),
	}, nil)
	userRepo.On("ConsumeSyncQuota", mock.Anything, uint(1), mock.Anything, 5).
		Return(true, 2, nil)

	lcFetcher := new(mockFetcher)
	lcFetcher.On("Fetch", mock.Anything, "asha").
		Return(&platform.NormalizedStats{Handle: "asha", ProblemsSolved: 120}, nil)
	cfFetcher := new(mockFetcher)
	cfFetcher.On("Fetch", mock.Anything, "asha_cf").
		Return(&platform.NormalizedStats{Handle: "asha_cf", Rating: 1500, Unranked: true, ProblemsSolved: 45}, nil)

	fetchers.On("Fetcher", platform.LeetCode).Return(lcFetcher, nil)
	fetchers.On("Fetcher", platform.Codeforces).Return(cfFetcher, nil)

	statRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()

	result, err := uc.Execute(context.Background(), SyncStatsCommand{SubjectID: "sub-1"})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"LeetCode", "Codeforces"}, result.Updated)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 3, result.RemainingSyncs)

	statRepo.AssertExpectations(t)
}

func TestSyncStatsPartialFailure(t *testing.T) {
	userRepo, statRepo, fetchers, uc := newSyncStatsFixture()

	userRepo.On("GetBySubjectID", mock.Anything, "sub-1").Return(testUser(1, "sub-1"), nil)
	statRepo.On("ListByUserID", mock.Anything, uint(1)).Return([]*platform.Stat{
		testStat(1, platform.LeetCode, "asha", 100),
		testStat(1, platform.CodeChef, "asha_cc", 30),
	}, nil)
	userRepo.On("ConsumeSyncQuota", mock.Anything, uint(1), mock.Anything, 5).
		Return(true, 1, nil)

	lcFetcher := new(mockFetcher)
	lcFetcher.On("Fetch", mock.Anything, "asha").
		Return(&platform.NormalizedStats{Handle: "asha", ProblemsSolved: 120}, nil)
	ccFetcher := new(mockFetcher)
	ccFetcher.On("Fetch", mock.Anything, "asha_cc").
		Return(nil, errors.New("upstream timeout"))

	fetchers.On("Fetcher", platform.LeetCode).Return(lcFetcher, nil)
	fetchers.On("Fetcher", platform.CodeChef).Return(ccFetcher, nil)

	statRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := uc.Execute(context.Background(), SyncStatsCommand{SubjectID: "sub-1"})
	assert.NoError(t, err, "one failing platform must not fail the sync")
	assert.Equal(t, []string{"LeetCode"}, result.Updated)
	assert.Equal(t, []string{"CodeChef"}, result.Failed)
	assert.Equal(t, 4, result.RemainingSyncs)
}
