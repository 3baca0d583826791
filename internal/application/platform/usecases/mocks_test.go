package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"codecampus/internal/domain/platform"
	"codecampus/internal/domain/user"
	"codecampus/internal/infrastructure/cache"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*user.User, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateVisibility(ctx context.Context, subjectID string, hidden bool) error {
	args := m.Called(ctx, subjectID, hidden)
	return args.Error(0)
}

func (m *mockUserRepository) ConsumeSyncQuota(ctx context.Context, userID uint, today string, limit int) (bool, int, error) {
	args := m.Called(ctx, userID, today, limit)
	return args.Bool(0), args.Int(1), args.Error(2)
}

type mockStatRepository struct {
	mock.Mock
}

func (m *mockStatRepository) Upsert(ctx context.Context, stat *platform.Stat) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}

func (m *mockStatRepository) ListByUserID(ctx context.Context, userID uint) ([]*platform.Stat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platform.Stat), args.Error(1)
}

func (m *mockStatRepository) LeaderboardRows(ctx context.Context, limit int) ([]*platform.LeaderboardRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*platform.LeaderboardRow), args.Error(1)
}

func (m *mockStatRepository) TotalsByUserID(ctx context.Context, userID uint) (*platform.UserTotals, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.UserTotals), args.Error(1)
}

func (m *mockStatRepository) CountUsersWithMoreSolved(ctx context.Context, total int) (int64, error) {
	args := m.Called(ctx, total)
	return args.Get(0).(int64), args.Error(1)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, handle string) (*platform.NormalizedStats, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.NormalizedStats), args.Error(1)
}

type mockFetcherRegistry struct {
	mock.Mock
}

func (m *mockFetcherRegistry) Fetcher(p platform.Platform) (platform.StatsFetcher, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(platform.StatsFetcher), args.Error(1)
}

type mockLeaderboardCache struct {
	mock.Mock
}

func (m *mockLeaderboardCache) Get(ctx context.Context) (*cache.CachedLeaderboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.CachedLeaderboard), args.Error(1)
}

func (m *mockLeaderboardCache) Set(ctx context.Context, rows []*platform.LeaderboardRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *mockLeaderboardCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func nowTest() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func testUser(id uint, subjectID string) *user.User {
	u, err := user.ReconstructUser(id, subjectID, subjectID+"@campus.edu", "Test User", "x", "EN1",
		"CSE", "2025", 5, user.RoleStudent, false, 0, "", nowTest(), nowTest())
	if err != nil {
		panic(err)
	}
	return u
}

func testStat(userID uint, p platform.Platform, handle string, solved int) *platform.Stat {
	s, err := platform.ReconstructStat(1, userID, p, handle, 0, 0, solved, nowTest())
	if err != nil {
		panic(err)
	}
	return s
}
