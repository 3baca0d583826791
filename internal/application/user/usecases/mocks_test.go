package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"codecampus/internal/domain/user"
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

func storedUser(id uint, subjectID string, role user.Role, syncCount int, lastSyncDate string) *user.User {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, subjectID, subjectID+"@campus.edu", "Test User", "x", "EN1",
		"CSE", "2025", 5, role, false, syncCount, lastSyncDate, now, now)
	if err != nil {
		panic(err)
	}
	return u
}
