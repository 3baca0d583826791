package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

func TestSyncUserCreatesOnFirstLogin(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSyncUserUseCase(userRepo, 5, logger.NewLogger())

	userRepo.On("GetBySubjectID", mock.Anything, "sub-new").
		Return(nil, apperrors.NewNotFoundError("user not found"))
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.SubjectID() == "sub-new" && u.Email() == "new@campus.edu"
	})).Return(nil)

	result, err := uc.Execute(context.Background(), SyncUserCommand{
		SubjectID:    "sub-new",
		Email:        "new@campus.edu",
		FullName:     "New Student",
		Branch:       "CSE",
		AcademicYear: "2026",
		Semester:     3,
	})
	assert.NoError(t, err)
	assert.Equal(t, "sub-new", result.SubjectID)
	assert.Equal(t, "student", result.Role)
	assert.Equal(t, 5, result.RemainingSyncs, "a fresh account has the full quota")
	assert.NotEmpty(t, result.AvatarURL, "a default avatar is generated when the provider sends none")
	userRepo.AssertExpectations(t)
}

func TestSyncUserReturnsExisting(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSyncUserUseCase(userRepo, 5, logger.NewLogger())

	existing := storedUser(7, "sub-7", user.RoleStudent, 2, "2020-01-01")
	userRepo.On("GetBySubjectID", mock.Anything, "sub-7").Return(existing, nil)

	result, err := uc.Execute(context.Background(), SyncUserCommand{
		SubjectID: "sub-7",
		Email:     "sub-7@campus.edu",
		FullName:  "Test User",
	})
	assert.NoError(t, err)
	assert.Equal(t, "sub-7", result.SubjectID)
	// The stored sync count is from an old business day, so the quota is fresh.
	assert.Equal(t, 5, result.RemainingSyncs)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSyncUserConcurrentFirstLogin(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSyncUserUseCase(userRepo, 5, logger.NewLogger())

	existing := storedUser(9, "sub-9", user.RoleStudent, 0, "")
	userRepo.On("GetBySubjectID", mock.Anything, "sub-9").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	userRepo.On("Create", mock.Anything, mock.Anything).
		Return(apperrors.NewConflictError("subject already registered"))
	userRepo.On("GetBySubjectID", mock.Anything, "sub-9").Return(existing, nil)

	result, err := uc.Execute(context.Background(), SyncUserCommand{
		SubjectID: "sub-9",
		Email:     "sub-9@campus.edu",
		FullName:  "Test User",
	})
	assert.NoError(t, err, "losing the insert race reads back the winner's row")
	assert.Equal(t, "sub-9", result.SubjectID)
}

func TestSyncUserMissingIdentity(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSyncUserUseCase(userRepo, 5, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SyncUserCommand{Email: "x@campus.edu"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), SyncUserCommand{SubjectID: "sub-1"})
	assert.True(t, apperrors.IsValidationError(err))
}
