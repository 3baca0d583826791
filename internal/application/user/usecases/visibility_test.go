package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

func TestSetVisibility(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSetVisibilityUseCase(userRepo, logger.NewLogger())

	userRepo.On("UpdateVisibility", mock.Anything, "sub-1", true).Return(nil)

	result, err := uc.Execute(context.Background(), SetVisibilityCommand{SubjectID: "sub-1", Hidden: true})
	assert.NoError(t, err)
	assert.True(t, result.Hidden)
	userRepo.AssertExpectations(t)
}

func TestSetVisibilityUnhide(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSetVisibilityUseCase(userRepo, logger.NewLogger())

	userRepo.On("UpdateVisibility", mock.Anything, "sub-1", false).Return(nil)

	result, err := uc.Execute(context.Background(), SetVisibilityCommand{SubjectID: "sub-1", Hidden: false})
	assert.NoError(t, err)
	assert.False(t, result.Hidden)
}

func TestSetVisibilityMissingIdentity(t *testing.T) {
	userRepo := new(mockUserRepository)
	uc := NewSetVisibilityUseCase(userRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), SetVisibilityCommand{Hidden: true})
	assert.True(t, apperrors.IsValidationError(err))
	userRepo.AssertNotCalled(t, "UpdateVisibility", mock.Anything, mock.Anything, mock.Anything)
}
