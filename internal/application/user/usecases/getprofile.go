package usecases

import (
	"context"

	"codecampus/internal/application/user/dto"
	"codecampus/internal/domain/user"
	"codecampus/internal/shared/biztime"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// GetProfileQuery represents the request for a user's profile
type GetProfileQuery struct {
	SubjectID string
}

// GetProfileUseCase retrieves a user's profile.
type GetProfileUseCase struct {
	userRepo   user.Repository
	dailyLimit int
	logger     logger.Interface
}

// NewGetProfileUseCase creates a new GetProfileUseCase
func NewGetProfileUseCase(userRepo user.Repository, dailyLimit int, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:   userRepo,
		dailyLimit: dailyLimit,
		logger:     logger,
	}
}

// Execute retrieves the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		return nil, err
	}

	return dto.NewUserDTO(u, u.RemainingSyncs(biztime.Today(), uc.dailyLimit)), nil
}
