package usecases

import (
	"context"

	"codecampus/internal/application/user/dto"
	"codecampus/internal/domain/user"
	"codecampus/internal/shared/biztime"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// UpdateProfileCommand represents the editable profile fields
type UpdateProfileCommand struct {
	SubjectID        string
	EnrollmentNumber string
	Branch           string
	Semester         int
}

// UpdateProfileUseCase handles updating a user's academic profile fields.
type UpdateProfileUseCase struct {
	userRepo   user.Repository
	dailyLimit int
	logger     logger.Interface
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase
func NewUpdateProfileUseCase(userRepo user.Repository, dailyLimit int, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:   userRepo,
		dailyLimit: dailyLimit,
		logger:     logger,
	}
}

// Execute updates the profile fields.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if cmd.Semester < 0 || cmd.Semester > 12 {
		return nil, apperrors.NewValidationError("semester out of range")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}

	u.UpdateProfile(cmd.EnrollmentNumber, cmd.Branch, cmd.Semester)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Infow("user profile updated", "user_id", u.ID())
	return dto.NewUserDTO(u, u.RemainingSyncs(biztime.Today(), uc.dailyLimit)), nil
}
