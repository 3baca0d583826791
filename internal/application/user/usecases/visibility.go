package usecases

import (
	"context"

	"codecampus/internal/application/user/dto"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// SetVisibilityCommand represents the request to toggle leaderboard presence
type SetVisibilityCommand struct {
	SubjectID string
	Hidden    bool
}

// SetVisibilityUseCase toggles whether the user appears on the public
// leaderboard. A cached board keeps serving until its TTL expires, so the
// change can take up to one cache window to show.
type SetVisibilityUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewSetVisibilityUseCase creates a new SetVisibilityUseCase
func NewSetVisibilityUseCase(userRepo user.Repository, logger logger.Interface) *SetVisibilityUseCase {
	return &SetVisibilityUseCase{userRepo: userRepo, logger: logger}
}

// Execute stores the visibility flag.
func (uc *SetVisibilityUseCase) Execute(ctx context.Context, cmd SetVisibilityCommand) (*dto.VisibilityDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	if err := uc.userRepo.UpdateVisibility(ctx, cmd.SubjectID, cmd.Hidden); err != nil {
		return nil, err
	}

	uc.logger.Infow("leaderboard visibility updated", "subject_id", cmd.SubjectID, "hidden", cmd.Hidden)
	return &dto.VisibilityDTO{Hidden: cmd.Hidden}, nil
}

// GetVisibilityQuery represents the request for the visibility flag
type GetVisibilityQuery struct {
	SubjectID string
}

// GetVisibilityUseCase reads the leaderboard visibility flag.
type GetVisibilityUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewGetVisibilityUseCase creates a new GetVisibilityUseCase
func NewGetVisibilityUseCase(userRepo user.Repository, logger logger.Interface) *GetVisibilityUseCase {
	return &GetVisibilityUseCase{userRepo: userRepo, logger: logger}
}

// Execute reads the visibility flag.
func (uc *GetVisibilityUseCase) Execute(ctx context.Context, query GetVisibilityQuery) (*dto.VisibilityDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		return nil, err
	}
	return &dto.VisibilityDTO{Hidden: u.Hidden()}, nil
}
