package usecases

import (
	"context"

	"codecampus/internal/application/platform/dto"
	"codecampus/internal/domain/platform"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// ListPlatformsQuery represents the request for a user's connected platforms
type ListPlatformsQuery struct {
	SubjectID string
}

// ListPlatformsUseCase returns the user's connected platforms with their
// latest stored snapshots.
type ListPlatformsUseCase struct {
	userRepo user.Repository
	statRepo platform.StatRepository
	logger   logger.Interface
}

// NewListPlatformsUseCase creates a new ListPlatformsUseCase
func NewListPlatformsUseCase(
	userRepo user.Repository,
	statRepo platform.StatRepository,
	logger logger.Interface,
) *ListPlatformsUseCase {
	return &ListPlatformsUseCase{
		userRepo: userRepo,
		statRepo: statRepo,
		logger:   logger,
	}
}

// Execute lists the user's connected platforms.
func (uc *ListPlatformsUseCase) Execute(ctx context.Context, query ListPlatformsQuery) ([]*dto.PlatformStatDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		return nil, err
	}

	stats, err := uc.statRepo.ListByUserID(ctx, u.ID())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlatformStatDTO, 0, len(stats))
	for _, stat := range stats {
		result = append(result, dto.NewPlatformStatDTO(stat))
	}
	return result, nil
}
