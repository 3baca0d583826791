package usecases

import (
	"context"

	"codecampus/internal/application/platform/dto"
	"codecampus/internal/domain/platform"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// GetDashboardStatsQuery represents the request for a user's stats overview
type GetDashboardStatsQuery struct {
	SubjectID string
}

// GetDashboardStatsUseCase assembles the per-user overview: totals, the
// user's rank, and the latest snapshot per platform. The rank is positional
// by raw solved count, not by weighted score, so a user can rank above
// someone who outscores them on the leaderboard.
type GetDashboardStatsUseCase struct {
	userRepo user.Repository
	statRepo platform.StatRepository
	logger   logger.Interface
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase
func NewGetDashboardStatsUseCase(
	userRepo user.Repository,
	statRepo platform.StatRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		userRepo: userRepo,
		statRepo: statRepo,
		logger:   logger,
	}
}

// Execute assembles the user's stats overview.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, query GetDashboardStatsQuery) (*dto.DashboardDTO, error) {
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

	totals, err := uc.statRepo.TotalsByUserID(ctx, u.ID())
	if err != nil {
		return nil, err
	}

	ahead, err := uc.statRepo.CountUsersWithMoreSolved(ctx, totals.TotalSolved)
	if err != nil {
		return nil, err
	}

	statDTOs := make([]*dto.PlatformStatDTO, 0, len(stats))
	for _, stat := range stats {
		statDTOs = append(statDTOs, dto.NewPlatformStatDTO(stat))
	}

	return &dto.DashboardDTO{
		TotalSolved:   totals.TotalSolved,
		PlatformCount: totals.PlatformCount,
		Rank:          int(ahead) + 1,
		Stats:         statDTOs,
	}, nil
}
