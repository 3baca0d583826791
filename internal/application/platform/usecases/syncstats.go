package usecases

import (
	"context"
	"fmt"

	"codecampus/internal/application/platform/dto"
	"codecampus/internal/domain/platform"
	"codecampus/internal/domain/user"
	"codecampus/internal/shared/biztime"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// SyncStatsCommand represents the request to refresh all connected platforms
type SyncStatsCommand struct {
	SubjectID string
}

// SyncStatsUseCase refreshes the stored snapshots for every platform the
// user has connected. One invocation charges exactly one unit of the daily
// sync quota, regardless of how many platforms it touches or how many of
// them fail. Fresh numbers reach the leaderboard once its cached snapshot
// expires.
type SyncStatsUseCase struct {
	userRepo   user.Repository
	statRepo   platform.StatRepository
	fetchers   FetcherRegistry
	dailyLimit int
	logger     logger.Interface
}

// NewSyncStatsUseCase creates a new SyncStatsUseCase
func NewSyncStatsUseCase(
	userRepo user.Repository,
	statRepo platform.StatRepository,
	fetchers FetcherRegistry,
	dailyLimit int,
	logger logger.Interface,
) *SyncStatsUseCase {
	return &SyncStatsUseCase{
		userRepo:   userRepo,
		statRepo:   statRepo,
		fetchers:   fetchers,
		dailyLimit: dailyLimit,
		logger:     logger,
	}
}

// Execute refreshes all connected platforms for the user.
func (uc *SyncStatsUseCase) Execute(ctx context.Context, cmd SyncStatsCommand) (*dto.SyncResultDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}

	stats, err := uc.statRepo.ListByUserID(ctx, u.ID())
	if err != nil {
		return nil, err
	}
	// The quota charge comes after this check so a user with nothing to sync
	// never burns a unit.
	if len(stats) == 0 {
		return nil, apperrors.NewValidationError("no platforms connected")
	}

	today := biztime.Today()
	consumed, newCount, err := uc.userRepo.ConsumeSyncQuota(ctx, u.ID(), today, uc.dailyLimit)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, apperrors.NewRateLimitedError(
			"daily sync limit reached",
			fmt.Sprintf("limit of %d syncs per day", uc.dailyLimit),
		)
	}

	result := &dto.SyncResultDTO{
		Updated:        make([]string, 0, len(stats)),
		Failed:         make([]string, 0),
		RemainingSyncs: uc.dailyLimit - newCount,
	}

	for _, stat := range stats {
		if err := uc.refreshPlatform(ctx, u.ID(), stat); err != nil {
			uc.logger.Warnw("platform refresh failed",
				"user_id", u.ID(),
				"platform", stat.Platform().String(),
				"handle", stat.Handle(),
				"error", err,
			)
			result.Failed = append(result.Failed, stat.Platform().String())
			continue
		}
		result.Updated = append(result.Updated, stat.Platform().String())
	}

	uc.logger.Infow("platform stats synced",
		"user_id", u.ID(),
		"updated", len(result.Updated),
		"failed", len(result.Failed),
		"remaining_syncs", result.RemainingSyncs,
	)

	return result, nil
}

func (uc *SyncStatsUseCase) refreshPlatform(ctx context.Context, userID uint, existing *platform.Stat) error {
	fetcher, err := uc.fetchers.Fetcher(existing.Platform())
	if err != nil {
		return err
	}

	fresh, err := fetcher.Fetch(ctx, existing.Handle())
	if err != nil {
		return err
	}
	fresh.Handle = existing.Handle()

	stat, err := platform.NewStat(userID, existing.Platform(), fresh)
	if err != nil {
		return err
	}
	return uc.statRepo.Upsert(ctx, stat)
}
