package usecases

import (
	"context"
	"errors"

	"codecampus/internal/application/platform/dto"
	"codecampus/internal/domain/platform"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// ConnectPlatformCommand represents the request to link a platform handle
type ConnectPlatformCommand struct {
	SubjectID string
	Platform  string
	Handle    string
}

// ConnectPlatformUseCase handles linking a coding platform handle to a user.
// The handle is verified against the platform before it is stored; an
// initial snapshot from the verification fetch is persisted so the user
// shows up on the leaderboard without waiting for a sync.
type ConnectPlatformUseCase struct {
	userRepo user.Repository
	statRepo platform.StatRepository
	fetchers FetcherRegistry
	logger   logger.Interface
}

// FetcherRegistry resolves the stats fetcher for a platform.
type FetcherRegistry interface {
	Fetcher(p platform.Platform) (platform.StatsFetcher, error)
}

// NewConnectPlatformUseCase creates a new ConnectPlatformUseCase
func NewConnectPlatformUseCase(
	userRepo user.Repository,
	statRepo platform.StatRepository,
	fetchers FetcherRegistry,
	logger logger.Interface,
) *ConnectPlatformUseCase {
	return &ConnectPlatformUseCase{
		userRepo: userRepo,
		statRepo: statRepo,
		fetchers: fetchers,
		logger:   logger,
	}
}

// Execute verifies the handle and stores the initial snapshot.
func (uc *ConnectPlatformUseCase) Execute(ctx context.Context, cmd ConnectPlatformCommand) (*dto.PlatformStatDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	p, err := platform.Parse(cmd.Platform)
	if err != nil {
		return nil, apperrors.NewValidationError("unsupported platform", cmd.Platform)
	}

	handle := platform.CleanHandle(cmd.Handle)
	if handle == "" {
		return nil, apperrors.NewValidationError("handle is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}

	fetcher, err := uc.fetchers.Fetcher(p)
	if err != nil {
		return nil, apperrors.NewInternalError("platform fetcher unavailable", err.Error())
	}

	stats, err := fetcher.Fetch(ctx, handle)
	if err != nil {
		if !errors.Is(err, platform.ErrStatsNotFound) {
			uc.logger.Warnw("handle verification fetch failed",
				"platform", p.String(), "handle", handle, "error", err)
		}
		// An unreachable platform reads the same as a bad handle; either way
		// the handle could not be verified.
		return nil, apperrors.NewNotFoundError("handle could not be verified on platform", handle)
	}
	// Keep the handle the user typed; some platforms echo a canonicalized
	// variant that would surprise the user.
	stats.Handle = handle

	stat, err := platform.NewStat(u.ID(), p, stats)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build stat snapshot", err.Error())
	}

	if err := uc.statRepo.Upsert(ctx, stat); err != nil {
		return nil, err
	}

	uc.logger.Infow("platform connected",
		"user_id", u.ID(),
		"platform", p.String(),
		"handle", handle,
		"problems_solved", stat.ProblemsSolved(),
	)

	return dto.NewPlatformStatDTO(stat), nil
}
