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

// UpdateHandlesCommand represents a bulk handle update across platforms
type UpdateHandlesCommand struct {
	SubjectID string
	Handles   map[string]string
}

// UpdateHandlesUseCase changes handles for several platforms at once. Each
// handle is verified independently; a failing platform is reported in its
// result entry and does not abort the rest of the batch. No sync quota is
// charged.
type UpdateHandlesUseCase struct {
	userRepo user.Repository
	statRepo platform.StatRepository
	fetchers FetcherRegistry
	logger   logger.Interface
}

// NewUpdateHandlesUseCase creates a new UpdateHandlesUseCase
func NewUpdateHandlesUseCase(
	userRepo user.Repository,
	statRepo platform.StatRepository,
	fetchers FetcherRegistry,
	logger logger.Interface,
) *UpdateHandlesUseCase {
	return &UpdateHandlesUseCase{
		userRepo: userRepo,
		statRepo: statRepo,
		fetchers: fetchers,
		logger:   logger,
	}
}

// Execute verifies and stores each provided handle.
func (uc *UpdateHandlesUseCase) Execute(ctx context.Context, cmd UpdateHandlesCommand) ([]*dto.HandleUpdateResultDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if len(cmd.Handles) == 0 {
		return nil, apperrors.NewValidationError("no handles provided")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.HandleUpdateResultDTO, 0, len(cmd.Handles))

	// Iterate the canonical platform order so responses are stable.
	for _, p := range platform.All() {
		rawHandle, ok := cmd.Handles[p.String()]
		if !ok {
			continue
		}
		results = append(results, uc.updateOne(ctx, u.ID(), p, rawHandle))
	}

	if len(results) != len(cmd.Handles) {
		return nil, apperrors.NewValidationError("request contains an unsupported platform")
	}

	return results, nil
}

func (uc *UpdateHandlesUseCase) updateOne(ctx context.Context, userID uint, p platform.Platform, rawHandle string) *dto.HandleUpdateResultDTO {
	result := &dto.HandleUpdateResultDTO{Platform: p.String()}

	handle := platform.CleanHandle(rawHandle)
	if handle == "" {
		result.Error = "handle is required"
		return result
	}
	result.Handle = handle

	fetcher, err := uc.fetchers.Fetcher(p)
	if err != nil {
		result.Error = "platform fetcher unavailable"
		return result
	}

	stats, err := fetcher.Fetch(ctx, handle)
	if err != nil {
		if errors.Is(err, platform.ErrStatsNotFound) {
			result.Error = "handle not found on platform"
		} else {
			uc.logger.Warnw("handle verification fetch failed",
				"platform", p.String(), "handle", handle, "error", err)
			result.Error = "failed to verify handle"
		}
		return result
	}
	stats.Handle = handle

	stat, err := platform.NewStat(userID, p, stats)
	if err != nil {
		result.Error = "failed to build stat snapshot"
		return result
	}
	if err := uc.statRepo.Upsert(ctx, stat); err != nil {
		result.Error = "failed to save stat snapshot"
		return result
	}

	result.Updated = true
	return result
}
