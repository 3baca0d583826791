package usecases

import (
	"context"
	"errors"
	"time"

	"codecampus/internal/application/platform/dto"
	"codecampus/internal/domain/platform"
	"codecampus/internal/infrastructure/cache"
	"codecampus/internal/shared/biztime"
	"codecampus/internal/shared/logger"
)

// leaderboardLimit caps how many ranked rows the board shows.
const leaderboardLimit = 50

// GetLeaderboardUseCase serves the weighted leaderboard. The board is
// recomputed from the database only on cache miss; everyone hitting the
// endpoint inside the TTL window sees the same snapshot.
type GetLeaderboardUseCase struct {
	statRepo         platform.StatRepository
	leaderboardCache cache.LeaderboardCache
	logger           logger.Interface
}

// NewGetLeaderboardUseCase creates a new GetLeaderboardUseCase
func NewGetLeaderboardUseCase(
	statRepo platform.StatRepository,
	leaderboardCache cache.LeaderboardCache,
	logger logger.Interface,
) *GetLeaderboardUseCase {
	return &GetLeaderboardUseCase{
		statRepo:         statRepo,
		leaderboardCache: leaderboardCache,
		logger:           logger,
	}
}

// Execute returns the leaderboard, serving from cache when possible.
func (uc *GetLeaderboardUseCase) Execute(ctx context.Context) (*dto.LeaderboardDTO, error) {
	cached, err := uc.leaderboardCache.Get(ctx)
	if err == nil {
		return uc.buildResponse(cached.Rows, cached.ComputedAt, true), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// A broken cache degrades to a database read, it never takes the
		// leaderboard down.
		uc.logger.Warnw("leaderboard cache read failed", "error", err)
	}

	rows, err := uc.statRepo.LeaderboardRows(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	if err := uc.leaderboardCache.Set(ctx, rows); err != nil {
		uc.logger.Warnw("failed to cache leaderboard", "error", err)
	}

	return uc.buildResponse(rows, biztime.NowUTC(), false), nil
}

func (uc *GetLeaderboardUseCase) buildResponse(rows []*platform.LeaderboardRow, computedAt time.Time, fromCache bool) *dto.LeaderboardDTO {
	entries := make([]*dto.LeaderboardEntryDTO, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, &dto.LeaderboardEntryDTO{
			Rank:               i + 1,
			Name:               row.Name,
			Branch:             row.Branch,
			AcademicYear:       row.AcademicYear,
			Semester:           row.Semester,
			Email:              row.Email,
			TotalSolved:        row.TotalSolved,
			TotalScore:         row.TotalScore,
			LeetCodeSolved:     row.LeetCodeSolved,
			CodeforcesRating:   row.CodeforcesRating,
			CodeChefRating:     row.CodeChefRating,
			HackerRankScore:    row.HackerRankScore,
			GeeksForGeeksScore: row.GeeksForGeeksScore,
		})
	}

	result := &dto.LeaderboardDTO{
		Entries:    entries,
		ComputedAt: computedAt,
		FromCache:  fromCache,
	}
	if len(entries) > 0 {
		result.CoderOfWeek = entries[0]
	}
	return result
}
