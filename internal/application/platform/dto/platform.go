package dto

import (
	"time"

	"codecampus/internal/domain/platform"
)

// PlatformStatDTO is one connected platform's latest snapshot.
type PlatformStatDTO struct {
	Platform       string    `json:"platform"`
	Handle         string    `json:"handle"`
	Rating         int       `json:"rating"`
	GlobalRank     int       `json:"global_rank"`
	ProblemsSolved int       `json:"problems_solved"`
	WeightedScore  int       `json:"weighted_score"`
	LastFetchedAt  time.Time `json:"last_fetched_at"`
}

// NewPlatformStatDTO converts a domain stat snapshot to its DTO.
func NewPlatformStatDTO(s *platform.Stat) *PlatformStatDTO {
	return &PlatformStatDTO{
		Platform:       s.Platform().String(),
		Handle:         s.Handle(),
		Rating:         s.Rating(),
		GlobalRank:     s.GlobalRank(),
		ProblemsSolved: s.ProblemsSolved(),
		WeightedScore:  s.WeightedScore(),
		LastFetchedAt:  s.LastFetchedAt(),
	}
}

// SyncResultDTO reports the outcome of one sync pass across all connected
// platforms.
type SyncResultDTO struct {
	Updated        []string `json:"updated"`
	Failed         []string `json:"failed"`
	RemainingSyncs int      `json:"remaining_syncs"`
}

// LeaderboardEntryDTO is one ranked leaderboard row.
type LeaderboardEntryDTO struct {
	Rank               int    `json:"rank"`
	Name               string `json:"name"`
	Branch             string `json:"branch"`
	AcademicYear       string `json:"year"`
	Semester           int    `json:"semester"`
	Email              string `json:"email"`
	TotalSolved        int    `json:"total_problems_solved"`
	TotalScore         int    `json:"total_score"`
	LeetCodeSolved     int    `json:"lc_solved"`
	CodeforcesRating   int    `json:"cf_rating"`
	CodeChefRating     int    `json:"cc_rating"`
	HackerRankScore    int    `json:"hr_score"`
	GeeksForGeeksScore int    `json:"gfg_score"`
}

// LeaderboardDTO is the full leaderboard response.
type LeaderboardDTO struct {
	Entries     []*LeaderboardEntryDTO `json:"leaderboard"`
	CoderOfWeek *LeaderboardEntryDTO   `json:"coder_of_week,omitempty"`
	ComputedAt  time.Time              `json:"computed_at"`
	FromCache   bool                   `json:"from_cache"`
}

// DashboardDTO is the per-user stats overview.
type DashboardDTO struct {
	TotalSolved   int                `json:"total_problems_solved"`
	PlatformCount int                `json:"platform_count"`
	Rank          int                `json:"rank"`
	Stats         []*PlatformStatDTO `json:"stats"`
}

// HandleUpdateResultDTO reports the outcome of one handle change in a bulk
// update.
type HandleUpdateResultDTO struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	Updated  bool   `json:"updated"`
	Error    string `json:"error,omitempty"`
}
