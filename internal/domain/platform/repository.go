package platform

import "context"

// LeaderboardRow is one aggregated leaderboard entry, as produced by the
// weighted aggregate query. Hidden users never appear.
type LeaderboardRow struct {
	Name         string `json:"name"`
	Branch       string `json:"branch"`
	AcademicYear string `json:"year"`
	Semester     int    `json:"semester"`
	Email        string `json:"email"`
	TotalSolved  int    `json:"total_problems_solved"`
	TotalScore   int    `json:"total_score"`

	LeetCodeSolved     int `json:"lc_solved"`
	CodeforcesRating   int `json:"cf_rating"`
	CodeChefRating     int `json:"cc_rating"`
	HackerRankScore    int `json:"hr_score"`
	GeeksForGeeksScore int `json:"gfg_score"`
}

// UserTotals is the per-user aggregate used by the dashboard.
type UserTotals struct {
	TotalSolved   int
	PlatformCount int
}

// StatRepository defines the persistence gateway for platform stat snapshots.
type StatRepository interface {
	// Upsert inserts or fully overwrites the snapshot for the stat's
	// (user, platform) pair.
	Upsert(ctx context.Context, stat *Stat) error

	// ListByUserID returns all snapshots for a user.
	ListByUserID(ctx context.Context, userID uint) ([]*Stat, error)

	// LeaderboardRows runs the weighted aggregate query over visible users,
	// ordered by weighted score descending, limited to limit rows.
	LeaderboardRows(ctx context.Context, limit int) ([]*LeaderboardRow, error)

	// TotalsByUserID returns the unweighted solved total and connected
	// platform count for a user.
	TotalsByUserID(ctx context.Context, userID uint) (*UserTotals, error)

	// CountUsersWithMoreSolved counts users whose unweighted solved total
	// strictly exceeds the given total. The dashboard rank is one plus this.
	CountUsersWithMoreSolved(ctx context.Context, total int) (int64, error)
}
