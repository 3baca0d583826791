package platform

import "context"

// NormalizedStats is the common record shape every platform adapter produces.
// An adapter returns either a complete record or ErrStatsNotFound, never a
// partial record.
type NormalizedStats struct {
	Handle         string
	Rating         int
	GlobalRank     int
	Unranked       bool
	ProblemsSolved int
}

// SafeGlobalRank returns the rank suitable for persistence: platforms that
// only report a textual or absent rank store zero.
func (s *NormalizedStats) SafeGlobalRank() int {
	if s.Unranked {
		return 0
	}
	return s.GlobalRank
}

// StatsFetcher retrieves one user's public statistics from one external
// platform. Implementations make a single attempt per call; retry policy, if
// any, belongs to the caller.
type StatsFetcher interface {
	Fetch(ctx context.Context, handle string) (*NormalizedStats, error)
}
