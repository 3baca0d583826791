package platform

import (
	"fmt"
	"time"
)

// Stat is the point-in-time snapshot of one user's statistics on one
// platform. At most one Stat exists per (user, platform) pair; every fetch
// overwrites the previous snapshot, no history is kept.
type Stat struct {
	id             uint
	userID         uint
	platform       Platform
	handle         string
	rating         int
	globalRank     int
	problemsSolved int
	lastFetchedAt  time.Time
}

// NewStat creates a snapshot from a freshly fetched normalized record.
func NewStat(userID uint, p Platform, stats *NormalizedStats) (*Stat, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid platform: %q", p)
	}
	if stats == nil {
		return nil, fmt.Errorf("normalized stats are required")
	}
	if stats.Handle == "" {
		return nil, fmt.Errorf("handle is required")
	}

	return &Stat{
		userID:         userID,
		platform:       p,
		handle:         stats.Handle,
		rating:         stats.Rating,
		globalRank:     stats.SafeGlobalRank(),
		problemsSolved: stats.ProblemsSolved,
		lastFetchedAt:  time.Now().UTC(),
	}, nil
}

// ReconstructStat rebuilds a snapshot from persistence.
func ReconstructStat(id, userID uint, p Platform, handle string, rating, globalRank, problemsSolved int, lastFetchedAt time.Time) (*Stat, error) {
	if id == 0 {
		return nil, fmt.Errorf("stat ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("invalid platform: %q", p)
	}

	return &Stat{
		id:             id,
		userID:         userID,
		platform:       p,
		handle:         handle,
		rating:         rating,
		globalRank:     globalRank,
		problemsSolved: problemsSolved,
		lastFetchedAt:  lastFetchedAt,
	}, nil
}

func (s *Stat) ID() uint                 { return s.id }
func (s *Stat) UserID() uint             { return s.userID }
func (s *Stat) Platform() Platform       { return s.platform }
func (s *Stat) Handle() string           { return s.handle }
func (s *Stat) Rating() int              { return s.rating }
func (s *Stat) GlobalRank() int          { return s.globalRank }
func (s *Stat) ProblemsSolved() int      { return s.problemsSolved }
func (s *Stat) LastFetchedAt() time.Time { return s.lastFetchedAt }

// SetID sets the ID after the snapshot row has been created.
func (s *Stat) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("stat ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("stat ID cannot be zero")
	}
	s.id = id
	return nil
}

// WeightedScore returns this snapshot's weighted leaderboard contribution.
func (s *Stat) WeightedScore() int {
	return s.platform.WeightedScore(s.problemsSolved)
}
