package mappers

import (
	"fmt"

	"codecampus/internal/domain/platform"
	"codecampus/internal/infrastructure/persistence/models"
)

// PlatformStatMapper converts between stat snapshots and GORM models.
type PlatformStatMapper struct{}

// NewPlatformStatMapper creates a new platform stat mapper
func NewPlatformStatMapper() *PlatformStatMapper {
	return &PlatformStatMapper{}
}

// ToModel converts a domain stat snapshot to a persistence model.
func (m *PlatformStatMapper) ToModel(s *platform.Stat) *models.PlatformStatModel {
	return &models.PlatformStatModel{
		ID:             s.ID(),
		UserID:         s.UserID(),
		PlatformName:   s.Platform().String(),
		Handle:         s.Handle(),
		Rating:         s.Rating(),
		GlobalRank:     s.GlobalRank(),
		ProblemsSolved: s.ProblemsSolved(),
		LastFetchedAt:  s.LastFetchedAt(),
	}
}

// ToDomain converts a persistence model to a domain stat snapshot.
func (m *PlatformStatMapper) ToDomain(model *models.PlatformStatModel) (*platform.Stat, error) {
	p, err := platform.Parse(model.PlatformName)
	if err != nil {
		return nil, fmt.Errorf("stat %d: %w", model.ID, err)
	}
	s, err := platform.ReconstructStat(
		model.ID,
		model.UserID,
		p,
		model.Handle,
		model.Rating,
		model.GlobalRank,
		model.ProblemsSolved,
		model.LastFetchedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct stat %d: %w", model.ID, err)
	}
	return s, nil
}
