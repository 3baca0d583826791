package mappers

import (
	"fmt"

	"codecampus/internal/domain/user"
	"codecampus/internal/infrastructure/persistence/models"
)

// UserMapper converts between user domain aggregates and GORM models.
type UserMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToModel converts a domain user to a persistence model.
func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:               u.ID(),
		SubjectID:        u.SubjectID(),
		Email:            u.Email(),
		FullName:         u.FullName(),
		AvatarURL:        u.AvatarURL(),
		EnrollmentNumber: u.EnrollmentNumber(),
		Branch:           u.Branch(),
		AcademicYear:     u.AcademicYear(),
		Semester:         u.Semester(),
		Role:             u.Role().String(),
		Hidden:           u.Hidden(),
		SyncCount:        u.SyncCount(),
		LastSyncDate:     u.LastSyncDate(),
		CreatedAt:        u.CreatedAt(),
		UpdatedAt:        u.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain user.
func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	u, err := user.ReconstructUser(
		model.ID,
		model.SubjectID,
		model.Email,
		model.FullName,
		model.AvatarURL,
		model.EnrollmentNumber,
		model.Branch,
		model.AcademicYear,
		model.Semester,
		user.ParseRole(model.Role),
		model.Hidden,
		model.SyncCount,
		model.LastSyncDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}
