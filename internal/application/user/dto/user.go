package dto

import "codecampus/internal/domain/user"

// UserDTO is the user profile response shape.
type UserDTO struct {
	SubjectID        string `json:"subject_id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	AvatarURL        string `json:"avatar_url"`
	EnrollmentNumber string `json:"enrollment_number"`
	Branch           string `json:"branch"`
	AcademicYear     string `json:"academic_year"`
	Semester         int    `json:"semester"`
	Role             string `json:"role"`
	Hidden           bool   `json:"hidden"`
	RemainingSyncs   int    `json:"remaining_syncs"`
}

// NewUserDTO converts a domain user to its DTO. remainingSyncs is computed
// by the caller because it depends on the business date and the configured
// daily limit.
func NewUserDTO(u *user.User, remainingSyncs int) *UserDTO {
	return &UserDTO{
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
		RemainingSyncs:   remainingSyncs,
	}
}

// VisibilityDTO reports the leaderboard visibility flag.
type VisibilityDTO struct {
	Hidden bool `json:"hidden"`
}

// RoleDTO reports the user's role.
type RoleDTO struct {
	Role string `json:"role"`
}
