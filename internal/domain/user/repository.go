package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetBySubjectID retrieves a user by identity-provider subject ID
	GetBySubjectID(ctx context.Context, subjectID string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// UpdateVisibility sets the leaderboard visibility flag
	UpdateVisibility(ctx context.Context, subjectID string, hidden bool) error

	// ConsumeSyncQuota atomically charges one sync against the user's daily
	// quota for the given business date. The stored counter resets when the
	// stored date differs from today. Returns the count after the charge and
	// consumed=false (with no mutation) when the quota is already exhausted.
	ConsumeSyncQuota(ctx context.Context, userID uint, today string, limit int) (consumed bool, newCount int, err error)
}
