package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"codecampus/internal/domain/user"
	"codecampus/internal/infrastructure/persistence/mappers"
	"codecampus/internal/infrastructure/persistence/models"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// GormUserRepository implements user.Repository using GORM.
type GormUserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
	logger logger.Interface
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB, log logger.Interface) *GormUserRepository {
	return &GormUserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already exists", err.Error())
		}
		r.logger.Errorw("failed to create user", "subject_id", u.SubjectID(), "error", err)
		return apperrors.NewInternalError("failed to create user", err.Error())
	}
	return u.SetID(model.ID)
}

// GetByID retrieves a user by internal ID
func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to get user", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

// GetBySubjectID retrieves a user by identity-provider subject ID
func (r *GormUserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewInternalError("failed to get user", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", u.ID()).Updates(map[string]interface{}{
		"email":             model.Email,
		"full_name":         model.FullName,
		"avatar_url":        model.AvatarURL,
		"enrollment_number": model.EnrollmentNumber,
		"branch":            model.Branch,
		"academic_year":     model.AcademicYear,
		"semester":          model.Semester,
		"role":              model.Role,
		"hidden":            model.Hidden,
		"updated_at":        model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "user_id", u.ID(), "error", result.Error)
		return apperrors.NewInternalError("failed to update user", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

// UpdateVisibility sets the leaderboard visibility flag
func (r *GormUserRepository) UpdateVisibility(ctx context.Context, subjectID string, hidden bool) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("subject_id = ?", subjectID).
		Updates(map[string]interface{}{"hidden": hidden, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return apperrors.NewInternalError("failed to update visibility", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

// ConsumeSyncQuota atomically charges one sync against the daily quota. The
// guarded UPDATE either resets the counter for a new business date or
// increments it while still under the limit; concurrent calls for the same
// user serialize on the row lock, so the limit cannot be overshot. The
// counter is read back inside the same transaction, while the lock from the
// UPDATE is still held, so the returned count belongs to this charge.
func (r *GormUserRepository) ConsumeSyncQuota(ctx context.Context, userID uint, today string, limit int) (bool, int, error) {
	var consumed bool
	var count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			`UPDATE users
			 SET sync_count = CASE WHEN last_sync_date = ? THEN sync_count + 1 ELSE 1 END,
			     last_sync_date = ?,
			     updated_at = ?
			 WHERE id = ? AND deleted_at IS NULL
			   AND (last_sync_date <> ? OR sync_count < ?)`,
			today, today, time.Now().UTC(), userID, today, limit,
		)
		if result.Error != nil {
			return result.Error
		}
		consumed = result.RowsAffected > 0

		var model models.UserModel
		if err := tx.Select("sync_count", "last_sync_date").First(&model, userID).Error; err != nil {
			return err
		}
		count = model.SyncCount
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, apperrors.NewNotFoundError("user not found")
		}
		r.logger.Errorw("failed to consume sync quota", "user_id", userID, "error", err)
		return false, 0, apperrors.NewInternalError("failed to consume sync quota", err.Error())
	}
	return consumed, count, nil
}
