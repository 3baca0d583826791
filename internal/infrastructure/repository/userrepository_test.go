package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"codecampus/internal/infrastructure/persistence/models"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.PlatformStatModel{})
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, subjectID string, hidden bool) uint {
	t.Helper()
	model := &models.UserModel{
		SubjectID:    subjectID,
		Email:        subjectID + "@campus.edu",
		FullName:     "User " + subjectID,
		Branch:       "CSE",
		AcademicYear: "2025",
		Semester:     5,
		Role:         "student",
		Hidden:       hidden,
	}
	require.NoError(t, db.Create(model).Error)
	return model.ID
}

func TestConsumeSyncQuota(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	id := seedUser(t, db, "sub-quota", false)

	for want := 1; want <= 5; want++ {
		consumed, count, err := repo.ConsumeSyncQuota(ctx, id, "2026-09-01", 5)
		require.NoError(t, err)
		assert.True(t, consumed)
		assert.Equal(t, want, count)
	}

	// The sixth charge of the day is refused and the counter stays put.
	consumed, count, err := repo.ConsumeSyncQuota(ctx, id, "2026-09-01", 5)
	require.NoError(t, err)
	assert.False(t, consumed)
	assert.Equal(t, 5, count)

	// A new business date resets the counter.
	consumed, count, err = repo.ConsumeSyncQuota(ctx, id, "2026-09-02", 5)
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.Equal(t, 1, count)
}

func TestConsumeSyncQuotaUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db, logger.NewLogger())

	_, _, err := repo.ConsumeSyncQuota(context.Background(), 999, "2026-09-01", 5)
	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestConsumeSyncQuotaReportsOwnCharge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	id := seedUser(t, db, "sub-own", false)

	// Each charge reads its counter inside the charging transaction, so the
	// returned counts form the exact sequence 1..n with no value skipped.
	seen := make(map[int]bool)
	for i := 0; i < 3; i++ {
		consumed, count, err := repo.ConsumeSyncQuota(ctx, id, "2026-09-01", 5)
		require.NoError(t, err)
		require.True(t, consumed)
		assert.False(t, seen[count], "count %d reported twice", count)
		seen[count] = true
	}
	for want := 1; want <= 3; want++ {
		assert.True(t, seen[want], "count %d never reported", want)
	}
}
