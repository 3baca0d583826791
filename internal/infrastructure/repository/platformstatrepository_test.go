package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"codecampus/internal/infrastructure/persistence/models"
	"codecampus/internal/shared/logger"
)

func seedStat(t *testing.T, db *gorm.DB, userID uint, platformName, handle string, rating, solved int) {
	t.Helper()
	require.NoError(t, db.Create(&models.PlatformStatModel{
		UserID:         userID,
		PlatformName:   platformName,
		Handle:         handle,
		Rating:         rating,
		ProblemsSolved: solved,
		LastFetchedAt:  time.Now().UTC(),
	}).Error)
}

func TestLeaderboardRowsWeightedOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatRepository(db, logger.NewLogger())
	ctx := context.Background()

	ashaID := seedUser(t, db, "sub-asha", false)
	raviID := seedUser(t, db, "sub-ravi", false)

	// Ravi solved more problems, but Asha's Codeforces work outweighs them.
	seedStat(t, db, ashaID, "Codeforces", "asha_cf", 1500, 40)
	seedStat(t, db, raviID, "LeetCode", "ravi_lc", 0, 60)

	rows, err := repo.LeaderboardRows(ctx, 50)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "User sub-asha", rows[0].Name)
	assert.Equal(t, 800, rows[0].TotalScore)
	assert.Equal(t, 1500, rows[0].CodeforcesRating)
	assert.Equal(t, "User sub-ravi", rows[1].Name)
	assert.Equal(t, 600, rows[1].TotalScore)
	assert.Equal(t, 60, rows[1].LeetCodeSolved)
}

func TestLeaderboardRowsIncludesUsersWithoutConnections(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatRepository(db, logger.NewLogger())
	ctx := context.Background()

	connectedID := seedUser(t, db, "sub-connected", false)
	seedUser(t, db, "sub-fresh", false)
	seedStat(t, db, connectedID, "LeetCode", "connected_lc", 0, 100)

	rows, err := repo.LeaderboardRows(ctx, 50)
	require.NoError(t, err)
	require.Len(t, rows, 2, "a visible user with no connected platforms still gets a row")

	assert.Equal(t, "User sub-connected", rows[0].Name)
	assert.Equal(t, 1000, rows[0].TotalScore)

	assert.Equal(t, "User sub-fresh", rows[1].Name)
	assert.Equal(t, 0, rows[1].TotalSolved)
	assert.Equal(t, 0, rows[1].TotalScore)
	assert.Equal(t, 0, rows[1].LeetCodeSolved)
}

func TestLeaderboardRowsSkipsHiddenUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStatRepository(db, logger.NewLogger())
	ctx := context.Background()

	visibleID := seedUser(t, db, "sub-visible", false)
	hiddenID := seedUser(t, db, "sub-hidden", true)
	seedStat(t, db, visibleID, "LeetCode", "visible_lc", 0, 10)
	seedStat(t, db, hiddenID, "LeetCode", "hidden_lc", 0, 500)

	rows, err := repo.LeaderboardRows(ctx, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "User sub-visible", rows[0].Name)
}
