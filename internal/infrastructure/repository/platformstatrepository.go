package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"codecampus/internal/domain/platform"
	"codecampus/internal/infrastructure/persistence/mappers"
	"codecampus/internal/infrastructure/persistence/models"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// GormStatRepository implements platform.StatRepository using GORM.
type GormStatRepository struct {
	db     *gorm.DB
	mapper *mappers.PlatformStatMapper
	logger logger.Interface
}

// NewGormStatRepository creates a new GORM platform stat repository
func NewGormStatRepository(db *gorm.DB, log logger.Interface) *GormStatRepository {
	return &GormStatRepository{
		db:     db,
		mapper: mappers.NewPlatformStatMapper(),
		logger: log,
	}
}

// Upsert inserts or fully overwrites the snapshot for the stat's
// (user, platform) pair.
func (r *GormStatRepository) Upsert(ctx context.Context, stat *platform.Stat) error {
	model := r.mapper.ToModel(stat)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"handle", "rating", "global_rank", "problems_solved", "last_fetched_at", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert platform stat",
			"user_id", stat.UserID(), "platform", stat.Platform().String(), "error", err)
		return apperrors.NewInternalError("failed to save platform stat", err.Error())
	}
	if stat.ID() == 0 && model.ID != 0 {
		return stat.SetID(model.ID)
	}
	return nil
}

// ListByUserID returns all snapshots for a user.
func (r *GormStatRepository) ListByUserID(ctx context.Context, userID uint) ([]*platform.Stat, error) {
	var rows []models.PlatformStatModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list platform stats", err.Error())
	}
	stats := make([]*platform.Stat, 0, len(rows))
	for i := range rows {
		stat, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			r.logger.Warnw("skipping unreadable platform stat row", "stat_id", rows[i].ID, "error", err)
			continue
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// weightCase builds the platform weight CASE expression from the domain
// weight table, keeping SQL scoring and in-process scoring in lockstep.
func weightCase() string {
	var b strings.Builder
	b.WriteString("CASE ps.platform_name")
	for _, p := range platform.All() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p.String(), p.Weight())
	}
	b.WriteString(" ELSE 0 END")
	return b.String()
}

// LeaderboardRows runs the weighted aggregate query over visible users. A
// user with no connected platforms still gets a row, scored zero.
func (r *GormStatRepository) LeaderboardRows(ctx context.Context, limit int) ([]*platform.LeaderboardRow, error) {
	query := fmt.Sprintf(`
		SELECT
			u.full_name AS name,
			u.branch AS branch,
			u.academic_year AS academic_year,
			u.semester AS semester,
			u.email AS email,
			COALESCE(SUM(ps.problems_solved), 0) AS total_solved,
			COALESCE(SUM(ps.problems_solved * (%s)), 0) AS total_score,
			MAX(CASE WHEN ps.platform_name = 'LeetCode' THEN ps.problems_solved ELSE 0 END) AS leet_code_solved,
			MAX(CASE WHEN ps.platform_name = 'Codeforces' THEN ps.rating ELSE 0 END) AS codeforces_rating,
			MAX(CASE WHEN ps.platform_name = 'CodeChef' THEN ps.rating ELSE 0 END) AS code_chef_rating,
			MAX(CASE WHEN ps.platform_name = 'HackerRank' THEN ps.problems_solved ELSE 0 END) AS hacker_rank_score,
			MAX(CASE WHEN ps.platform_name = 'GeeksForGeeks' THEN ps.problems_solved ELSE 0 END) AS geeks_for_geeks_score
		FROM users u
		LEFT JOIN platform_stats ps ON ps.user_id = u.id
		WHERE u.hidden = FALSE AND u.deleted_at IS NULL
		GROUP BY u.id, u.full_name, u.branch, u.academic_year, u.semester, u.email
		ORDER BY total_score DESC, total_solved DESC, u.full_name ASC
		LIMIT ?`, weightCase())

	var rows []*platform.LeaderboardRow
	if err := r.db.WithContext(ctx).Raw(query, limit).Scan(&rows).Error; err != nil {
		r.logger.Errorw("leaderboard query failed", "error", err)
		return nil, apperrors.NewInternalError("failed to build leaderboard", err.Error())
	}
	return rows, nil
}

// TotalsByUserID returns the unweighted solved total and connected platform
// count for a user.
func (r *GormStatRepository) TotalsByUserID(ctx context.Context, userID uint) (*platform.UserTotals, error) {
	var totals platform.UserTotals
	err := r.db.WithContext(ctx).
		Model(&models.PlatformStatModel{}).
		Select("COALESCE(SUM(problems_solved), 0) AS total_solved, COUNT(*) AS platform_count").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to aggregate user stats", err.Error())
	}
	return &totals, nil
}

// CountUsersWithMoreSolved counts users whose unweighted solved total
// strictly exceeds the given total.
func (r *GormStatRepository) CountUsersWithMoreSolved(ctx context.Context, total int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT ps.user_id
			FROM platform_stats ps
			JOIN users u ON u.id = ps.user_id AND u.deleted_at IS NULL
			GROUP BY ps.user_id
			HAVING COALESCE(SUM(ps.problems_solved), 0) > ?
		) ranked`, total).Scan(&count).Error
	if err != nil {
		return 0, apperrors.NewInternalError("failed to compute rank", err.Error())
	}
	return count, nil
}
