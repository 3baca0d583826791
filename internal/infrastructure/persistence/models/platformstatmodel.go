package models

import "time"

// PlatformStatModel is the GORM model for per-user platform stat snapshots.
// The composite unique index enforces one snapshot per (user, platform).
type PlatformStatModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	UserID         uint   `gorm:"uniqueIndex:idx_user_platform;not null"`
	PlatformName   string `gorm:"uniqueIndex:idx_user_platform;size:32;not null"`
	Handle         string `gorm:"size:128;not null"`
	Rating         int    `gorm:"default:0;not null"`
	GlobalRank     int    `gorm:"default:0;not null"`
	ProblemsSolved int    `gorm:"default:0;not null"`
	LastFetchedAt  time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for PlatformStatModel
func (PlatformStatModel) TableName() string {
	return "platform_stats"
}
