package models

import (
	"time"

	"gorm.io/gorm"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	SubjectID        string `gorm:"uniqueIndex;size:191;not null"`
	Email            string `gorm:"uniqueIndex;size:191;not null"`
	FullName         string `gorm:"size:255;not null"`
	AvatarURL        string `gorm:"size:512"`
	EnrollmentNumber string `gorm:"size:64"`
	Branch           string `gorm:"size:128"`
	AcademicYear     string `gorm:"size:32"`
	Semester         int    `gorm:"default:0"`
	Role             string `gorm:"size:16;default:'student';not null"`
	Hidden           bool   `gorm:"default:false;not null"`
	SyncCount        int    `gorm:"default:0;not null"`
	LastSyncDate     string `gorm:"size:10;default:'';not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
