package models

import "time"

// TaskModel is the GORM model for teacher-published tasks.
type TaskModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TeacherID   uint      `gorm:"index;not null"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	Link        string    `gorm:"size:512"`
	Branch      string    `gorm:"size:64;index:idx_audience;not null"`
	Semester    int       `gorm:"index:idx_audience;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Teacher UserModel `gorm:"foreignKey:TeacherID"`
}

// TableName specifies the table name for TaskModel
func (TaskModel) TableName() string {
	return "tasks"
}

// SubmissionModel is the GORM model for student task submissions. One row
// per (task, student); resubmission overwrites.
type SubmissionModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TaskID      uint      `gorm:"uniqueIndex:idx_task_student;not null"`
	StudentID   uint      `gorm:"uniqueIndex:idx_task_student;not null"`
	Link        string    `gorm:"size:512;not null"`
	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Task    TaskModel `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Student UserModel `gorm:"foreignKey:StudentID"`
}

// TableName specifies the table name for SubmissionModel
func (SubmissionModel) TableName() string {
	return "task_submissions"
}
