package dto

import (
	"time"

	"codecampus/internal/domain/task"
)

// TaskDTO is the task response shape.
type TaskDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link,omitempty"`
	Branch      string    `json:"branch"`
	Semester    int       `json:"semester"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewTaskDTO converts a domain task to its DTO.
func NewTaskDTO(t *task.Task) *TaskDTO {
	return &TaskDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Link:        t.Link(),
		Branch:      t.Branch(),
		Semester:    t.Semester(),
		CreatedAt:   t.CreatedAt(),
		ExpiresAt:   t.ExpiresAt(),
	}
}

// StudentTaskDTO is a task as a student sees it, with the publishing
// teacher's name and the student's own submission state attached.
type StudentTaskDTO struct {
	TaskDTO
	TeacherName   string `json:"teacher_name"`
	Submitted     bool   `json:"submitted"`
	SubmittedLink string `json:"submitted_link,omitempty"`
}

// NewStudentTaskDTO converts a dashboard task view to its DTO. Submission
// state is attached by the caller.
func NewStudentTaskDTO(v *task.TaskView) *StudentTaskDTO {
	return &StudentTaskDTO{
		TaskDTO: TaskDTO{
			ID:          v.TaskID,
			Title:       v.Title,
			Description: v.Description,
			Link:        v.Link,
			Branch:      v.Branch,
			Semester:    v.Semester,
			CreatedAt:   v.CreatedAt,
			ExpiresAt:   v.ExpiresAt(),
		},
		TeacherName: v.TeacherName,
	}
}

// SubmissionDTO is one submission on the teacher's review list.
type SubmissionDTO struct {
	SubmissionID     uint      `json:"submission_id"`
	StudentName      string    `json:"student_name"`
	Email            string    `json:"email"`
	EnrollmentNumber string    `json:"enrollment_number"`
	Branch           string    `json:"branch"`
	Link             string    `json:"link"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
