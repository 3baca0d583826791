package task

import (
	"context"
	"time"
)

// TaskView joins a task with its teacher's display name, as shown on the
// student dashboard.
type TaskView struct {
	TaskID      uint
	TeacherName string
	Title       string
	Description string
	Link        string
	Branch      string
	Semester    int
	CreatedAt   time.Time
}

// ExpiresAt returns the end of the student visibility window.
func (v *TaskView) ExpiresAt() time.Time {
	return v.CreatedAt.Add(VisibilityWindow)
}

// SubmissionView joins a submission with the submitting student's identity,
// as shown on the teacher's review list.
type SubmissionView struct {
	SubmissionID     uint
	StudentName      string
	Email            string
	EnrollmentNumber string
	Branch           string
	Link             string
	SubmittedAt      time.Time
}

// Repository defines the persistence gateway for tasks and submissions.
type Repository interface {
	// CreateTask stores a new task.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID.
	GetTask(ctx context.Context, id uint) (*Task, error)

	// ListActiveTasks returns tasks addressed to the given branch and
	// semester that are still inside their visibility window at the given
	// instant, newest first, with the teacher's name attached.
	ListActiveTasks(ctx context.Context, now time.Time, branch string, semester int) ([]*TaskView, error)

	// ListTasksByTeacher returns every task a teacher has published, newest
	// first, with no visibility cutoff.
	ListTasksByTeacher(ctx context.Context, teacherID uint) ([]*Task, error)

	// UpsertSubmission stores a submission, overwriting any previous
	// submission by the same student for the same task.
	UpsertSubmission(ctx context.Context, submission *Submission) error

	// ListSubmissions returns all submissions for a task with student
	// details, newest first.
	ListSubmissions(ctx context.Context, taskID uint) ([]*SubmissionView, error)

	// GetSubmission retrieves a student's submission for a task, if any.
	GetSubmission(ctx context.Context, taskID, studentID uint) (*Submission, error)
}
