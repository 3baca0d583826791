package task

import (
	"fmt"
	"time"
)

// Task is a practice assignment published by a teacher, addressed to one
// branch and semester. Students in that audience see the task on their
// dashboard for a limited window after publication and may submit a solution
// link against it.
type Task struct {
	id          uint
	teacherID   uint
	title       string
	description string
	link        string
	branch      string
	semester    int
	createdAt   time.Time
	updatedAt   time.Time
}

// VisibilityWindow is how long a task stays on student dashboards after
// publication.
const VisibilityWindow = 24 * time.Hour

// NewTask creates a task to be published by the given teacher.
func NewTask(teacherID uint, title, description, link, branch string, semester int) (*Task, error) {
	if teacherID == 0 {
		return nil, fmt.Errorf("teacher ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if branch == "" {
		return nil, fmt.Errorf("branch is required")
	}
	if semester < 1 {
		return nil, fmt.Errorf("semester must be positive")
	}

	now := time.Now().UTC()
	return &Task{
		teacherID:   teacherID,
		title:       title,
		description: description,
		link:        link,
		branch:      branch,
		semester:    semester,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTask rebuilds a task from persistence.
func ReconstructTask(id, teacherID uint, title, description, link, branch string, semester int, createdAt, updatedAt time.Time) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if teacherID == 0 {
		return nil, fmt.Errorf("teacher ID cannot be zero")
	}

	return &Task{
		id:          id,
		teacherID:   teacherID,
		title:       title,
		description: description,
		link:        link,
		branch:      branch,
		semester:    semester,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Task) ID() uint             { return t.id }
func (t *Task) TeacherID() uint      { return t.teacherID }
func (t *Task) Title() string        { return t.title }
func (t *Task) Description() string  { return t.description }
func (t *Task) Link() string         { return t.link }
func (t *Task) Branch() string       { return t.branch }
func (t *Task) Semester() int        { return t.semester }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// SetID sets the ID after the task row has been created.
func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// ExpiresAt returns the end of the student visibility window.
func (t *Task) ExpiresAt() time.Time {
	return t.createdAt.Add(VisibilityWindow)
}

// VisibleAt reports whether students still see the task at the given instant.
func (t *Task) VisibleAt(now time.Time) bool {
	return now.Before(t.ExpiresAt())
}
