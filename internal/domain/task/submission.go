package task

import (
	"fmt"
	"time"
)

// Submission records one student's solution link for a task. A student may
// submit once per task; resubmissions overwrite the stored link.
type Submission struct {
	id          uint
	taskID      uint
	studentID   uint
	link        string
	submittedAt time.Time
}

// NewSubmission creates a submission for the given task and student.
func NewSubmission(taskID, studentID uint, link string) (*Submission, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if link == "" {
		return nil, fmt.Errorf("solution link is required")
	}

	return &Submission{
		taskID:      taskID,
		studentID:   studentID,
		link:        link,
		submittedAt: time.Now().UTC(),
	}, nil
}

// ReconstructSubmission rebuilds a submission from persistence.
func ReconstructSubmission(id, taskID, studentID uint, link string, submittedAt time.Time) (*Submission, error) {
	if id == 0 {
		return nil, fmt.Errorf("submission ID cannot be zero")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID cannot be zero")
	}

	return &Submission{
		id:          id,
		taskID:      taskID,
		studentID:   studentID,
		link:        link,
		submittedAt: submittedAt,
	}, nil
}

func (s *Submission) ID() uint               { return s.id }
func (s *Submission) TaskID() uint           { return s.taskID }
func (s *Submission) StudentID() uint        { return s.studentID }
func (s *Submission) Link() string           { return s.link }
func (s *Submission) SubmittedAt() time.Time { return s.submittedAt }

// SetID sets the ID after the submission row has been created.
func (s *Submission) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("submission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("submission ID cannot be zero")
	}
	s.id = id
	return nil
}
