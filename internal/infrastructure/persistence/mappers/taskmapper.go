package mappers

import (
	"fmt"

	"codecampus/internal/domain/task"
	"codecampus/internal/infrastructure/persistence/models"
)

// TaskMapper converts between task aggregates and GORM models.
type TaskMapper struct{}

// NewTaskMapper creates a new task mapper
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToModel converts a domain task to a persistence model.
func (m *TaskMapper) ToModel(t *task.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:          t.ID(),
		TeacherID:   t.TeacherID(),
		Title:       t.Title(),
		Description: t.Description(),
		Link:        t.Link(),
		Branch:      t.Branch(),
		Semester:    t.Semester(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// ToDomain converts a persistence model to a domain task.
func (m *TaskMapper) ToDomain(model *models.TaskModel) (*task.Task, error) {
	t, err := task.ReconstructTask(
		model.ID,
		model.TeacherID,
		model.Title,
		model.Description,
		model.Link,
		model.Branch,
		model.Semester,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct task %d: %w", model.ID, err)
	}
	return t, nil
}

// SubmissionToModel converts a domain submission to a persistence model.
func (m *TaskMapper) SubmissionToModel(s *task.Submission) *models.SubmissionModel {
	return &models.SubmissionModel{
		ID:          s.ID(),
		TaskID:      s.TaskID(),
		StudentID:   s.StudentID(),
		Link:        s.Link(),
		SubmittedAt: s.SubmittedAt(),
	}
}

// SubmissionToDomain converts a persistence model to a domain submission.
func (m *TaskMapper) SubmissionToDomain(model *models.SubmissionModel) (*task.Submission, error) {
	s, err := task.ReconstructSubmission(
		model.ID,
		model.TaskID,
		model.StudentID,
		model.Link,
		model.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct submission %d: %w", model.ID, err)
	}
	return s, nil
}
