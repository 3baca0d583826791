package usecases

import (
	"context"

	"codecampus/internal/application/task/dto"
	"codecampus/internal/domain/task"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// ListTeacherTasksQuery represents the teacher's own task list request
type ListTeacherTasksQuery struct {
	SubjectID string
}

// ListTeacherTasksUseCase lists every task a teacher has published,
// including expired ones.
type ListTeacherTasksUseCase struct {
	userRepo user.Repository
	taskRepo task.Repository
	logger   logger.Interface
}

// NewListTeacherTasksUseCase creates a new ListTeacherTasksUseCase
func NewListTeacherTasksUseCase(userRepo user.Repository, taskRepo task.Repository, logger logger.Interface) *ListTeacherTasksUseCase {
	return &ListTeacherTasksUseCase{
		userRepo: userRepo,
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Execute lists the teacher's tasks.
func (uc *ListTeacherTasksUseCase) Execute(ctx context.Context, query ListTeacherTasksQuery) ([]*dto.TaskDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		return nil, err
	}
	if !u.IsTeacher() {
		return nil, apperrors.NewForbiddenError("only teachers can list published tasks")
	}

	tasks, err := uc.taskRepo.ListTasksByTeacher(ctx, u.ID())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, dto.NewTaskDTO(t))
	}
	return result, nil
}
