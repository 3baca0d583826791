package usecases

import (
	"context"

	"codecampus/internal/application/task/dto"
	"codecampus/internal/domain/task"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// CreateTaskCommand represents the request to publish a task
type CreateTaskCommand struct {
	SubjectID   string
	Title       string
	Description string
	Link        string
	Branch      string
	Semester    int
}

// CreateTaskUseCase handles publishing a new task. Only teachers may
// publish; the task is visible to students for a fixed window after
// creation.
type CreateTaskUseCase struct {
	userRepo user.Repository
	taskRepo task.Repository
	logger   logger.Interface
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase
func NewCreateTaskUseCase(userRepo user.Repository, taskRepo task.Repository, logger logger.Interface) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		userRepo: userRepo,
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Execute publishes the task.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*dto.TaskDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if cmd.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}
	if !u.IsTeacher() {
		return nil, apperrors.NewForbiddenError("only teachers can publish tasks")
	}

	t, err := task.NewTask(u.ID(), cmd.Title, cmd.Description, cmd.Link, cmd.Branch, cmd.Semester)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid task", err.Error())
	}

	if err := uc.taskRepo.CreateTask(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Infow("task published",
		"task_id", t.ID(), "teacher_id", u.ID(), "title", t.Title(),
		"branch", t.Branch(), "semester", t.Semester())
	return dto.NewTaskDTO(t), nil
}
