package usecases

import (
	"context"

	"codecampus/internal/application/task/dto"
	"codecampus/internal/domain/task"
	"codecampus/internal/domain/user"
	"codecampus/internal/shared/biztime"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// SubmitTaskCommand represents a student's solution submission
type SubmitTaskCommand struct {
	SubjectID string
	TaskID    uint
	Link      string
}

// SubmitTaskUseCase handles storing a student's solution link for a task.
// Submitting again replaces the stored link. Submissions are rejected once
// the task's visibility window closes.
type SubmitTaskUseCase struct {
	userRepo user.Repository
	taskRepo task.Repository
	logger   logger.Interface
}

// NewSubmitTaskUseCase creates a new SubmitTaskUseCase
func NewSubmitTaskUseCase(userRepo user.Repository, taskRepo task.Repository, logger logger.Interface) *SubmitTaskUseCase {
	return &SubmitTaskUseCase{
		userRepo: userRepo,
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Execute stores the submission.
func (uc *SubmitTaskUseCase) Execute(ctx context.Context, cmd SubmitTaskCommand) (*dto.StudentTaskDTO, error) {
	if cmd.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if cmd.TaskID == 0 {
		return nil, apperrors.NewValidationError("task_id is required")
	}
	if cmd.Link == "" {
		return nil, apperrors.NewValidationError("solution link is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, cmd.SubjectID)
	if err != nil {
		return nil, err
	}

	t, err := uc.taskRepo.GetTask(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if !t.VisibleAt(biztime.NowUTC()) {
		return nil, apperrors.NewValidationError("task submission window has closed")
	}

	sub, err := task.NewSubmission(t.ID(), u.ID(), cmd.Link)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid submission", err.Error())
	}

	if err := uc.taskRepo.UpsertSubmission(ctx, sub); err != nil {
		return nil, err
	}

	uc.logger.Infow("task submission stored",
		"task_id", t.ID(), "student_id", u.ID())

	result := &dto.StudentTaskDTO{TaskDTO: *dto.NewTaskDTO(t)}
	result.Submitted = true
	result.SubmittedLink = sub.Link()
	return result, nil
}
