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

// ListStudentTasksQuery represents the student's task feed request
type ListStudentTasksQuery struct {
	SubjectID string
}

// ListStudentTasksUseCase lists the tasks currently visible to a student.
// Tasks are addressed to a branch and semester, so the feed is filtered by
// the student's own profile; each entry carries the student's submission
// state.
type ListStudentTasksUseCase struct {
	userRepo user.Repository
	taskRepo task.Repository
	logger   logger.Interface
}

// NewListStudentTasksUseCase creates a new ListStudentTasksUseCase
func NewListStudentTasksUseCase(userRepo user.Repository, taskRepo task.Repository, logger logger.Interface) *ListStudentTasksUseCase {
	return &ListStudentTasksUseCase{
		userRepo: userRepo,
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Execute lists visible tasks for the student.
func (uc *ListStudentTasksUseCase) Execute(ctx context.Context, query ListStudentTasksQuery) ([]*dto.StudentTaskDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		return nil, err
	}

	views, err := uc.taskRepo.ListActiveTasks(ctx, biztime.NowUTC(), u.Branch(), u.Semester())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StudentTaskDTO, 0, len(views))
	for _, v := range views {
		entry := dto.NewStudentTaskDTO(v)

		sub, err := uc.taskRepo.GetSubmission(ctx, v.TaskID, u.ID())
		if err != nil {
			if !apperrors.IsNotFoundError(err) {
				uc.logger.Warnw("failed to read submission state",
					"task_id", v.TaskID, "student_id", u.ID(), "error", err)
			}
		} else {
			entry.Submitted = true
			entry.SubmittedLink = sub.Link()
		}

		result = append(result, entry)
	}
	return result, nil
}
