package usecases

import (
	"context"

	"codecampus/internal/application/task/dto"
	"codecampus/internal/domain/task"
	"codecampus/internal/domain/user"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// ListSubmissionsQuery represents the teacher's review list request
type ListSubmissionsQuery struct {
	SubjectID string
	TaskID    uint
}

// ListSubmissionsUseCase lists a task's submissions for its teacher.
type ListSubmissionsUseCase struct {
	userRepo user.Repository
	taskRepo task.Repository
	logger   logger.Interface
}

// NewListSubmissionsUseCase creates a new ListSubmissionsUseCase
func NewListSubmissionsUseCase(userRepo user.Repository, taskRepo task.Repository, logger logger.Interface) *ListSubmissionsUseCase {
	return &ListSubmissionsUseCase{
		userRepo: userRepo,
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Execute lists the submissions for review.
func (uc *ListSubmissionsUseCase) Execute(ctx context.Context, query ListSubmissionsQuery) ([]*dto.SubmissionDTO, error) {
	if query.SubjectID == "" {
		return nil, apperrors.NewValidationError("subject_id is required")
	}
	if query.TaskID == 0 {
		return nil, apperrors.NewValidationError("task_id is required")
	}

	u, err := uc.userRepo.GetBySubjectID(ctx, query.SubjectID)
	if err != nil {
		return nil, err
	}
	if !u.IsTeacher() {
		return nil, apperrors.NewForbiddenError("only teachers can review submissions")
	}

	t, err := uc.taskRepo.GetTask(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	if t.TeacherID() != u.ID() {
		return nil, apperrors.NewForbiddenError("task belongs to another teacher")
	}

	views, err := uc.taskRepo.ListSubmissions(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SubmissionDTO, 0, len(views))
	for _, v := range views {
		result = append(result, &dto.SubmissionDTO{
			SubmissionID:     v.SubmissionID,
			StudentName:      v.StudentName,
			Email:            v.Email,
			EnrollmentNumber: v.EnrollmentNumber,
			Branch:           v.Branch,
			Link:             v.Link,
			SubmittedAt:      v.SubmittedAt,
		})
	}
	return result, nil
}
