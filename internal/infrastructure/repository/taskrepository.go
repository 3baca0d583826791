package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"codecampus/internal/domain/task"
	"codecampus/internal/infrastructure/persistence/mappers"
	"codecampus/internal/infrastructure/persistence/models"
	apperrors "codecampus/internal/shared/errors"
	"codecampus/internal/shared/logger"
)

// GormTaskRepository implements task.Repository using GORM.
type GormTaskRepository struct {
	db     *gorm.DB
	mapper *mappers.TaskMapper
	logger logger.Interface
}

// NewGormTaskRepository creates a new GORM task repository
func NewGormTaskRepository(db *gorm.DB, log logger.Interface) *GormTaskRepository {
	return &GormTaskRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
		logger: log,
	}
}

// CreateTask stores a new task.
func (r *GormTaskRepository) CreateTask(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create task", "teacher_id", t.TeacherID(), "error", err)
		return apperrors.NewInternalError("failed to create task", err.Error())
	}
	return t.SetID(model.ID)
}

// GetTask retrieves a task by ID.
func (r *GormTaskRepository) GetTask(ctx context.Context, id uint) (*task.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, apperrors.NewInternalError("failed to get task", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

// ListActiveTasks returns tasks for a branch and semester still inside
// their visibility window, with the publishing teacher's name.
func (r *GormTaskRepository) ListActiveTasks(ctx context.Context, now time.Time, branch string, semester int) ([]*task.TaskView, error) {
	cutoff := now.Add(-task.VisibilityWindow)
	var views []*task.TaskView
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			t.id AS task_id,
			u.full_name AS teacher_name,
			t.title AS title,
			t.description AS description,
			t.link AS link,
			t.branch AS branch,
			t.semester AS semester,
			t.created_at AS created_at
		FROM tasks t
		JOIN users u ON u.id = t.teacher_id
		WHERE t.branch = ? AND t.semester = ? AND t.created_at > ?
		ORDER BY t.created_at DESC`, branch, semester, cutoff).Scan(&views).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list tasks", err.Error())
	}
	return views, nil
}

// ListTasksByTeacher returns every task a teacher has published.
func (r *GormTaskRepository) ListTasksByTeacher(ctx context.Context, teacherID uint) ([]*task.Task, error) {
	var rows []models.TaskModel
	if err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list tasks", err.Error())
	}
	return r.toDomainTasks(rows)
}

func (r *GormTaskRepository) toDomainTasks(rows []models.TaskModel) ([]*task.Task, error) {
	tasks := make([]*task.Task, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			r.logger.Warnw("skipping unreadable task row", "task_id", rows[i].ID, "error", err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// UpsertSubmission stores a submission, overwriting any previous submission
// by the same student for the same task.
func (r *GormTaskRepository) UpsertSubmission(ctx context.Context, s *task.Submission) error {
	model := r.mapper.SubmissionToModel(s)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"link", "submitted_at", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save submission",
			"task_id", s.TaskID(), "student_id", s.StudentID(), "error", err)
		return apperrors.NewInternalError("failed to save submission", err.Error())
	}
	if s.ID() == 0 && model.ID != 0 {
		return s.SetID(model.ID)
	}
	return nil
}

// ListSubmissions returns all submissions for a task with student details.
func (r *GormTaskRepository) ListSubmissions(ctx context.Context, taskID uint) ([]*task.SubmissionView, error) {
	var views []*task.SubmissionView
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id AS submission_id,
			u.full_name AS student_name,
			u.email AS email,
			u.enrollment_number AS enrollment_number,
			u.branch AS branch,
			s.link AS link,
			s.submitted_at AS submitted_at
		FROM task_submissions s
		JOIN users u ON u.id = s.student_id
		WHERE s.task_id = ?
		ORDER BY s.submitted_at DESC`, taskID).Scan(&views).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list submissions", err.Error())
	}
	return views, nil
}

// GetSubmission retrieves a student's submission for a task, if any.
func (r *GormTaskRepository) GetSubmission(ctx context.Context, taskID, studentID uint) (*task.Submission, error) {
	var model models.SubmissionModel
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND student_id = ?", taskID, studentID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("submission not found")
		}
		return nil, apperrors.NewInternalError("failed to get submission", err.Error())
	}
	return r.mapper.SubmissionToDomain(&model)
}
