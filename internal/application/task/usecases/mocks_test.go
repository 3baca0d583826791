package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"codecampus/internal/domain/task"
	"codecampus/internal/domain/user"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*user.User, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateVisibility(ctx context.Context, subjectID string, hidden bool) error {
	args := m.Called(ctx, subjectID, hidden)
	return args.Error(0)
}

func (m *mockUserRepository) ConsumeSyncQuota(ctx context.Context, userID uint, today string, limit int) (bool, int, error) {
	args := m.Called(ctx, userID, today, limit)
	return args.Bool(0), args.Int(1), args.Error(2)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepository) GetTask(ctx context.Context, id uint) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *mockTaskRepository) ListActiveTasks(ctx context.Context, now time.Time, branch string, semester int) ([]*task.TaskView, error) {
	args := m.Called(ctx, now, branch, semester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.TaskView), args.Error(1)
}

func (m *mockTaskRepository) ListTasksByTeacher(ctx context.Context, teacherID uint) ([]*task.Task, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepository) UpsertSubmission(ctx context.Context, submission *task.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *mockTaskRepository) ListSubmissions(ctx context.Context, taskID uint) ([]*task.SubmissionView, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.SubmissionView), args.Error(1)
}

func (m *mockTaskRepository) GetSubmission(ctx context.Context, taskID, studentID uint) (*task.Submission, error) {
	args := m.Called(ctx, taskID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Submission), args.Error(1)
}

func memberUser(id uint, subjectID string, role user.Role) *user.User {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, subjectID, subjectID+"@campus.edu", "Test User", "x", "EN1",
		"CSE", "2025", 5, role, false, 0, "", now, now)
	if err != nil {
		panic(err)
	}
	return u
}

func storedTask(id, teacherID uint, createdAt time.Time) *task.Task {
	t, err := task.ReconstructTask(id, teacherID, "Two pointers drill", "Solve the set", "https://example.com/set", "CSE", 5, createdAt, createdAt)
	if err != nil {
		panic(err)
	}
	return t
}
