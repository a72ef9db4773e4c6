package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tomibudis/task-manager-webapp/internal/core/domain"
)

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.PublicUser, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.PublicUser), args.Error(1)
}

func (m *userServiceMock) Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	args := m.Called(ctx, email, password)

	var user *domain.PublicUser
	if value := args.Get(0); value != nil {
		user = value.(*domain.PublicUser)
	}
	return user, args.Error(1)
}

func (m *userServiceMock) GetProfile(ctx context.Context, userID string) (domain.PublicUser, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.PublicUser), args.Error(1)
}

func (m *userServiceMock) ChangePassword(ctx context.Context, input domain.ChangePasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTaskStatus(ctx context.Context, taskID, userID string, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, taskID, userID, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, input domain.ListTasksInput) (domain.TaskPage, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TaskPage), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID, userID string) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}
