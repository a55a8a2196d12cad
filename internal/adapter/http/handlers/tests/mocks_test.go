package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pine007/pi-todo/internal/core/domain"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, username, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) CurrentUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) Create(ctx context.Context, userID uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Rename(ctx context.Context, userID, categoryID uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) Delete(ctx context.Context, userID, categoryID uint64) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

type statsServiceMock struct {
	mock.Mock
}

func (m *statsServiceMock) Overview(ctx context.Context, userID uint64) (domain.Stats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Stats), args.Error(1)
}
