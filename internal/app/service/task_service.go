package service

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

type TaskService struct {
	tasks      ports.TaskRepository
	categories ports.CategoryRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, categories ports.CategoryRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories}
}

func (s *TaskService) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	// A category reference must resolve under the caller's own scope; another
	// user's category is as invisible here as everywhere else.
	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	return s.tasks.Create(ctx, userID, input)
}

func (s *TaskService) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.tasks.List(ctx, userID, filter)
}

func (s *TaskService) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, taskID)
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.CategoryIDSet && input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *input.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	return s.tasks.Update(ctx, userID, taskID, input)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint64) error {
	return s.tasks.Delete(ctx, userID, taskID)
}
