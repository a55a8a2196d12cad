package ports

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
}

type TaskService interface {
	Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uint64) error
}
