package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID           uint64
	UserID       uint64
	CategoryID   *uint64
	CategoryName *string
	Title        string
	Description  *string
	Status       TaskStatus
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	CategoryID  *uint64
}

// UpdateTaskInput carries partial-update intent. The *Set flags distinguish
// "field omitted" from "field explicitly null": a nil pointer with the flag
// raised clears the column.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	DueDate        *time.Time
	DueDateSet     bool
	CategoryID     *uint64
	CategoryIDSet  bool
}

type TaskFilter struct {
	Status     *TaskStatus
	CategoryID *uint64
}
