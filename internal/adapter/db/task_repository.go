package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

// Every query is scoped by both the task id and the owner id; a miss from
// either scope is reported as ErrTaskNotFound so non-owned rows stay
// invisible.
const (
	insertTaskQuery = `
INSERT INTO tasks (user_id, category_id, title, description, status, due_date)
VALUES (?, ?, ?, ?, ?, ?);
`

	listTasksQuery = `
SELECT
  t.id, t.user_id, t.category_id, t.title, t.description, t.status,
  t.due_date, t.created_at, t.updated_at,
  c.name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id
WHERE t.user_id = ?
`

	getTaskQuery = `
SELECT
  t.id, t.user_id, t.category_id, t.title, t.description, t.status,
  t.due_date, t.created_at, t.updated_at,
  c.name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id
WHERE t.id = ? AND t.user_id = ?;
`

	deleteTaskQuery = `
DELETE FROM tasks WHERE id = ? AND user_id = ?;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	UserID       uint64         `db:"user_id"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	Status       string         `db:"status"`
	DueDate      sql.NullTime   `db:"due_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	CategoryName sql.NullString `db:"category_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		userID,
		nullableUint64(input.CategoryID),
		input.Title,
		nullableString(input.Description),
		string(input.Status),
		nullableTime(input.DueDate),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Task{}, domain.ErrCategoryNotFound
		}
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, uint64(id))
}

func (r *TaskRepository) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	query := listTasksQuery
	args := []any{userID}

	if filter.Status != nil {
		query += " AND t.status = ?"
		args = append(args, string(*filter.Status))
	}
	if filter.CategoryID != nil {
		query += " AND t.category_id = ?"
		args = append(args, *filter.CategoryID)
	}
	query += " ORDER BY t.created_at DESC, t.id DESC;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	// Confirm the row exists under the owner scope before touching it, so a
	// no-op update is still distinguishable from a missing row.
	if _, err := r.GetByID(ctx, userID, taskID); err != nil {
		return domain.Task{}, err
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 7)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableTime(input.DueDate))
	}
	if input.CategoryIDSet {
		sets = append(sets, "category_id = ?")
		args = append(args, nullableUint64(input.CategoryID))
	}

	if len(sets) > 0 {
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
		args = append(args, taskID, userID)

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				return domain.Task{}, domain.ErrCategoryNotFound
			}
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.CategoryID.Valid {
		value := uint64(row.CategoryID.Int64)
		task.CategoryID = &value
	}

	if row.CategoryName.Valid {
		value := row.CategoryName.String
		task.CategoryName = &value
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func nullableUint64(value *uint64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}
