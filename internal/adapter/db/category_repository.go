package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

const (
	insertCategoryQuery = `
INSERT INTO categories (user_id, name)
VALUES (?, ?);
`

	listCategoriesQuery = `
SELECT
  c.id, c.user_id, c.name, c.created_at,
  COUNT(t.id) AS task_count
FROM categories c
LEFT JOIN tasks t ON t.category_id = c.id AND t.user_id = c.user_id
WHERE c.user_id = ?
GROUP BY c.id, c.user_id, c.name, c.created_at
ORDER BY c.name;
`

	getCategoryQuery = `
SELECT id, user_id, name, created_at
FROM categories
WHERE id = ? AND user_id = ?;
`

	categoryNameTakenQuery = `
SELECT EXISTS (
  SELECT 1 FROM categories WHERE user_id = ? AND name = ? AND id != ?
);
`

	renameCategoryQuery = `
UPDATE categories SET name = ? WHERE id = ? AND user_id = ?;
`

	detachCategoryTasksQuery = `
UPDATE tasks SET category_id = NULL WHERE category_id = ? AND user_id = ?;
`

	deleteCategoryQuery = `
DELETE FROM categories WHERE id = ? AND user_id = ?;
`
)

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	TaskCount int       `db:"task_count"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, userID uint64, name string) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx, insertCategoryQuery, userID, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrDuplicateCategory
		}
		return domain.Category{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}

	return r.GetByID(ctx, userID, uint64(id))
}

func (r *CategoryRepository) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesQuery, userID); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}

	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, getCategoryQuery, categoryID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	return mapCategoryRowToDomainCategory(row), nil
}

func (r *CategoryRepository) NameTaken(ctx context.Context, userID uint64, name string, excludeID uint64) (bool, error) {
	var taken bool
	if err := r.db.GetContext(ctx, &taken, categoryNameTakenQuery, userID, name, excludeID); err != nil {
		return false, err
	}
	return taken, nil
}

func (r *CategoryRepository) Rename(ctx context.Context, userID, categoryID uint64, name string) (domain.Category, error) {
	if _, err := r.GetByID(ctx, userID, categoryID); err != nil {
		return domain.Category{}, err
	}

	if _, err := r.db.ExecContext(ctx, renameCategoryQuery, name, categoryID, userID); err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrDuplicateCategory
		}
		return domain.Category{}, err
	}

	return r.GetByID(ctx, userID, categoryID)
}

// Delete detaches the owner's tasks from the category and removes the row in
// one transaction, so a task can never reference a deleted category.
func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, detachCategoryTasksQuery, categoryID, userID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, deleteCategoryQuery, categoryID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return tx.Commit()
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	return domain.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		TaskCount: row.TaskCount,
	}
}
