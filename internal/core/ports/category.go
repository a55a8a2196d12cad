package ports

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, userID uint64, name string) (domain.Category, error)
	List(ctx context.Context, userID uint64) ([]domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error)
	// NameTaken reports whether the owner already has a category with the
	// given name, ignoring excludeID (0 to exclude nothing).
	NameTaken(ctx context.Context, userID uint64, name string, excludeID uint64) (bool, error)
	Rename(ctx context.Context, userID, categoryID uint64, name string) (domain.Category, error)
	// Delete detaches dependent tasks (category_id -> NULL) and removes the
	// category in a single transaction.
	Delete(ctx context.Context, userID, categoryID uint64) error
}

type CategoryService interface {
	Create(ctx context.Context, userID uint64, name string) (domain.Category, error)
	List(ctx context.Context, userID uint64) ([]domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error)
	Rename(ctx context.Context, userID, categoryID uint64, name string) (domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uint64) error
}
