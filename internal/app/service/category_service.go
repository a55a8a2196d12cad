package service

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, userID uint64, name string) (domain.Category, error) {
	taken, err := s.categories.NameTaken(ctx, userID, name, 0)
	if err != nil {
		return domain.Category{}, err
	}
	if taken {
		return domain.Category{}, domain.ErrDuplicateCategory
	}

	return s.categories.Create(ctx, userID, name)
}

func (s *CategoryService) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	return s.categories.List(ctx, userID)
}

func (s *CategoryService) GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	return s.categories.GetByID(ctx, userID, categoryID)
}

// Rename re-checks name uniqueness against the owner's other categories; the
// record being renamed is excluded so renaming to the same name is allowed.
func (s *CategoryService) Rename(ctx context.Context, userID, categoryID uint64, name string) (domain.Category, error) {
	taken, err := s.categories.NameTaken(ctx, userID, name, categoryID)
	if err != nil {
		return domain.Category{}, err
	}
	if taken {
		return domain.Category{}, domain.ErrDuplicateCategory
	}

	return s.categories.Rename(ctx, userID, categoryID, name)
}

func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint64) error {
	return s.categories.Delete(ctx, userID, categoryID)
}
