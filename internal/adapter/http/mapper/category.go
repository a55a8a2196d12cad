package mapper

import (
	"time"

	"github.com/pine007/pi-todo/internal/adapter/http/dto"
	"github.com/pine007/pi-todo/internal/core/domain"
)

// ToCategoryItems maps a list result; task counts are part of the list
// contract, so they are always included, zero included.
func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		item := ToCategoryItem(category)
		count := category.TaskCount
		item.TaskCount = &count
		items = append(items, item)
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}
