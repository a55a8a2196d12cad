package mapper

import (
	"time"

	"github.com/pine007/pi-todo/internal/adapter/http/dto"
	"github.com/pine007/pi-todo/internal/core/domain"
)

// ToUserItem never carries the password hash; the domain type keeps it out
// of the DTO entirely.
func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if !user.CreatedAt.IsZero() {
		item.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return item
}
