package ports

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
)

type StatsRepository interface {
	Overview(ctx context.Context, userID uint64) (domain.Stats, error)
}

type StatsService interface {
	Overview(ctx context.Context, userID uint64) (domain.Stats, error)
}
