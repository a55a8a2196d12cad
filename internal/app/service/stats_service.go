package service

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

type StatsService struct {
	stats ports.StatsRepository
}

var _ ports.StatsService = (*StatsService)(nil)

func NewStatsService(stats ports.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) Overview(ctx context.Context, userID uint64) (domain.Stats, error) {
	return s.stats.Overview(ctx, userID)
}
