package mapper

import (
	"github.com/pine007/pi-todo/internal/adapter/http/dto"
	"github.com/pine007/pi-todo/internal/core/domain"
)

func ToStatsResponse(stats domain.Stats) dto.StatsResponse {
	response := dto.StatsResponse{
		TasksByStatus: dto.StatusCounts{
			TotalTasks:      stats.ByStatus.TotalTasks,
			PendingTasks:    stats.ByStatus.PendingTasks,
			InProgressTasks: stats.ByStatus.InProgressTasks,
			CompletedTasks:  stats.ByStatus.CompletedTasks,
		},
		TasksByCategory: make([]dto.CategoryCounts, 0, len(stats.ByCategory)),
		TasksByDate:     make([]dto.DailyCounts, 0, len(stats.ByDate)),
		OverdueTasks:    stats.OverdueTasks,
		TodayTasks:      stats.TodayTasks,
	}

	for _, category := range stats.ByCategory {
		response.TasksByCategory = append(response.TasksByCategory, dto.CategoryCounts{
			ID:             category.ID,
			Name:           category.Name,
			TaskCount:      category.TaskCount,
			CompletedCount: category.CompletedCount,
		})
	}

	for _, day := range stats.ByDate {
		response.TasksByDate = append(response.TasksByDate, dto.DailyCounts{
			Date:           day.Date,
			CreatedCount:   day.CreatedCount,
			CompletedCount: day.CompletedCount,
		})
	}

	return response
}
