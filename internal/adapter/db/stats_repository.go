package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

// All aggregates are recomputed per request straight from the tasks and
// categories tables; nothing is cached or incrementally maintained.
const (
	statusStatsQuery = `
SELECT
  COUNT(*) AS total_tasks,
  COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_tasks,
  COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress_tasks,
  COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_tasks
FROM tasks
WHERE user_id = ?;
`

	categoryStatsQuery = `
SELECT
  c.id,
  c.name,
  COUNT(t.id) AS task_count,
  COALESCE(SUM(CASE WHEN t.status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_count
FROM categories c
LEFT JOIN tasks t ON t.category_id = c.id AND t.user_id = c.user_id
WHERE c.user_id = ?
GROUP BY c.id, c.name
ORDER BY task_count DESC, c.name;
`

	dailyStatsQuery = `
SELECT
  DATE(created_at) AS date,
  COUNT(*) AS created_count,
  COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_count
FROM tasks
WHERE user_id = ? AND created_at >= DATE_SUB(NOW(), INTERVAL 30 DAY)
GROUP BY DATE(created_at)
ORDER BY date;
`

	overdueStatsQuery = `
SELECT COUNT(*)
FROM tasks
WHERE user_id = ?
  AND status != 'completed'
  AND due_date IS NOT NULL
  AND due_date < NOW();
`

	todayStatsQuery = `
SELECT COUNT(*)
FROM tasks
WHERE user_id = ?
  AND (
    DATE(created_at) = CURDATE()
    OR (status != 'completed' AND DATE(due_date) = CURDATE())
  );
`
)

type StatsRepository struct {
	db *sqlx.DB
}

type statusStatsRow struct {
	TotalTasks      int `db:"total_tasks"`
	PendingTasks    int `db:"pending_tasks"`
	InProgressTasks int `db:"in_progress_tasks"`
	CompletedTasks  int `db:"completed_tasks"`
}

type categoryStatsRow struct {
	ID             uint64 `db:"id"`
	Name           string `db:"name"`
	TaskCount      int    `db:"task_count"`
	CompletedCount int    `db:"completed_count"`
}

type dailyStatsRow struct {
	Date           time.Time `db:"date"`
	CreatedCount   int       `db:"created_count"`
	CompletedCount int       `db:"completed_count"`
}

var _ ports.StatsRepository = (*StatsRepository)(nil)

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Overview(ctx context.Context, userID uint64) (domain.Stats, error) {
	var stats domain.Stats

	var status statusStatsRow
	if err := r.db.GetContext(ctx, &status, statusStatsQuery, userID); err != nil {
		return domain.Stats{}, err
	}
	stats.ByStatus = domain.StatusStats{
		TotalTasks:      status.TotalTasks,
		PendingTasks:    status.PendingTasks,
		InProgressTasks: status.InProgressTasks,
		CompletedTasks:  status.CompletedTasks,
	}

	var categories []categoryStatsRow
	if err := r.db.SelectContext(ctx, &categories, categoryStatsQuery, userID); err != nil {
		return domain.Stats{}, err
	}
	stats.ByCategory = make([]domain.CategoryStats, 0, len(categories))
	for _, row := range categories {
		stats.ByCategory = append(stats.ByCategory, domain.CategoryStats{
			ID:             row.ID,
			Name:           row.Name,
			TaskCount:      row.TaskCount,
			CompletedCount: row.CompletedCount,
		})
	}

	var days []dailyStatsRow
	if err := r.db.SelectContext(ctx, &days, dailyStatsQuery, userID); err != nil {
		return domain.Stats{}, err
	}
	stats.ByDate = make([]domain.DailyStats, 0, len(days))
	for _, row := range days {
		stats.ByDate = append(stats.ByDate, domain.DailyStats{
			Date:           row.Date.Format("2006-01-02"),
			CreatedCount:   row.CreatedCount,
			CompletedCount: row.CompletedCount,
		})
	}

	if err := r.db.GetContext(ctx, &stats.OverdueTasks, overdueStatsQuery, userID); err != nil {
		return domain.Stats{}, err
	}

	if err := r.db.GetContext(ctx, &stats.TodayTasks, todayStatsQuery, userID); err != nil {
		return domain.Stats{}, err
	}

	return stats, nil
}
