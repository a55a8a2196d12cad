package domain

type StatusStats struct {
	TotalTasks      int
	PendingTasks    int
	InProgressTasks int
	CompletedTasks  int
}

type CategoryStats struct {
	ID             uint64
	Name           string
	TaskCount      int
	CompletedCount int
}

type DailyStats struct {
	Date           string
	CreatedCount   int
	CompletedCount int
}

// Stats is recomputed per request; nothing here is cached or materialized.
type Stats struct {
	ByStatus     StatusStats
	ByCategory   []CategoryStats
	ByDate       []DailyStats
	OverdueTasks int
	TodayTasks   int
}
