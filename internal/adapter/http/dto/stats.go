package dto

type StatusCounts struct {
	TotalTasks      int `json:"total_tasks"`
	PendingTasks    int `json:"pending_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
}

type CategoryCounts struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	TaskCount      int    `json:"task_count"`
	CompletedCount int    `json:"completed_count"`
}

type DailyCounts struct {
	Date           string `json:"date"`
	CreatedCount   int    `json:"created_count"`
	CompletedCount int    `json:"completed_count"`
}

type StatsResponse struct {
	TasksByStatus   StatusCounts     `json:"tasksByStatus"`
	TasksByCategory []CategoryCounts `json:"tasksByCategory"`
	TasksByDate     []DailyCounts    `json:"tasksByDate"`
	OverdueTasks    int              `json:"overdueTasks"`
	TodayTasks      int              `json:"todayTasks"`
}
