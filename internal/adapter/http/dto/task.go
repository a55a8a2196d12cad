package dto

type TaskItem struct {
	ID           uint64  `json:"id"`
	UserID       uint64  `json:"user_id"`
	CategoryID   *uint64 `json:"category_id"`
	CategoryName *string `json:"category_name,omitempty"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Status       string  `json:"status"`
	DueDate      *string `json:"due_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}
