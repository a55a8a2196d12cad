package dto

type CategoryItem struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`

	// TaskCount is only present on list responses; zero tasks is an explicit
	// 0, never an omission.
	TaskCount *int `json:"task_count,omitempty"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
