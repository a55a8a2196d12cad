package domain

import "time"

type Category struct {
	ID        uint64
	UserID    uint64
	Name      string
	CreatedAt time.Time

	// TaskCount is only populated by list queries.
	TaskCount int
}
