package domain

import "time"

type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the verified caller identity injected by the auth middleware.
// It is the only user id resource services may trust.
type Identity struct {
	UserID   uint64
	Username string
}
