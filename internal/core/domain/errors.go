package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrDuplicateCategory  = errors.New("category name already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
