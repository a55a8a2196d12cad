package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

const (
	insertUserQuery = `
INSERT INTO users (username, email, password)
VALUES (?, ?, ?);
`

	findUserByEmailQuery = `
SELECT id, username, email, password, created_at
FROM users
WHERE email = ?;
`

	findUserByIDQuery = `
SELECT id, username, email, created_at
FROM users
WHERE id = ?;
`

	userExistsQuery = `
SELECT EXISTS (SELECT 1 FROM users WHERE username = ? OR email = ?);
`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64    `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, username, email, passwordHash)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrDuplicateUser
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

// FindByID deliberately selects everything except the password hash.
func (r *UserRepository) FindByID(ctx context.Context, userID uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByIDQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, userExistsQuery, username, email); err != nil {
		return false, err
	}
	return exists, nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.Password,
		CreatedAt:    row.CreatedAt,
	}
}
