package ports

import (
	"context"

	"github.com/pine007/pi-todo/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	// FindByID never returns the password hash.
	FindByID(ctx context.Context, userID uint64) (domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	CurrentUser(ctx context.Context, userID uint64) (domain.User, error)
}

// TokenManager issues and verifies the signed identity assertion carried in
// the Authorization header.
type TokenManager interface {
	Issue(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}
