package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pine007/pi-todo/internal/core/domain"
	"github.com/pine007/pi-todo/internal/core/ports"
)

const bcryptCost = 10

type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenManager
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, tokens ports.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the user and issues a token for the fresh identity. The
// existence pre-check is a friendly fast path; the unique keys on username
// and email remain authoritative, so a concurrent duplicate still surfaces
// as ErrDuplicateUser from the insert.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, string, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return domain.User{}, "", err
	}
	if taken {
		return domain.User{}, "", domain.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.Create(ctx, username, email, string(hash))
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Login reports ErrInvalidCredentials for both an unknown email and a wrong
// password; the caller cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		return domain.User{}, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint64) (domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
