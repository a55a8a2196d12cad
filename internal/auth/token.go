package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pine007/pi-todo/internal/core/domain"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike so the
// HTTP layer never leaks which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

const DefaultTTL = 24 * time.Hour

// Config is injected explicitly so tests can use distinct secrets and clocks.
type Config struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type claims struct {
	jwt.RegisteredClaims
	UserID   uint64 `json:"id"`
	Username string `json:"username"`
}

func NewManager(cfg Config) *Manager {
	m := &Manager{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		now:    cfg.Now,
	}
	if m.ttl <= 0 {
		m.ttl = DefaultTTL
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

func (m *Manager) Issue(identity domain.Identity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:   identity.UserID,
		Username: identity.Username,
	})
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry with no clock-skew leeway.
func (m *Manager) Verify(raw string) (domain.Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}
	if parsed.UserID == 0 || parsed.Username == "" {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{UserID: parsed.UserID, Username: parsed.Username}, nil
}
