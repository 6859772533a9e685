package ports

import (
	"context"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(username, role string) (string, error)
	// Verify returns false for every kind of invalid token.
	Verify(token string) (*domain.Claims, bool)
}

// PasswordHasher wraps a salted one-way hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
}
