package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// AuthService implements registration, login and admin login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a user-tier account.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	if domain.Blank(username) || domain.Blank(email) {
		return nil, domain.ErrMissingField
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login returns a token for any account. Unknown users and wrong passwords
// both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.login(ctx, username, password, "")
}

// AdminLogin only accepts accounts holding the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return s.login(ctx, username, password, domain.RoleAdmin)
}

func (s *AuthService) login(ctx context.Context, username, password, role string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	var (
		user *domain.User
		err  error
	)
	if role == "" {
		user, err = s.repo.FindByUsername(ctx, username)
	} else {
		user, err = s.repo.FindByUsernameAndRole(ctx, username, role)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Debug().Str("username", username).Msg("password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username, user.Role)
}
