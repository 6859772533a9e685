package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// UserService backs the admin user-management endpoints.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// Create rejects a username or email already in use by any account.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if domain.Blank(input.Username) || domain.Blank(input.Email) {
		return nil, domain.ErrMissingField
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, input.Username, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", role).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update replaces email and role. Role and password are kept when empty.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) error {
	if domain.Blank(input.Email) {
		return domain.ErrMissingField
	}
	if input.Role != "" && !domain.ValidRole(input.Role) {
		return domain.ErrInvalidRole
	}
	if input.Password != "" {
		if err := domain.ValidatePassword(input.Password); err != nil {
			return err
		}
	}

	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	user.Email = strings.TrimSpace(input.Email)
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
