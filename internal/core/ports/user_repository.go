package ports

import (
	"context"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// UserRepository is the credential store. Lookups by username return
// domain.ErrUserNotFound when nothing matches; id arguments that are not
// well-formed return domain.ErrInvalidID.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameAndRole only matches accounts holding role.
	FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ExistsByUsernameOrEmail reports whether any account uses username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update replaces email, role and password hash of the account with id.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
