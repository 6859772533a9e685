package ports

import (
	"context"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// CreateUserInput carries an admin-initiated account creation.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string // empty means domain.RoleUser
}

// UpdateUserInput replaces the mutable fields of an account. An empty
// Password keeps the current hash.
type UpdateUserInput struct {
	ID       string
	Email    string
	Role     string
	Password string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}

// PostInput carries the writable fields of a blog post.
type PostInput struct {
	Title   string
	Content string
	Author  string
	Tags    []string
}

type PostService interface {
	Create(ctx context.Context, input PostInput) (*domain.BlogPost, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	List(ctx context.Context) ([]*domain.BlogPost, error)
	Update(ctx context.Context, id string, input PostInput) error
	Delete(ctx context.Context, id string) error
}

// CommentInput carries the writable fields of a comment.
type CommentInput struct {
	CommenterName string
	CommentText   string
	BlogPostID    string
}

type CommentService interface {
	Create(ctx context.Context, input CommentInput) (*domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context) ([]*domain.Comment, error)
	Update(ctx context.Context, id string, input CommentInput) error
	Delete(ctx context.Context, id string) error
}
