package ports

import (
	"context"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// CommentRepository persists comments with the same error contract as
// PostRepository, using domain.ErrCommentNotFound.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context) ([]*domain.Comment, error)
	// Update replaces commenter name, text and post reference.
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
