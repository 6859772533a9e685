package ports

import (
	"context"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// PostRepository persists blog posts. Missing documents map to
// domain.ErrPostNotFound, malformed ids to domain.ErrInvalidID.
type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	// List returns every post in store order.
	List(ctx context.Context) ([]*domain.BlogPost, error)
	// Update replaces title, content, author and tags.
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// PostCache is an optional read-through cache for single posts.
type PostCache interface {
	Get(ctx context.Context, id string) (*domain.BlogPost, bool, error)
	Set(ctx context.Context, post *domain.BlogPost) error
	Invalidate(ctx context.Context, id string) error
}
