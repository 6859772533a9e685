package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	cache  ports.PostCache
	logger zerolog.Logger

	// writes is bumped by every Update and Delete. Get skips its cache fill
	// when a write landed while it was reading the repository.
	mu     sync.Mutex
	writes uint64
}

// NewPostService wires the post use cases. cache may be nil.
func NewPostService(posts ports.PostRepository, users ports.UserRepository, cache ports.PostCache, logger zerolog.Logger) *PostService {
	if cache == nil {
		cache = noopPostCache{}
	}
	return &PostService{posts: posts, users: users, cache: cache, logger: logger}
}

func (s *PostService) Create(ctx context.Context, input ports.PostInput) (*domain.BlogPost, error) {
	if domain.Blank(input.Title) || domain.Blank(input.Content) {
		return nil, domain.ErrMissingField
	}
	if err := s.checkAuthor(ctx, input.Author); err != nil {
		return nil, err
	}

	created, err := s.posts.Create(ctx, &domain.BlogPost{
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		Tags:      normalizeTags(input.Tags),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", created.ID).Str("author", created.Author).Msg("blog post created")
	return created, nil
}

// Get serves from the cache when possible. Cache failures fall through to
// the repository.
func (s *PostService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	if post, ok, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("post_id", id).Msg("post cache read failed")
	} else if ok {
		return post, nil
	}

	s.mu.Lock()
	seen := s.writes
	s.mu.Unlock()

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writes != seen {
		return post, nil
	}
	if err := s.cache.Set(ctx, post); err != nil {
		s.logger.Warn().Err(err).Str("post_id", id).Msg("post cache write failed")
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.posts.List(ctx)
}

// Update checks fields first, then that the post exists, then the author.
func (s *PostService) Update(ctx context.Context, id string, input ports.PostInput) error {
	if domain.Blank(input.Title) || domain.Blank(input.Content) {
		return domain.ErrMissingField
	}

	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkAuthor(ctx, input.Author); err != nil {
		return err
	}

	existing.Title = input.Title
	existing.Content = input.Content
	existing.Author = input.Author
	existing.Tags = normalizeTags(input.Tags)

	if err := s.posts.Update(ctx, existing); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("post_id", id).Msg("blog post updated")
	return nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info().Str("post_id", id).Msg("blog post deleted")
	return nil
}

func (s *PostService) checkAuthor(ctx context.Context, author string) error {
	if domain.Blank(author) {
		return domain.ErrInvalidAuthor
	}
	if _, err := s.users.FindByUsername(ctx, author); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidAuthor
		}
		return err
	}
	return nil
}

func (s *PostService) invalidate(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("post_id", id).Msg("post cache invalidation failed")
	}
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

type noopPostCache struct{}

func (noopPostCache) Get(context.Context, string) (*domain.BlogPost, bool, error) {
	return nil, false, nil
}
func (noopPostCache) Set(context.Context, *domain.BlogPost) error { return nil }
func (noopPostCache) Invalidate(context.Context, string) error    { return nil }
