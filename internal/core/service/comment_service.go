package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, logger: logger}
}

// Create persists nothing unless the referenced blog post exists.
func (s *CommentService) Create(ctx context.Context, input ports.CommentInput) (*domain.Comment, error) {
	if domain.Blank(input.CommenterName) || domain.Blank(input.CommentText) {
		return nil, domain.ErrMissingField
	}
	if err := s.checkPost(ctx, input.BlogPostID); err != nil {
		return nil, err
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		CommenterName: input.CommenterName,
		CommentText:   input.CommentText,
		BlogPostID:    input.BlogPostID,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("comment_id", created.ID).Str("post_id", created.BlogPostID).Msg("comment created")
	return created, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.comments.FindByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context) ([]*domain.Comment, error) {
	return s.comments.List(ctx)
}

func (s *CommentService) Update(ctx context.Context, id string, input ports.CommentInput) error {
	if domain.Blank(input.CommenterName) || domain.Blank(input.CommentText) {
		return domain.ErrMissingField
	}

	existing, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkPost(ctx, input.BlogPostID); err != nil {
		return err
	}

	existing.CommenterName = input.CommenterName
	existing.CommentText = input.CommentText
	existing.BlogPostID = input.BlogPostID

	if err := s.comments.Update(ctx, existing); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", id).Msg("comment updated")
	return nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", id).Msg("comment deleted")
	return nil
}

// checkPost folds malformed and missing post ids into ErrInvalidPostRef.
func (s *CommentService) checkPost(ctx context.Context, postID string) error {
	_, err := s.posts.FindByID(ctx, postID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrPostNotFound):
		return domain.ErrInvalidPostRef
	default:
		return err
	}
}
