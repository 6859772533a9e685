package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// SeedInput describes the bootstrap admin account.
type SeedInput struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// SeedResult reports what Seed created. All fields are empty when the
// admin already existed.
type SeedResult struct {
	AdminID   string
	PostID    string
	CommentID string
}

// Seeder loads an admin account with one sample post and comment.
type Seeder struct {
	users    ports.UserService
	posts    ports.PostService
	comments ports.CommentService
	logger   zerolog.Logger
}

func NewSeeder(users ports.UserService, posts ports.PostService, comments ports.CommentService, logger zerolog.Logger) *Seeder {
	return &Seeder{users: users, posts: posts, comments: comments, logger: logger}
}

// Seed is a no-op when the admin username or email is already taken.
func (s *Seeder) Seed(ctx context.Context, in SeedInput) (SeedResult, error) {
	var res SeedResult

	admin, err := s.users.Create(ctx, ports.CreateUserInput{
		Username: in.AdminUsername,
		Email:    in.AdminEmail,
		Password: in.AdminPassword,
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrUserExists) {
		s.logger.Info().Str("username", in.AdminUsername).Msg("admin already present, skipping seed")
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("seed admin: %w", err)
	}
	res.AdminID = admin.ID

	post, err := s.posts.Create(ctx, ports.PostInput{
		Title:   "Sample Blog Post",
		Content: "This is the content of the blog post.",
		Author:  admin.Username,
		Tags:    []string{"go", "mongodb"},
	})
	if err != nil {
		return res, fmt.Errorf("seed post: %w", err)
	}
	res.PostID = post.ID

	comment, err := s.comments.Create(ctx, ports.CommentInput{
		CommenterName: "Alice",
		CommentText:   "Great post!",
		BlogPostID:    post.ID,
	})
	if err != nil {
		return res, fmt.Errorf("seed comment: %w", err)
	}
	res.CommentID = comment.ID

	s.logger.Info().
		Str("admin_id", res.AdminID).
		Str("post_id", res.PostID).
		Str("comment_id", res.CommentID).
		Msg("seed data created")
	return res, nil
}
