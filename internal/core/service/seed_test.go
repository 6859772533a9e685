package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func newSeeder() (*Seeder, *stubUserRepo, *stubPostRepo, *stubCommentRepo) {
	users := newStubUserRepo()
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	hasher := NewBcryptHasher(4)
	log := zerolog.Nop()

	return NewSeeder(
		NewUserService(users, hasher, log),
		NewPostService(posts, users, nil, log),
		NewCommentService(comments, posts, log),
		log,
	), users, posts, comments
}

func TestSeeder_Seed(t *testing.T) {
	seeder, users, posts, comments := newSeeder()
	ctx := context.Background()
	in := SeedInput{AdminUsername: "admin", AdminEmail: "admin@example.com", AdminPassword: "Admin1234"}

	res, err := seeder.Seed(ctx, in)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.AdminID == "" || res.PostID == "" || res.CommentID == "" {
		t.Fatalf("expected all ids, got %+v", res)
	}

	admin, err := users.FindByUsername(ctx, "admin")
	if err != nil || admin.Role != "admin" {
		t.Fatalf("admin not stored: %+v, %v", admin, err)
	}
	if admin.PasswordHash == "Admin1234" {
		t.Fatalf("password stored in clear")
	}

	cm, err := comments.FindByID(ctx, res.CommentID)
	if err != nil || cm.BlogPostID != res.PostID {
		t.Fatalf("comment not linked to post: %+v, %v", cm, err)
	}

	// A second run leaves the store untouched.
	again, err := seeder.Seed(ctx, in)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if again != (SeedResult{}) {
		t.Fatalf("expected empty result on rerun, got %+v", again)
	}
	if all, _ := posts.List(ctx); len(all) != 1 {
		t.Fatalf("expected 1 post after rerun, got %d", len(all))
	}
}

func TestSeeder_WeakPassword(t *testing.T) {
	seeder, _, _, _ := newSeeder()

	_, err := seeder.Seed(context.Background(), SeedInput{AdminUsername: "admin", AdminEmail: "a@x.com", AdminPassword: "weak"})
	if err == nil {
		t.Fatalf("expected error for weak admin password")
	}
}
