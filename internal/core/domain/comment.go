package domain

import (
	"errors"
	"time"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	// ErrInvalidPostRef is returned when a comment references a post that
	// does not exist or whose id is malformed.
	ErrInvalidPostRef = errors.New("invalid blog post reference")
)

// Comment belongs to a blog post; BlogPostID is the post id in hex form.
type Comment struct {
	ID            string    `json:"id"`
	CommenterName string    `json:"commenter_name"`
	CommentText   string    `json:"comment_text"`
	BlogPostID    string    `json:"blog_post_id"`
	CreatedAt     time.Time `json:"created_at"`
}
