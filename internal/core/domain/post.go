package domain

import (
	"errors"
	"time"
)

var (
	ErrPostNotFound  = errors.New("blog post not found")
	ErrInvalidAuthor = errors.New("invalid author")
)

// BlogPost is a post written by an existing user.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}
