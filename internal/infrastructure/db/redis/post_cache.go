package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

const defaultPostTTL = 5 * time.Minute

// PostCache keeps JSON copies of single blog posts.
// Key format: blog_post:<id>
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a PostCache; ttl <= 0 uses defaultPostTTL.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl <= 0 {
		ttl = defaultPostTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

// Get reports ok=false on a cache miss.
func (c *PostCache) Get(ctx context.Context, id string) (*domain.BlogPost, bool, error) {
	raw, err := c.client.Get(ctx, postKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("post cache get: %w", err)
	}

	var post domain.BlogPost
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, false, fmt.Errorf("post cache decode: %w", err)
	}
	return &post, true, nil
}

func (c *PostCache) Set(ctx context.Context, post *domain.BlogPost) error {
	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("post cache encode: %w", err)
	}
	return c.client.Set(ctx, postKey(post.ID), raw, c.ttl).Err()
}

func (c *PostCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, postKey(id)).Err()
}

func postKey(id string) string {
	return "blog_post:" + id
}
