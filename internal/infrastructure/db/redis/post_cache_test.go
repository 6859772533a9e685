package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestPostKey(t *testing.T) {
	if got := postKey("652f1c"); got != "blog_post:652f1c" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewPostCache_DefaultTTL(t *testing.T) {
	c := NewPostCache(nil, 0)
	if c.ttl != defaultPostTTL {
		t.Fatalf("expected default ttl %s, got %s", defaultPostTTL, c.ttl)
	}
}

func TestPostCache_UnreachableServerIsAnError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewPostCache(client, time.Minute)
	_, ok, err := c.Get(context.Background(), "abc")
	if err == nil {
		t.Fatalf("expected error from unreachable redis")
	}
	if ok {
		t.Fatalf("a failed read must not report a hit")
	}
}
