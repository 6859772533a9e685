package middleware

import (
	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// stubTokens accepts exactly the tokens present in its map.
type stubTokens map[string]domain.Claims

func (s stubTokens) Issue(username, role string) (string, error) {
	return username + ":" + role, nil
}

func (s stubTokens) Verify(token string) (*domain.Claims, bool) {
	claims, ok := s[token]
	if !ok {
		return nil, false
	}
	return &claims, true
}

var tokens = stubTokens{
	"user-token":  {Username: "alice", Role: domain.RoleUser},
	"admin-token": {Username: "root", Role: domain.RoleAdmin},
}
