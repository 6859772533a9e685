package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blogsphere/blog-platform/internal/core/domain"
)

// sessionClaims is the JWT payload. RegisteredClaims stays empty when the
// service runs without a TTL, so no time claims are emitted.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens with one process-wide key.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a TokenService. A ttl <= 0 issues tokens without
// an expiration claim.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Issue(username, role string) (string, error) {
	claims := sessionClaims{Username: username, Role: role}
	if s.ttl > 0 {
		now := s.now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify reports the claims of a valid token. Tampered, malformed, expired
// and wrongly-signed tokens are all reported the same way: (nil, false).
func (s *TokenService) Verify(token string) (*domain.Claims, bool) {
	if token == "" {
		return nil, false
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	// A token with an empty claim set carries no identity.
	if claims.Username == "" {
		return nil, false
	}

	return &domain.Claims{Username: claims.Username, Role: claims.Role}, true
}
