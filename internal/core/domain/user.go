package domain

import (
	"errors"
	"time"
	"unicode"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	minPasswordLength = 8
	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72
)

// PasswordPolicyMessage describes the rule enforced by ValidatePassword.
const PasswordPolicyMessage = "Password must contain at least one capital letter, one small letter, one number, and be at least 8 characters and at most 72 bytes long"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not satisfy policy")
	ErrInvalidRole        = errors.New("invalid role")
)

// User models an account. PasswordHash is the bcrypt hash in its string form.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the known tiers.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// ValidatePassword enforces: at least 8 characters, at most 72 bytes, one
// upper-case letter, one lower-case letter and one digit. Punctuation is not
// required.
func ValidatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength || len(password) > maxPasswordBytes {
		return ErrWeakPassword
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return ErrWeakPassword
	}
	return nil
}
