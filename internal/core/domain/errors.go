package domain

import (
	"errors"
	"strings"
)

// ErrInvalidID means an identifier is not well-formed for the document store.
var ErrInvalidID = errors.New("invalid id")

// ErrMissingField is returned when a required string field is empty or blank.
var ErrMissingField = errors.New("required field missing")

// Blank reports whether s is empty once surrounding whitespace is removed.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
