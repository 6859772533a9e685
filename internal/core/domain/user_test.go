package domain

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	cases := map[string]bool{
		"Abcd1234":  true,
		"abc12345":  false,
		"abcd1234":  false,
		"ABCD1234":  false,
		"Abcdefgh":  false,
		"Ab1":       false,
		"Pässwört1": true,
		"Abcd123!":  true,
	}
	cases["Abcd1234"+strings.Repeat("x", 64)] = true
	cases["Abcd1234"+strings.Repeat("x", 65)] = false
	cases["Abcd123"+strings.Repeat("ä", 33)] = false

	for password, ok := range cases {
		if err := ValidatePassword(password); (err == nil) != ok {
			t.Errorf("ValidatePassword(%q) = %v, want ok=%v", password, err, ok)
		}
	}
}
