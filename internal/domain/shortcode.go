package domain

import (
	"fmt"
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// ShortCodeAlphabet is the 62-character alphanumeric alphabet short
	// codes are sampled from. 62^8 combinations make collisions
	// statistically negligible; the store's unique index catches the rest.
	ShortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// ShortCodeLength is the fixed length of every generated short code.
	ShortCodeLength = 8
)

var shortCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9]{8}$`)

// GenerateShortCode produces a new random short code. It does not check
// uniqueness; callers retry on a store-level conflict.
func GenerateShortCode() (string, error) {
	code, err := gonanoid.Generate(ShortCodeAlphabet, ShortCodeLength)
	if err != nil {
		return "", fmt.Errorf("generate short code: %w", err)
	}
	return code, nil
}

// ValidShortCode reports whether s has the shape of a generated short code.
// Used by the resolver to reject junk paths before hitting the store.
func ValidShortCode(s string) bool {
	return shortCodeRegex.MatchString(s)
}
