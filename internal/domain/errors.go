package domain

import "errors"

var (
	// ErrMalformedURL is returned when owner input cannot be normalized
	// into a valid absolute http(s) URL.
	ErrMalformedURL = errors.New("malformed url")

	// ErrLinkNotFound is returned when a short code or link id does not
	// resolve to a stored link.
	ErrLinkNotFound = errors.New("link not found")

	// ErrInvalidLink marks a stored record with an empty destination.
	// Rendered to visitors the same as a missing link.
	ErrInvalidLink = errors.New("link has no destination url")

	// ErrCodeConflict is returned when short code generation keeps
	// colliding after the maximum number of retries.
	ErrCodeConflict = errors.New("short code generation failed after max retries")
)
