// Package problemdetails implements RFC 7807 problem+json error bodies.
package problemdetails

import "fmt"

const (
	TypeInvalidRequest    = "invalid-request"
	TypeInvalidURL        = "invalid-url"
	TypeNotFound          = "not-found"
	TypeUnauthorized      = "unauthorized"
	TypeRateLimitExceeded = "rate-limit-exceeded"
	TypeInternalError     = "internal-error"
)

type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("https://linktrack.dev/problems/%s", problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}
