package movieapi

import "fmt"

// ErrorKind classifies a failed search request so callers can react without
// inspecting transport details.
type ErrorKind string

const (
	ErrTimeout     ErrorKind = "timeout"
	ErrRateLimited ErrorKind = "rate_limited"
	ErrMalformed   ErrorKind = "malformed"
	ErrUpstream    ErrorKind = "upstream"
)

// APIError is a classified provider failure. The aggregator treats every
// kind as a skippable empty batch; only logging differs.
type APIError struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("movie search %s (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("movie search %s: %v", e.Kind, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
