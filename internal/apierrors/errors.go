// Package apierrors provides shared error types for the ShopDesk client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrNoRefreshToken is returned when a token refresh is attempted
	// without a stored refresh token.
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrUnauthorized is returned when the access token is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired access token")

	// ErrForbidden is returned when the current user lacks permission.
	ErrForbidden = errors.New("permission denied")

	// ErrSessionExpired is returned after the session has been torn down
	// following an unrecoverable authentication failure.
	ErrSessionExpired = errors.New("session expired")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a classified failure response from the ShopDesk API.
// StatusCode holds the HTTP status, or the embedded application code when the
// server reported a soft failure inside a 2xx response. RawPayload preserves
// whatever the body parser extracted so callers can branch without re-parsing.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
	RawPayload any
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// IsAuthFailure reports whether err is a hard or soft authentication failure
// (401 or 403, from either the HTTP status or the embedded application code).
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// RefreshError indicates the token refresh call itself failed. It is always
// terminal: the session has been torn down by the time callers see it.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("token refresh failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *RefreshError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *RefreshError) Is(target error) bool {
	return target == ErrSessionExpired
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
