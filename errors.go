package shopdesk

import (
	"errors"
	"fmt"

	"github.com/shopdesk/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrNoRefreshToken is returned when a token refresh is attempted
	// without a stored refresh token.
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrUnauthorized is returned when the access token is invalid or expired
	// and could not be recovered.
	ErrUnauthorized = errors.New("invalid or expired access token")

	// ErrForbidden is returned when the current user lacks permission.
	ErrForbidden = errors.New("permission denied")

	// ErrSessionExpired is returned after the session has been torn down
	// following an unrecoverable authentication failure.
	ErrSessionExpired = errors.New("session expired")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ShopDeskError is implemented by all SDK errors.
type ShopDeskError interface {
	error
	ShopDeskError() // marker method
}

// APIError represents a classified failure response from the ShopDesk API.
//
// StatusCode is the HTTP status, or the embedded application code when the
// server reported a soft failure inside a 2xx response. RawPayload is the
// parsed body (object, array, string or nil), so callers can branch on the
// failure without re-parsing anything.
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

// ShopDeskError implements the ShopDeskError interface.
func (e *APIError) ShopDeskError() {}

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

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ShopDeskError implements the ShopDeskError interface.
func (e *NetworkError) ShopDeskError() {}

// RefreshError indicates the token refresh call failed. It is always
// terminal: the session has been cleared and the caller must log in again.
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

// ShopDeskError implements the ShopDeskError interface.
func (e *RefreshError) ShopDeskError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is() and errors.As() work with the public taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apierrors.ErrNoRefreshToken):
		return ErrNoRefreshToken
	case errors.Is(err, apierrors.ErrMissingBaseURL):
		return ErrMissingBaseURL
	}

	var refreshErr *apierrors.RefreshError
	if errors.As(err, &refreshErr) {
		return &RefreshError{Err: wrapError(refreshErr.Err)}
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			RequestID:  apiErr.RequestID,
			RawPayload: apiErr.RawPayload,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL}
	}

	return err
}
