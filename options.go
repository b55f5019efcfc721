package shopdesk

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	httpClient       *http.Client
	timeout          time.Duration
	retries          int
	retryDelay       time.Duration
	retryOn          []int
	cacheTTL         time.Duration
	storage          Storage
	storageErr       error
	logger           *zerolog.Logger
	onSessionExpired func()
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. Ignored when a custom HTTP client
// is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of transient retries for API calls. This does
// not affect authentication recovery, which is always capped at a single
// refresh-and-retry cycle.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryDelay sets the base delay between transient retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithRetryOn sets the HTTP status codes that trigger a transient retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithCacheTTL sets the default time-to-live for cached GET responses.
// Default: 60 seconds.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) {
		c.cacheTTL = ttl
	}
}

// WithStorage sets the persistent store for session state. Default is an
// in-memory store that does not survive the process.
func WithStorage(storage Storage) Option {
	return func(c *clientConfig) {
		c.storage = storage
	}
}

// WithSessionFile persists session state as plain JSON at path.
func WithSessionFile(path string) Option {
	return func(c *clientConfig) {
		c.storage = NewFileStorage(path)
	}
}

// WithEncryptedSessionFile persists session state at path, encrypted with a
// key derived from secret. Use this when refresh tokens must not sit on disk
// in the clear.
func WithEncryptedSessionFile(path string, secret []byte) Option {
	return func(c *clientConfig) {
		storage, err := NewEncryptedFileStorage(path, secret)
		if err != nil {
			c.storageErr = err
			return
		}
		c.storage = storage
	}
}

// WithLogger sets the diagnostics logger. Every classified error and network
// failure is logged with endpoint, method and status; logging never affects
// the outcome of a call. Default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithOnSessionExpired registers a callback invoked after the session has
// been torn down following an unrecoverable authentication failure. The
// failing call still returns its error; the callback is the place to route
// the user back to a login flow.
func WithOnSessionExpired(fn func()) Option {
	return func(c *clientConfig) {
		c.onSessionExpired = fn
	}
}
