package shopdesk

import (
	"context"
	"time"

	"github.com/shopdesk/client-go/internal/api"
	"github.com/shopdesk/client-go/internal/session"
)

// User is the identity returned by the login endpoint.
type User = session.User

// RoleSuperadmin is the elevated role that may act on behalf of any shop.
const RoleSuperadmin = session.RoleSuperadmin

// Client is the ShopDesk API client. All methods are safe for concurrent use.
type Client struct {
	api     *api.Client
	session *session.Manager
}

// New creates a client for the API rooted at baseURL.
//
// Session state is loaded from the configured storage immediately, so a
// client created with a file-backed store resumes the previous session when
// its tokens are still present.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.storageErr != nil {
		return nil, cfg.storageErr
	}
	if cfg.storage == nil {
		cfg.storage = NewMemoryStorage()
	}

	sess := session.NewManager(cfg.storage)

	apiClient, err := api.NewClient(api.Config{
		BaseURL:          baseURL,
		Session:          sess,
		HTTPClient:       cfg.httpClient,
		Timeout:          cfg.timeout,
		MaxRetries:       cfg.retries,
		RetryDelay:       cfg.retryDelay,
		RetryOn:          cfg.retryOn,
		CacheTTL:         cfg.cacheTTL,
		Logger:           cfg.logger,
		OnSessionExpired: cfg.onSessionExpired,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{api: apiClient, session: sess}, nil
}

// Login authenticates with the backend and persists the resulting session.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := c.api.Login(ctx, username, password)
	if err != nil {
		return nil, wrapError(err)
	}
	return user, nil
}

// Logout clears the session from memory and storage. No network call is made.
func (c *Client) Logout() {
	c.api.Logout()
}

// RefreshSession forces a token refresh. Most callers never need this: an
// expired access token is refreshed transparently on the next failing call.
func (c *Client) RefreshSession(ctx context.Context) error {
	if _, err := c.api.Refresh(ctx); err != nil {
		return wrapError(err)
	}
	return nil
}

// IsAuthenticated reports whether an access token is present. Callers
// rendering protected surfaces should send unauthenticated users to a login
// flow before issuing requests.
func (c *Client) IsAuthenticated() bool {
	return c.session.Authenticated()
}

// CurrentUser returns the logged-in user, or nil when unauthenticated.
func (c *Client) CurrentUser() *User {
	return c.session.CurrentUser()
}

// TokenExpiresAt returns the access token's expiry claim when the token is a
// JWT carrying one.
func (c *Client) TokenExpiresAt() (time.Time, bool) {
	return c.session.TokenExpiry()
}

// UseShop selects the shop that subsequent requests act on behalf of. The
// scope only takes effect for superadmin sessions; for everyone else the
// backend derives the shop from the token.
func (c *Client) UseShop(shopID int64) {
	c.session.SetShopScope(shopID)
}

// ClearShopScope removes the selected shop scope.
func (c *Client) ClearShopScope() {
	c.session.ClearShopScope()
}

// ShopScope returns the selected shop scope, if set.
func (c *Client) ShopScope() (int64, bool) {
	return c.session.ShopScope()
}

// callSettings holds per-call configuration for Call.
type callSettings struct {
	method  string
	body    any
	apiOpts []api.CallOption
}

// CallOption configures a single Call invocation.
type CallOption func(*callSettings)

// WithMethod sets the HTTP method. Default is GET.
func WithMethod(method string) CallOption {
	return func(s *callSettings) {
		s.method = method
	}
}

// WithBody sets the request body. Structured values are serialized to JSON;
// strings pass through unchanged.
func WithBody(body any) CallOption {
	return func(s *callSettings) {
		s.body = body
	}
}

// WithHeader sets a request header, overriding any default the client would
// send. An empty value removes the header.
func WithHeader(key, value string) CallOption {
	return func(s *callSettings) {
		s.apiOpts = append(s.apiOpts, api.WithHeader(key, value))
	}
}

// NoCache disables the response cache for this call.
func NoCache() CallOption {
	return func(s *callSettings) {
		s.apiOpts = append(s.apiOpts, api.WithoutCache())
	}
}

// CacheFor overrides the cache time-to-live for this call.
func CacheFor(ttl time.Duration) CallOption {
	return func(s *callSettings) {
		s.apiOpts = append(s.apiOpts, api.WithCacheTTL(ttl))
	}
}

// Call issues a request against an arbitrary endpoint path and decodes the
// response into result. It is the generic entry point behind every typed
// resource method; use it for endpoints the SDK has no wrapper for.
func (c *Client) Call(ctx context.Context, endpoint string, result any, opts ...CallOption) error {
	s := &callSettings{}
	for _, opt := range opts {
		opt(s)
	}
	return wrapError(c.api.Do(ctx, s.method, endpoint, s.body, result, s.apiOpts...))
}
