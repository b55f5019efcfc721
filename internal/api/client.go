package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopdesk/client-go/internal/apierrors"
	"github.com/shopdesk/client-go/internal/cache"
	"github.com/shopdesk/client-go/internal/session"
)

// Default configuration values.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 250 * time.Millisecond
)

// Config configures the API client.
type Config struct {
	// BaseURL is the root of the ShopDesk REST API. Required.
	BaseURL string
	// Session holds the credential pair and user identity. A memory-backed
	// session is created when nil.
	Session *session.Manager
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Timeout applies to the default HTTP client. Ignored when HTTPClient is set.
	Timeout time.Duration
	// MaxRetries caps transient retries (network errors, 5xx). Refresh-and-retry
	// recovery for auth failures is separate and always capped at one.
	MaxRetries int
	// RetryDelay is the base delay between transient retries.
	RetryDelay time.Duration
	// RetryOn lists the HTTP status codes that trigger a transient retry.
	// nil selects the default set; an empty slice disables status-based retries.
	RetryOn []int
	// CacheTTL is the default time-to-live for cached GET responses.
	CacheTTL time.Duration
	// Logger receives fire-and-forget diagnostics for every classified error
	// and network failure. Defaults to a no-op logger.
	Logger *zerolog.Logger
	// OnSessionExpired is invoked after the session has been torn down
	// following an unrecoverable auth failure. The browser frontend redirected
	// to the login page here; SDK callers hook re-authentication instead.
	OnSessionExpired func()
}

// Client is the resilient authenticated HTTP client every resource call goes
// through. It owns request decoration, tenant scoping, response parsing,
// error classification, refresh-and-retry recovery and the response cache.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	session          *session.Manager
	cache            *cache.Cache
	cacheTTL         time.Duration
	retry            *RetryConfig
	logger           zerolog.Logger
	onSessionExpired func()
}

// NewClient creates a new API client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apierrors.ErrMissingBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	sess := cfg.Session
	if sess == nil {
		sess = session.NewManager(session.NewMemoryStore())
	}

	retry := DefaultRetryConfig()
	if cfg.MaxRetries > 0 {
		retry.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		retry.BaseDelay = cfg.RetryDelay
	}
	if cfg.RetryOn != nil {
		retry.RetryableOn = statusSetFunc(cfg.RetryOn)
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultTTL
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:       httpClient,
		session:          sess,
		cache:            cache.New(),
		cacheTTL:         cacheTTL,
		retry:            retry,
		logger:           logger,
		onSessionExpired: cfg.OnSessionExpired,
	}, nil
}

func statusSetFunc(codes []int) func(int) bool {
	set := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return func(status int) bool {
		_, ok := set[status]
		return ok
	}
}

// Session returns the session manager backing this client.
func (c *Client) Session() *session.Manager {
	return c.session
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// callOptions holds per-call settings.
type callOptions struct {
	headers  map[string]string
	noCache  bool
	cacheTTL time.Duration
	skipAuth bool
}

// CallOption configures a single call.
type CallOption func(*callOptions)

// WithHeader sets a request header, overriding any default. An empty value
// removes the header.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithoutCache disables the response cache for this call.
func WithoutCache() CallOption {
	return func(o *callOptions) {
		o.noCache = true
	}
}

// WithCacheTTL overrides the cache time-to-live for this call.
func WithCacheTTL(ttl time.Duration) CallOption {
	return func(o *callOptions) {
		o.cacheTTL = ttl
	}
}

// Do issues a request to path and decodes the response into result.
//
// An empty method defaults to GET. GET responses are served from and stored
// into the response cache unless disabled per call. Authentication failures
// trigger at most one refresh-and-retry cycle; all other failures are
// returned classified and unrecovered.
func (c *Client) Do(ctx context.Context, method, path string, body any, result any, opts ...CallOption) error {
	if method == "" {
		method = http.MethodGet
	}
	co := &callOptions{}
	for _, opt := range opts {
		opt(co)
	}

	bodyBytes, structured, err := encodeBody(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	path, bodyBytes = c.applyShopScope(method, path, bodyBytes, structured)

	cacheable := method == http.MethodGet && !co.noCache
	var key string
	if cacheable {
		key = cacheKey(method, path, co.headers, bodyBytes)
		if v, ok := c.cache.Get(key); ok {
			return deliver(v.(parsedBody), result)
		}
	}

	pb, err := c.dispatch(ctx, method, path, bodyBytes, co)
	if err != nil {
		return err
	}

	if cacheable {
		ttl := co.cacheTTL
		if ttl <= 0 {
			ttl = c.cacheTTL
		}
		c.cache.Set(key, pb, ttl)
	}
	return deliver(pb, result)
}

// dispatch runs the bounded refresh-and-retry loop: an auth failure on a
// fresh request triggers one token refresh followed by one retried request,
// never more. Termination does not depend on server behavior.
func (c *Client) dispatch(ctx context.Context, method, path string, body []byte, co *callOptions) (parsedBody, error) {
	retried := false
	for {
		pb, err := c.doOnce(ctx, method, path, body, co)
		if err == nil {
			return pb, nil
		}
		if !apierrors.IsAuthFailure(err) || path == RefreshPath {
			return parsedBody{}, err
		}
		if retried || c.session.RefreshToken() == "" {
			// Recovery exhausted or impossible: tear down and surface the
			// original auth failure.
			c.teardown()
			return parsedBody{}, err
		}
		if _, rerr := c.Refresh(ctx); rerr != nil {
			// Refresh already tore down the session.
			return parsedBody{}, rerr
		}
		retried = true
	}
}

// doOnce performs a single decorated request, including transient retries
// for network errors and retryable statuses, and returns the parsed body or
// a classified error.
func (c *Client) doOnce(ctx context.Context, method, path string, body []byte, co *callOptions) (parsedBody, error) {
	requestID := uuid.NewString()

	var resp *http.Response
	var lastErr error
	for attempt := 0; ; attempt++ {
		req, err := c.newRequest(ctx, method, path, body, co, requestID)
		if err != nil {
			return parsedBody{}, err
		}
		resp, lastErr = c.httpClient.Do(req)

		retryable := lastErr != nil || c.retry.Retryable(resp.StatusCode)
		if !retryable || attempt >= c.retry.MaxRetries {
			break
		}
		if resp != nil {
			io.Copy(io.Discard, resp.Body) //nolint:errcheck
			resp.Body.Close()
		}
		if err := c.retry.Wait(ctx, attempt); err != nil {
			return parsedBody{}, err
		}
	}

	if lastErr != nil {
		netErr := &apierrors.NetworkError{Err: lastErr, URL: c.baseURL + path}
		c.logFailure(method, path, 0, requestID, netErr)
		return parsedBody{}, netErr
	}
	defer resp.Body.Close()

	pb := parseResponse(resp)
	if serverID := resp.Header.Get("X-Request-ID"); serverID != "" {
		requestID = serverID
	}
	if err := classifyResponse(resp.StatusCode, pb, requestID); err != nil {
		c.logFailure(method, path, resp.StatusCode, requestID, err)
		return parsedBody{}, err
	}
	return pb, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte, co *callOptions, requestID string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if !co.skipAuth {
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	// Caller headers win over defaults; an empty value removes the header.
	for k, v := range co.headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}
	return req, nil
}

// encodeBody serializes the caller-supplied body. Strings pass through
// unchanged, nil is omitted, everything else is JSON-marshalled. The second
// return reports whether the body was a structured (non-string) value,
// which is what shop scoping keys off.
func encodeBody(body any) ([]byte, bool, error) {
	switch b := body.(type) {
	case nil:
		return nil, false, nil
	case string:
		return []byte(b), false, nil
	case []byte:
		return b, false, nil
	case json.RawMessage:
		return b, false, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	}
}

// applyShopScope injects the selected shop into the request when the current
// user is a superadmin with a shop scope set: as a shop_id query parameter
// for reads, or merged into a JSON object body for writes. Non-object write
// bodies (arrays, strings) are left untouched rather than corrupted.
func (c *Client) applyShopScope(method, path string, body []byte, structured bool) (string, []byte) {
	if !c.session.IsSuperadmin() {
		return path, body
	}
	shopID, ok := c.session.ShopScope()
	if !ok {
		return path, body
	}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if !structured || len(body) == 0 || body[0] != '{' {
			return path, body
		}
		var obj map[string]any
		if err := json.Unmarshal(body, &obj); err != nil {
			return path, body
		}
		obj["shop_id"] = shopID
		merged, err := json.Marshal(obj)
		if err != nil {
			return path, body
		}
		return path, merged
	default:
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "shop_id=" + strconv.FormatInt(shopID, 10), body
	}
}

// cacheKey builds a deterministic key from the fully scoped request, so
// distinct query parameters, headers or shop scopes never collide.
func cacheKey(method, path string, headers map[string]string, body []byte) string {
	// json.Marshal sorts map keys, keeping the header part stable.
	h, _ := json.Marshal(headers) //nolint:errcheck
	var b strings.Builder
	b.WriteString(method)
	b.WriteByte(' ')
	b.WriteString(path)
	b.WriteByte('|')
	b.Write(h)
	b.WriteByte('|')
	b.Write(body)
	return b.String()
}

// teardown clears the session and notifies the expiry hook. It runs when
// authentication cannot be recovered; callers observe it through the
// rejected call plus the optional OnSessionExpired callback.
func (c *Client) teardown() {
	c.session.Clear()
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// logFailure emits fire-and-forget diagnostics. It never influences the
// outcome of the call.
func (c *Client) logFailure(method, path string, status int, requestID string, err error) {
	c.logger.Error().
		Str("method", method).
		Str("endpoint", path).
		Int("status", status).
		Str("request_id", requestID).
		Err(err).
		Msg("api request failed")
}
