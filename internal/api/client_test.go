package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopdesk/client-go/internal/apierrors"
	"github.com/shopdesk/client-go/internal/session"
)

func newTestClient(t *testing.T, baseURL string, mutate func(*Config)) (*Client, *session.Manager) {
	t.Helper()

	sess := session.NewManager(session.NewMemoryStore())
	cfg := Config{
		BaseURL: baseURL,
		Session: sess,
		RetryOn: []int{}, // no transient retries unless a test opts in
	}
	if mutate != nil {
		mutate(&cfg)
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, sess
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	if !errors.Is(err, apierrors.ErrMissingBaseURL) {
		t.Errorf("error = %v, want ErrMissingBaseURL", err)
	}
}

func TestDo_DefaultsToGET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	var result struct{ OK bool }
	if err := client.Do(context.Background(), "", "/ping", nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !result.OK {
		t.Error("result.OK = false, want true")
	}
}

func TestDo_RequestDecoration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %s, want Bearer tok-1", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, sess := newTestClient(t, server.URL, nil)
	sess.SetTokens("tok-1", "")

	if err := client.Do(context.Background(), http.MethodGet, "/items", nil, nil, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)
	if err := client.Do(context.Background(), http.MethodGet, "/ping", nil, nil, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_CallerHeadersOverrideDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "text/csv" {
			t.Errorf("Content-Type = %s, want text/csv", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want removed", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, sess := newTestClient(t, server.URL, nil)
	sess.SetTokens("tok-1", "")

	err := client.Do(context.Background(), http.MethodGet, "/export", nil, nil,
		WithoutCache(),
		WithHeader("Content-Type", "text/csv"),
		WithHeader("Authorization", ""))
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_StringBodyPassesThrough(t *testing.T) {
	const raw = "plain-text-payload"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := make([]byte, len(raw)+16)
		n, _ := r.Body.Read(data)
		if got := string(data[:n]); got != raw {
			t.Errorf("body = %q, want %q", got, raw)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)
	if err := client.Do(context.Background(), http.MethodPost, "/import", raw, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestLogin_PersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != LoginPath || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "a" || creds["password"] != "b" {
			t.Errorf("credentials = %v", creds)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"T1","refreshToken":"R1","user":{"id":1,"username":"a","role":"admin"}}`))
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	sess := session.NewManager(store)
	client, _ := newTestClient(t, server.URL, func(cfg *Config) { cfg.Session = sess })

	user, err := client.Login(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user == nil || user.ID != 1 || user.Role != "admin" {
		t.Errorf("user = %+v", user)
	}

	if v, _ := store.Get(session.KeyAuthToken); v != "T1" {
		t.Errorf("stored authToken = %q, want T1", v)
	}
	if v, _ := store.Get(session.KeyRefreshToken); v != "R1" {
		t.Errorf("stored refreshToken = %q, want R1", v)
	}
	if v, _ := store.Get(session.KeyCurrentUser); !strings.Contains(v, `"role":"admin"`) {
		t.Errorf("stored currentUser = %q", v)
	}
}

func TestDo_ExpiredTokenRecoversTransparently(t *testing.T) {
	var salesCalls, refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sales":
			n := atomic.AddInt32(&salesCalls, 1)
			auth := r.Header.Get("Authorization")
			if n == 1 {
				if auth != "Bearer T1" {
					t.Errorf("first attempt Authorization = %s", auth)
				}
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"token expired"}`))
				return
			}
			if auth != "Bearer T2" {
				t.Errorf("retry Authorization = %s, want Bearer T2", auth)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":5,"total":12.5,"paid":12.5}]`))
		case RefreshPath:
			atomic.AddInt32(&refreshCalls, 1)
			if got := r.Header.Get("Authorization"); got != "" {
				t.Errorf("refresh Authorization = %q, want empty", got)
			}
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["refreshToken"] != "R1" {
				t.Errorf("refreshToken = %q, want R1", body["refreshToken"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"T2"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, sess := newTestClient(t, server.URL, nil)
	sess.SetTokens("T1", "R1")

	var sales []map[string]any
	if err := client.Do(context.Background(), http.MethodGet, "/sales", nil, &sales, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(sales) != 1 {
		t.Errorf("sales = %v", sales)
	}
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Errorf("refresh calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&salesCalls); got != 2 {
		t.Errorf("sales calls = %d, want 2", got)
	}
	if sess.AccessToken() != "T2" {
		t.Errorf("access token = %q, want T2", sess.AccessToken())
	}
	// R1 is kept when the server does not rotate it.
	if sess.RefreshToken() != "R1" {
		t.Errorf("refresh token = %q, want R1", sess.RefreshToken())
	}
}

func TestDo_RetryCapOnRepeated401(t *testing.T) {
	var salesCalls, refreshCalls int32
	expired := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sales":
			atomic.AddInt32(&salesCalls, 1)
			w.WriteHeader(http.StatusUnauthorized)
		case RefreshPath:
			atomic.AddInt32(&refreshCalls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"T2"}`))
		}
	}))
	defer server.Close()

	client, sess := newTestClient(t, server.URL, func(cfg *Config) {
		cfg.OnSessionExpired = func() { expired = true }
	})
	sess.SetTokens("T1", "R1")

	err := client.Do(context.Background(), http.MethodGet, "/sales", nil, nil, WithoutCache())
	if !errors.Is(err, apierrors.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	// One refresh, one retried request, then terminal: never a loop.
	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Errorf("refresh calls = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&salesCalls); got != 2 {
		t.Errorf("sales calls = %d, want 2", got)
	}
	if !expired {
		t.Error("OnSessionExpired not invoked")
	}
	if sess.Authenticated() {
		t.Error("session not cleared")
	}
}

func TestDo_RefreshFailureTearsDownSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sales":
			w.WriteHeader(http.StatusUnauthorized)
		case RefreshPath:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"refresh token revoked"}`))
		}
	}))
	defer server.Close()

	store := session.NewMemoryStore()
	sess := session.NewManager(store)
	client, _ := newTestClient(t, server.URL, func(cfg *Config) { cfg.Session = sess })
	sess.SetTokens("T1", "R1")

	err := client.Do(context.Background(), http.MethodGet, "/sales", nil, nil, WithoutCache())

	var refreshErr *apierrors.RefreshError
	if !errors.As(err, &refreshErr) {
		t.Fatalf("error = %v, want RefreshError", err)
	}
	if !errors.Is(err, apierrors.ErrSessionExpired) {
		t.Error("RefreshError should match ErrSessionExpired")
	}
	if sess.Authenticated() {
		t.Error("session not cleared from memory")
	}
	if _, ok := store.Get(session.KeyAuthToken); ok {
		t.Error("authToken not cleared from storage")
	}
	if _, ok := store.Get(session.KeyRefreshToken); ok {
		t.Error("refreshToken not cleared from storage")
	}
}

func TestDo_AuthFailureWithoutRefreshToken(t *testing.T) {
	var refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == RefreshPath {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	// No refresh token: recovery is impossible, the original classified
	// failure surfaces directly.
	err := client.Do(context.Background(), http.MethodPost, LoginPath,
		map[string]string{"username": "a", "password": "wrong"}, nil)

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.StatusCode != 401 || apiErr.Message != "invalid credentials" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if atomic.LoadInt32(&refreshCalls) != 0 {
		t.Error("refresh attempted without a refresh token")
	}
}

func TestDo_SoftAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// 200 status, embedded application failure.
		w.Write([]byte(`{"code":403,"message":"forbidden"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	err := client.Do(context.Background(), http.MethodGet, "/reports/x", nil, nil, WithoutCache())

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.StatusCode != 403 {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Message != "forbidden" {
		t.Errorf("Message = %q, want forbidden", apiErr.Message)
	}
	if !errors.Is(err, apierrors.ErrForbidden) {
		t.Error("soft 403 should match ErrForbidden")
	}
}

func TestDo_ShopScope(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		body      any
		wantQuery string
		wantBody  string
	}{
		{
			name:      "read gains query parameter",
			method:    http.MethodGet,
			path:      "/items",
			wantQuery: "shop_id=7",
		},
		{
			name:      "read with existing query appends",
			method:    http.MethodGet,
			path:      "/items?active=1",
			wantQuery: "active=1&shop_id=7",
		},
		{
			name:     "write merges into object body",
			method:   http.MethodPost,
			path:     "/items",
			body:     map[string]any{"name": "Mug"},
			wantBody: `{"name":"Mug","shop_id":7}`,
		},
		{
			name:     "array body left untouched",
			method:   http.MethodPost,
			path:     "/items/bulk",
			body:     []map[string]any{{"name": "Mug"}},
			wantBody: `[{"name":"Mug"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.wantQuery != "" && r.URL.RawQuery != tt.wantQuery {
					t.Errorf("query = %q, want %q", r.URL.RawQuery, tt.wantQuery)
				}
				if tt.wantBody != "" {
					data := make([]byte, 1024)
					n, _ := r.Body.Read(data)
					if got := strings.TrimSpace(string(data[:n])); got != tt.wantBody {
						t.Errorf("body = %s, want %s", got, tt.wantBody)
					}
				}
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			client, sess := newTestClient(t, server.URL, nil)
			sess.SetUser(&session.User{ID: 1, Username: "root", Role: session.RoleSuperadmin})
			sess.SetTokens("T1", "")
			sess.SetShopScope(7)

			err := client.Do(context.Background(), tt.method, tt.path, tt.body, nil, WithoutCache())
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
		})
	}
}

func TestDo_NoShopScopeForRegularUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, sess := newTestClient(t, server.URL, nil)
	sess.SetUser(&session.User{ID: 2, Username: "clerk", Role: "staff"})
	sess.SetTokens("T1", "")
	sess.SetShopScope(7)

	if err := client.Do(context.Background(), http.MethodGet, "/items", nil, nil, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_ParseFallbackToText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("maintenance at midnight"))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	var result string
	if err := client.Do(context.Background(), http.MethodGet, "/notice", nil, &result, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result != "maintenance at midnight" {
		t.Errorf("result = %q", result)
	}
}

func TestDo_UndeclaredJSONStillParses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No JSON content type declared.
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`{"id":9}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	var result struct{ ID int }
	if err := client.Do(context.Background(), http.MethodGet, "/item", nil, &result, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.ID != 9 {
		t.Errorf("result.ID = %d, want 9", result.ID)
	}
}

func TestDo_CacheHitSkipsNetwork(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"n":1}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	var first, second struct{ N int }
	if err := client.Do(context.Background(), http.MethodGet, "/counter", nil, &first); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}
	if err := client.Do(context.Background(), http.MethodGet, "/counter", nil, &second); err != nil {
		t.Fatalf("second Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("network calls = %d, want 1", got)
	}
	if first.N != second.N {
		t.Errorf("cached value differs: %d vs %d", first.N, second.N)
	}
}

func TestDo_CacheExpiry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"n":1}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, func(cfg *Config) {
		cfg.CacheTTL = 10 * time.Millisecond
	})

	ctx := context.Background()
	if err := client.Do(ctx, http.MethodGet, "/counter", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if err := client.Do(ctx, http.MethodGet, "/counter", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("network calls = %d, want 2 after expiry", got)
	}
}

func TestDo_CacheKeyedByPath(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	ctx := context.Background()
	client.Do(ctx, http.MethodGet, "/items?page=1", nil, nil)
	client.Do(ctx, http.MethodGet, "/items?page=2", nil, nil)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("network calls = %d, want 2 for distinct queries", got)
	}
}

func TestDo_WritesNotCached(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	ctx := context.Background()
	client.Do(ctx, http.MethodPost, "/sales", map[string]int{"paid": 1}, nil)
	client.Do(ctx, http.MethodPost, "/sales", map[string]int{"paid": 1}, nil)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("network calls = %d, want 2 for POSTs", got)
	}
}

func TestDo_TransientRetryOn503(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, func(cfg *Config) {
		cfg.RetryOn = nil // default retryable statuses
		cfg.MaxRetries = 3
		cfg.RetryDelay = time.Millisecond
	})

	var result struct{ OK bool }
	if err := client.Do(context.Background(), http.MethodGet, "/flaky", nil, &result, WithoutCache()); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestDo_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, _ := newTestClient(t, server.URL, nil)

	err := client.Do(context.Background(), http.MethodGet, "/items", nil, nil, WithoutCache())
	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
}

func TestRefresh_NoRefreshToken(t *testing.T) {
	client, _ := newTestClient(t, "http://127.0.0.1:0", nil)

	_, err := client.Refresh(context.Background())
	if !errors.Is(err, apierrors.ErrNoRefreshToken) {
		t.Errorf("error = %v, want ErrNoRefreshToken", err)
	}
}

func TestRefresh_RotatesBothTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"T2","refreshToken":"R2"}`))
	}))
	defer server.Close()

	client, sess := newTestClient(t, server.URL, nil)
	sess.SetTokens("T1", "R1")

	token, err := client.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if token != "T2" {
		t.Errorf("token = %q, want T2", token)
	}
	if sess.RefreshToken() != "R2" {
		t.Errorf("refresh token = %q, want R2", sess.RefreshToken())
	}
}

func TestLogout_ClearsSessionWithoutNetwork(t *testing.T) {
	client, sess := newTestClient(t, "http://127.0.0.1:0", nil)
	sess.SetTokens("T1", "R1")
	sess.SetUser(&session.User{ID: 1, Role: "admin"})

	client.Logout()

	if sess.Authenticated() || sess.CurrentUser() != nil || sess.RefreshToken() != "" {
		t.Error("session not fully cleared")
	}
}
