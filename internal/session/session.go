// Package session holds the client's credential pair and user identity, and
// persists them through a pluggable key-value store.
package session

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleSuperadmin is the elevated role that may act on behalf of any shop.
const RoleSuperadmin = "superadmin"

// User is the identity returned by the login endpoint.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	ShopID   int64  `json:"shop_id,omitempty"`
}

// Manager owns the live session: access token, refresh token, current user
// and the optional shop scope. All state is mirrored in memory and in the
// store; memory is authoritative for the lifetime of the process. Every
// mutation re-attempts persistence, so a store that was unavailable at load
// time picks the session up on the next write.
type Manager struct {
	mu    sync.RWMutex
	store Store

	accessToken  string
	refreshToken string
	user         *User

	shopID  int64
	shopSet bool
}

// NewManager creates a manager backed by store and loads any persisted
// session. A store that cannot be read yields an unauthenticated session
// rather than an error.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	m.load()
	return m
}

func (m *Manager) load() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.store.Get(KeyAuthToken); ok {
		m.accessToken = v
	}
	if v, ok := m.store.Get(KeyRefreshToken); ok {
		m.refreshToken = v
	}
	if v, ok := m.store.Get(KeyCurrentUser); ok {
		var u User
		if err := json.Unmarshal([]byte(v), &u); err == nil {
			m.user = &u
		}
	}
	if v, ok := m.store.Get(KeySelectedShop); ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			m.shopID = id
			m.shopSet = true
		}
	}
}

// AccessToken returns the current access token, or "" when absent.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}

// RefreshToken returns the current refresh token, or "" when absent.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshToken
}

// CurrentUser returns a copy of the current user, or nil when absent.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Authenticated reports whether an access token is present.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken != ""
}

// SetAccessToken replaces the access token in memory and storage.
func (m *Manager) SetAccessToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accessToken = token
	m.store.Set(KeyAuthToken, token)
}

// SetTokens replaces both tokens in memory and storage. An empty refresh
// token keeps the existing one: the refresh endpoint may rotate only the
// access token.
func (m *Manager) SetTokens(access, refresh string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accessToken = access
	m.store.Set(KeyAuthToken, access)
	if refresh != "" {
		m.refreshToken = refresh
		m.store.Set(KeyRefreshToken, refresh)
	}
}

// SetUser replaces the current user in memory and storage.
func (m *Manager) SetUser(u *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	if u == nil {
		m.store.Remove(KeyCurrentUser)
		return
	}
	if data, err := json.Marshal(u); err == nil {
		m.store.Set(KeyCurrentUser, string(data))
	}
}

// Clear removes all session state from memory and storage.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accessToken = ""
	m.refreshToken = ""
	m.user = nil
	m.shopID = 0
	m.shopSet = false
	m.store.Remove(KeyAuthToken)
	m.store.Remove(KeyRefreshToken)
	m.store.Remove(KeyCurrentUser)
	m.store.Remove(KeySelectedShop)
}

// IsSuperadmin reports whether the current user holds the elevated role.
func (m *Manager) IsSuperadmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == RoleSuperadmin
}

// ShopScope returns the selected shop scope, if set.
func (m *Manager) ShopScope() (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shopID, m.shopSet
}

// SetShopScope selects the shop that subsequent requests are scoped to.
func (m *Manager) SetShopScope(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shopID = id
	m.shopSet = true
	m.store.Set(KeySelectedShop, strconv.FormatInt(id, 10))
}

// ClearShopScope removes the shop scope.
func (m *Manager) ClearShopScope() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shopID = 0
	m.shopSet = false
	m.store.Remove(KeySelectedShop)
}

// TokenExpiry returns the access token's expiry claim, when the token is a
// JWT carrying one. The token is decoded without signature verification;
// only the server can vouch for it, the client merely peeks at the claim.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	m.mu.RLock()
	token := m.accessToken
	m.mu.RUnlock()

	if token == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
