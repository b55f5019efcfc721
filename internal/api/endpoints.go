package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopdesk/client-go/internal/apierrors"
	"github.com/shopdesk/client-go/internal/session"
)

// Authentication endpoint paths.
const (
	LoginPath   = "/login"
	RefreshPath = "/refresh"
)

// LoginResult is the /login response: both tokens plus the user identity.
type LoginResult struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
	User         *session.User `json:"user"`
}

// refreshResult is the /refresh response. The server may rotate the refresh
// token and re-issue the user alongside the new access token.
type refreshResult struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
	User         *session.User `json:"user"`
}

// Login exchanges credentials for a token pair and persists the resulting
// session.
func (c *Client) Login(ctx context.Context, username, password string) (*session.User, error) {
	body := map[string]string{"username": username, "password": password}

	var result LoginResult
	if err := c.Do(ctx, http.MethodPost, LoginPath, body, &result); err != nil {
		return nil, err
	}

	c.session.SetTokens(result.Token, result.RefreshToken)
	c.session.SetUser(result.User)
	return c.session.CurrentUser(), nil
}

// Logout clears the session. No network call is made; the backend's tokens
// simply age out.
func (c *Client) Logout() {
	c.session.Clear()
}

// Refresh exchanges the stored refresh token for a new access token and
// persists it. On any failure the session is torn down and the error is
// terminal: callers must re-authenticate.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return "", apierrors.ErrNoRefreshToken
	}

	// Dedicated call: POST, refresh token in the body, no Authorization
	// header. Transient retries still apply; auth recovery does not.
	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return "", err
	}

	pb, err := c.doOnce(ctx, http.MethodPost, RefreshPath, body, &callOptions{skipAuth: true})
	if err != nil {
		c.teardown()
		return "", &apierrors.RefreshError{Err: err}
	}

	var result refreshResult
	if err := deliver(pb, &result); err != nil {
		c.teardown()
		return "", &apierrors.RefreshError{Err: err}
	}
	if result.Token == "" {
		c.teardown()
		return "", &apierrors.RefreshError{Err: errors.New("refresh response missing token")}
	}

	c.session.SetTokens(result.Token, result.RefreshToken)
	if result.User != nil {
		c.session.SetUser(result.User)
	}
	return result.Token, nil
}
