package shopdesk

import (
	"context"
	"fmt"
	"net/http"
)

// UserParams are the writable fields of a user account. Password is only
// sent when non-empty.
type UserParams struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	ShopID   int64  `json:"shop_id,omitempty"`
}

// ListUsers returns the user accounts visible to the current session.
// Requires an admin or superadmin role on the backend.
func (c *Client) ListUsers(ctx context.Context, opts ...CallOption) ([]User, error) {
	var users []User
	if err := c.Call(ctx, "/users", &users, opts...); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user account.
func (c *Client) CreateUser(ctx context.Context, params UserParams) (*User, error) {
	var user User
	err := c.Call(ctx, "/users", &user, WithMethod(http.MethodPost), WithBody(params))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user account.
func (c *Client) UpdateUser(ctx context.Context, id int64, params UserParams) (*User, error) {
	var user User
	err := c.Call(ctx, fmt.Sprintf("/users/%d", id), &user, WithMethod(http.MethodPut), WithBody(params))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.Call(ctx, fmt.Sprintf("/users/%d", id), nil, WithMethod(http.MethodDelete))
}
