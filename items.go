package shopdesk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Item is an inventory item.
type Item struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Barcode       string    `json:"barcode,omitempty"`
	CategoryID    int64     `json:"category_id,omitempty"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	Quantity      float64   `json:"quantity"`
	AlertQuantity float64   `json:"alert_quantity,omitempty"`
	ShopID        int64     `json:"shop_id,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// ItemParams are the writable fields of an item.
type ItemParams struct {
	Name          string  `json:"name"`
	Code          string  `json:"code,omitempty"`
	Barcode       string  `json:"barcode,omitempty"`
	CategoryID    int64   `json:"category_id,omitempty"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost,omitempty"`
	Quantity      float64 `json:"quantity,omitempty"`
	AlertQuantity float64 `json:"alert_quantity,omitempty"`
}

// ListItems returns all items visible to the current session.
func (c *Client) ListItems(ctx context.Context, opts ...CallOption) ([]Item, error) {
	var items []Item
	if err := c.Call(ctx, "/items", &items, opts...); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns a single item by ID.
func (c *Client) GetItem(ctx context.Context, id int64, opts ...CallOption) (*Item, error) {
	var item Item
	if err := c.Call(ctx, fmt.Sprintf("/items/%d", id), &item, opts...); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem creates an item and returns it as stored by the backend.
func (c *Client) CreateItem(ctx context.Context, params ItemParams) (*Item, error) {
	var item Item
	err := c.Call(ctx, "/items", &item, WithMethod(http.MethodPost), WithBody(params))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem updates an item.
func (c *Client) UpdateItem(ctx context.Context, id int64, params ItemParams) (*Item, error) {
	var item Item
	err := c.Call(ctx, fmt.Sprintf("/items/%d", id), &item, WithMethod(http.MethodPut), WithBody(params))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem deletes an item.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.Call(ctx, fmt.Sprintf("/items/%d", id), nil, WithMethod(http.MethodDelete))
}
