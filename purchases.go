package shopdesk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// PurchaseLine is a single line of a purchase.
type PurchaseLine struct {
	ItemID   int64   `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// Purchase is a stock purchase from a supplier.
type Purchase struct {
	ID         int64          `json:"id"`
	Reference  string         `json:"reference,omitempty"`
	SupplierID int64          `json:"supplier_id,omitempty"`
	Total      float64        `json:"total"`
	Paid       float64        `json:"paid"`
	Status     string         `json:"status,omitempty"`
	ShopID     int64          `json:"shop_id,omitempty"`
	Lines      []PurchaseLine `json:"lines,omitempty"`
	CreatedAt  time.Time      `json:"created_at,omitempty"`
}

// PurchaseParams are the writable fields of a purchase.
type PurchaseParams struct {
	SupplierID int64          `json:"supplier_id,omitempty"`
	Paid       float64        `json:"paid"`
	Lines      []PurchaseLine `json:"lines"`
}

// ListPurchases returns purchases visible to the current session.
func (c *Client) ListPurchases(ctx context.Context, opts ...CallOption) ([]Purchase, error) {
	var purchases []Purchase
	if err := c.Call(ctx, "/purchases", &purchases, opts...); err != nil {
		return nil, err
	}
	return purchases, nil
}

// GetPurchase returns a single purchase by ID.
func (c *Client) GetPurchase(ctx context.Context, id int64, opts ...CallOption) (*Purchase, error) {
	var purchase Purchase
	if err := c.Call(ctx, fmt.Sprintf("/purchases/%d", id), &purchase, opts...); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// CreatePurchase records a purchase and returns it as stored by the backend.
func (c *Client) CreatePurchase(ctx context.Context, params PurchaseParams) (*Purchase, error) {
	var purchase Purchase
	err := c.Call(ctx, "/purchases", &purchase, WithMethod(http.MethodPost), WithBody(params))
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
