package shopdesk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// SaleLine is a single line of a sale.
type SaleLine struct {
	ItemID   int64   `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount,omitempty"`
}

// Sale is a completed or pending sale.
type Sale struct {
	ID         int64      `json:"id"`
	Reference  string     `json:"reference,omitempty"`
	CustomerID int64      `json:"customer_id,omitempty"`
	Total      float64    `json:"total"`
	Discount   float64    `json:"discount,omitempty"`
	Paid       float64    `json:"paid"`
	Status     string     `json:"status,omitempty"`
	ShopID     int64      `json:"shop_id,omitempty"`
	Lines      []SaleLine `json:"lines,omitempty"`
	CreatedAt  time.Time  `json:"created_at,omitempty"`
}

// SaleParams are the writable fields of a sale.
type SaleParams struct {
	CustomerID int64      `json:"customer_id,omitempty"`
	Discount   float64    `json:"discount,omitempty"`
	Paid       float64    `json:"paid"`
	Lines      []SaleLine `json:"lines"`
}

// ListSales returns sales visible to the current session.
func (c *Client) ListSales(ctx context.Context, opts ...CallOption) ([]Sale, error) {
	var sales []Sale
	if err := c.Call(ctx, "/sales", &sales, opts...); err != nil {
		return nil, err
	}
	return sales, nil
}

// GetSale returns a single sale by ID.
func (c *Client) GetSale(ctx context.Context, id int64, opts ...CallOption) (*Sale, error) {
	var sale Sale
	if err := c.Call(ctx, fmt.Sprintf("/sales/%d", id), &sale, opts...); err != nil {
		return nil, err
	}
	return &sale, nil
}

// CreateSale records a sale and returns it as stored by the backend.
func (c *Client) CreateSale(ctx context.Context, params SaleParams) (*Sale, error) {
	var sale Sale
	err := c.Call(ctx, "/sales", &sale, WithMethod(http.MethodPost), WithBody(params))
	if err != nil {
		return nil, err
	}
	return &sale, nil
}
