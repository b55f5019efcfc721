package shopdesk

import (
	"context"
	"net/url"
	"time"
)

// DashboardSummary is the aggregate view the admin dashboard renders.
type DashboardSummary struct {
	TotalSales     float64 `json:"total_sales"`
	TotalPurchases float64 `json:"total_purchases"`
	ItemCount      int64   `json:"item_count"`
	LowStockCount  int64   `json:"low_stock_count"`
	CustomerCount  int64   `json:"customer_count,omitempty"`
}

// SalesReportRow is one row of the sales report.
type SalesReportRow struct {
	Date     string  `json:"date"`
	Invoices int64   `json:"invoices"`
	Total    float64 `json:"total"`
	Discount float64 `json:"discount,omitempty"`
}

// StockReportRow is one row of the stock report.
type StockReportRow struct {
	ItemID   int64   `json:"item_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
	LowStock bool    `json:"low_stock,omitempty"`
}

// Dashboard returns the dashboard summary. Results are cached for the
// client's default TTL; pass NoCache to force a fresh read.
func (c *Client) Dashboard(ctx context.Context, opts ...CallOption) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.Call(ctx, "/reports/dashboard", &summary, opts...); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SalesReport returns per-day sales totals for the given date range.
func (c *Client) SalesReport(ctx context.Context, from, to time.Time, opts ...CallOption) ([]SalesReportRow, error) {
	q := url.Values{}
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))

	var rows []SalesReportRow
	if err := c.Call(ctx, "/reports/sales?"+q.Encode(), &rows, opts...); err != nil {
		return nil, err
	}
	return rows, nil
}

// StockReport returns the current stock position per item.
func (c *Client) StockReport(ctx context.Context, opts ...CallOption) ([]StockReportRow, error) {
	var rows []StockReportRow
	if err := c.Call(ctx, "/reports/stock", &rows, opts...); err != nil {
		return nil, err
	}
	return rows, nil
}
