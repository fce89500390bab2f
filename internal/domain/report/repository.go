package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter bounds a report to a date range
type Filter struct {
	StartDate time.Time
	EndDate   time.Time
}

// SalesSummary aggregates invoice activity over a period
type SalesSummary struct {
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	TotalInvoices int64           `json:"total_invoices"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// RevenueByDay is one day of invoice revenue
type RevenueByDay struct {
	Date         time.Time       `json:"date"`
	InvoiceCount int64           `json:"invoice_count"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// ProductSalesRow ranks one product by units sold over a period
type ProductSalesRow struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductCode  string          `json:"product_code"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// StockRow is the current on-hand position of one product configuration
type StockRow struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	Specification string          `json:"specification"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
}

// Repository defines the aggregation queries behind the report endpoints.
// Implementations run read-only SQL against the operational tables.
type Repository interface {
	// GetSalesSummary aggregates non-cancelled invoices within the period
	GetSalesSummary(ctx context.Context, filter Filter) (*SalesSummary, error)
	// GetRevenueByDay buckets non-cancelled invoice revenue per day
	GetRevenueByDay(ctx context.Context, filter Filter) ([]RevenueByDay, error)
	// GetProductSalesRanking ranks products by units sold, descending
	GetProductSalesRanking(ctx context.Context, filter Filter, topN int) ([]ProductSalesRow, error)
	// GetStockRows lists the current on-hand quantity per configuration
	GetStockRows(ctx context.Context) ([]StockRow, error)
}
