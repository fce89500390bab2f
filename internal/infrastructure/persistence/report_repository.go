package persistence

import (
	"context"

	"github.com/laptechvn/backend/internal/domain/report"
	"github.com/laptechvn/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormReportRepository implements report.Repository with raw SQL aggregations.
// Only COMPLETED invoices count towards revenue; cancelled and in-flight
// orders are excluded.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// GetSalesSummary aggregates invoice count, unit count, revenue and discount
// over the period
func (r *GormReportRepository) GetSalesSummary(ctx context.Context, filter report.Filter) (*report.SalesSummary, error) {
	summary := report.SalesSummary{
		PeriodStart: filter.StartDate,
		PeriodEnd:   filter.EndDate,
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(id)                        AS total_invoices,
			COALESCE(SUM(payable_amount), 0)  AS total_revenue,
			COALESCE(SUM(discount_amount), 0) AS total_discount
		FROM sale_invoices
		WHERE status = ? AND completed_at >= ? AND completed_at <= ?`,
		sales.InvoiceStatusCompleted, filter.StartDate, filter.EndDate,
	).Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(it.quantity), 0)
		FROM sale_invoice_items it
		JOIN sale_invoices i ON i.id = it.invoice_id
		WHERE i.status = ? AND i.completed_at >= ? AND i.completed_at <= ?`,
		sales.InvoiceStatusCompleted, filter.StartDate, filter.EndDate,
	).Scan(&summary.TotalQuantity).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetRevenueByDay returns per-day invoice counts and revenue over the period
func (r *GormReportRepository) GetRevenueByDay(ctx context.Context, filter report.Filter) ([]report.RevenueByDay, error) {
	var rows []report.RevenueByDay
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE_TRUNC('day', completed_at) AS date,
			COUNT(id)                       AS invoice_count,
			COALESCE(SUM(payable_amount), 0) AS revenue
		FROM sale_invoices
		WHERE status = ? AND completed_at >= ? AND completed_at <= ?
		GROUP BY DATE_TRUNC('day', completed_at)
		ORDER BY date ASC`,
		sales.InvoiceStatusCompleted, filter.StartDate, filter.EndDate,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProductSalesRanking returns the top-N products by units sold over the period
func (r *GormReportRepository) GetProductSalesRanking(ctx context.Context, filter report.Filter, topN int) ([]report.ProductSalesRow, error) {
	var rows []report.ProductSalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id                          AS product_id,
			p.code                        AS product_code,
			p.name                        AS product_name,
			COALESCE(SUM(it.quantity), 0) AS quantity_sold,
			COALESCE(SUM(it.amount), 0)   AS revenue
		FROM sale_invoice_items it
		JOIN sale_invoices i ON i.id = it.invoice_id
		JOIN products p ON p.id = it.product_id
		WHERE i.status = ? AND i.completed_at >= ? AND i.completed_at <= ?
		GROUP BY p.id, p.code, p.name
		ORDER BY quantity_sold DESC, revenue DESC
		LIMIT ?`,
		sales.InvoiceStatusCompleted, filter.StartDate, filter.EndDate, topN,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetStockRows returns the current on-hand quantity and price per configuration
func (r *GormReportRepository) GetStockRows(ctx context.Context) ([]report.StockRow, error) {
	var rows []report.StockRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id    AS product_id,
			p.code  AS product_code,
			p.name  AS product_name,
			CONCAT_WS(' / ', c.cpu, c.ram, c.rom, c.card) AS specification,
			c.quantity AS quantity,
			c.price    AS price
		FROM product_configurations c
		JOIN products p ON p.id = c.product_id
		WHERE p.active = TRUE
		ORDER BY p.code ASC, c.seq ASC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Ensure GormReportRepository implements report.Repository
var _ report.Repository = (*GormReportRepository)(nil)
