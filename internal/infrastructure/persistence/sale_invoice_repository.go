package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSaleInvoiceRepository implements sales.SaleInvoiceRepository using GORM
type GormSaleInvoiceRepository struct {
	db *gorm.DB
}

// NewGormSaleInvoiceRepository creates a new GormSaleInvoiceRepository
func NewGormSaleInvoiceRepository(db *gorm.DB) *GormSaleInvoiceRepository {
	return &GormSaleInvoiceRepository{db: db}
}

// FindByID finds an invoice by ID with items preloaded
func (r *GormSaleInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SaleInvoice, error) {
	var invoice sales.SaleInvoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByCode finds an invoice by its business code
func (r *GormSaleInvoiceRepository) FindByCode(ctx context.Context, code string) (*sales.SaleInvoice, error) {
	var invoice sales.SaleInvoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("code = ?", code).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll finds invoices matching the filter
func (r *GormSaleInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.SaleInvoice, error) {
	var invoices []sales.SaleInvoice
	query := r.applyFilter(r.db.WithContext(ctx).Model(&sales.SaleInvoice{}), filter)
	query = applyListOptions(query, filter, SaleInvoiceSortFields)

	if err := query.Preload("Items").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormSaleInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&sales.SaleInvoice{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an invoice and its line items
func (r *GormSaleInvoiceRepository) Save(ctx context.Context, invoice *sales.SaleInvoice) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(invoice).Error
}

// GenerateCode generates the next invoice business code
func (r *GormSaleInvoiceRepository) GenerateCode(ctx context.Context) (string, error) {
	return nextSequentialCode(ctx, r.db, &sales.SaleInvoice{}, "IV")
}

func (r *GormSaleInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "from_date":
			query = query.Where("created_at >= ?", value)
		case "to_date":
			query = query.Where("created_at <= ?", value)
		}
	}

	return query
}

// Ensure GormSaleInvoiceRepository implements SaleInvoiceRepository
var _ sales.SaleInvoiceRepository = (*GormSaleInvoiceRepository)(nil)
