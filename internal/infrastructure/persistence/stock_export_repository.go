package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormStockExportRepository implements stock.StockExportRepository using GORM
type GormStockExportRepository struct {
	db *gorm.DB
}

// NewGormStockExportRepository creates a new GormStockExportRepository
func NewGormStockExportRepository(db *gorm.DB) *GormStockExportRepository {
	return &GormStockExportRepository{db: db}
}

// FindByID finds an export by ID with details preloaded
func (r *GormStockExportRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.StockExport, error) {
	var export stock.StockExport
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&export, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &export, nil
}

// FindByInvoiceID finds the export created for a sale invoice, if any
func (r *GormStockExportRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*stock.StockExport, error) {
	var export stock.StockExport
	if err := r.db.WithContext(ctx).
		Preload("Details").
		Where("invoice_id = ?", invoiceID).
		First(&export).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &export, nil
}

// FindAll finds exports matching the filter
func (r *GormStockExportRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.StockExport, error) {
	var exports []stock.StockExport
	query := r.applyFilter(r.db.WithContext(ctx).Model(&stock.StockExport{}), filter)
	query = applyListOptions(query, filter, StockExportSortFields)

	if err := query.Preload("Details").Find(&exports).Error; err != nil {
		return nil, err
	}
	return exports, nil
}

// Count counts exports matching the filter
func (r *GormStockExportRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&stock.StockExport{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an export and its detail lines. Detail lines removed
// from the aggregate are deleted so a replace leaves no orphans.
func (r *GormStockExportRepository) Save(ctx context.Context, export *stock.StockExport) error {
	keep := make([]uuid.UUID, 0, len(export.Details))
	for _, d := range export.Details {
		keep = append(keep, d.ID)
	}

	stale := r.db.WithContext(ctx).Where("export_id = ?", export.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&stock.StockExportDetail{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(export).Error
}

// Delete hard-deletes an export and its detail lines
func (r *GormStockExportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&stock.StockExportDetail{}, "export_id = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&stock.StockExport{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GenerateCode generates the next export business code
func (r *GormStockExportRepository) GenerateCode(ctx context.Context) (string, error) {
	return nextSequentialCode(ctx, r.db, &stock.StockExport{}, "SE")
}

func (r *GormStockExportRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR note ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "invoice_id":
			query = query.Where("invoice_id = ?", value)
		case "from_date":
			query = query.Where("export_date >= ?", value)
		case "to_date":
			query = query.Where("export_date <= ?", value)
		}
	}

	return query
}

// Ensure GormStockExportRepository implements StockExportRepository
var _ stock.StockExportRepository = (*GormStockExportRepository)(nil)
