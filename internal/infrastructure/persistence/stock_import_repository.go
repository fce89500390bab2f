package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormStockImportRepository implements stock.StockImportRepository using GORM
type GormStockImportRepository struct {
	db *gorm.DB
}

// NewGormStockImportRepository creates a new GormStockImportRepository
func NewGormStockImportRepository(db *gorm.DB) *GormStockImportRepository {
	return &GormStockImportRepository{db: db}
}

// FindByID finds an import by ID with details preloaded
func (r *GormStockImportRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.StockImport, error) {
	var stockImport stock.StockImport
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&stockImport, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stockImport, nil
}

// FindAll finds imports matching the filter
func (r *GormStockImportRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.StockImport, error) {
	var imports []stock.StockImport
	query := r.applyFilter(r.db.WithContext(ctx).Model(&stock.StockImport{}), filter)
	query = applyListOptions(query, filter, StockImportSortFields)

	if err := query.Preload("Details").Find(&imports).Error; err != nil {
		return nil, err
	}
	return imports, nil
}

// Count counts imports matching the filter
func (r *GormStockImportRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&stock.StockImport{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an import and its detail lines. Detail lines removed
// from the aggregate are deleted so a replace leaves no orphans.
func (r *GormStockImportRepository) Save(ctx context.Context, stockImport *stock.StockImport) error {
	keep := make([]uuid.UUID, 0, len(stockImport.Details))
	for _, d := range stockImport.Details {
		keep = append(keep, d.ID)
	}

	stale := r.db.WithContext(ctx).Where("import_id = ?", stockImport.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&stock.StockImportDetail{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(stockImport).Error
}

// Delete hard-deletes an import and its detail lines
func (r *GormStockImportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&stock.StockImportDetail{}, "import_id = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&stock.StockImport{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GenerateCode generates the next import business code
func (r *GormStockImportRepository) GenerateCode(ctx context.Context) (string, error) {
	return nextSequentialCode(ctx, r.db, &stock.StockImport{}, "SI")
}

func (r *GormStockImportRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR note ILIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "from_date":
			query = query.Where("import_date >= ?", value)
		case "to_date":
			query = query.Where("import_date <= ?", value)
		}
	}

	return query
}

// Ensure GormStockImportRepository implements StockImportRepository
var _ stock.StockImportRepository = (*GormStockImportRepository)(nil)
