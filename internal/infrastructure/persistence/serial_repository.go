package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductSerialRepository implements catalog.ProductSerialRepository using GORM
type GormProductSerialRepository struct {
	db *gorm.DB
}

// NewGormProductSerialRepository creates a new GormProductSerialRepository
func NewGormProductSerialRepository(db *gorm.DB) *GormProductSerialRepository {
	return &GormProductSerialRepository{db: db}
}

// FindByID finds a serial by ID
func (r *GormProductSerialRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductSerial, error) {
	var serial catalog.ProductSerial
	if err := r.db.WithContext(ctx).First(&serial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &serial, nil
}

// FindBySerialNumber finds a serial by its serial number
func (r *GormProductSerialRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*catalog.ProductSerial, error) {
	var serial catalog.ProductSerial
	if err := r.db.WithContext(ctx).
		Where("serial_number = ?", serialNumber).
		First(&serial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &serial, nil
}

// FindAll finds serials matching the filter
func (r *GormProductSerialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductSerial, error) {
	var serials []catalog.ProductSerial
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.ProductSerial{}), filter)
	query = applyListOptions(query, filter, SerialSortFields)

	if err := query.Find(&serials).Error; err != nil {
		return nil, err
	}
	return serials, nil
}

// Count counts serials matching the filter
func (r *GormProductSerialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.ProductSerial{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindInStockByProduct finds all in-stock serials of a product ordered by
// serial number ascending, so callers consume the oldest units first
func (r *GormProductSerialRepository) FindInStockByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductSerial, error) {
	var serials []catalog.ProductSerial
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, catalog.SerialStatusInStock).
		Order("serial_number ASC").
		Find(&serials).Error; err != nil {
		return nil, err
	}
	return serials, nil
}

// FindInStockByImport finds in-stock serials of a product created at the given
// import date
func (r *GormProductSerialRepository) FindInStockByImport(ctx context.Context, productID uuid.UUID, importDate time.Time) ([]catalog.ProductSerial, error) {
	var serials []catalog.ProductSerial
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ? AND import_date = ?",
			productID, catalog.SerialStatusInStock, importDate).
		Order("serial_number ASC").
		Find(&serials).Error; err != nil {
		return nil, err
	}
	return serials, nil
}

// FindByExportDetail finds serials consumed by a stock-export detail line
func (r *GormProductSerialRepository) FindByExportDetail(ctx context.Context, exportDetailID uuid.UUID) ([]catalog.ProductSerial, error) {
	var serials []catalog.ProductSerial
	if err := r.db.WithContext(ctx).
		Where("export_detail_id = ?", exportDetailID).
		Order("serial_number ASC").
		Find(&serials).Error; err != nil {
		return nil, err
	}
	return serials, nil
}

// MaxSequence returns the highest numeric suffix among serial numbers with the
// given prefix, or 0 when none exist. The suffix is everything after the
// prefix, zero-padded at creation, so a string max over the prefix group and a
// numeric parse of its tail agree.
func (r *GormProductSerialRepository) MaxSequence(ctx context.Context, prefix string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&catalog.ProductSerial{}).
		Select("COALESCE(MAX(CAST(SUBSTRING(serial_number FROM ?) AS INTEGER)), 0)", len(prefix)+1).
		Where("serial_number LIKE ?", prefix+"%").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Save persists a single serial
func (r *GormProductSerialRepository) Save(ctx context.Context, serial *catalog.ProductSerial) error {
	return r.db.WithContext(ctx).Save(serial).Error
}

// SaveBatch persists serials in batch
func (r *GormProductSerialRepository) SaveBatch(ctx context.Context, serials []*catalog.ProductSerial) error {
	if len(serials) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(serials).Error
}

// DeleteBatch hard-deletes serials by ID
func (r *GormProductSerialRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Delete(&catalog.ProductSerial{}, "id IN ?", ids).Error
}

func (r *GormProductSerialRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("serial_number ILIKE ?", pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "configuration_id":
			query = query.Where("configuration_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormProductSerialRepository implements ProductSerialRepository
var _ catalog.ProductSerialRepository = (*GormProductSerialRepository)(nil)
