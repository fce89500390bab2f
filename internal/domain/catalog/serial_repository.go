package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// ProductSerialRepository defines the persistence interface for serials
type ProductSerialRepository interface {
	// FindByID finds a serial by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSerial, error)
	// FindBySerialNumber finds a serial by its serial number
	FindBySerialNumber(ctx context.Context, serialNumber string) (*ProductSerial, error)
	// FindAll finds serials matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductSerial, error)
	// Count counts serials matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindInStockByProduct finds all in-stock serials of a product ordered by
	// serial number ascending (oldest first)
	FindInStockByProduct(ctx context.Context, productID uuid.UUID) ([]ProductSerial, error)
	// FindInStockByImport finds in-stock serials of a product created at the
	// given import date
	FindInStockByImport(ctx context.Context, productID uuid.UUID, importDate time.Time) ([]ProductSerial, error)
	// FindByExportDetail finds serials consumed by a stock-export detail line
	FindByExportDetail(ctx context.Context, exportDetailID uuid.UUID) ([]ProductSerial, error)
	// MaxSequence returns the highest numeric suffix among serial numbers with
	// the given prefix, or 0 when none exist
	MaxSequence(ctx context.Context, prefix string) (int, error)
	// Save persists a single serial
	Save(ctx context.Context, serial *ProductSerial) error
	// SaveBatch persists serials in batch
	SaveBatch(ctx context.Context, serials []*ProductSerial) error
	// DeleteBatch hard-deletes serials by ID
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
}

// PromotionRepository defines the persistence interface for promotions
type PromotionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Promotion, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Promotion, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindCurrentForProduct finds promotions applicable to a product at time t
	FindCurrentForProduct(ctx context.Context, productID uuid.UUID, t time.Time) ([]Promotion, error)
	Save(ctx context.Context, promotion *Promotion) error
}
