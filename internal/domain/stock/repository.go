package stock

import (
	"context"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// StockImportRepository defines the persistence interface for stock imports
type StockImportRepository interface {
	// FindByID finds an import by ID with details preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*StockImport, error)
	// FindAll finds imports matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]StockImport, error)
	// Count counts imports matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Save creates or updates an import and its detail lines
	Save(ctx context.Context, stockImport *StockImport) error
	// Delete hard-deletes an import and its detail lines
	Delete(ctx context.Context, id uuid.UUID) error
	// GenerateCode generates the next import business code
	GenerateCode(ctx context.Context) (string, error)
}

// StockExportRepository defines the persistence interface for stock exports
type StockExportRepository interface {
	// FindByID finds an export by ID with details preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*StockExport, error)
	// FindByInvoiceID finds the export created for a sale invoice, if any.
	// Returns shared.ErrNotFound when the invoice has no export yet.
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*StockExport, error)
	// FindAll finds exports matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]StockExport, error)
	// Count counts exports matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Save creates or updates an export and its detail lines
	Save(ctx context.Context, export *StockExport) error
	// Delete hard-deletes an export and its detail lines
	Delete(ctx context.Context, id uuid.UUID) error
	// GenerateCode generates the next export business code
	GenerateCode(ctx context.Context) (string, error)
}
