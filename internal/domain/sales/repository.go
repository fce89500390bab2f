package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// SaleInvoiceRepository defines the persistence interface for sale invoices
type SaleInvoiceRepository interface {
	// FindByID finds an invoice by ID with items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*SaleInvoice, error)
	// FindByCode finds an invoice by its business code
	FindByCode(ctx context.Context, code string) (*SaleInvoice, error)
	// FindAll finds invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]SaleInvoice, error)
	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Save creates or updates an invoice and its line items
	Save(ctx context.Context, invoice *SaleInvoice) error
	// GenerateCode generates the next invoice business code
	GenerateCode(ctx context.Context) (string, error)
}
