package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID finds a product by ID with its configurations preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByCode finds a product by its business code
	FindByCode(ctx context.Context, code string) (*Product, error)
	// FindAll finds products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// Save creates or updates a product and its configurations
	Save(ctx context.Context, product *Product) error
	// ExistsByCode checks whether a product with the code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// ConfigurationRepository defines the persistence interface for product configurations
type ConfigurationRepository interface {
	// FindByID finds a configuration by ID
	FindByID(ctx context.Context, id uuid.UUID) (*ProductConfiguration, error)
	// FindByProduct finds all configurations of a product
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductConfiguration, error)
	// FindByProductAndSpec resolves a specification to a configuration of the
	// product, filtering by every attribute present in the spec. Returns
	// shared.ErrNotFound when no configuration matches.
	FindByProductAndSpec(ctx context.Context, productID uuid.UUID, spec Specification) (*ProductConfiguration, error)
	// FindByProductAndSpecForUpdate behaves like FindByProductAndSpec but
	// acquires a row lock so concurrent quantity movements serialize
	FindByProductAndSpecForUpdate(ctx context.Context, productID uuid.UUID, spec Specification) (*ProductConfiguration, error)
	// Save persists a configuration
	Save(ctx context.Context, configuration *ProductConfiguration) error
}
