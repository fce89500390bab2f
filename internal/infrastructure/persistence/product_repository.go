package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID with its configurations preloaded
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Configurations").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByCode finds a product by its business code
func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Configurations").
		Where("code = ?", strings.ToUpper(code)).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter)
	query = applyListOptions(query, filter, ProductSortFields)

	if err := query.Preload("Configurations").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count counts products matching the filter
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a product and its configurations
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(product).Error
}

// ExistsByCode checks whether a product with the code exists
func (r *GormProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR brand ILIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "brand":
			query = query.Where("brand = ?", value)
		}
	}

	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// GormConfigurationRepository implements catalog.ConfigurationRepository using GORM
type GormConfigurationRepository struct {
	db *gorm.DB
}

// NewGormConfigurationRepository creates a new GormConfigurationRepository
func NewGormConfigurationRepository(db *gorm.DB) *GormConfigurationRepository {
	return &GormConfigurationRepository{db: db}
}

// FindByID finds a configuration by ID
func (r *GormConfigurationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductConfiguration, error) {
	var cfg catalog.ProductConfiguration
	if err := r.db.WithContext(ctx).First(&cfg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// FindByProduct finds all configurations of a product ordered by sequence
func (r *GormConfigurationRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductConfiguration, error) {
	var cfgs []catalog.ProductConfiguration
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("seq ASC").
		Find(&cfgs).Error; err != nil {
		return nil, err
	}
	return cfgs, nil
}

// FindByProductAndSpec resolves a specification to a configuration of the
// product, filtering by every attribute present in the spec
func (r *GormConfigurationRepository) FindByProductAndSpec(ctx context.Context, productID uuid.UUID, spec catalog.Specification) (*catalog.ProductConfiguration, error) {
	return r.findBySpec(ctx, r.db, productID, spec)
}

// FindByProductAndSpecForUpdate behaves like FindByProductAndSpec but acquires
// a row lock so concurrent quantity movements against the same configuration
// serialize for the duration of the surrounding transaction
func (r *GormConfigurationRepository) FindByProductAndSpecForUpdate(ctx context.Context, productID uuid.UUID, spec catalog.Specification) (*catalog.ProductConfiguration, error) {
	locked := r.db.Clauses(clause.Locking{Strength: "UPDATE"})
	return r.findBySpec(ctx, locked, productID, spec)
}

func (r *GormConfigurationRepository) findBySpec(ctx context.Context, db *gorm.DB, productID uuid.UUID, spec catalog.Specification) (*catalog.ProductConfiguration, error) {
	if spec.IsEmpty() {
		return nil, shared.ErrNotFound
	}

	query := db.WithContext(ctx).Where("product_id = ?", productID)
	for column, value := range spec.Attributes() {
		query = query.Where(column+" = ?", value)
	}

	var cfg catalog.ProductConfiguration
	if err := query.Order("seq ASC").First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// Save persists a configuration
func (r *GormConfigurationRepository) Save(ctx context.Context, configuration *catalog.ProductConfiguration) error {
	return r.db.WithContext(ctx).Save(configuration).Error
}

// Ensure GormConfigurationRepository implements ConfigurationRepository
var _ catalog.ConfigurationRepository = (*GormConfigurationRepository)(nil)
