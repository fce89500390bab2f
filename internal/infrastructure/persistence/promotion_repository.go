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

// GormPromotionRepository implements catalog.PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by ID
func (r *GormPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Promotion, error) {
	var promotion catalog.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

// FindAll finds promotions matching the filter
func (r *GormPromotionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Promotion, error) {
	var promotions []catalog.Promotion
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Promotion{}), filter)
	query = applyListOptions(query, filter, PromotionSortFields)

	if err := query.Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Count counts promotions matching the filter
func (r *GormPromotionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Promotion{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindCurrentForProduct finds active promotions covering the product at time t,
// including storewide promotions with no product scope
func (r *GormPromotionRepository) FindCurrentForProduct(ctx context.Context, productID uuid.UUID, t time.Time) ([]catalog.Promotion, error) {
	var promotions []catalog.Promotion
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("start_date <= ? AND end_date >= ?", t, t).
		Where("product_id IS NULL OR product_id = ?", productID).
		Order("discount_percent DESC").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Save persists a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, promotion *catalog.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *GormPromotionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		}
	}

	return query
}

// Ensure GormPromotionRepository implements PromotionRepository
var _ catalog.PromotionRepository = (*GormPromotionRepository)(nil)
