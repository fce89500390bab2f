package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// PromotionService handles promotion business operations
type PromotionService struct {
	promotionRepo catalog.PromotionRepository
	productRepo   catalog.ProductRepository
}

// NewPromotionService creates a new PromotionService
func NewPromotionService(promotionRepo catalog.PromotionRepository, productRepo catalog.ProductRepository) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		productRepo:   productRepo,
	}
}

// GetByID retrieves a promotion by ID
func (s *PromotionService) GetByID(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPromotionResponse(promotion)
	return &response, nil
}

// List retrieves promotions with filtering and pagination
func (s *PromotionService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[PromotionResponse], error) {
	promotions, err := s.promotionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.promotionRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PromotionResponse, 0, len(promotions))
	for idx := range promotions {
		items = append(items, ToPromotionResponse(&promotions[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListCurrentForProduct retrieves the promotions applicable to a product right now
func (s *PromotionService) ListCurrentForProduct(ctx context.Context, productID uuid.UUID) ([]PromotionResponse, error) {
	promotions, err := s.promotionRepo.FindCurrentForProduct(ctx, productID, time.Now())
	if err != nil {
		return nil, err
	}

	items := make([]PromotionResponse, 0, len(promotions))
	for idx := range promotions {
		items = append(items, ToPromotionResponse(&promotions[idx]))
	}
	return items, nil
}

// Create creates a new promotion. A product-scoped promotion requires the
// product to exist.
func (s *PromotionService) Create(ctx context.Context, req PromotionRequest) (*PromotionResponse, error) {
	if req.ProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
	}

	promotion, err := catalog.NewPromotion(req.Name, req.Description, req.DiscountPercent, req.ProductID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.promotionRepo.Save(ctx, promotion); err != nil {
		return nil, err
	}

	response := ToPromotionResponse(promotion)
	return &response, nil
}

// Update changes a promotion's fields
func (s *PromotionService) Update(ctx context.Context, id uuid.UUID, req PromotionRequest) (*PromotionResponse, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := promotion.Update(req.Name, req.Description, req.DiscountPercent, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	if err := s.promotionRepo.Save(ctx, promotion); err != nil {
		return nil, err
	}

	response := ToPromotionResponse(promotion)
	return &response, nil
}

// Deactivate soft-deletes a promotion
func (s *PromotionService) Deactivate(ctx context.Context, id uuid.UUID) error {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	promotion.Deactivate()

	return s.promotionRepo.Save(ctx, promotion)
}
