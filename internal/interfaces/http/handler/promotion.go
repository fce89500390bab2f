package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/laptechvn/backend/internal/application/catalog"
)

// PromotionHandler handles promotion endpoints
type PromotionHandler struct {
	BaseHandler
	promotionService *catalogapp.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(promotionService *catalogapp.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// List returns a paginated promotion listing
func (h *PromotionHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := addBoolFilter(c, &filter, "active", "active"); err != nil {
		h.BadRequest(c, "Invalid active filter")
		return
	}
	if err := addUUIDFilter(c, &filter, "product_id", "product_id"); err != nil {
		h.BadRequest(c, "Invalid product_id filter")
		return
	}

	result, err := h.promotionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single promotion by ID
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}
	promotion, err := h.promotionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promotion)
}

// ListCurrentForProduct returns the promotions applicable to a product right now
func (h *PromotionHandler) ListCurrentForProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	promotions, err := h.promotionService.ListCurrentForProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promotions)
}

// Create creates a promotion
func (h *PromotionHandler) Create(c *gin.Context) {
	var req catalogapp.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	promotion, err := h.promotionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, promotion)
}

// Update updates a promotion
func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}
	var req catalogapp.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	promotion, err := h.promotionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promotion)
}

// Deactivate ends a promotion early
func (h *PromotionHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}
	if err := h.promotionService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
