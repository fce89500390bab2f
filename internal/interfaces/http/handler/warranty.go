package handler

import (
	"github.com/gin-gonic/gin"

	warrantyapp "github.com/laptechvn/backend/internal/application/warranty"
)

// WarrantyHandler handles warranty and repair ticket endpoints
type WarrantyHandler struct {
	BaseHandler
	ticketService *warrantyapp.TicketService
}

// NewWarrantyHandler creates a new WarrantyHandler
func NewWarrantyHandler(ticketService *warrantyapp.TicketService) *WarrantyHandler {
	return &WarrantyHandler{ticketService: ticketService}
}

// List returns a paginated ticket listing with type, status and customer filters
func (h *WarrantyHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	addStringFilter(c, &filter, "type", "type")
	addStringFilter(c, &filter, "status", "status")
	if err := addUUIDFilter(c, &filter, "customer_id", "customer_id"); err != nil {
		h.BadRequest(c, "Invalid customer_id filter")
		return
	}

	result, err := h.ticketService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single ticket by ID
func (h *WarrantyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ticket ID")
		return
	}
	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, ticket)
}

// CreateWarranty opens a free warranty ticket for a sold unit still under
// warranty
func (h *WarrantyHandler) CreateWarranty(c *gin.Context) {
	var req warrantyapp.CreateWarrantyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	ticket, err := h.ticketService.CreateWarranty(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, ticket)
}

// CreateRepair opens a paid repair ticket, creating a walk-in customer
// inline when needed
func (h *WarrantyHandler) CreateRepair(c *gin.Context) {
	var req warrantyapp.CreateRepairTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	ticket, err := h.ticketService.CreateRepair(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, ticket)
}

// Transition moves a ticket through its service lifecycle
func (h *WarrantyHandler) Transition(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ticket ID")
		return
	}
	var req warrantyapp.TransitionTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	ticket, err := h.ticketService.Transition(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, ticket)
}

// UpdateFee changes the fee on a repair ticket that has not been returned
func (h *WarrantyHandler) UpdateFee(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid ticket ID")
		return
	}
	var req warrantyapp.UpdateTicketFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	ticket, err := h.ticketService.UpdateFee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, ticket)
}
