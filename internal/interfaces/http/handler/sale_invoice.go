package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	salesapp "github.com/laptechvn/backend/internal/application/sales"
)

// SaleInvoiceHandler handles sale invoice endpoints
type SaleInvoiceHandler struct {
	BaseHandler
	invoiceService *salesapp.SaleInvoiceService
}

// NewSaleInvoiceHandler creates a new SaleInvoiceHandler
func NewSaleInvoiceHandler(invoiceService *salesapp.SaleInvoiceService) *SaleInvoiceHandler {
	return &SaleInvoiceHandler{invoiceService: invoiceService}
}

// actingEmployee reads the optional acting-employee header into a pointer
// suitable for request DTOs.
func actingEmployee(c *gin.Context) (*uuid.UUID, bool) {
	id, err := getEmployeeID(c)
	if err != nil {
		return nil, false
	}
	if id == uuid.Nil {
		return nil, true
	}
	return &id, true
}

// List returns a paginated invoice listing. Supports search over code and
// customer name, plus status, customer and date-range filters.
func (h *SaleInvoiceHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	addStringFilter(c, &filter, "status", "status")
	if err := addUUIDFilter(c, &filter, "customer_id", "customer_id"); err != nil {
		h.BadRequest(c, "Invalid customer_id filter")
		return
	}
	if err := addDateFilter(c, &filter, "from_date", "from_date"); err != nil {
		h.BadRequest(c, "Invalid from_date filter")
		return
	}
	if err := addDateFilter(c, &filter, "to_date", "to_date"); err != nil {
		h.BadRequest(c, "Invalid to_date filter")
		return
	}

	result, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single invoice by ID
func (h *SaleInvoiceHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Create creates an invoice. Line prices are resolved from the matched
// configurations, with any applicable promotion applied.
func (h *SaleInvoiceHandler) Create(c *gin.Context) {
	var req salesapp.CreateSaleInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employeeID, ok := actingEmployee(c)
	if !ok {
		h.BadRequest(c, "Invalid X-Employee-Id header")
		return
	}
	req.EmployeeID = employeeID

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, invoice)
}

// UpdateStatus moves an invoice to an explicit status, subject to the
// transition rules
func (h *SaleInvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	var req salesapp.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employeeID, ok := actingEmployee(c)
	if !ok {
		h.BadRequest(c, "Invalid X-Employee-Id header")
		return
	}
	req.EmployeeID = employeeID

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Ship moves an invoice from awaiting shipment to shipping
func (h *SaleInvoiceHandler) Ship(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	invoice, err := h.invoiceService.StartShipping(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Deliver completes a shipping invoice
func (h *SaleInvoiceHandler) Deliver(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	invoice, err := h.invoiceService.CompleteDelivery(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}

// Cancel cancels an invoice with a reason. A linked stock export is
// cancelled alongside, restoring any consumed stock.
func (h *SaleInvoiceHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	var req salesapp.CancelInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employeeID, ok := actingEmployee(c)
	if !ok {
		h.BadRequest(c, "Invalid X-Employee-Id header")
		return
	}
	req.EmployeeID = employeeID

	invoice, err := h.invoiceService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoice)
}
