package handler

import (
	"github.com/gin-gonic/gin"

	stockapp "github.com/laptechvn/backend/internal/application/stock"
)

// StockExportHandler handles stock export endpoints
type StockExportHandler struct {
	BaseHandler
	exportService *stockapp.StockExportService
}

// NewStockExportHandler creates a new StockExportHandler
func NewStockExportHandler(exportService *stockapp.StockExportService) *StockExportHandler {
	return &StockExportHandler{exportService: exportService}
}

// List returns a paginated export listing with status, invoice and
// date-range filters
func (h *StockExportHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	addStringFilter(c, &filter, "status", "status")
	if err := addUUIDFilter(c, &filter, "invoice_id", "invoice_id"); err != nil {
		h.BadRequest(c, "Invalid invoice_id filter")
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

	result, err := h.exportService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single export by ID
func (h *StockExportHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid export ID")
		return
	}
	export, err := h.exportService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, export)
}

// GetByInvoice returns the export linked to an invoice
func (h *StockExportHandler) GetByInvoice(c *gin.Context) {
	invoiceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	export, err := h.exportService.GetByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, export)
}

// Create creates a pending stock export. Stock is not consumed until the
// export transitions to completed.
func (h *StockExportHandler) Create(c *gin.Context) {
	var req stockapp.CreateStockExportRequest
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

	export, err := h.exportService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, export)
}

// Transition moves an export between pending and completed. Completing
// consumes stock oldest-first; reopening restores it.
func (h *StockExportHandler) Transition(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid export ID")
		return
	}
	var req stockapp.TransitionStockExportRequest
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

	export, err := h.exportService.Transition(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, export)
}

// Update replaces a pending export's detail lines
func (h *StockExportHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid export ID")
		return
	}
	var req stockapp.UpdateStockExportRequest
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

	export, err := h.exportService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, export)
}

// Delete removes a pending export. Completed exports must be reopened first.
func (h *StockExportHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid export ID")
		return
	}
	if err := h.exportService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
