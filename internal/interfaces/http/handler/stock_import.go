package handler

import (
	"github.com/gin-gonic/gin"

	stockapp "github.com/laptechvn/backend/internal/application/stock"
)

// StockImportHandler handles stock import endpoints
type StockImportHandler struct {
	BaseHandler
	importService *stockapp.StockImportService
}

// NewStockImportHandler creates a new StockImportHandler
func NewStockImportHandler(importService *stockapp.StockImportService) *StockImportHandler {
	return &StockImportHandler{importService: importService}
}

// List returns a paginated import listing with supplier and date-range filters
func (h *StockImportHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := addUUIDFilter(c, &filter, "supplier_id", "supplier_id"); err != nil {
		h.BadRequest(c, "Invalid supplier_id filter")
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

	result, err := h.importService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single import by ID
func (h *StockImportHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid import ID")
		return
	}
	imp, err := h.importService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, imp)
}

// Create records a stock import. Quantities are credited and serials are
// generated for every received unit.
func (h *StockImportHandler) Create(c *gin.Context) {
	var req stockapp.CreateStockImportRequest
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

	imp, err := h.importService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, imp)
}

// Update replaces an import's detail lines. The old lines' stock effects are
// reversed before the new lines are applied, all within one transaction.
func (h *StockImportHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid import ID")
		return
	}
	var req stockapp.UpdateStockImportRequest
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

	imp, err := h.importService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, imp)
}

// Delete removes an import and reverses its stock effects. Fails if any of
// the import's units have already been sold.
func (h *StockImportHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid import ID")
		return
	}
	if err := h.importService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
