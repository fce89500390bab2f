package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// StockLineRequest represents one detail line in an import or export request.
// The specification is free text and accepts both the labeled form
// ("CPU: Intel, RAM: 8GB") and the positional form ("Intel / 8GB / 256GB / NVIDIA").
type StockLineRequest struct {
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	Specification string          `json:"specification" binding:"required,spec"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

// CreateStockImportRequest represents a request to create a stock import
type CreateStockImportRequest struct {
	SupplierID uuid.UUID          `json:"supplier_id" binding:"required"`
	ImportDate *time.Time         `json:"import_date"`
	Note       string             `json:"note" binding:"max=500"`
	Details    []StockLineRequest `json:"details" binding:"required,min=1,dive"`
	EmployeeID *uuid.UUID         `json:"-"`
}

// UpdateStockImportRequest represents a request to update a stock import.
// The detail lines fully replace the existing ones; the inventory effects of
// the old lines are reversed before the new lines are applied.
type UpdateStockImportRequest struct {
	SupplierID uuid.UUID          `json:"supplier_id" binding:"required"`
	ImportDate *time.Time         `json:"import_date"`
	Note       string             `json:"note" binding:"max=500"`
	Details    []StockLineRequest `json:"details" binding:"required,min=1,dive"`
	EmployeeID *uuid.UUID         `json:"-"`
}

// CreateStockExportRequest represents a request to create a stock export
type CreateStockExportRequest struct {
	InvoiceID  *uuid.UUID         `json:"invoice_id"`
	Note       string             `json:"note" binding:"max=500"`
	Details    []StockLineRequest `json:"details" binding:"required,min=1,dive"`
	EmployeeID *uuid.UUID         `json:"-"`
}

// UpdateStockExportRequest represents a request to replace the detail lines
// of a stock export
type UpdateStockExportRequest struct {
	Note       string             `json:"note" binding:"max=500"`
	Details    []StockLineRequest `json:"details" binding:"required,min=1,dive"`
	EmployeeID *uuid.UUID         `json:"-"`
}

// TransitionStockExportRequest represents a request to change an export's status
type TransitionStockExportRequest struct {
	Status     string     `json:"status" binding:"required,oneof=PENDING COMPLETED"`
	ExportDate *time.Time `json:"export_date"`
	EmployeeID *uuid.UUID `json:"-"`
}

// StockDetailResponse represents an import or export detail line in API responses
type StockDetailResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ConfigurationID uuid.UUID       `json:"configuration_id"`
	Specification   string          `json:"specification"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Amount          decimal.Decimal `json:"amount"`
}

// StockImportResponse represents a stock import in API responses
type StockImportResponse struct {
	ID            uuid.UUID             `json:"id"`
	Code          string                `json:"code"`
	SupplierID    uuid.UUID             `json:"supplier_id"`
	EmployeeID    *uuid.UUID            `json:"employee_id,omitempty"`
	ImportDate    time.Time             `json:"import_date"`
	Note          string                `json:"note,omitempty"`
	TotalCost     decimal.Decimal       `json:"total_cost"`
	TotalQuantity int                   `json:"total_quantity"`
	Details       []StockDetailResponse `json:"details"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Version       int                   `json:"version"`
}

// StockExportResponse represents a stock export in API responses
type StockExportResponse struct {
	ID            uuid.UUID             `json:"id"`
	Code          string                `json:"code"`
	InvoiceID     *uuid.UUID            `json:"invoice_id,omitempty"`
	EmployeeID    *uuid.UUID            `json:"employee_id,omitempty"`
	Status        string                `json:"status"`
	ExportDate    *time.Time            `json:"export_date,omitempty"`
	Note          string                `json:"note,omitempty"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	TotalQuantity int                   `json:"total_quantity"`
	Details       []StockDetailResponse `json:"details"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Version       int                   `json:"version"`
}

// ToStockImportResponse converts a StockImport to its response representation
func ToStockImportResponse(imp *stock.StockImport) StockImportResponse {
	details := make([]StockDetailResponse, 0, len(imp.Details))
	for _, d := range imp.Details {
		details = append(details, StockDetailResponse{
			ID:              d.ID,
			ProductID:       d.ProductID,
			ConfigurationID: d.ConfigurationID,
			Specification:   d.Specification,
			Quantity:        d.Quantity,
			UnitPrice:       d.UnitPrice,
			Amount:          d.Amount,
		})
	}
	return StockImportResponse{
		ID:            imp.ID,
		Code:          imp.Code,
		SupplierID:    imp.SupplierID,
		EmployeeID:    imp.EmployeeID,
		ImportDate:    imp.ImportDate,
		Note:          imp.Note,
		TotalCost:     imp.TotalCost,
		TotalQuantity: imp.TotalQuantity(),
		Details:       details,
		CreatedAt:     imp.CreatedAt,
		UpdatedAt:     imp.UpdatedAt,
		Version:       imp.Version,
	}
}

// ToStockExportResponse converts a StockExport to its response representation
func ToStockExportResponse(export *stock.StockExport) StockExportResponse {
	details := make([]StockDetailResponse, 0, len(export.Details))
	for _, d := range export.Details {
		details = append(details, StockDetailResponse{
			ID:              d.ID,
			ProductID:       d.ProductID,
			ConfigurationID: d.ConfigurationID,
			Specification:   d.Specification,
			Quantity:        d.Quantity,
			UnitPrice:       d.UnitPrice,
			Amount:          d.Amount,
		})
	}
	return StockExportResponse{
		ID:            export.ID,
		Code:          export.Code,
		InvoiceID:     export.InvoiceID,
		EmployeeID:    export.EmployeeID,
		Status:        export.Status.String(),
		ExportDate:    export.ExportDate,
		Note:          export.Note,
		TotalAmount:   export.TotalAmount(),
		TotalQuantity: export.TotalQuantity(),
		Details:       details,
		CreatedAt:     export.CreatedAt,
		UpdatedAt:     export.UpdatedAt,
		Version:       export.Version,
	}
}
