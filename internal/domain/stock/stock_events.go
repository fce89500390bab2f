package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// Event types for the stock context
const (
	EventTypeStockExportCompleted = "stock.export.completed"
	EventTypeStockExportReopened  = "stock.export.reopened"
)

// StockExportCompletedEvent is emitted when a stock export transitions to
// COMPLETED. The sales context uses it to advance the originating invoice.
type StockExportCompletedEvent struct {
	shared.BaseDomainEvent
	ExportID   uuid.UUID  `json:"export_id"`
	ExportCode string     `json:"export_code"`
	InvoiceID  *uuid.UUID `json:"invoice_id,omitempty"`
	ExportDate time.Time  `json:"export_date"`
}

// NewStockExportCompletedEvent creates a new StockExportCompletedEvent
func NewStockExportCompletedEvent(export *StockExport) *StockExportCompletedEvent {
	exportDate := time.Now()
	if export.ExportDate != nil {
		exportDate = *export.ExportDate
	}
	return &StockExportCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockExportCompleted, "StockExport", export.ID),
		ExportID:        export.ID,
		ExportCode:      export.Code,
		InvoiceID:       export.InvoiceID,
		ExportDate:      exportDate,
	}
}

// StockExportReopenedEvent is emitted when a completed stock export is
// reverted back to PENDING
type StockExportReopenedEvent struct {
	shared.BaseDomainEvent
	ExportID   uuid.UUID  `json:"export_id"`
	ExportCode string     `json:"export_code"`
	InvoiceID  *uuid.UUID `json:"invoice_id,omitempty"`
}

// NewStockExportReopenedEvent creates a new StockExportReopenedEvent
func NewStockExportReopenedEvent(export *StockExport) *StockExportReopenedEvent {
	return &StockExportReopenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockExportReopened, "StockExport", export.ID),
		ExportID:        export.ID,
		ExportCode:      export.Code,
		InvoiceID:       export.InvoiceID,
	}
}
