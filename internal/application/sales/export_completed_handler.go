package sales

import (
	"context"
	"fmt"

	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
	"go.uber.org/zap"
)

// ExportCompletedHandler advances a PROCESSING invoice to AWAITING_SHIPMENT
// when its backing stock export completes. Exports without an invoice, and
// invoices no longer in PROCESSING, are skipped.
type ExportCompletedHandler struct {
	invoiceRepo sales.SaleInvoiceRepository
	logger      *zap.Logger
}

// NewExportCompletedHandler creates a new handler for export completion events
func NewExportCompletedHandler(invoiceRepo sales.SaleInvoiceRepository, logger *zap.Logger) *ExportCompletedHandler {
	return &ExportCompletedHandler{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ExportCompletedHandler) EventTypes() []string {
	return []string{stock.EventTypeStockExportCompleted}
}

// Handle processes a StockExportCompletedEvent
func (h *ExportCompletedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	completedEvent, ok := event.(*stock.StockExportCompletedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", stock.EventTypeStockExportCompleted),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			stock.EventTypeStockExportCompleted, event.EventType())
	}

	if completedEvent.InvoiceID == nil {
		return nil
	}

	invoice, err := h.invoiceRepo.FindByID(ctx, *completedEvent.InvoiceID)
	if err != nil {
		return err
	}

	if !invoice.IsProcessing() {
		h.logger.Info("invoice not in processing status, skipping advance",
			zap.String("invoice_code", invoice.Code),
			zap.String("status", invoice.Status.String()),
			zap.String("export_code", completedEvent.ExportCode),
		)
		return nil
	}

	if err := invoice.TransitionTo(sales.InvoiceStatusAwaitingShipment); err != nil {
		return err
	}

	if err := h.invoiceRepo.Save(ctx, invoice); err != nil {
		return err
	}

	h.logger.Info("invoice advanced to awaiting shipment",
		zap.String("invoice_code", invoice.Code),
		zap.String("export_code", completedEvent.ExportCode),
	)
	return nil
}

// Ensure ExportCompletedHandler implements shared.EventHandler
var _ shared.EventHandler = (*ExportCompletedHandler)(nil)
