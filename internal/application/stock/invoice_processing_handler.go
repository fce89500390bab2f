package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InvoiceProcessingHandler creates the backing stock export when a sale
// invoice enters PROCESSING. Creation is idempotent: an invoice that already
// has an export keeps it, re-delivered events are no-ops.
type InvoiceProcessingHandler struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewInvoiceProcessingHandler creates a new handler for invoice processing events
func NewInvoiceProcessingHandler(scope TransactionScope, logger *zap.Logger) *InvoiceProcessingHandler {
	return &InvoiceProcessingHandler{
		scope:  scope,
		logger: logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *InvoiceProcessingHandler) EventTypes() []string {
	return []string{sales.EventTypeSaleInvoiceProcessing}
}

// Handle processes a SaleInvoiceProcessingEvent
func (h *InvoiceProcessingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	processingEvent, ok := event.(*sales.SaleInvoiceProcessingEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", sales.EventTypeSaleInvoiceProcessing),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			sales.EventTypeSaleInvoiceProcessing, event.EventType())
	}

	return h.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.ExportRepo().FindByInvoiceID(ctx, processingEvent.InvoiceID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			h.logger.Info("stock export already exists for invoice, skipping creation",
				zap.String("invoice_id", processingEvent.InvoiceID.String()),
				zap.String("export_code", existing.Code),
			)
			return nil
		}

		code, err := repos.ExportRepo().GenerateCode(ctx)
		if err != nil {
			return err
		}

		invoiceID := processingEvent.InvoiceID
		export, err := stock.NewStockExport(code, &invoiceID)
		if err != nil {
			return err
		}
		export.SetNote(fmt.Sprintf("Created for invoice %s", processingEvent.InvoiceCode))

		for _, item := range processingEvent.Items {
			unitPrice, err := decimal.NewFromString(item.UnitPrice)
			if err != nil {
				return fmt.Errorf("invalid unit price %q on invoice %s: %w",
					item.UnitPrice, processingEvent.InvoiceCode, err)
			}
			if _, err := export.AddDetail(item.ProductID, item.ConfigurationID, item.Specification, item.Quantity, unitPrice); err != nil {
				return err
			}
		}

		if err := repos.ExportRepo().Save(ctx, export); err != nil {
			return err
		}

		h.logger.Info("stock export created for invoice",
			zap.String("invoice_id", processingEvent.InvoiceID.String()),
			zap.String("invoice_code", processingEvent.InvoiceCode),
			zap.String("export_code", export.Code),
		)
		return nil
	})
}

// Ensure InvoiceProcessingHandler implements shared.EventHandler
var _ shared.EventHandler = (*InvoiceProcessingHandler)(nil)
