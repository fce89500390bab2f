package sales

import (
	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// Event types for the sales context
const (
	EventTypeSaleInvoiceProcessing = "sales.invoice.processing"
)

// SaleInvoiceProcessingItem carries one invoice line into the event payload
type SaleInvoiceProcessingItem struct {
	ProductID       uuid.UUID `json:"product_id"`
	ConfigurationID uuid.UUID `json:"configuration_id"`
	Specification   string    `json:"specification"`
	Quantity        int       `json:"quantity"`
	UnitPrice       string    `json:"unit_price"`
}

// SaleInvoiceProcessingEvent is emitted on the first transition into
// PROCESSING. The stock context consumes it to create the backing stock
// export mirroring the invoice's line items.
type SaleInvoiceProcessingEvent struct {
	shared.BaseDomainEvent
	InvoiceID   uuid.UUID                   `json:"invoice_id"`
	InvoiceCode string                      `json:"invoice_code"`
	CustomerID  uuid.UUID                   `json:"customer_id"`
	Items       []SaleInvoiceProcessingItem `json:"items"`
}

// NewSaleInvoiceProcessingEvent creates a new SaleInvoiceProcessingEvent
func NewSaleInvoiceProcessingEvent(invoice *SaleInvoice) *SaleInvoiceProcessingEvent {
	items := make([]SaleInvoiceProcessingItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, SaleInvoiceProcessingItem{
			ProductID:       item.ProductID,
			ConfigurationID: item.ConfigurationID,
			Specification:   item.Specification,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice.String(),
		})
	}

	return &SaleInvoiceProcessingEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleInvoiceProcessing, "SaleInvoice", invoice.ID),
		InvoiceID:       invoice.ID,
		InvoiceCode:     invoice.Code,
		CustomerID:      invoice.CustomerID,
		Items:           items,
	}
}
