package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// SaleInvoiceItemRequest represents one line item in an invoice request.
// The unit price is resolved from the matched configuration, after any
// applicable promotion.
type SaleInvoiceItemRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	Specification string    `json:"specification" binding:"required,spec"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
}

// CreateSaleInvoiceRequest represents a request to create a sale invoice
type CreateSaleInvoiceRequest struct {
	CustomerID      uuid.UUID                `json:"customer_id" binding:"required"`
	PromotionID     *uuid.UUID               `json:"promotion_id"`
	ShippingAddress string                   `json:"shipping_address" binding:"max=500"`
	Note            string                   `json:"note" binding:"max=500"`
	Items           []SaleInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	EmployeeID      *uuid.UUID               `json:"-"`
}

// UpdateInvoiceStatusRequest represents a request to move an invoice through
// the order-management statuses
type UpdateInvoiceStatusRequest struct {
	Status     string     `json:"status" binding:"required,oneof=PENDING PROCESSING AWAITING_SHIPMENT SHIPPING COMPLETED CANCELLED"`
	EmployeeID *uuid.UUID `json:"-"`
}

// CancelInvoiceRequest represents a request to cancel an invoice
type CancelInvoiceRequest struct {
	Reason     string     `json:"reason" binding:"required,max=255"`
	EmployeeID *uuid.UUID `json:"-"`
}

// SaleInvoiceItemResponse represents an invoice line item in API responses
type SaleInvoiceItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ConfigurationID uuid.UUID       `json:"configuration_id"`
	ProductName     string          `json:"product_name"`
	Specification   string          `json:"specification"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Amount          decimal.Decimal `json:"amount"`
}

// SaleInvoiceResponse represents a sale invoice in API responses
type SaleInvoiceResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Code           string                    `json:"code"`
	CustomerID     uuid.UUID                 `json:"customer_id"`
	CustomerName   string                    `json:"customer_name"`
	EmployeeID     *uuid.UUID                `json:"employee_id,omitempty"`
	PromotionID    *uuid.UUID                `json:"promotion_id,omitempty"`
	Status         string                    `json:"status"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	DiscountAmount decimal.Decimal           `json:"discount_amount"`
	PayableAmount  decimal.Decimal           `json:"payable_amount"`
	ShippingAddr   string                    `json:"shipping_address,omitempty"`
	Note           string                    `json:"note,omitempty"`
	CancelReason   string                    `json:"cancel_reason,omitempty"`
	ProcessedAt    *time.Time                `json:"processed_at,omitempty"`
	ShippedAt      *time.Time                `json:"shipped_at,omitempty"`
	CompletedAt    *time.Time                `json:"completed_at,omitempty"`
	CancelledAt    *time.Time                `json:"cancelled_at,omitempty"`
	Items          []SaleInvoiceItemResponse `json:"items"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
	Version        int                       `json:"version"`
}

// ToSaleInvoiceResponse converts a SaleInvoice to its response representation
func ToSaleInvoiceResponse(invoice *sales.SaleInvoice) SaleInvoiceResponse {
	items := make([]SaleInvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, SaleInvoiceItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ConfigurationID: item.ConfigurationID,
			ProductName:     item.ProductName,
			Specification:   item.Specification,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			Amount:          item.Amount,
		})
	}
	return SaleInvoiceResponse{
		ID:             invoice.ID,
		Code:           invoice.Code,
		CustomerID:     invoice.CustomerID,
		CustomerName:   invoice.CustomerName,
		EmployeeID:     invoice.EmployeeID,
		PromotionID:    invoice.PromotionID,
		Status:         invoice.Status.String(),
		TotalAmount:    invoice.TotalAmount,
		DiscountAmount: invoice.DiscountAmount,
		PayableAmount:  invoice.PayableAmount,
		ShippingAddr:   invoice.ShippingAddr,
		Note:           invoice.Note,
		CancelReason:   invoice.CancelReason,
		ProcessedAt:    invoice.ProcessedAt,
		ShippedAt:      invoice.ShippedAt,
		CompletedAt:    invoice.CompletedAt,
		CancelledAt:    invoice.CancelledAt,
		Items:          items,
		CreatedAt:      invoice.CreatedAt,
		UpdatedAt:      invoice.UpdatedAt,
		Version:        invoice.Version,
	}
}
