package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of a sale invoice
type InvoiceStatus string

const (
	InvoiceStatusPending          InvoiceStatus = "PENDING"
	InvoiceStatusProcessing       InvoiceStatus = "PROCESSING"
	InvoiceStatusAwaitingShipment InvoiceStatus = "AWAITING_SHIPMENT"
	InvoiceStatusShipping         InvoiceStatus = "SHIPPING"
	InvoiceStatusCompleted        InvoiceStatus = "COMPLETED"
	InvoiceStatusCancelled        InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusProcessing, InvoiceStatusAwaitingShipment,
		InvoiceStatusShipping, InvoiceStatusCompleted, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status rejects further updates
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusCompleted || s == InvoiceStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusPending:
		return target == InvoiceStatusProcessing || target == InvoiceStatusCancelled
	case InvoiceStatusProcessing:
		return target == InvoiceStatusAwaitingShipment || target == InvoiceStatusCancelled
	case InvoiceStatusAwaitingShipment:
		return target == InvoiceStatusShipping
	case InvoiceStatusShipping:
		return target == InvoiceStatusCompleted
	case InvoiceStatusCompleted, InvoiceStatusCancelled:
		return false // Terminal states
	}
	return false
}

// SaleInvoiceItem represents a line item in a sale invoice
type SaleInvoiceItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	ConfigurationID uuid.UUID `gorm:"type:uuid;not null"`
	ProductName     string    `gorm:"size:200;not null"`
	Specification   string    `gorm:"size:255;not null"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (SaleInvoiceItem) TableName() string {
	return "sale_invoice_items"
}

// NewSaleInvoiceItem creates a new invoice line item
func NewSaleInvoiceItem(invoiceID, productID, configurationID uuid.UUID, productName, specification string, quantity int, unitPrice decimal.Decimal) (*SaleInvoiceItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if configurationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONFIGURATION", "Configuration ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &SaleInvoiceItem{
		ID:              uuid.New(),
		InvoiceID:       invoiceID,
		ProductID:       productID,
		ConfigurationID: configurationID,
		ProductName:     productName,
		Specification:   specification,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		Amount:          unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// SaleInvoice represents a customer order moving through the fulfillment
// pipeline. The first transition into PROCESSING creates the backing stock
// export; completion of that export advances the invoice to
// AWAITING_SHIPMENT. Both couplings run through domain events.
type SaleInvoice struct {
	shared.BaseAggregateRoot
	Code           string        `gorm:"size:30;not null;uniqueIndex"`
	CustomerID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	CustomerName   string        `gorm:"size:200;not null"`
	EmployeeID     *uuid.UUID    `gorm:"type:uuid;index"`
	PromotionID    *uuid.UUID    `gorm:"type:uuid"`
	Status         InvoiceStatus `gorm:"size:30;not null;default:'PENDING'"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PayableAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ShippingAddr   string          `gorm:"size:500"`
	Note           string          `gorm:"size:500"`
	CancelReason   string          `gorm:"size:255"`
	ProcessedAt    *time.Time
	ShippedAt      *time.Time
	CompletedAt    *time.Time
	CancelledAt    *time.Time

	Items []SaleInvoiceItem `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (SaleInvoice) TableName() string {
	return "sale_invoices"
}

// NewSaleInvoice creates a new sale invoice in PENDING status
func NewSaleInvoice(code string, customerID uuid.UUID, customerName string) (*SaleInvoice, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Invoice code cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &SaleInvoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		CustomerID:        customerID,
		CustomerName:      customerName,
		Status:            InvoiceStatusPending,
		TotalAmount:       decimal.Zero,
		DiscountAmount:    decimal.Zero,
		PayableAmount:     decimal.Zero,
		Items:             make([]SaleInvoiceItem, 0),
	}, nil
}

// SetEmployee records the acting employee for audit purposes
func (inv *SaleInvoice) SetEmployee(employeeID uuid.UUID) {
	if employeeID == uuid.Nil {
		return
	}
	inv.EmployeeID = &employeeID
}

// SetShippingAddress sets the delivery address
func (inv *SaleInvoice) SetShippingAddress(addr string) {
	inv.ShippingAddr = addr
	inv.UpdatedAt = time.Now()
}

// SetNote sets the free-text note
func (inv *SaleInvoice) SetNote(note string) {
	inv.Note = note
	inv.UpdatedAt = time.Now()
}

// AddItem adds a line item. Only allowed while the invoice is PENDING.
func (inv *SaleInvoice) AddItem(productID, configurationID uuid.UUID, productName, specification string, quantity int, unitPrice decimal.Decimal) (*SaleInvoiceItem, error) {
	if inv.Status != InvoiceStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending invoice")
	}

	item, err := NewSaleInvoiceItem(inv.ID, productID, configurationID, productName, specification, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	inv.Items = append(inv.Items, *item)
	inv.recalculateTotals()
	inv.UpdatedAt = time.Now()

	return item, nil
}

// ApplyPromotion applies a promotion discount to the invoice total.
// Only allowed while the invoice is PENDING.
func (inv *SaleInvoice) ApplyPromotion(promotionID uuid.UUID, discountAmount decimal.Decimal) error {
	if inv.Status != InvoiceStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot apply promotion to a non-pending invoice")
	}
	if discountAmount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discountAmount.GreaterThan(inv.TotalAmount) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed total amount")
	}

	inv.PromotionID = &promotionID
	inv.DiscountAmount = discountAmount
	inv.PayableAmount = inv.TotalAmount.Sub(discountAmount)
	inv.UpdatedAt = time.Now()

	return nil
}

// TransitionTo moves the invoice to the target status, enforcing the
// transition table. The delivery sub-flow (AWAITING_SHIPMENT onwards) has its
// own entry points; this method covers the order-management transitions.
func (inv *SaleInvoice) TransitionTo(target InvoiceStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown invoice status %q", target))
	}
	if inv.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Invoice in terminal status %s cannot be updated", inv.Status))
	}
	if !inv.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition invoice from %s to %s", inv.Status, target))
	}

	switch target {
	case InvoiceStatusProcessing:
		return inv.markProcessing()
	case InvoiceStatusAwaitingShipment:
		return inv.markAwaitingShipment()
	case InvoiceStatusShipping:
		return inv.StartShipping()
	case InvoiceStatusCompleted:
		return inv.CompleteDelivery()
	case InvoiceStatusCancelled:
		return shared.NewDomainError("INVALID_STATE", "Use Cancel with a reason to cancel an invoice")
	}
	return nil
}

// markProcessing moves PENDING -> PROCESSING and emits the event that
// triggers stock-export creation
func (inv *SaleInvoice) markProcessing() error {
	if len(inv.Items) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Cannot process an invoice without items")
	}

	now := time.Now()
	inv.Status = InvoiceStatusProcessing
	inv.ProcessedAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	inv.AddDomainEvent(NewSaleInvoiceProcessingEvent(inv))

	return nil
}

// markAwaitingShipment moves PROCESSING -> AWAITING_SHIPMENT; driven by the
// completion of the backing stock export
func (inv *SaleInvoice) markAwaitingShipment() error {
	inv.Status = InvoiceStatusAwaitingShipment
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
	return nil
}

// StartShipping moves AWAITING_SHIPMENT -> SHIPPING (delivery sub-flow)
func (inv *SaleInvoice) StartShipping() error {
	if inv.Status != InvoiceStatusAwaitingShipment {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot start shipping an invoice in %s status", inv.Status))
	}

	now := time.Now()
	inv.Status = InvoiceStatusShipping
	inv.ShippedAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	return nil
}

// CompleteDelivery moves SHIPPING -> COMPLETED (delivery sub-flow).
// A direct jump from AWAITING_SHIPMENT is rejected.
func (inv *SaleInvoice) CompleteDelivery() error {
	if inv.Status != InvoiceStatusShipping {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot complete delivery of an invoice in %s status", inv.Status))
	}

	now := time.Now()
	inv.Status = InvoiceStatusCompleted
	inv.CompletedAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	return nil
}

// Cancel cancels the invoice. Allowed only before fulfillment starts.
func (inv *SaleInvoice) Cancel(reason string) error {
	if !inv.Status.CanTransitionTo(InvoiceStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel an invoice in %s status", inv.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}

	now := time.Now()
	inv.Status = InvoiceStatusCancelled
	inv.CancelReason = reason
	inv.CancelledAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	return nil
}

func (inv *SaleInvoice) recalculateTotals() {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Amount)
	}
	inv.TotalAmount = total
	inv.PayableAmount = total.Sub(inv.DiscountAmount)
	if inv.PayableAmount.IsNegative() {
		inv.DiscountAmount = inv.TotalAmount
		inv.PayableAmount = decimal.Zero
	}
}

// IsProcessing reports whether the invoice is in PROCESSING status
func (inv *SaleInvoice) IsProcessing() bool {
	return inv.Status == InvoiceStatusProcessing
}

// ItemCount returns the number of line items
func (inv *SaleInvoice) ItemCount() int {
	return len(inv.Items)
}
