package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExportStatus represents the status of a stock export.
// Unlike the sale-invoice chain the transition is bidirectional: a completed
// export can be reopened, which restores the serials it consumed.
type ExportStatus string

const (
	ExportStatusPending   ExportStatus = "PENDING"
	ExportStatusCompleted ExportStatus = "COMPLETED"
)

// IsValid checks if the status is a valid ExportStatus
func (s ExportStatus) IsValid() bool {
	switch s {
	case ExportStatusPending, ExportStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of ExportStatus
func (s ExportStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ExportStatus) CanTransitionTo(target ExportStatus) bool {
	switch s {
	case ExportStatusPending:
		return target == ExportStatusCompleted
	case ExportStatusCompleted:
		return target == ExportStatusPending
	}
	return false
}

// StockExportDetail is one fulfillment line. While the export is PENDING the
// line is inert; once the export completes it consumes `Quantity` serials and
// debits the configuration quantity by the same amount.
type StockExportDetail struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExportID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	ConfigurationID uuid.UUID `gorm:"type:uuid;not null"`
	Specification   string    `gorm:"size:255;not null"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (StockExportDetail) TableName() string {
	return "stock_export_details"
}

// NewStockExportDetail creates a new export detail line
func NewStockExportDetail(exportID, productID, configurationID uuid.UUID, specification string, quantity int, unitPrice decimal.Decimal) (*StockExportDetail, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if configurationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONFIGURATION", "Configuration ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &StockExportDetail{
		ID:              uuid.New(),
		ExportID:        exportID,
		ProductID:       productID,
		ConfigurationID: configurationID,
		Specification:   specification,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		Amount:          unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// StockExport is a fulfillment event, optionally created for a sale invoice.
// No inventory is touched while the export is PENDING; the transition to
// COMPLETED consumes serials and debits quantities, and the reverse
// transition restores them.
type StockExport struct {
	shared.BaseAggregateRoot
	Code       string       `gorm:"size:30;not null;uniqueIndex"`
	InvoiceID  *uuid.UUID   `gorm:"type:uuid;uniqueIndex"`
	EmployeeID *uuid.UUID   `gorm:"type:uuid;index"`
	Status     ExportStatus `gorm:"size:20;not null;default:'PENDING'"`
	ExportDate *time.Time
	Note       string `gorm:"size:500"`

	Details []StockExportDetail `gorm:"foreignKey:ExportID;references:ID"`
}

// TableName returns the table name for GORM
func (StockExport) TableName() string {
	return "stock_exports"
}

// NewStockExport creates a new stock export in PENDING status
func NewStockExport(code string, invoiceID *uuid.UUID) (*StockExport, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Export code cannot be empty")
	}

	return &StockExport{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		InvoiceID:         invoiceID,
		Status:            ExportStatusPending,
		Details:           make([]StockExportDetail, 0),
	}, nil
}

// SetEmployee records the acting employee for audit purposes
func (e *StockExport) SetEmployee(employeeID uuid.UUID) {
	if employeeID == uuid.Nil {
		return
	}
	e.EmployeeID = &employeeID
}

// SetNote sets the free-text note
func (e *StockExport) SetNote(note string) {
	e.Note = note
	e.UpdatedAt = time.Now()
}

// AddDetail adds a fulfillment line to the export
func (e *StockExport) AddDetail(productID, configurationID uuid.UUID, specification string, quantity int, unitPrice decimal.Decimal) (*StockExportDetail, error) {
	detail, err := NewStockExportDetail(e.ID, productID, configurationID, specification, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	e.Details = append(e.Details, *detail)
	e.UpdatedAt = time.Now()

	return detail, nil
}

// ReplaceDetails swaps all detail lines for a new set. The caller must have
// restored the inventory effects of the old lines when the export was
// completed.
func (e *StockExport) ReplaceDetails(details []StockExportDetail) error {
	if len(details) == 0 {
		return shared.NewDomainError("NO_DETAILS", "Stock export must have at least one detail line")
	}
	for idx := range details {
		details[idx].ExportID = e.ID
	}
	e.Details = details
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Complete transitions the export to COMPLETED and stamps the export date.
// The serial consumption and quantity debit are orchestrated by the
// application service inside the same transaction.
func (e *StockExport) Complete(exportDate time.Time) error {
	if !e.Status.CanTransitionTo(ExportStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot complete stock export in %s status", e.Status))
	}
	if len(e.Details) == 0 {
		return shared.NewDomainError("NO_DETAILS", "Cannot complete stock export without detail lines")
	}
	if exportDate.IsZero() {
		exportDate = time.Now()
	}

	e.Status = ExportStatusCompleted
	e.ExportDate = &exportDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewStockExportCompletedEvent(e))

	return nil
}

// Reopen transitions the export back to PENDING. Serial restoration is
// orchestrated by the application service inside the same transaction.
func (e *StockExport) Reopen() error {
	if !e.Status.CanTransitionTo(ExportStatusPending) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot reopen stock export in %s status", e.Status))
	}

	e.Status = ExportStatusPending
	e.ExportDate = nil
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewStockExportReopenedEvent(e))

	return nil
}

// IsCompleted reports whether the export has consumed inventory
func (e *StockExport) IsCompleted() bool {
	return e.Status == ExportStatusCompleted
}

// TotalQuantity returns the total number of units exported
func (e *StockExport) TotalQuantity() int {
	total := 0
	for _, d := range e.Details {
		total += d.Quantity
	}
	return total
}

// TotalAmount returns the total monetary value of the export
func (e *StockExport) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range e.Details {
		total = total.Add(d.Amount)
	}
	return total
}
