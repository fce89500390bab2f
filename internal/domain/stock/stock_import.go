package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockImportDetail is one receiving line: a quantity of units of a single
// product configuration. Saving a detail drives serial creation and a
// configuration quantity increment of the same size.
type StockImportDetail struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImportID        uuid.UUID `gorm:"type:uuid;not null;index"`
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
func (StockImportDetail) TableName() string {
	return "stock_import_details"
}

// NewStockImportDetail creates a new import detail line
func NewStockImportDetail(importID, productID, configurationID uuid.UUID, specification string, quantity int, unitPrice decimal.Decimal) (*StockImportDetail, error) {
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
	return &StockImportDetail{
		ID:              uuid.New(),
		ImportID:        importID,
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

// StockImport is a receiving event from a supplier. It is the aggregate root
// for the import side of the stock movement workflow.
type StockImport struct {
	shared.BaseAggregateRoot
	Code       string     `gorm:"size:30;not null;uniqueIndex"`
	SupplierID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	ImportDate time.Time  `gorm:"not null"`
	Note       string     `gorm:"size:500"`
	TotalCost  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`

	Details []StockImportDetail `gorm:"foreignKey:ImportID;references:ID"`
}

// TableName returns the table name for GORM
func (StockImport) TableName() string {
	return "stock_imports"
}

// NewStockImport creates a new stock import
func NewStockImport(code string, supplierID uuid.UUID, importDate time.Time) (*StockImport, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Import code cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if importDate.IsZero() {
		importDate = time.Now()
	}

	return &StockImport{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		SupplierID:        supplierID,
		ImportDate:        importDate,
		TotalCost:         decimal.Zero,
		Details:           make([]StockImportDetail, 0),
	}, nil
}

// SetEmployee records the acting employee for audit purposes
func (i *StockImport) SetEmployee(employeeID uuid.UUID) {
	if employeeID == uuid.Nil {
		return
	}
	i.EmployeeID = &employeeID
}

// SetNote sets the free-text note
func (i *StockImport) SetNote(note string) {
	i.Note = note
	i.UpdatedAt = time.Now()
}

// AddDetail adds a receiving line to the import
func (i *StockImport) AddDetail(productID, configurationID uuid.UUID, specification string, quantity int, unitPrice decimal.Decimal) (*StockImportDetail, error) {
	detail, err := NewStockImportDetail(i.ID, productID, configurationID, specification, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	i.Details = append(i.Details, *detail)
	i.recalculateTotal()
	i.UpdatedAt = time.Now()

	return detail, nil
}

// ReplaceDetails swaps all detail lines for a new set. The caller is
// responsible for reversing the inventory effects of the old lines first.
func (i *StockImport) ReplaceDetails(details []StockImportDetail) error {
	if len(details) == 0 {
		return shared.NewDomainError("NO_DETAILS", "Stock import must have at least one detail line")
	}
	for idx := range details {
		details[idx].ImportID = i.ID
	}
	i.Details = details
	i.recalculateTotal()
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

func (i *StockImport) recalculateTotal() {
	total := decimal.Zero
	for _, d := range i.Details {
		total = total.Add(d.Amount)
	}
	i.TotalCost = total
}

// TotalQuantity returns the total number of units received
func (i *StockImport) TotalQuantity() int {
	total := 0
	for _, d := range i.Details {
		total += d.Quantity
	}
	return total
}
