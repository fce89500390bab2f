package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// SerialStatus represents the lifecycle state of a physical unit
type SerialStatus string

const (
	SerialStatusInStock  SerialStatus = "IN_STOCK"
	SerialStatusSold     SerialStatus = "SOLD"
	SerialStatusExported SerialStatus = "EXPORTED"
)

// IsValid checks if the status is a valid SerialStatus
func (s SerialStatus) IsValid() bool {
	switch s {
	case SerialStatusInStock, SerialStatusSold, SerialStatusExported:
		return true
	}
	return false
}

// String returns the string representation of SerialStatus
func (s SerialStatus) String() string {
	return string(s)
}

// ProductSerial is one row per physical unit. Serials are created in batch
// when a stock import is saved, consumed (oldest serial number first) when a
// stock export completes, and restored when a completed export is reversed.
//
// The specification text is a denormalized copy kept for legacy-data matching;
// ConfigurationID is the authoritative link.
type ProductSerial struct {
	shared.BaseEntity
	SerialNumber    string       `gorm:"size:30;not null;uniqueIndex"`
	ProductID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	ConfigurationID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Specification   string       `gorm:"size:255"`
	Status          SerialStatus `gorm:"size:20;not null;default:'IN_STOCK'"`
	ImportDate      time.Time    `gorm:"not null"`
	ExportDate      *time.Time
	WarrantyStart   *time.Time
	WarrantyEnd     *time.Time
	ExportDetailID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProductSerial) TableName() string {
	return "product_serials"
}

// NewProductSerial creates a serial for a freshly imported unit
func NewProductSerial(serialNumber string, productID, configurationID uuid.UUID, specification string, importDate time.Time) (*ProductSerial, error) {
	if serialNumber == "" {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Serial number cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if configurationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONFIGURATION", "Configuration ID cannot be empty")
	}
	if importDate.IsZero() {
		importDate = time.Now()
	}

	return &ProductSerial{
		BaseEntity:      shared.NewBaseEntity(),
		SerialNumber:    serialNumber,
		ProductID:       productID,
		ConfigurationID: configurationID,
		Specification:   specification,
		Status:          SerialStatusInStock,
		ImportDate:      importDate,
	}, nil
}

// FormatSerialNumber builds a serial number from a prefix and a sequence,
// e.g. prefix "SRP0012" and sequence 7 yield "SRP0012007"
func FormatSerialNumber(prefix string, sequence int) string {
	return fmt.Sprintf("%s%03d", prefix, sequence)
}

// IsInStock reports whether the unit is still available
func (s *ProductSerial) IsInStock() bool {
	return s.Status == SerialStatusInStock
}

// IsConsumed reports whether the unit has left the warehouse
func (s *ProductSerial) IsConsumed() bool {
	return s.Status == SerialStatusSold || s.Status == SerialStatusExported
}

// MarkSold consumes the serial for a completed stock-export detail line.
// The warranty window starts at the export date and runs for the product's
// warranty period.
func (s *ProductSerial) MarkSold(exportDetailID uuid.UUID, exportDate time.Time, warrantyMonths int) error {
	if !s.IsInStock() {
		return shared.NewDomainError("SERIAL_NOT_AVAILABLE",
			fmt.Sprintf("Serial %s is not in stock", s.SerialNumber))
	}
	if exportDetailID == uuid.Nil {
		return shared.NewDomainError("INVALID_EXPORT_DETAIL", "Export detail ID cannot be empty")
	}
	if warrantyMonths <= 0 {
		warrantyMonths = DefaultWarrantyMonths
	}

	warrantyEnd := exportDate.AddDate(0, warrantyMonths, 0)

	s.Status = SerialStatusSold
	s.ExportDetailID = &exportDetailID
	s.ExportDate = &exportDate
	s.WarrantyStart = &exportDate
	s.WarrantyEnd = &warrantyEnd
	s.UpdatedAt = time.Now()

	return nil
}

// Restore reverts a consumed serial back to in-stock, clearing the export
// link and all derived dates. Exact inverse of MarkSold.
func (s *ProductSerial) Restore() error {
	if !s.IsConsumed() {
		return shared.NewDomainError("SERIAL_NOT_CONSUMED",
			fmt.Sprintf("Serial %s is not sold or exported", s.SerialNumber))
	}

	s.Status = SerialStatusInStock
	s.ExportDetailID = nil
	s.ExportDate = nil
	s.WarrantyStart = nil
	s.WarrantyEnd = nil
	s.UpdatedAt = time.Now()

	return nil
}

// UnderWarranty reports whether the unit is within its warranty window at t
func (s *ProductSerial) UnderWarranty(t time.Time) bool {
	if s.WarrantyStart == nil || s.WarrantyEnd == nil {
		return false
	}
	return !t.Before(*s.WarrantyStart) && !t.After(*s.WarrantyEnd)
}
