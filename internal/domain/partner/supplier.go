package partner

import (
	"time"

	"github.com/laptechvn/backend/internal/domain/shared"
)

// Supplier represents a vendor the store imports stock from
type Supplier struct {
	shared.BaseAggregateRoot
	Name          string `gorm:"size:200;not null"`
	ContactPerson string `gorm:"size:200"`
	Phone         string `gorm:"size:20"`
	Email         string `gorm:"size:200;uniqueIndex"`
	Address       string `gorm:"size:500"`
	TaxCode       string `gorm:"size:50"`
	Active        bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, contactPerson, phone, email, address, taxCode string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactPerson:     contactPerson,
		Phone:             phone,
		Email:             email,
		Address:           address,
		TaxCode:           taxCode,
		Active:            true,
	}, nil
}

// Update changes the supplier's details
func (s *Supplier) Update(name, contactPerson, phone, email, address, taxCode string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.TaxCode = taxCode
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the supplier
func (s *Supplier) Deactivate() error {
	if !s.Active {
		return shared.NewDomainError("INVALID_STATE", "Supplier is already inactive")
	}
	s.Active = false
	s.UpdatedAt = time.Now()
	return nil
}

// Activate restores a soft-deleted supplier
func (s *Supplier) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
}
