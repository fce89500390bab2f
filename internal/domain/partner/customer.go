package partner

import (
	"time"

	"github.com/laptechvn/backend/internal/domain/shared"
)

// Customer represents a buyer of the store
type Customer struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"size:200;not null"`
	Phone   string `gorm:"size:20;index"`
	Email   string `gorm:"size:200;uniqueIndex"`
	Address string `gorm:"size:500"`
	Active  bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, email, address string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Email:             email,
		Address:           address,
		Active:            true,
	}, nil
}

// Update changes the customer's contact details
func (c *Customer) Update(name, phone, email, address string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the customer
func (c *Customer) Deactivate() error {
	if !c.Active {
		return shared.NewDomainError("INVALID_STATE", "Customer is already inactive")
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	return nil
}

// Activate restores a soft-deleted customer
func (c *Customer) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
}
