package warranty

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TicketType distinguishes warranty service from paid repair.
// WARRANTY tickets must reference a sold serial; REPAIR tickets may come from
// walk-in customers with no purchase history.
type TicketType string

const (
	TicketTypeWarranty TicketType = "WARRANTY"
	TicketTypeRepair   TicketType = "REPAIR"
)

// IsValid checks if the type is a valid TicketType
func (t TicketType) IsValid() bool {
	return t == TicketTypeWarranty || t == TicketTypeRepair
}

// TicketStatus represents the service state of a ticket
type TicketStatus string

const (
	TicketStatusReceived   TicketStatus = "RECEIVED"
	TicketStatusProcessing TicketStatus = "PROCESSING"
	TicketStatusReturned   TicketStatus = "RETURNED"
	TicketStatusCancelled  TicketStatus = "CANCELLED"
)

// IsValid checks if the status is a valid TicketStatus
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusReceived, TicketStatusProcessing, TicketStatusReturned, TicketStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	switch s {
	case TicketStatusReceived:
		return target == TicketStatusProcessing || target == TicketStatusCancelled
	case TicketStatusProcessing:
		return target == TicketStatusReturned || target == TicketStatusCancelled
	case TicketStatusReturned, TicketStatusCancelled:
		return false // Terminal states
	}
	return false
}

// Ticket is a warranty or repair service ticket
type Ticket struct {
	shared.BaseAggregateRoot
	Code         string       `gorm:"size:30;not null;uniqueIndex"`
	Type         TicketType   `gorm:"size:20;not null"`
	Status       TicketStatus `gorm:"size:20;not null;default:'RECEIVED'"`
	CustomerID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	SerialNumber *string      `gorm:"size:30;index"`
	Description  string       `gorm:"size:1000;not null"`
	Fee          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ReceivedAt   time.Time       `gorm:"not null"`
	ReturnedAt   *time.Time
}

// TableName returns the table name for GORM
func (Ticket) TableName() string {
	return "warranty_tickets"
}

// NewWarrantyTicket creates a ticket for an in-warranty serviced unit
func NewWarrantyTicket(code string, customerID uuid.UUID, serialNumber, description string) (*Ticket, error) {
	if serialNumber == "" {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Warranty tickets must reference a serial number")
	}
	ticket, err := newTicket(code, TicketTypeWarranty, customerID, description)
	if err != nil {
		return nil, err
	}
	ticket.SerialNumber = &serialNumber
	return ticket, nil
}

// NewRepairTicket creates a paid repair ticket; no serial reference required
func NewRepairTicket(code string, customerID uuid.UUID, description string, fee decimal.Decimal) (*Ticket, error) {
	if fee.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FEE", "Repair fee cannot be negative")
	}
	ticket, err := newTicket(code, TicketTypeRepair, customerID, description)
	if err != nil {
		return nil, err
	}
	ticket.Fee = fee
	return ticket, nil
}

func newTicket(code string, ticketType TicketType, customerID uuid.UUID, description string) (*Ticket, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Ticket code cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Ticket description cannot be empty")
	}

	return &Ticket{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Type:              ticketType,
		Status:            TicketStatusReceived,
		CustomerID:        customerID,
		Description:       description,
		Fee:               decimal.Zero,
		ReceivedAt:        time.Now(),
	}, nil
}

// Transition moves the ticket to the target status
func (t *Ticket) Transition(target TicketStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown ticket status %q", target))
	}
	if !t.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition ticket from %s to %s", t.Status, target))
	}

	now := time.Now()
	t.Status = target
	if target == TicketStatusReturned {
		t.ReturnedAt = &now
	}
	t.UpdatedAt = now
	t.IncrementVersion()

	return nil
}

// SetFee updates the repair fee; only valid for repair tickets
func (t *Ticket) SetFee(fee decimal.Decimal) error {
	if t.Type != TicketTypeRepair {
		return shared.NewDomainError("INVALID_STATE", "Only repair tickets carry a fee")
	}
	if fee.IsNegative() {
		return shared.NewDomainError("INVALID_FEE", "Repair fee cannot be negative")
	}
	t.Fee = fee
	t.UpdatedAt = time.Now()
	return nil
}
