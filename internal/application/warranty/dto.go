package warranty

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/warranty"
	"github.com/shopspring/decimal"
)

// InlineCustomerRequest carries the details of a walk-in customer created
// together with a repair ticket
type InlineCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"max=20"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Address string `json:"address" binding:"max=500"`
}

// CreateWarrantyTicketRequest represents a request to open a warranty ticket.
// The serial must reference a sold unit.
type CreateWarrantyTicketRequest struct {
	CustomerID   uuid.UUID `json:"customer_id" binding:"required"`
	SerialNumber string    `json:"serial_number" binding:"required,max=30"`
	Description  string    `json:"description" binding:"required,max=1000"`
}

// CreateRepairTicketRequest represents a request to open a paid repair ticket.
// Either an existing customer ID or an inline customer must be provided.
type CreateRepairTicketRequest struct {
	CustomerID  *uuid.UUID             `json:"customer_id"`
	Customer    *InlineCustomerRequest `json:"customer"`
	Description string                 `json:"description" binding:"required,max=1000"`
	Fee         decimal.Decimal        `json:"fee"`
}

// TransitionTicketRequest represents a request to change a ticket's status
type TransitionTicketRequest struct {
	Status string `json:"status" binding:"required,oneof=RECEIVED PROCESSING RETURNED CANCELLED"`
}

// UpdateTicketFeeRequest represents a request to change a repair ticket's fee
type UpdateTicketFeeRequest struct {
	Fee decimal.Decimal `json:"fee" binding:"required"`
}

// TicketResponse represents a service ticket in API responses
type TicketResponse struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	Description  string          `json:"description"`
	Fee          decimal.Decimal `json:"fee"`
	ReceivedAt   time.Time       `json:"received_at"`
	ReturnedAt   *time.Time      `json:"returned_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToTicketResponse converts a Ticket to its response representation
func ToTicketResponse(ticket *warranty.Ticket) TicketResponse {
	return TicketResponse{
		ID:           ticket.ID,
		Code:         ticket.Code,
		Type:         string(ticket.Type),
		Status:       string(ticket.Status),
		CustomerID:   ticket.CustomerID,
		SerialNumber: ticket.SerialNumber,
		Description:  ticket.Description,
		Fee:          ticket.Fee,
		ReceivedAt:   ticket.ReceivedAt,
		ReturnedAt:   ticket.ReturnedAt,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
}
