package warranty

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/partner"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/warranty"
)

// TicketService handles warranty and repair ticket operations.
// Warranty tickets must reference a sold serial within its warranty window;
// repair tickets accept walk-in customers created inline.
type TicketService struct {
	ticketRepo   warranty.TicketRepository
	customerRepo partner.CustomerRepository
	serialRepo   catalog.ProductSerialRepository
}

// NewTicketService creates a new TicketService
func NewTicketService(
	ticketRepo warranty.TicketRepository,
	customerRepo partner.CustomerRepository,
	serialRepo catalog.ProductSerialRepository,
) *TicketService {
	return &TicketService{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		serialRepo:   serialRepo,
	}
}

// GetByID retrieves a ticket by ID
func (s *TicketService) GetByID(ctx context.Context, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTicketResponse(ticket)
	return &response, nil
}

// List retrieves tickets with filtering and pagination
func (s *TicketService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[TicketResponse], error) {
	tickets, err := s.ticketRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ticketRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]TicketResponse, 0, len(tickets))
	for idx := range tickets {
		items = append(items, ToTicketResponse(&tickets[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// CreateWarranty opens a warranty ticket for a sold serial
func (s *TicketService) CreateWarranty(ctx context.Context, req CreateWarrantyTicketRequest) (*TicketResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	serial, err := s.serialRepo.FindBySerialNumber(ctx, req.SerialNumber)
	if err != nil {
		return nil, err
	}
	if !serial.IsConsumed() {
		return nil, shared.NewDomainError("SERIAL_NOT_SOLD",
			fmt.Sprintf("Serial %s has not been sold", req.SerialNumber))
	}
	if !serial.UnderWarranty(time.Now()) {
		return nil, shared.NewDomainError("WARRANTY_EXPIRED",
			fmt.Sprintf("Serial %s is outside its warranty window", req.SerialNumber))
	}

	code, err := s.ticketRepo.GenerateCode(ctx)
	if err != nil {
		return nil, err
	}

	ticket, err := warranty.NewWarrantyTicket(code, req.CustomerID, req.SerialNumber, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket)
	return &response, nil
}

// CreateRepair opens a paid repair ticket. A walk-in customer with no record
// yet is created inline from the embedded details.
func (s *TicketService) CreateRepair(ctx context.Context, req CreateRepairTicketRequest) (*TicketResponse, error) {
	customerID, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	code, err := s.ticketRepo.GenerateCode(ctx)
	if err != nil {
		return nil, err
	}

	ticket, err := warranty.NewRepairTicket(code, customerID, req.Description, req.Fee)
	if err != nil {
		return nil, err
	}

	if err := s.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket)
	return &response, nil
}

// Transition moves the ticket to the target status
func (s *TicketService) Transition(ctx context.Context, id uuid.UUID, req TransitionTicketRequest) (*TicketResponse, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ticket.Transition(warranty.TicketStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket)
	return &response, nil
}

// UpdateFee changes the fee of a repair ticket
func (s *TicketService) UpdateFee(ctx context.Context, id uuid.UUID, req UpdateTicketFeeRequest) (*TicketResponse, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ticket.SetFee(req.Fee); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket)
	return &response, nil
}

// resolveCustomer returns the existing customer ID or creates a new customer
// from the inline details
func (s *TicketService) resolveCustomer(ctx context.Context, req CreateRepairTicketRequest) (uuid.UUID, error) {
	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *req.CustomerID)
		if err != nil {
			return uuid.Nil, err
		}
		return customer.ID, nil
	}

	if req.Customer == nil {
		return uuid.Nil, shared.NewDomainError("INVALID_CUSTOMER",
			"Repair ticket requires an existing customer ID or inline customer details")
	}

	customer, err := partner.NewCustomer(req.Customer.Name, req.Customer.Phone, req.Customer.Email, req.Customer.Address)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return uuid.Nil, err
	}

	return customer.ID, nil
}
