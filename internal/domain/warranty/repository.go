package warranty

import (
	"context"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// TicketRepository defines the persistence interface for service tickets
type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	FindByCode(ctx context.Context, code string) (*Ticket, error)
	FindBySerialNumber(ctx context.Context, serialNumber string) ([]Ticket, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Ticket, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, ticket *Ticket) error
	GenerateCode(ctx context.Context) (string, error)
}
