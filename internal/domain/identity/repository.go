package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// EmployeeRepository defines the persistence interface for employees
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, employee *Employee) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
