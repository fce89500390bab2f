package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/identity"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// EmployeeService handles employee business operations
type EmployeeService struct {
	employeeRepo identity.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo identity.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees with filtering and pagination
func (s *EmployeeService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[EmployeeResponse], error) {
	employees, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.employeeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]EmployeeResponse, 0, len(employees))
	for idx := range employees {
		items = append(items, ToEmployeeResponse(&employees[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Create creates a new employee with a hashed password
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_USERNAME",
			fmt.Sprintf("Employee with username %s already exists", req.Username))
	}

	if req.Email != "" {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("DUPLICATE_EMAIL",
				fmt.Sprintf("Employee with email %s already exists", req.Email))
		}
	}

	employee, err := identity.NewEmployee(req.Username, req.Password, req.FullName, req.Email, req.Phone, req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Update changes an employee's profile fields
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := employee.Update(req.FullName, req.Email, req.Phone, req.Role); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// ChangePassword rotates an employee's password after verifying the current one
func (s *EmployeeService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !employee.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	if err := employee.SetPassword(req.NewPassword); err != nil {
		return err
	}

	return s.employeeRepo.Save(ctx, employee)
}

// UpdateAvatar records the stored avatar path for an employee. The file itself
// is written by the storage layer before this is called.
func (s *EmployeeService) UpdateAvatar(ctx context.Context, id uuid.UUID, path string) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.SetAvatarPath(path)

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Deactivate soft-deletes an employee
func (s *EmployeeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := employee.Deactivate(); err != nil {
		return err
	}

	return s.employeeRepo.Save(ctx, employee)
}

// Activate restores a soft-deleted employee
func (s *EmployeeService) Activate(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	employee.Activate()

	return s.employeeRepo.Save(ctx, employee)
}
