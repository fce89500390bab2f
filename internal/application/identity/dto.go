package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/identity"
)

// CreateEmployeeRequest represents a request to create an employee
type CreateEmployeeRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=200"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"max=50"`
}

// UpdateEmployeeRequest represents a request to update an employee's profile
type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"max=50"`
}

// ChangePasswordRequest represents a request to change an employee's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// EmployeeResponse represents an employee in API responses.
// The password hash never leaves the domain layer.
type EmployeeResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role,omitempty"`
	AvatarPath string    `json:"avatar_path,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToEmployeeResponse converts an Employee to its response representation
func ToEmployeeResponse(employee *identity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID,
		Username:   employee.Username,
		FullName:   employee.FullName,
		Email:      employee.Email,
		Phone:      employee.Phone,
		Role:       employee.Role,
		AvatarPath: employee.AvatarPath,
		Active:     employee.Active,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}
