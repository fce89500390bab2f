package identity

import (
	"time"

	"github.com/laptechvn/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Employee represents a staff member operating the admin backend.
// Credentials are stored as bcrypt hashes only.
type Employee struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	FullName     string `gorm:"size:200;not null"`
	Email        string `gorm:"size:200;uniqueIndex"`
	Phone        string `gorm:"size:20"`
	Role         string `gorm:"size:50"`
	AvatarPath   string `gorm:"size:255"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee with a hashed password
func NewEmployee(username, password, fullName, email, phone, role string) (*Employee, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}

	employee := &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		FullName:          fullName,
		Email:             email,
		Phone:             phone,
		Role:              role,
		Active:            true,
	}

	if err := employee.SetPassword(password); err != nil {
		return nil, err
	}

	return employee, nil
}

// SetPassword hashes and stores a new password
func (e *Employee) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	e.PasswordHash = string(hash)
	e.UpdatedAt = time.Now()

	return nil
}

// CheckPassword verifies a password against the stored hash
func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// Update changes the employee's profile fields
func (e *Employee) Update(fullName, email, phone, role string) error {
	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}

	e.FullName = fullName
	e.Email = email
	e.Phone = phone
	e.Role = role
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// SetAvatarPath sets the stored avatar path
func (e *Employee) SetAvatarPath(path string) {
	e.AvatarPath = path
	e.UpdatedAt = time.Now()
}

// Deactivate soft-deletes the employee
func (e *Employee) Deactivate() error {
	if !e.Active {
		return shared.NewDomainError("INVALID_STATE", "Employee is already inactive")
	}
	e.Active = false
	e.UpdatedAt = time.Now()
	return nil
}

// Activate restores a soft-deleted employee
func (e *Employee) Activate() {
	e.Active = true
	e.UpdatedAt = time.Now()
}
