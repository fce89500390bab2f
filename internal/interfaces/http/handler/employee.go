package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/laptechvn/backend/internal/application/identity"
	"github.com/laptechvn/backend/internal/infrastructure/storage"
)

// EmployeeHandler handles employee account endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *identityapp.EmployeeService
	storage         *storage.LocalStorage
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *identityapp.EmployeeService, storage *storage.LocalStorage) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		storage:         storage,
	}
}

// List returns a paginated employee listing with active and role filters
func (h *EmployeeHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := addBoolFilter(c, &filter, "active", "active"); err != nil {
		h.BadRequest(c, "Invalid active filter")
		return
	}
	addStringFilter(c, &filter, "role", "role")

	result, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single employee by ID
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, employee)
}

// Create creates an employee account. The password is hashed before storage
// and never returned.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req identityapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, employee)
}

// Update updates an employee's profile fields
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	var req identityapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, employee)
}

// ChangePassword verifies the current password and sets a new one
func (h *EmployeeHandler) ChangePassword(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	var req identityapp.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.employeeService.ChangePassword(c.Request.Context(), id, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UploadAvatar stores an avatar image and records its path on the employee.
// Expects a multipart form with an "avatar" file field.
func (h *EmployeeHandler) UploadAvatar(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.BadRequest(c, "Missing avatar file")
		return
	}
	ext := strings.ToLower(getExtension(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		h.BadRequest(c, "Unsupported image format")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	name, err := h.storage.Save(fileHeader.Filename, file)
	if err != nil {
		h.InternalError(c, "Failed to store uploaded file")
		return
	}
	employee, err := h.employeeService.UpdateAvatar(c.Request.Context(), id, name)
	if err != nil {
		_ = h.storage.Remove(name)
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, employee)
}

// Activate restores a deactivated employee account
func (h *EmployeeHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	if err := h.employeeService.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate disables an employee account
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	if err := h.employeeService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
