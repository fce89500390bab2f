package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/laptechvn/backend/internal/application/catalog"
	"github.com/laptechvn/backend/internal/infrastructure/storage"
)

// Image uploads accept common raster formats only.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	storage        *storage.LocalStorage
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, storage *storage.LocalStorage) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storage:        storage,
	}
}

// List returns a paginated product listing. Supports search over code, name
// and brand, plus active and brand filters.
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := addBoolFilter(c, &filter, "active", "active"); err != nil {
		h.BadRequest(c, "Invalid active filter")
		return
	}
	addStringFilter(c, &filter, "brand", "brand")

	result, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// GetByCode returns a single product by its business code
func (h *ProductHandler) GetByCode(c *gin.Context) {
	product, err := h.productService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Create creates a product, optionally with its initial configurations
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// Update updates a product's descriptive fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// AddConfiguration appends a hardware variant to a product
func (h *ProductHandler) AddConfiguration(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var req catalogapp.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	product, err := h.productService.AddConfiguration(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// UpdateConfigurationPrice reprices a single configuration
func (h *ProductHandler) UpdateConfigurationPrice(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	configurationID, err := parseIDParam(c, "configurationId")
	if err != nil {
		h.BadRequest(c, "Invalid configuration ID")
		return
	}
	var req catalogapp.UpdateConfigurationPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	product, err := h.productService.UpdateConfigurationPrice(c.Request.Context(), id, configurationID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// UploadImage stores a product image and records its path on the product.
// Expects a multipart form with an "image" file field.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Missing image file")
		return
	}
	ext := strings.ToLower(strings.TrimSpace(getExtension(fileHeader.Filename)))
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
	product, err := h.productService.UpdateImage(c.Request.Context(), id, name)
	if err != nil {
		// The product update failed, so the stored file is orphaned.
		_ = h.storage.Remove(name)
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Activate restores a deactivated product
func (h *ProductHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	if err := h.productService.Activate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate soft-deletes a product. Units already in stock keep their
// serial records.
func (h *ProductHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	if err := h.productService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// GetSerial looks up a single unit by its serial number
func (h *ProductHandler) GetSerial(c *gin.Context) {
	serial, err := h.productService.GetSerial(c.Request.Context(), c.Param("serialNumber"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, serial)
}

// ListSerials returns a paginated serial listing with product, configuration
// and status filters
func (h *ProductHandler) ListSerials(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := addUUIDFilter(c, &filter, "product_id", "product_id"); err != nil {
		h.BadRequest(c, "Invalid product_id filter")
		return
	}
	if err := addUUIDFilter(c, &filter, "configuration_id", "configuration_id"); err != nil {
		h.BadRequest(c, "Invalid configuration_id filter")
		return
	}
	addStringFilter(c, &filter, "status", "status")

	result, err := h.productService.ListSerials(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func getExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}
