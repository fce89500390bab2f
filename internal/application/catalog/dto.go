package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ConfigurationRequest represents one hardware variant in a product request
type ConfigurationRequest struct {
	Specification string          `json:"specification" binding:"required,spec"`
	Price         decimal.Decimal `json:"price"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code           string                 `json:"code" binding:"required,max=20"`
	Name           string                 `json:"name" binding:"required,max=200"`
	Brand          string                 `json:"brand" binding:"max=100"`
	Model          string                 `json:"model" binding:"max=100"`
	WarrantyMonths int                    `json:"warranty_months" binding:"min=0"`
	Configurations []ConfigurationRequest `json:"configurations" binding:"dive"`
}

// UpdateProductRequest represents a request to update a product's descriptive fields
type UpdateProductRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Brand          string `json:"brand" binding:"max=100"`
	Model          string `json:"model" binding:"max=100"`
	WarrantyMonths int    `json:"warranty_months" binding:"min=0"`
}

// UpdateConfigurationPriceRequest represents a request to reprice a configuration
type UpdateConfigurationPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// ConfigurationResponse represents a product configuration in API responses
type ConfigurationResponse struct {
	ID            uuid.UUID       `json:"id"`
	Seq           int             `json:"seq"`
	CPU           string          `json:"cpu,omitempty"`
	RAM           string          `json:"ram,omitempty"`
	ROM           string          `json:"rom,omitempty"`
	Card          string          `json:"card,omitempty"`
	Specification string          `json:"specification"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uuid.UUID               `json:"id"`
	Code           string                  `json:"code"`
	Name           string                  `json:"name"`
	Brand          string                  `json:"brand,omitempty"`
	Model          string                  `json:"model,omitempty"`
	WarrantyMonths int                     `json:"warranty_months"`
	ImagePath      string                  `json:"image_path,omitempty"`
	Active         bool                    `json:"active"`
	TotalQuantity  int                     `json:"total_quantity"`
	Configurations []ConfigurationResponse `json:"configurations"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	Version        int                     `json:"version"`
}

// SerialResponse represents a product serial in API responses
type SerialResponse struct {
	ID            uuid.UUID  `json:"id"`
	SerialNumber  string     `json:"serial_number"`
	ProductID     uuid.UUID  `json:"product_id"`
	Specification string     `json:"specification"`
	Status        string     `json:"status"`
	ImportDate    time.Time  `json:"import_date"`
	ExportDate    *time.Time `json:"export_date,omitempty"`
	WarrantyStart *time.Time `json:"warranty_start,omitempty"`
	WarrantyEnd   *time.Time `json:"warranty_end,omitempty"`
	UnderWarranty bool       `json:"under_warranty"`
}

// PromotionRequest represents a request to create or update a promotion
type PromotionRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	Description     string          `json:"description" binding:"max=500"`
	DiscountPercent decimal.Decimal `json:"discount_percent" binding:"required"`
	ProductID       *uuid.UUID      `json:"product_id"`
	StartDate       time.Time       `json:"start_date" binding:"required"`
	EndDate         time.Time       `json:"end_date" binding:"required"`
}

// PromotionResponse represents a promotion in API responses
type PromotionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	ProductID       *uuid.UUID      `json:"product_id,omitempty"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToConfigurationResponse converts a ProductConfiguration to its response representation
func ToConfigurationResponse(cfg *catalog.ProductConfiguration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:            cfg.ID,
		Seq:           cfg.Seq,
		CPU:           cfg.CPU,
		RAM:           cfg.RAM,
		ROM:           cfg.ROM,
		Card:          cfg.Card,
		Specification: cfg.Specification().Normalize(),
		Quantity:      cfg.Quantity,
		Price:         cfg.Price,
	}
}

// ToProductResponse converts a Product to its response representation
func ToProductResponse(product *catalog.Product) ProductResponse {
	configurations := make([]ConfigurationResponse, 0, len(product.Configurations))
	for idx := range product.Configurations {
		configurations = append(configurations, ToConfigurationResponse(&product.Configurations[idx]))
	}
	return ProductResponse{
		ID:             product.ID,
		Code:           product.Code,
		Name:           product.Name,
		Brand:          product.Brand,
		Model:          product.Model,
		WarrantyMonths: product.WarrantyPeriod(),
		ImagePath:      product.ImagePath,
		Active:         product.Active,
		TotalQuantity:  product.TotalQuantity(),
		Configurations: configurations,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
		Version:        product.Version,
	}
}

// ToSerialResponse converts a ProductSerial to its response representation
func ToSerialResponse(serial *catalog.ProductSerial) SerialResponse {
	return SerialResponse{
		ID:            serial.ID,
		SerialNumber:  serial.SerialNumber,
		ProductID:     serial.ProductID,
		Specification: serial.Specification,
		Status:        serial.Status.String(),
		ImportDate:    serial.ImportDate,
		ExportDate:    serial.ExportDate,
		WarrantyStart: serial.WarrantyStart,
		WarrantyEnd:   serial.WarrantyEnd,
		UnderWarranty: serial.UnderWarranty(time.Now()),
	}
}

// ToPromotionResponse converts a Promotion to its response representation
func ToPromotionResponse(promotion *catalog.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              promotion.ID,
		Name:            promotion.Name,
		Description:     promotion.Description,
		DiscountPercent: promotion.DiscountPercent,
		ProductID:       promotion.ProductID,
		StartDate:       promotion.StartDate,
		EndDate:         promotion.EndDate,
		Active:          promotion.Active,
		CreatedAt:       promotion.CreatedAt,
		UpdatedAt:       promotion.UpdatedAt,
	}
}
