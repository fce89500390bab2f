package catalog

import (
	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// Event types for the catalog context
const (
	EventTypeProductCreated     = "catalog.product.created"
	EventTypeProductDeactivated = "catalog.product.deactivated"
)

// ProductCreatedEvent is emitted when a new product is added to the catalog
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID),
		ProductID:       product.ID,
		ProductCode:     product.Code,
		ProductName:     product.Name,
	}
}

// ProductDeactivatedEvent is emitted when a product is soft-deleted
type ProductDeactivatedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
}

// NewProductDeactivatedEvent creates a new ProductDeactivatedEvent
func NewProductDeactivatedEvent(product *Product) *ProductDeactivatedEvent {
	return &ProductDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeactivated, "Product", product.ID),
		ProductID:       product.ID,
		ProductCode:     product.Code,
	}
}
