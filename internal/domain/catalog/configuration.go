package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductConfiguration is a concrete hardware variant of a product:
// a (CPU, RAM, ROM, Card) tuple with an aggregate on-hand quantity and a
// selling price. Quantity moves in lockstep with serial creation and
// consumption; it must never go negative.
type ProductConfiguration struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq       int       `gorm:"not null"` // per-product sequence used in serial prefixes
	CPU       string    `gorm:"size:100"`
	RAM       string    `gorm:"size:100"`
	ROM       string    `gorm:"size:100"`
	Card      string    `gorm:"size:100"`
	Quantity  int       `gorm:"not null;default:0"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ProductConfiguration) TableName() string {
	return "product_configurations"
}

// NewProductConfiguration creates a new configuration for a product
func NewProductConfiguration(productID uuid.UUID, seq int, spec Specification, price decimal.Decimal) (*ProductConfiguration, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if seq <= 0 {
		return nil, shared.NewDomainError("INVALID_SEQUENCE", "Configuration sequence must be positive")
	}
	if spec.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_SPECIFICATION", "Specification cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	now := time.Now()
	return &ProductConfiguration{
		ID:        uuid.New(),
		ProductID: productID,
		Seq:       seq,
		CPU:       spec.CPU,
		RAM:       spec.RAM,
		ROM:       spec.ROM,
		Card:      spec.Card,
		Quantity:  0,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Specification returns the structured specification of this configuration
func (c *ProductConfiguration) Specification() Specification {
	return Specification{CPU: c.CPU, RAM: c.RAM, ROM: c.ROM, Card: c.Card}
}

// MatchesSpec reports whether every attribute present in the given
// specification equals the corresponding field of this configuration.
// Absent attributes are not filtered on.
func (c *ProductConfiguration) MatchesSpec(spec Specification) bool {
	if spec.CPU != "" && spec.CPU != c.CPU {
		return false
	}
	if spec.RAM != "" && spec.RAM != c.RAM {
		return false
	}
	if spec.ROM != "" && spec.ROM != c.ROM {
		return false
	}
	if spec.Card != "" && spec.Card != c.Card {
		return false
	}
	return !spec.IsEmpty()
}

// AdjustQuantity applies a signed delta to the on-hand quantity.
// The quantity floor is enforced here: an adjustment that would take the
// quantity negative is rejected as an inventory-accounting inconsistency.
func (c *ProductConfiguration) AdjustQuantity(delta int) error {
	if c.Quantity+delta < 0 {
		return shared.ErrInsufficientStock
	}
	c.Quantity += delta
	c.UpdatedAt = time.Now()
	return nil
}

// CanFulfill reports whether the on-hand quantity covers the requested one
func (c *ProductConfiguration) CanFulfill(quantity int) bool {
	return c.Quantity >= quantity
}

// SetPrice updates the selling price
func (c *ProductConfiguration) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	c.Price = price
	c.UpdatedAt = time.Now()
	return nil
}
