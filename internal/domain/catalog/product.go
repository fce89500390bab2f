package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultWarrantyMonths is applied when a product has no explicit warranty period
const DefaultWarrantyMonths = 12

// Product represents a laptop model sold by the store.
// It is the aggregate root for the catalog; configurations are child entities
// and serials are tracked per physical unit.
type Product struct {
	shared.BaseAggregateRoot
	Code           string `gorm:"size:20;not null;uniqueIndex"`
	Name           string `gorm:"size:200;not null"`
	Brand          string `gorm:"size:100"`
	Model          string `gorm:"size:100"`
	WarrantyMonths int    `gorm:"not null;default:12"`
	ImagePath      string `gorm:"size:255"`
	Active         bool   `gorm:"not null;default:true"`

	Configurations []ProductConfiguration `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, brand, model string, warrantyMonths int) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 20 {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 20 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if warrantyMonths < 0 {
		return nil, shared.NewDomainError("INVALID_WARRANTY", "Warranty period cannot be negative")
	}
	if warrantyMonths == 0 {
		warrantyMonths = DefaultWarrantyMonths
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Brand:             brand,
		Model:             model,
		WarrantyMonths:    warrantyMonths,
		Active:            true,
		Configurations:    make([]ProductConfiguration, 0),
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// WarrantyPeriod returns the warranty period in months, falling back to the
// default when the stored value is missing
func (p *Product) WarrantyPeriod() int {
	if p.WarrantyMonths <= 0 {
		return DefaultWarrantyMonths
	}
	return p.WarrantyMonths
}

// AddConfiguration adds a new configuration to the product.
// The configuration sequence continues from the highest existing one so serial
// prefixes stay unique across the product's lifetime.
func (p *Product) AddConfiguration(spec Specification, price decimal.Decimal) (*ProductConfiguration, error) {
	if spec.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_SPECIFICATION", "Configuration specification cannot be empty")
	}
	for _, cfg := range p.Configurations {
		if cfg.Specification().Matches(spec.Normalize()) {
			return nil, shared.NewDomainError("DUPLICATE_CONFIGURATION", "Configuration with this specification already exists")
		}
	}

	seq := 0
	for _, cfg := range p.Configurations {
		if cfg.Seq > seq {
			seq = cfg.Seq
		}
	}

	cfg, err := NewProductConfiguration(p.ID, seq+1, spec, price)
	if err != nil {
		return nil, err
	}

	p.Configurations = append(p.Configurations, *cfg)
	p.UpdatedAt = time.Now()

	return cfg, nil
}

// Update changes the descriptive fields of the product
func (p *Product) Update(name, brand, model string, warrantyMonths int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if warrantyMonths < 0 {
		return shared.NewDomainError("INVALID_WARRANTY", "Warranty period cannot be negative")
	}

	p.Name = name
	p.Brand = brand
	p.Model = model
	if warrantyMonths > 0 {
		p.WarrantyMonths = warrantyMonths
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImagePath sets the stored image path for the product
func (p *Product) SetImagePath(path string) {
	p.ImagePath = path
	p.UpdatedAt = time.Now()
}

// Deactivate soft-deletes the product
func (p *Product) Deactivate() error {
	if !p.Active {
		return shared.NewDomainError("INVALID_STATE", "Product is already inactive")
	}
	p.Active = false
	p.UpdatedAt = time.Now()
	p.AddDomainEvent(NewProductDeactivatedEvent(p))
	return nil
}

// Activate restores a soft-deleted product
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}

// GetConfiguration returns the configuration with the given ID, or nil
func (p *Product) GetConfiguration(configurationID uuid.UUID) *ProductConfiguration {
	for idx := range p.Configurations {
		if p.Configurations[idx].ID == configurationID {
			return &p.Configurations[idx]
		}
	}
	return nil
}

// FindConfigurationBySpec returns the first configuration matching every
// attribute present in the given specification, or nil when none matches
func (p *Product) FindConfigurationBySpec(spec Specification) *ProductConfiguration {
	for idx := range p.Configurations {
		if p.Configurations[idx].MatchesSpec(spec) {
			return &p.Configurations[idx]
		}
	}
	return nil
}

// SerialPrefix returns the serial number prefix for a configuration of this
// product, e.g. "SRP0012" for product P001 configuration 2
func (p *Product) SerialPrefix(cfg *ProductConfiguration) string {
	return fmt.Sprintf("SR%s%d", p.Code, cfg.Seq)
}

// TotalQuantity returns the aggregate on-hand quantity across configurations
func (p *Product) TotalQuantity() int {
	total := 0
	for _, cfg := range p.Configurations {
		total += cfg.Quantity
	}
	return total
}
