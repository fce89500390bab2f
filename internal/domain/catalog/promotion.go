package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Promotion represents a time-bounded percentage discount, optionally scoped
// to a single product. A nil ProductID means the promotion is storewide.
type Promotion struct {
	shared.BaseAggregateRoot
	Name            string          `gorm:"size:200;not null"`
	Description     string          `gorm:"size:500"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;index"`
	StartDate       time.Time       `gorm:"not null"`
	EndDate         time.Time       `gorm:"not null"`
	Active          bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// NewPromotion creates a new promotion
func NewPromotion(name, description string, discountPercent decimal.Decimal, productID *uuid.UUID, startDate, endDate time.Time) (*Promotion, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Promotion name cannot be empty")
	}
	if discountPercent.LessThanOrEqual(decimal.Zero) || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount percent must be between 0 and 100")
	}
	if !endDate.After(startDate) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Promotion end date must be after start date")
	}

	return &Promotion{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		DiscountPercent:   discountPercent,
		ProductID:         productID,
		StartDate:         startDate,
		EndDate:           endDate,
		Active:            true,
	}, nil
}

// IsCurrent reports whether the promotion applies at the given time
func (p *Promotion) IsCurrent(t time.Time) bool {
	return p.Active && !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// AppliesTo reports whether the promotion covers the given product at time t
func (p *Promotion) AppliesTo(productID uuid.UUID, t time.Time) bool {
	if !p.IsCurrent(t) {
		return false
	}
	return p.ProductID == nil || *p.ProductID == productID
}

// Apply returns the price after applying the promotion discount
func (p *Promotion) Apply(price decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(100).Sub(p.DiscountPercent).Div(decimal.NewFromInt(100))
	return price.Mul(factor).Round(2)
}

// Update changes the promotion fields
func (p *Promotion) Update(name, description string, discountPercent decimal.Decimal, startDate, endDate time.Time) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Promotion name cannot be empty")
	}
	if discountPercent.LessThanOrEqual(decimal.Zero) || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount percent must be between 0 and 100")
	}
	if !endDate.After(startDate) {
		return shared.NewDomainError("INVALID_PERIOD", "Promotion end date must be after start date")
	}

	p.Name = name
	p.Description = description
	p.DiscountPercent = discountPercent
	p.StartDate = startDate
	p.EndDate = endDate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the promotion
func (p *Promotion) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}
