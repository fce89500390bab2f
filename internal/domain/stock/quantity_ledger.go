package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// QuantityLedger applies signed quantity deltas to product configurations.
// The delta is positive for imports and reversed exports, negative for
// completed exports and reversed imports.
//
// A specification that resolves to no configuration is a hard error: an
// inventory adjustment that cannot find its target indicates a data-integrity
// bug, not a condition to mask.
type QuantityLedger struct {
	configurations catalog.ConfigurationRepository
}

// NewQuantityLedger creates a new QuantityLedger
func NewQuantityLedger(configurations catalog.ConfigurationRepository) *QuantityLedger {
	return &QuantityLedger{configurations: configurations}
}

// Adjust resolves the specification to exactly one configuration of the
// product and applies the delta. The configuration row is locked for the
// duration of the surrounding transaction so concurrent movements against the
// same configuration serialize. The quantity floor is enforced: a debit
// larger than the on-hand quantity fails with ErrInsufficientStock.
func (l *QuantityLedger) Adjust(ctx context.Context, productID uuid.UUID, rawSpec string, delta int) (*catalog.ProductConfiguration, error) {
	cfg, err := l.resolveForUpdate(ctx, productID, rawSpec)
	if err != nil {
		return nil, err
	}

	if err := cfg.AdjustQuantity(delta); err != nil {
		return nil, err
	}

	if err := l.configurations.Save(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Available returns the on-hand quantity of the configuration matching the
// specification, locking the row for the surrounding transaction so the
// availability check and the subsequent debit see the same value.
func (l *QuantityLedger) Available(ctx context.Context, productID uuid.UUID, rawSpec string) (int, error) {
	cfg, err := l.resolveForUpdate(ctx, productID, rawSpec)
	if err != nil {
		return 0, err
	}
	return cfg.Quantity, nil
}

// Resolve resolves a specification to its configuration without locking
func (l *QuantityLedger) Resolve(ctx context.Context, productID uuid.UUID, rawSpec string) (*catalog.ProductConfiguration, error) {
	spec := catalog.ParseSpecification(rawSpec)
	if spec.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_SPECIFICATION",
			fmt.Sprintf("Specification %q has no recognizable attributes", rawSpec))
	}

	cfg, err := l.configurations.FindByProductAndSpec(ctx, productID, spec)
	if err != nil {
		return nil, l.wrapResolveError(err, productID, rawSpec)
	}
	return cfg, nil
}

func (l *QuantityLedger) resolveForUpdate(ctx context.Context, productID uuid.UUID, rawSpec string) (*catalog.ProductConfiguration, error) {
	spec := catalog.ParseSpecification(rawSpec)
	if spec.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_SPECIFICATION",
			fmt.Sprintf("Specification %q has no recognizable attributes", rawSpec))
	}

	cfg, err := l.configurations.FindByProductAndSpecForUpdate(ctx, productID, spec)
	if err != nil {
		return nil, l.wrapResolveError(err, productID, rawSpec)
	}
	return cfg, nil
}

func (l *QuantityLedger) wrapResolveError(err error, productID uuid.UUID, rawSpec string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("CONFIGURATION_NOT_FOUND",
			fmt.Sprintf("No configuration of product %s matches specification %q", productID, rawSpec))
	}
	return err
}
