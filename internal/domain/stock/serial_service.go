package stock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
)

// SerialService allocates and recycles per-unit serial records in lockstep
// with configuration quantity movements. It is constructed over
// transaction-scoped repositories so serial state and quantity always change
// atomically.
type SerialService struct {
	products catalog.ProductRepository
	serials  catalog.ProductSerialRepository
	ledger   *QuantityLedger
}

// NewSerialService creates a new SerialService
func NewSerialService(products catalog.ProductRepository, serials catalog.ProductSerialRepository, ledger *QuantityLedger) *SerialService {
	return &SerialService{
		products: products,
		serials:  serials,
		ledger:   ledger,
	}
}

// CreateSerials creates one serial per imported unit. Serial numbers take the
// form SR<productCode><configSeq><seq> with the sequence continuing from the
// highest existing suffix sharing the prefix, so repeated imports of the same
// product and configuration never collide.
func (s *SerialService) CreateSerials(ctx context.Context, productID uuid.UUID, rawSpec string, quantity int, importDate time.Time) ([]*catalog.ProductSerial, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Serial quantity must be positive")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.ledger.Resolve(ctx, productID, rawSpec)
	if err != nil {
		return nil, err
	}

	prefix := product.SerialPrefix(cfg)
	maxSeq, err := s.serials.MaxSequence(ctx, prefix)
	if err != nil {
		return nil, err
	}

	normalized := catalog.ParseSpecification(rawSpec).Normalize()
	serials := make([]*catalog.ProductSerial, 0, quantity)
	for n := 1; n <= quantity; n++ {
		serial, err := catalog.NewProductSerial(
			catalog.FormatSerialNumber(prefix, maxSeq+n),
			productID,
			cfg.ID,
			normalized,
			importDate,
		)
		if err != nil {
			return nil, err
		}
		serials = append(serials, serial)
	}

	if err := s.serials.SaveBatch(ctx, serials); err != nil {
		return nil, err
	}

	return serials, nil
}

// ConsumeSerials marks `quantity` in-stock serials of the given product and
// specification as sold, oldest serial number first. The consuming export
// detail and export date are stamped on each serial, and the warranty window
// is derived from the product's warranty period.
//
// Finding fewer than `quantity` matching serials is an inventory-accounting
// inconsistency and fails the whole operation.
func (s *SerialService) ConsumeSerials(ctx context.Context, productID uuid.UUID, rawSpec string, quantity int, exportDetailID uuid.UUID, exportDate time.Time) ([]*catalog.ProductSerial, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Consume quantity must be positive")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	inStock, err := s.serials.FindInStockByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	spec := catalog.ParseSpecification(rawSpec)
	matched := make([]*catalog.ProductSerial, 0, quantity)
	for idx := range inStock {
		if spec.Matches(inStock[idx].Specification) {
			matched = append(matched, &inStock[idx])
		}
	}

	if len(matched) < quantity {
		return nil, shared.NewDomainError("SERIAL_SHORTFALL",
			fmt.Sprintf("Product %s has %d in-stock serials matching %q, %d requested",
				product.Code, len(matched), rawSpec, quantity))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SerialNumber < matched[j].SerialNumber
	})
	matched = matched[:quantity]

	for _, serial := range matched {
		if err := serial.MarkSold(exportDetailID, exportDate, product.WarrantyPeriod()); err != nil {
			return nil, err
		}
		if err := s.serials.Save(ctx, serial); err != nil {
			return nil, err
		}
	}

	return matched, nil
}

// RestoreSerials reverts every serial consumed by the given export detail
// back to in-stock, clearing the export link and warranty dates, and
// re-credits the configuration quantity per (product, specification) group.
// Exact inverse of ConsumeSerials.
func (s *SerialService) RestoreSerials(ctx context.Context, exportDetailID uuid.UUID) (int, error) {
	consumed, err := s.serials.FindByExportDetail(ctx, exportDetailID)
	if err != nil {
		return 0, err
	}

	type group struct {
		productID uuid.UUID
		spec      string
	}
	counts := make(map[group]int)

	restored := 0
	for idx := range consumed {
		serial := &consumed[idx]
		if !serial.IsConsumed() {
			continue
		}
		if err := serial.Restore(); err != nil {
			return restored, err
		}
		if err := s.serials.Save(ctx, serial); err != nil {
			return restored, err
		}
		counts[group{serial.ProductID, serial.Specification}]++
		restored++
	}

	for g, count := range counts {
		if _, err := s.ledger.Adjust(ctx, g.productID, g.spec, count); err != nil {
			return restored, err
		}
	}

	return restored, nil
}

// DeleteImportedSerials removes the in-stock serials created by an import
// line, matched by product, specification and import date. Serials already
// sold are never touched by an import-side reversal. Returns the number of
// serials deleted.
func (s *SerialService) DeleteImportedSerials(ctx context.Context, productID uuid.UUID, rawSpec string, importDate time.Time) (int, error) {
	inStock, err := s.serials.FindInStockByImport(ctx, productID, importDate)
	if err != nil {
		return 0, err
	}

	spec := catalog.ParseSpecification(rawSpec)
	ids := make([]uuid.UUID, 0, len(inStock))
	for idx := range inStock {
		if spec.Matches(inStock[idx].Specification) {
			ids = append(ids, inStock[idx].ID)
		}
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if err := s.serials.DeleteBatch(ctx, ids); err != nil {
		return 0, err
	}

	return len(ids), nil
}
