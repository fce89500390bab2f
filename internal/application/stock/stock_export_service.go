package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
)

// StockExportService handles stock-export business operations.
// An export touches no inventory while PENDING. The transition to COMPLETED
// debits configuration quantities and consumes serials inside one transaction;
// the reverse transition restores them. Completion and reopening emit domain
// events consumed by the sales context.
type StockExportService struct {
	scope          TransactionScope
	exportRepo     stock.StockExportRepository
	eventPublisher shared.EventPublisher
}

// NewStockExportService creates a new StockExportService
func NewStockExportService(scope TransactionScope, exportRepo stock.StockExportRepository) *StockExportService {
	return &StockExportService{
		scope:      scope,
		exportRepo: exportRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *StockExportService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves a stock export by ID
func (s *StockExportService) GetByID(ctx context.Context, id uuid.UUID) (*StockExportResponse, error) {
	export, err := s.exportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStockExportResponse(export)
	return &response, nil
}

// GetByInvoiceID retrieves the stock export backing a sale invoice
func (s *StockExportService) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*StockExportResponse, error) {
	export, err := s.exportRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToStockExportResponse(export)
	return &response, nil
}

// List retrieves stock exports with filtering and pagination
func (s *StockExportService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[StockExportResponse], error) {
	exports, err := s.exportRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.exportRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]StockExportResponse, 0, len(exports))
	for idx := range exports {
		items = append(items, ToStockExportResponse(&exports[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Create records a new stock export in PENDING status. No inventory moves
// until the export is completed.
func (s *StockExportService) Create(ctx context.Context, req CreateStockExportRequest) (*StockExportResponse, error) {
	var created *stock.StockExport

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		code, err := repos.ExportRepo().GenerateCode(ctx)
		if err != nil {
			return err
		}

		export, err := stock.NewStockExport(code, req.InvoiceID)
		if err != nil {
			return err
		}
		if req.EmployeeID != nil {
			export.SetEmployee(*req.EmployeeID)
		}
		export.SetNote(req.Note)

		ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
		for _, line := range req.Details {
			cfg, err := ledger.Resolve(ctx, line.ProductID, line.Specification)
			if err != nil {
				return err
			}
			normalized := catalog.ParseSpecification(line.Specification).Normalize()
			unitPrice := line.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = cfg.Price
			}
			if _, err := export.AddDetail(line.ProductID, cfg.ID, normalized, line.Quantity, unitPrice); err != nil {
				return err
			}
		}

		if err := repos.ExportRepo().Save(ctx, export); err != nil {
			return err
		}

		created = export
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToStockExportResponse(created)
	return &response, nil
}

// Transition moves the export between PENDING and COMPLETED.
// Completing checks availability for every line before any mutation, then
// debits quantities and consumes serials. Reopening restores the consumed
// serials, which re-credits the quantities as a side effect.
func (s *StockExportService) Transition(ctx context.Context, id uuid.UUID, req TransitionStockExportRequest) (*StockExportResponse, error) {
	target := stock.ExportStatus(req.Status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown export status %q", req.Status))
	}

	var result *stock.StockExport

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		export, err := repos.ExportRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
		serials := stock.NewSerialService(repos.ProductRepo(), repos.SerialRepo(), ledger)

		switch target {
		case stock.ExportStatusCompleted:
			exportDate := time.Now()
			if req.ExportDate != nil {
				exportDate = *req.ExportDate
			}
			if err := s.checkAvailability(ctx, ledger, export.Details); err != nil {
				return err
			}
			if err := export.Complete(exportDate); err != nil {
				return err
			}
			if err := s.consumeDetails(ctx, ledger, serials, export.Details, exportDate); err != nil {
				return err
			}
		case stock.ExportStatusPending:
			if err := export.Reopen(); err != nil {
				return err
			}
			for _, d := range export.Details {
				if _, err := serials.RestoreSerials(ctx, d.ID); err != nil {
					return err
				}
			}
		}

		if err := repos.ExportRepo().Save(ctx, export); err != nil {
			return err
		}

		result = export
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, result)

	response := ToStockExportResponse(result)
	return &response, nil
}

// Update replaces the export's detail lines regardless of status.
// For a completed export the sequence is restore, recheck, reapply: the old
// lines' serials are restored first, availability for the new lines is
// verified against the restored quantities, and only then are the new lines
// consumed again.
func (s *StockExportService) Update(ctx context.Context, id uuid.UUID, req UpdateStockExportRequest) (*StockExportResponse, error) {
	var updated *stock.StockExport

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		export, err := repos.ExportRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
		serials := stock.NewSerialService(repos.ProductRepo(), repos.SerialRepo(), ledger)

		wasCompleted := export.IsCompleted()
		if wasCompleted {
			for _, d := range export.Details {
				if _, err := serials.RestoreSerials(ctx, d.ID); err != nil {
					return err
				}
			}
		}

		newDetails := make([]stock.StockExportDetail, 0, len(req.Details))
		for _, line := range req.Details {
			cfg, err := ledger.Resolve(ctx, line.ProductID, line.Specification)
			if err != nil {
				return err
			}
			normalized := catalog.ParseSpecification(line.Specification).Normalize()
			unitPrice := line.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = cfg.Price
			}
			detail, err := stock.NewStockExportDetail(export.ID, line.ProductID, cfg.ID, normalized, line.Quantity, unitPrice)
			if err != nil {
				return err
			}
			newDetails = append(newDetails, *detail)
		}

		if wasCompleted {
			if err := s.checkAvailability(ctx, ledger, newDetails); err != nil {
				return err
			}
		}

		if err := export.ReplaceDetails(newDetails); err != nil {
			return err
		}
		if req.EmployeeID != nil {
			export.SetEmployee(*req.EmployeeID)
		}
		export.SetNote(req.Note)

		if err := repos.ExportRepo().Save(ctx, export); err != nil {
			return err
		}

		if wasCompleted {
			exportDate := time.Now()
			if export.ExportDate != nil {
				exportDate = *export.ExportDate
			}
			if err := s.consumeDetails(ctx, ledger, serials, export.Details, exportDate); err != nil {
				return err
			}
		}

		updated = export
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToStockExportResponse(updated)
	return &response, nil
}

// Delete removes a stock export. A completed export has its serials restored
// first so the consumed inventory comes back.
func (s *StockExportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		export, err := repos.ExportRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if export.IsCompleted() {
			ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
			serials := stock.NewSerialService(repos.ProductRepo(), repos.SerialRepo(), ledger)
			for _, d := range export.Details {
				if _, err := serials.RestoreSerials(ctx, d.ID); err != nil {
					return err
				}
			}
		}

		return repos.ExportRepo().Delete(ctx, export.ID)
	})
}

// checkAvailability verifies every detail line against the on-hand quantity
// of its configuration, locking the rows so the subsequent debit sees the
// same values. All shortfalls are collected into one itemized error so the
// caller sees the full picture instead of the first failing line.
func (s *StockExportService) checkAvailability(ctx context.Context, ledger *stock.QuantityLedger, details []stock.StockExportDetail) error {
	var shortfalls []string
	for _, d := range details {
		available, err := ledger.Available(ctx, d.ProductID, d.Specification)
		if err != nil {
			return err
		}
		if available < d.Quantity {
			shortfalls = append(shortfalls,
				fmt.Sprintf("product %s spec %q: requested %d, available %d", d.ProductID, d.Specification, d.Quantity, available))
		}
	}
	if len(shortfalls) > 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			"Insufficient stock: "+strings.Join(shortfalls, "; "))
	}
	return nil
}

// consumeDetails debits the configuration quantity and marks serials sold for
// every detail line
func (s *StockExportService) consumeDetails(ctx context.Context, ledger *stock.QuantityLedger, serials *stock.SerialService, details []stock.StockExportDetail, exportDate time.Time) error {
	for _, d := range details {
		if _, err := ledger.Adjust(ctx, d.ProductID, d.Specification, -d.Quantity); err != nil {
			return err
		}
		if _, err := serials.ConsumeSerials(ctx, d.ProductID, d.Specification, d.Quantity, d.ID, exportDate); err != nil {
			return err
		}
	}
	return nil
}

// publishDomainEvents publishes all domain events from the export
func (s *StockExportService) publishDomainEvents(ctx context.Context, export *stock.StockExport) {
	if s.eventPublisher == nil || export == nil {
		return
	}
	events := export.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	export.ClearDomainEvents()
}
