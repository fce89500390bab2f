package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
)

// StockImportService handles stock-import business operations.
// Every mutating operation runs inside one transaction so serial creation,
// quantity movement and the import record itself commit or roll back together.
type StockImportService struct {
	scope      TransactionScope
	importRepo stock.StockImportRepository
}

// NewStockImportService creates a new StockImportService
func NewStockImportService(scope TransactionScope, importRepo stock.StockImportRepository) *StockImportService {
	return &StockImportService{
		scope:      scope,
		importRepo: importRepo,
	}
}

// GetByID retrieves a stock import by ID
func (s *StockImportService) GetByID(ctx context.Context, id uuid.UUID) (*StockImportResponse, error) {
	imp, err := s.importRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToStockImportResponse(imp)
	return &response, nil
}

// List retrieves stock imports with filtering and pagination
func (s *StockImportService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[StockImportResponse], error) {
	imports, err := s.importRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.importRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]StockImportResponse, 0, len(imports))
	for idx := range imports {
		items = append(items, ToStockImportResponse(&imports[idx]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Create records a new stock import. For every detail line it creates one
// serial per unit and credits the configuration quantity by the line quantity.
func (s *StockImportService) Create(ctx context.Context, req CreateStockImportRequest) (*StockImportResponse, error) {
	var created *stock.StockImport

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		code, err := repos.ImportRepo().GenerateCode(ctx)
		if err != nil {
			return err
		}

		importDate := time.Now()
		if req.ImportDate != nil {
			importDate = *req.ImportDate
		}

		imp, err := stock.NewStockImport(code, req.SupplierID, importDate)
		if err != nil {
			return err
		}
		if req.EmployeeID != nil {
			imp.SetEmployee(*req.EmployeeID)
		}
		imp.SetNote(req.Note)

		ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
		serials := stock.NewSerialService(repos.ProductRepo(), repos.SerialRepo(), ledger)

		for _, line := range req.Details {
			cfg, err := ledger.Resolve(ctx, line.ProductID, line.Specification)
			if err != nil {
				return err
			}
			normalized := catalog.ParseSpecification(line.Specification).Normalize()
			if _, err := imp.AddDetail(line.ProductID, cfg.ID, normalized, line.Quantity, line.UnitPrice); err != nil {
				return err
			}
		}

		if err := repos.ImportRepo().Save(ctx, imp); err != nil {
			return err
		}

		if err := s.applyDetails(ctx, ledger, serials, imp.Details, imp.ImportDate); err != nil {
			return err
		}

		created = imp
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToStockImportResponse(created)
	return &response, nil
}

// Update replaces the import's detail lines. The inventory effects of the old
// lines are reversed first (in-stock serials deleted, quantity debited by the
// original line quantity), then the new lines are applied. A line whose units
// have already been sold cannot be reversed; the debit hits the quantity floor
// and the whole transaction rolls back.
func (s *StockImportService) Update(ctx context.Context, id uuid.UUID, req UpdateStockImportRequest) (*StockImportResponse, error) {
	var updated *stock.StockImport

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		imp, err := repos.ImportRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
		serials := stock.NewSerialService(repos.ProductRepo(), repos.SerialRepo(), ledger)

		// Reverse the old lines against the original import date before any
		// field of the import changes.
		if err := s.reverseDetails(ctx, ledger, serials, imp.Details, imp.ImportDate); err != nil {
			return err
		}

		imp.SupplierID = req.SupplierID
		if req.ImportDate != nil {
			imp.ImportDate = *req.ImportDate
		}
		if req.EmployeeID != nil {
			imp.SetEmployee(*req.EmployeeID)
		}
		imp.SetNote(req.Note)

		newDetails := make([]stock.StockImportDetail, 0, len(req.Details))
		for _, line := range req.Details {
			cfg, err := ledger.Resolve(ctx, line.ProductID, line.Specification)
			if err != nil {
				return err
			}
			normalized := catalog.ParseSpecification(line.Specification).Normalize()
			detail, err := stock.NewStockImportDetail(imp.ID, line.ProductID, cfg.ID, normalized, line.Quantity, line.UnitPrice)
			if err != nil {
				return err
			}
			newDetails = append(newDetails, *detail)
		}
		if err := imp.ReplaceDetails(newDetails); err != nil {
			return err
		}

		if err := repos.ImportRepo().Save(ctx, imp); err != nil {
			return err
		}

		if err := s.applyDetails(ctx, ledger, serials, imp.Details, imp.ImportDate); err != nil {
			return err
		}

		updated = imp
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToStockImportResponse(updated)
	return &response, nil
}

// Delete removes a stock import after reversing the inventory effects of all
// its detail lines
func (s *StockImportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		imp, err := repos.ImportRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		ledger := stock.NewQuantityLedger(repos.ConfigurationRepo())
		serials := stock.NewSerialService(repos.ProductRepo(), repos.SerialRepo(), ledger)

		if err := s.reverseDetails(ctx, ledger, serials, imp.Details, imp.ImportDate); err != nil {
			return err
		}

		return repos.ImportRepo().Delete(ctx, imp.ID)
	})
}

// applyDetails credits the configuration quantity and creates one serial per
// unit for every detail line
func (s *StockImportService) applyDetails(ctx context.Context, ledger *stock.QuantityLedger, serials *stock.SerialService, details []stock.StockImportDetail, importDate time.Time) error {
	for _, d := range details {
		if _, err := ledger.Adjust(ctx, d.ProductID, d.Specification, d.Quantity); err != nil {
			return err
		}
		if _, err := serials.CreateSerials(ctx, d.ProductID, d.Specification, d.Quantity, importDate); err != nil {
			return err
		}
	}
	return nil
}

// reverseDetails deletes the in-stock serials created by every detail line and
// debits the configuration quantity by the original line quantity. Already
// sold serials are never touched by an import-side reversal, so a line with
// sold units fails the debit instead of silently shrinking.
func (s *StockImportService) reverseDetails(ctx context.Context, ledger *stock.QuantityLedger, serials *stock.SerialService, details []stock.StockImportDetail, importDate time.Time) error {
	for _, d := range details {
		if _, err := serials.DeleteImportedSerials(ctx, d.ProductID, d.Specification, importDate); err != nil {
			return err
		}
		if _, err := ledger.Adjust(ctx, d.ProductID, d.Specification, -d.Quantity); err != nil {
			return err
		}
	}
	return nil
}
