package stock

import (
	"context"

	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/stock"
)

// TransactionScope provides transactional access to the repositories touched
// by stock movements. When a function is executed within a transaction scope,
// all repository operations are part of the same database transaction and are
// committed or rolled back atomically.
//
// Every reversal-then-reapply sequence (import edit/delete, export detail
// replacement, export completion/reopening) runs inside one scope so quantity
// and serial state can never diverge.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories a stock
// movement can touch, scoped to the current transaction.
//
// Aggregate boundary notes:
//   - ProductRepo / ConfigurationRepo: configurations are child entities of
//     Product, but quantity adjustments lock and save individual configuration
//     rows, so they have direct repository access.
//   - SerialRepo: serials are created and consumed in batches alongside
//     import/export detail lines.
//   - InvoiceRepo: exposed so export-side handlers can load the originating
//     invoice within the same transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// ConfigurationRepo returns the configuration repository scoped to the current transaction
	ConfigurationRepo() catalog.ConfigurationRepository
	// SerialRepo returns the product serial repository scoped to the current transaction
	SerialRepo() catalog.ProductSerialRepository
	// ImportRepo returns the stock import repository scoped to the current transaction
	ImportRepo() stock.StockImportRepository
	// ExportRepo returns the stock export repository scoped to the current transaction
	ExportRepo() stock.StockExportRepository
	// InvoiceRepo returns the sale invoice repository scoped to the current transaction
	InvoiceRepo() sales.SaleInvoiceRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	productRepo catalog.ProductRepository
	configRepo  catalog.ConfigurationRepository
	serialRepo  catalog.ProductSerialRepository
	importRepo  stock.StockImportRepository
	exportRepo  stock.StockExportRepository
	invoiceRepo sales.SaleInvoiceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	configRepo catalog.ConfigurationRepository,
	serialRepo catalog.ProductSerialRepository,
	importRepo stock.StockImportRepository,
	exportRepo stock.StockExportRepository,
	invoiceRepo sales.SaleInvoiceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo: productRepo,
		configRepo:  configRepo,
		serialRepo:  serialRepo,
		importRepo:  importRepo,
		exportRepo:  exportRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// ConfigurationRepo returns the configuration repository.
func (s *NoOpTransactionScope) ConfigurationRepo() catalog.ConfigurationRepository {
	return s.configRepo
}

// SerialRepo returns the product serial repository.
func (s *NoOpTransactionScope) SerialRepo() catalog.ProductSerialRepository {
	return s.serialRepo
}

// ImportRepo returns the stock import repository.
func (s *NoOpTransactionScope) ImportRepo() stock.StockImportRepository {
	return s.importRepo
}

// ExportRepo returns the stock export repository.
func (s *NoOpTransactionScope) ExportRepo() stock.StockExportRepository {
	return s.exportRepo
}

// InvoiceRepo returns the sale invoice repository.
func (s *NoOpTransactionScope) InvoiceRepo() sales.SaleInvoiceRepository {
	return s.invoiceRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
