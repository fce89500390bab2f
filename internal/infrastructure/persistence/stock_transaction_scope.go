package persistence

import (
	"context"

	appstock "github.com/laptechvn/backend/internal/application/stock"
	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/stock"
	"gorm.io/gorm"
)

// GormStockTransactionScope runs stock movement sequences inside a single
// database transaction. Every repository handed to the callback is bound to
// the transaction, so serial state, configuration quantities and document
// rows commit or roll back together.
type GormStockTransactionScope struct {
	db *gorm.DB
}

// NewGormStockTransactionScope creates a new GormStockTransactionScope
func NewGormStockTransactionScope(db *gorm.DB) *GormStockTransactionScope {
	return &GormStockTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormStockTransactionScope) Execute(ctx context.Context, fn func(repos appstock.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides transaction-bound repository instances
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) ConfigurationRepo() catalog.ConfigurationRepository {
	return NewGormConfigurationRepository(r.tx)
}

func (r *gormTransactionalRepositories) SerialRepo() catalog.ProductSerialRepository {
	return NewGormProductSerialRepository(r.tx)
}

func (r *gormTransactionalRepositories) ImportRepo() stock.StockImportRepository {
	return NewGormStockImportRepository(r.tx)
}

func (r *gormTransactionalRepositories) ExportRepo() stock.StockExportRepository {
	return NewGormStockExportRepository(r.tx)
}

func (r *gormTransactionalRepositories) InvoiceRepo() sales.SaleInvoiceRepository {
	return NewGormSaleInvoiceRepository(r.tx)
}

// Ensure interface compliance
var (
	_ appstock.TransactionScope          = (*GormStockTransactionScope)(nil)
	_ appstock.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
