package stock

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laptechvn/backend/internal/domain/catalog"
	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
)

func TestStockExportServiceCreate(t *testing.T) {
	t.Run("a pending export moves no inventory", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)

		resp := f.exportUnits(t, 3)

		assert.Equal(t, "XK-2026-00001", resp.Code)
		assert.Equal(t, stock.ExportStatusPending.String(), resp.Status)
		assert.Nil(t, resp.ExportDate)
		assert.Equal(t, 5, f.configs.quantityOf(f.config.ID))
		assert.Len(t, f.serials.numbersByStatus(catalog.SerialStatusInStock), 5)
	})

	t.Run("a zero unit price defaults to the configuration price", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)

		resp := f.exportUnits(t, 2)

		require.Len(t, resp.Details, 1)
		assert.True(t, resp.Details[0].UnitPrice.Equal(decimal.NewFromInt(1500)))
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(3000)))
	})

	t.Run("creating against more than on-hand is allowed while pending", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 2)

		resp := f.exportUnits(t, 10)

		assert.Equal(t, 10, resp.TotalQuantity)
		assert.Equal(t, 2, f.configs.quantityOf(f.config.ID))
	})

	t.Run("a specification matching no configuration is a hard error", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)

		_, err := f.exportSvc.Create(f.ctx, CreateStockExportRequest{
			Details: []StockLineRequest{{
				ProductID:     f.product.ID,
				Specification: "RAM: 64GB",
				Quantity:      1,
			}},
		})

		require.Error(t, err)
		assert.Equal(t, "CONFIGURATION_NOT_FOUND", domainCode(t, err))
	})
}

func TestStockExportServiceTransition(t *testing.T) {
	exportDate := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("completion debits the quantity and consumes the oldest serials", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 3)

		resp := f.completeExport(t, created.ID)

		assert.Equal(t, stock.ExportStatusCompleted.String(), resp.Status)
		require.NotNil(t, resp.ExportDate)
		assert.Equal(t, 2, f.configs.quantityOf(f.config.ID))
		assert.Equal(t,
			[]string{"SRP0011001", "SRP0011002", "SRP0011003"},
			f.serials.numbersByStatus(catalog.SerialStatusSold))
		assert.Equal(t,
			[]string{"SRP0011004", "SRP0011005"},
			f.serials.numbersByStatus(catalog.SerialStatusInStock))
	})

	t.Run("consumed serials carry the export link and warranty window", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 2)

		resp := f.completeExport(t, created.ID)

		sold, err := f.serials.FindByExportDetail(f.ctx, resp.Details[0].ID)
		require.NoError(t, err)
		require.Len(t, sold, 2)
		for _, serial := range sold {
			assert.Equal(t, catalog.SerialStatusSold, serial.Status)
			require.NotNil(t, serial.ExportDate)
			assert.Equal(t, exportDate, *serial.ExportDate)
			require.NotNil(t, serial.WarrantyEnd)
			assert.Equal(t, exportDate.AddDate(0, 24, 0), *serial.WarrantyEnd)
		}
	})

	t.Run("complete then reopen restores the inventory exactly", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 3)
		f.completeExport(t, created.ID)

		resp, err := f.exportSvc.Transition(f.ctx, created.ID, TransitionStockExportRequest{Status: "PENDING"})

		require.NoError(t, err)
		assert.Equal(t, stock.ExportStatusPending.String(), resp.Status)
		assert.Nil(t, resp.ExportDate)
		assert.Equal(t, 5, f.configs.quantityOf(f.config.ID))
		inStock, err := f.serials.FindInStockByProduct(f.ctx, f.product.ID)
		require.NoError(t, err)
		require.Len(t, inStock, 5)
		for _, serial := range inStock {
			assert.Nil(t, serial.ExportDetailID)
			assert.Nil(t, serial.WarrantyStart)
		}
	})

	t.Run("insufficient quantity rejects the whole completion", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 2)
		created := f.exportUnits(t, 3)

		_, err := f.exportSvc.Transition(f.ctx, created.ID, TransitionStockExportRequest{
			Status:     "COMPLETED",
			ExportDate: &exportDate,
		})

		require.Error(t, err)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainCode(t, err))
		assert.Equal(t, 2, f.configs.quantityOf(f.config.ID))
		assert.Len(t, f.serials.numbersByStatus(catalog.SerialStatusInStock), 2)
		assert.Empty(t, f.serials.numbersByStatus(catalog.SerialStatusSold))
	})

	t.Run("a quantity not backed by serials is an accounting error", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)

		// A quantity drifted away from the serial count indicates corrupt data.
		cfg, err := f.configs.FindByID(f.ctx, f.config.ID)
		require.NoError(t, err)
		require.NoError(t, cfg.AdjustQuantity(1))
		require.NoError(t, f.configs.Save(f.ctx, cfg))

		created := f.exportUnits(t, 6)
		_, err = f.exportSvc.Transition(f.ctx, created.ID, TransitionStockExportRequest{
			Status:     "COMPLETED",
			ExportDate: &exportDate,
		})

		require.Error(t, err)
		assert.Equal(t, "SERIAL_SHORTFALL", domainCode(t, err))
	})

	t.Run("an unknown status is rejected", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 1)

		_, err := f.exportSvc.Transition(f.ctx, created.ID, TransitionStockExportRequest{Status: "SHIPPED"})

		require.Error(t, err)
		assert.Equal(t, "INVALID_STATUS", domainCode(t, err))
	})
}

func TestStockExportServiceUpdate(t *testing.T) {
	t.Run("replacing lines of a pending export moves no inventory", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 3)

		resp, err := f.exportSvc.Update(f.ctx, created.ID, UpdateStockExportRequest{
			Details: []StockLineRequest{{
				ProductID:     f.product.ID,
				Specification: testSpec,
				Quantity:      1,
			}},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalQuantity)
		assert.Equal(t, 5, f.configs.quantityOf(f.config.ID))
	})

	t.Run("a completed export is restored, rechecked and reapplied", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 3)
		f.completeExport(t, created.ID)

		resp, err := f.exportSvc.Update(f.ctx, created.ID, UpdateStockExportRequest{
			Details: []StockLineRequest{{
				ProductID:     f.product.ID,
				Specification: testSpec,
				Quantity:      4,
			}},
		})

		require.NoError(t, err)
		assert.Equal(t, stock.ExportStatusCompleted.String(), resp.Status)
		assert.Equal(t, 1, f.configs.quantityOf(f.config.ID))
		assert.Equal(t,
			[]string{"SRP0011001", "SRP0011002", "SRP0011003", "SRP0011004"},
			f.serials.numbersByStatus(catalog.SerialStatusSold))
	})

	t.Run("new lines exceeding the restored quantity are rejected", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 3)
		f.completeExport(t, created.ID)

		_, err := f.exportSvc.Update(f.ctx, created.ID, UpdateStockExportRequest{
			Details: []StockLineRequest{{
				ProductID:     f.product.ID,
				Specification: testSpec,
				Quantity:      6,
			}},
		})

		require.Error(t, err)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainCode(t, err))
	})
}

func TestStockExportServiceDelete(t *testing.T) {
	t.Run("deleting a pending export leaves inventory untouched", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 3)

		require.NoError(t, f.exportSvc.Delete(f.ctx, created.ID))

		assert.Equal(t, 5, f.configs.quantityOf(f.config.ID))
		_, err := f.exports.FindByID(f.ctx, created.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deleting a completed export restores the consumed serials", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		created := f.exportUnits(t, 2)
		f.completeExport(t, created.ID)

		require.NoError(t, f.exportSvc.Delete(f.ctx, created.ID))

		assert.Equal(t, 5, f.configs.quantityOf(f.config.ID))
		assert.Len(t, f.serials.numbersByStatus(catalog.SerialStatusInStock), 5)
		assert.Empty(t, f.serials.numbersByStatus(catalog.SerialStatusSold))
	})
}

func TestInvoiceProcessingHandler(t *testing.T) {
	processingEvent := func(t *testing.T, f *stockFixture) *sales.SaleInvoiceProcessingEvent {
		t.Helper()
		invoice, err := sales.NewSaleInvoice("HD-2026-00001", uuid.New(), "Nguyen Van A")
		require.NoError(t, err)
		_, err = invoice.AddItem(f.product.ID, f.config.ID, f.product.Name, testSpec, 2, decimal.NewFromInt(1500))
		require.NoError(t, err)
		require.NoError(t, f.invoices.Save(f.ctx, invoice))
		require.NoError(t, invoice.TransitionTo(sales.InvoiceStatusProcessing))

		events := invoice.GetDomainEvents()
		require.Len(t, events, 1)
		event, ok := events[0].(*sales.SaleInvoiceProcessingEvent)
		require.True(t, ok)
		return event
	}

	t.Run("creates the backing export for the invoice", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		handler := NewInvoiceProcessingHandler(f.scope, zap.NewNop())
		event := processingEvent(t, f)

		require.NoError(t, handler.Handle(f.ctx, event))

		export, err := f.exports.FindByInvoiceID(f.ctx, event.InvoiceID)
		require.NoError(t, err)
		assert.Equal(t, stock.ExportStatusPending, export.Status)
		require.Len(t, export.Details, 1)
		assert.Equal(t, 2, export.Details[0].Quantity)
		assert.Equal(t, f.config.ID, export.Details[0].ConfigurationID)
	})

	t.Run("redelivered events are no-ops", func(t *testing.T) {
		f := newStockFixture(t)
		f.importUnits(t, 5)
		handler := NewInvoiceProcessingHandler(f.scope, zap.NewNop())
		event := processingEvent(t, f)

		require.NoError(t, handler.Handle(f.ctx, event))
		require.NoError(t, handler.Handle(f.ctx, event))

		count, err := f.exports.Count(f.ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects an event of the wrong type", func(t *testing.T) {
		f := newStockFixture(t)
		handler := NewInvoiceProcessingHandler(f.scope, zap.NewNop())

		export, err := stock.NewStockExport("XK-2026-00001", nil)
		require.NoError(t, err)
		_, err = export.AddDetail(uuid.New(), uuid.New(), testSpec, 1, decimal.NewFromInt(1))
		require.NoError(t, err)
		require.NoError(t, export.Complete(time.Now()))

		assert.Error(t, handler.Handle(f.ctx, export.GetDomainEvents()[0]))
	})
}
