package stock

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExport(t *testing.T) *StockExport {
	t.Helper()
	export, err := NewStockExport("XK-2026-00001", nil)
	require.NoError(t, err)
	return export
}

func addTestLine(t *testing.T, export *StockExport, quantity int, price int64) *StockExportDetail {
	t.Helper()
	detail, err := export.AddDetail(uuid.New(), uuid.New(), "Intel i5 / 16GB / 512GB / Iris Xe", quantity, decimal.NewFromInt(price))
	require.NoError(t, err)
	return detail
}

func TestExportStatus(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		assert.True(t, ExportStatusPending.IsValid())
		assert.True(t, ExportStatusCompleted.IsValid())
		assert.False(t, ExportStatus("SHIPPED").IsValid())
	})

	t.Run("transitions are bidirectional between the two states", func(t *testing.T) {
		assert.True(t, ExportStatusPending.CanTransitionTo(ExportStatusCompleted))
		assert.True(t, ExportStatusCompleted.CanTransitionTo(ExportStatusPending))
		assert.False(t, ExportStatusPending.CanTransitionTo(ExportStatusPending))
		assert.False(t, ExportStatusCompleted.CanTransitionTo(ExportStatusCompleted))
	})
}

func TestNewStockExport(t *testing.T) {
	t.Run("starts pending with no export date", func(t *testing.T) {
		invoiceID := uuid.New()
		export, err := NewStockExport("XK-2026-00001", &invoiceID)

		require.NoError(t, err)
		assert.Equal(t, ExportStatusPending, export.Status)
		assert.Nil(t, export.ExportDate)
		assert.Equal(t, &invoiceID, export.InvoiceID)
		assert.False(t, export.IsCompleted())
	})

	t.Run("invoice link is optional", func(t *testing.T) {
		export := newTestExport(t)
		assert.Nil(t, export.InvoiceID)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewStockExport("", nil)
		assert.Error(t, err)
	})
}

func TestStockExportDetailValidation(t *testing.T) {
	export := newTestExport(t)

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := export.AddDetail(uuid.New(), uuid.New(), "spec", 0, decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := export.AddDetail(uuid.New(), uuid.New(), "spec", 1, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects missing product or configuration", func(t *testing.T) {
		_, err := export.AddDetail(uuid.Nil, uuid.New(), "spec", 1, decimal.NewFromInt(100))
		assert.Error(t, err)

		_, err = export.AddDetail(uuid.New(), uuid.Nil, "spec", 1, decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("computes the line amount", func(t *testing.T) {
		detail := addTestLine(t, export, 3, 1500)
		assert.True(t, detail.Amount.Equal(decimal.NewFromInt(4500)))
	})
}

func TestStockExportComplete(t *testing.T) {
	exportDate := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stamps the export date and emits a completion event", func(t *testing.T) {
		export := newTestExport(t)
		addTestLine(t, export, 2, 1500)

		err := export.Complete(exportDate)

		require.NoError(t, err)
		assert.Equal(t, ExportStatusCompleted, export.Status)
		assert.Equal(t, exportDate, *export.ExportDate)
		assert.True(t, export.IsCompleted())

		events := export.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStockExportCompleted, events[0].EventType())
	})

	t.Run("rejects completion without detail lines", func(t *testing.T) {
		export := newTestExport(t)
		assert.Error(t, export.Complete(exportDate))
	})

	t.Run("rejects completing twice", func(t *testing.T) {
		export := newTestExport(t)
		addTestLine(t, export, 1, 1000)
		require.NoError(t, export.Complete(exportDate))

		assert.Error(t, export.Complete(exportDate))
	})

	t.Run("defaults a zero export date to now", func(t *testing.T) {
		export := newTestExport(t)
		addTestLine(t, export, 1, 1000)

		require.NoError(t, export.Complete(time.Time{}))
		require.NotNil(t, export.ExportDate)
		assert.WithinDuration(t, time.Now(), *export.ExportDate, time.Minute)
	})
}

func TestStockExportReopen(t *testing.T) {
	t.Run("clears the export date and emits a reopen event", func(t *testing.T) {
		export := newTestExport(t)
		addTestLine(t, export, 2, 1500)
		require.NoError(t, export.Complete(time.Now()))
		export.ClearDomainEvents()

		err := export.Reopen()

		require.NoError(t, err)
		assert.Equal(t, ExportStatusPending, export.Status)
		assert.Nil(t, export.ExportDate)

		events := export.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStockExportReopened, events[0].EventType())
	})

	t.Run("rejects reopening a pending export", func(t *testing.T) {
		export := newTestExport(t)
		assert.Error(t, export.Reopen())
	})
}

func TestStockExportReplaceDetails(t *testing.T) {
	t.Run("reparents the new lines and bumps the version", func(t *testing.T) {
		export := newTestExport(t)
		addTestLine(t, export, 2, 1500)
		versionBefore := export.Version

		replacement, err := NewStockExportDetail(uuid.Nil, uuid.New(), uuid.New(), "Ryzen 7 / 32GB / 1TB / Radeon", 4, decimal.NewFromInt(2000))
		require.NoError(t, err)

		require.NoError(t, export.ReplaceDetails([]StockExportDetail{*replacement}))

		require.Len(t, export.Details, 1)
		assert.Equal(t, export.ID, export.Details[0].ExportID)
		assert.Equal(t, 4, export.Details[0].Quantity)
		assert.Equal(t, versionBefore+1, export.Version)
	})

	t.Run("rejects an empty replacement set", func(t *testing.T) {
		export := newTestExport(t)
		assert.Error(t, export.ReplaceDetails(nil))
	})
}

func TestStockExportTotals(t *testing.T) {
	export := newTestExport(t)
	addTestLine(t, export, 2, 1500)
	addTestLine(t, export, 3, 1000)

	assert.Equal(t, 5, export.TotalQuantity())
	assert.True(t, export.TotalAmount().Equal(decimal.NewFromInt(6000)))
}
