package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laptechvn/backend/internal/domain/sales"
	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/domain/stock"
)

type memoryInvoiceRepo struct {
	invoices map[uuid.UUID]*sales.SaleInvoice
	seq      int
}

func newMemoryInvoiceRepo() *memoryInvoiceRepo {
	return &memoryInvoiceRepo{invoices: make(map[uuid.UUID]*sales.SaleInvoice)}
}

func (r *memoryInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*sales.SaleInvoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return invoice, nil
}

func (r *memoryInvoiceRepo) FindByCode(_ context.Context, code string) (*sales.SaleInvoice, error) {
	for _, invoice := range r.invoices {
		if invoice.Code == code {
			return invoice, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryInvoiceRepo) FindAll(_ context.Context, _ shared.Filter) ([]sales.SaleInvoice, error) {
	out := make([]sales.SaleInvoice, 0, len(r.invoices))
	for _, invoice := range r.invoices {
		out = append(out, *invoice)
	}
	return out, nil
}

func (r *memoryInvoiceRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.invoices)), nil
}

func (r *memoryInvoiceRepo) Save(_ context.Context, invoice *sales.SaleInvoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *memoryInvoiceRepo) GenerateCode(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("HD-2026-%05d", r.seq), nil
}

var _ sales.SaleInvoiceRepository = (*memoryInvoiceRepo)(nil)

func completedEventFor(t *testing.T, invoiceID *uuid.UUID) *stock.StockExportCompletedEvent {
	t.Helper()
	export, err := stock.NewStockExport("XK-2026-00001", invoiceID)
	require.NoError(t, err)
	_, err = export.AddDetail(uuid.New(), uuid.New(), "Intel i5 / 16GB / 512GB / Iris Xe", 1, decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, export.Complete(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))

	events := export.GetDomainEvents()
	require.Len(t, events, 1)
	event, ok := events[0].(*stock.StockExportCompletedEvent)
	require.True(t, ok)
	return event
}

func processingInvoice(t *testing.T, repo *memoryInvoiceRepo) *sales.SaleInvoice {
	t.Helper()
	invoice, err := sales.NewSaleInvoice("HD-2026-00001", uuid.New(), "Nguyen Van A")
	require.NoError(t, err)
	_, err = invoice.AddItem(uuid.New(), uuid.New(), "ThinkPad X1", "Intel i5 / 16GB / 512GB / Iris Xe", 1, decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, invoice.TransitionTo(sales.InvoiceStatusProcessing))
	require.NoError(t, repo.Save(context.Background(), invoice))
	return invoice
}

func TestExportCompletedHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("advances a processing invoice to awaiting shipment", func(t *testing.T) {
		repo := newMemoryInvoiceRepo()
		handler := NewExportCompletedHandler(repo, zap.NewNop())
		invoice := processingInvoice(t, repo)

		err := handler.Handle(ctx, completedEventFor(t, &invoice.ID))

		require.NoError(t, err)
		stored, err := repo.FindByID(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, sales.InvoiceStatusAwaitingShipment, stored.Status)
	})

	t.Run("skips exports without an invoice", func(t *testing.T) {
		repo := newMemoryInvoiceRepo()
		handler := NewExportCompletedHandler(repo, zap.NewNop())

		assert.NoError(t, handler.Handle(ctx, completedEventFor(t, nil)))
	})

	t.Run("leaves invoices no longer in processing untouched", func(t *testing.T) {
		repo := newMemoryInvoiceRepo()
		handler := NewExportCompletedHandler(repo, zap.NewNop())
		invoice := processingInvoice(t, repo)
		require.NoError(t, invoice.TransitionTo(sales.InvoiceStatusAwaitingShipment))
		require.NoError(t, invoice.StartShipping())

		err := handler.Handle(ctx, completedEventFor(t, &invoice.ID))

		require.NoError(t, err)
		stored, err := repo.FindByID(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, sales.InvoiceStatusShipping, stored.Status)
	})

	t.Run("fails when the invoice cannot be found", func(t *testing.T) {
		repo := newMemoryInvoiceRepo()
		handler := NewExportCompletedHandler(repo, zap.NewNop())
		missing := uuid.New()

		assert.Error(t, handler.Handle(ctx, completedEventFor(t, &missing)))
	})
}
