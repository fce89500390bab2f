package sales

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T) *SaleInvoice {
	t.Helper()
	invoice, err := NewSaleInvoice("HD-2026-00001", uuid.New(), "Nguyen Van A")
	require.NoError(t, err)
	return invoice
}

func newProcessableInvoice(t *testing.T) *SaleInvoice {
	t.Helper()
	invoice := newTestInvoice(t)
	_, err := invoice.AddItem(uuid.New(), uuid.New(), "ThinkPad X1", "Intel i5 / 16GB / 512GB / Iris Xe", 2, decimal.NewFromInt(1500))
	require.NoError(t, err)
	return invoice
}

func TestInvoiceStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    InvoiceStatus
		to      InvoiceStatus
		allowed bool
	}{
		{InvoiceStatusPending, InvoiceStatusProcessing, true},
		{InvoiceStatusPending, InvoiceStatusCancelled, true},
		{InvoiceStatusPending, InvoiceStatusAwaitingShipment, false},
		{InvoiceStatusPending, InvoiceStatusCompleted, false},
		{InvoiceStatusProcessing, InvoiceStatusAwaitingShipment, true},
		{InvoiceStatusProcessing, InvoiceStatusCancelled, true},
		{InvoiceStatusProcessing, InvoiceStatusShipping, false},
		{InvoiceStatusAwaitingShipment, InvoiceStatusShipping, true},
		{InvoiceStatusAwaitingShipment, InvoiceStatusCompleted, false},
		{InvoiceStatusAwaitingShipment, InvoiceStatusCancelled, false},
		{InvoiceStatusShipping, InvoiceStatusCompleted, true},
		{InvoiceStatusShipping, InvoiceStatusCancelled, false},
		{InvoiceStatusCompleted, InvoiceStatusPending, false},
		{InvoiceStatusCancelled, InvoiceStatusProcessing, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestInvoiceStatusHelpers(t *testing.T) {
	assert.True(t, InvoiceStatusCompleted.IsTerminal())
	assert.True(t, InvoiceStatusCancelled.IsTerminal())
	assert.False(t, InvoiceStatusShipping.IsTerminal())

	assert.True(t, InvoiceStatusAwaitingShipment.IsValid())
	assert.False(t, InvoiceStatus("PAID").IsValid())
}

func TestNewSaleInvoice(t *testing.T) {
	t.Run("starts pending with zero totals", func(t *testing.T) {
		invoice := newTestInvoice(t)

		assert.Equal(t, InvoiceStatusPending, invoice.Status)
		assert.True(t, invoice.TotalAmount.IsZero())
		assert.True(t, invoice.PayableAmount.IsZero())
		assert.Empty(t, invoice.Items)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewSaleInvoice("", uuid.New(), "Nguyen Van A")
		assert.Error(t, err)

		_, err = NewSaleInvoice("HD-2026-00001", uuid.Nil, "Nguyen Van A")
		assert.Error(t, err)

		_, err = NewSaleInvoice("HD-2026-00001", uuid.New(), "")
		assert.Error(t, err)
	})
}

func TestSaleInvoiceAddItem(t *testing.T) {
	t.Run("recalculates totals as items are added", func(t *testing.T) {
		invoice := newTestInvoice(t)

		_, err := invoice.AddItem(uuid.New(), uuid.New(), "ThinkPad X1", "Intel i5 / 16GB / 512GB / Iris Xe", 2, decimal.NewFromInt(1500))
		require.NoError(t, err)
		_, err = invoice.AddItem(uuid.New(), uuid.New(), "IdeaPad 5", "Ryzen 5 / 8GB / 256GB / Radeon", 1, decimal.NewFromInt(800))
		require.NoError(t, err)

		assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromInt(3800)))
		assert.True(t, invoice.PayableAmount.Equal(decimal.NewFromInt(3800)))
		assert.Equal(t, 2, invoice.ItemCount())
	})

	t.Run("rejects items once the invoice left pending", func(t *testing.T) {
		invoice := newProcessableInvoice(t)
		require.NoError(t, invoice.TransitionTo(InvoiceStatusProcessing))

		_, err := invoice.AddItem(uuid.New(), uuid.New(), "IdeaPad 5", "spec", 1, decimal.NewFromInt(800))
		assert.Error(t, err)
	})
}

func TestSaleInvoiceApplyPromotion(t *testing.T) {
	t.Run("reduces the payable amount", func(t *testing.T) {
		invoice := newProcessableInvoice(t)

		err := invoice.ApplyPromotion(uuid.New(), decimal.NewFromInt(500))

		require.NoError(t, err)
		assert.True(t, invoice.DiscountAmount.Equal(decimal.NewFromInt(500)))
		assert.True(t, invoice.PayableAmount.Equal(decimal.NewFromInt(2500)))
	})

	t.Run("rejects a discount above the total", func(t *testing.T) {
		invoice := newProcessableInvoice(t)
		assert.Error(t, invoice.ApplyPromotion(uuid.New(), decimal.NewFromInt(5000)))
	})

	t.Run("rejects a negative discount", func(t *testing.T) {
		invoice := newProcessableInvoice(t)
		assert.Error(t, invoice.ApplyPromotion(uuid.New(), decimal.NewFromInt(-1)))
	})

	t.Run("rejects once the invoice left pending", func(t *testing.T) {
		invoice := newProcessableInvoice(t)
		require.NoError(t, invoice.TransitionTo(InvoiceStatusProcessing))
		assert.Error(t, invoice.ApplyPromotion(uuid.New(), decimal.NewFromInt(100)))
	})
}

func TestSaleInvoiceProcessing(t *testing.T) {
	t.Run("emits the processing event with the line items", func(t *testing.T) {
		invoice := newProcessableInvoice(t)

		require.NoError(t, invoice.TransitionTo(InvoiceStatusProcessing))

		assert.Equal(t, InvoiceStatusProcessing, invoice.Status)
		assert.NotNil(t, invoice.ProcessedAt)
		assert.True(t, invoice.IsProcessing())

		events := invoice.GetDomainEvents()
		require.Len(t, events, 1)
		processing, ok := events[0].(*SaleInvoiceProcessingEvent)
		require.True(t, ok)
		assert.Equal(t, invoice.ID, processing.InvoiceID)
		require.Len(t, processing.Items, 1)
		assert.Equal(t, 2, processing.Items[0].Quantity)
		assert.Equal(t, "1500", processing.Items[0].UnitPrice)
	})

	t.Run("rejects processing an empty invoice", func(t *testing.T) {
		invoice := newTestInvoice(t)
		assert.Error(t, invoice.TransitionTo(InvoiceStatusProcessing))
	})
}

func TestSaleInvoiceDeliveryFlow(t *testing.T) {
	advanceTo := func(t *testing.T, status InvoiceStatus) *SaleInvoice {
		t.Helper()
		invoice := newProcessableInvoice(t)
		require.NoError(t, invoice.TransitionTo(InvoiceStatusProcessing))
		if status == InvoiceStatusProcessing {
			return invoice
		}
		require.NoError(t, invoice.TransitionTo(InvoiceStatusAwaitingShipment))
		if status == InvoiceStatusAwaitingShipment {
			return invoice
		}
		require.NoError(t, invoice.StartShipping())
		return invoice
	}

	t.Run("full flow through shipping to completed", func(t *testing.T) {
		invoice := advanceTo(t, InvoiceStatusShipping)
		assert.NotNil(t, invoice.ShippedAt)

		require.NoError(t, invoice.CompleteDelivery())
		assert.Equal(t, InvoiceStatusCompleted, invoice.Status)
		assert.NotNil(t, invoice.CompletedAt)
	})

	t.Run("cannot complete straight from awaiting shipment", func(t *testing.T) {
		invoice := advanceTo(t, InvoiceStatusAwaitingShipment)
		assert.Error(t, invoice.CompleteDelivery())
	})

	t.Run("cannot start shipping before the export completed", func(t *testing.T) {
		invoice := advanceTo(t, InvoiceStatusProcessing)
		assert.Error(t, invoice.StartShipping())
	})

	t.Run("terminal invoices reject all transitions", func(t *testing.T) {
		invoice := advanceTo(t, InvoiceStatusShipping)
		require.NoError(t, invoice.CompleteDelivery())

		assert.Error(t, invoice.TransitionTo(InvoiceStatusProcessing))
		assert.Error(t, invoice.Cancel("changed my mind"))
	})
}

func TestSaleInvoiceCancel(t *testing.T) {
	t.Run("records the reason and timestamp", func(t *testing.T) {
		invoice := newProcessableInvoice(t)

		require.NoError(t, invoice.Cancel("customer withdrew the order"))

		assert.Equal(t, InvoiceStatusCancelled, invoice.Status)
		assert.Equal(t, "customer withdrew the order", invoice.CancelReason)
		assert.NotNil(t, invoice.CancelledAt)
	})

	t.Run("requires a reason", func(t *testing.T) {
		invoice := newProcessableInvoice(t)
		assert.Error(t, invoice.Cancel(""))
	})

	t.Run("rejected once fulfillment started", func(t *testing.T) {
		invoice := newProcessableInvoice(t)
		require.NoError(t, invoice.TransitionTo(InvoiceStatusProcessing))
		require.NoError(t, invoice.TransitionTo(InvoiceStatusAwaitingShipment))

		assert.Error(t, invoice.Cancel("too late"))
	})
}
