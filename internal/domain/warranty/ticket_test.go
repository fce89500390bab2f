package warranty

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{TicketStatusReceived, TicketStatusProcessing, true},
		{TicketStatusReceived, TicketStatusCancelled, true},
		{TicketStatusReceived, TicketStatusReturned, false},
		{TicketStatusProcessing, TicketStatusReturned, true},
		{TicketStatusProcessing, TicketStatusCancelled, true},
		{TicketStatusProcessing, TicketStatusReceived, false},
		{TicketStatusReturned, TicketStatusProcessing, false},
		{TicketStatusCancelled, TicketStatusProcessing, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestNewWarrantyTicket(t *testing.T) {
	t.Run("requires a serial number", func(t *testing.T) {
		_, err := NewWarrantyTicket("BH-2026-00001", uuid.New(), "", "screen flickers")
		assert.Error(t, err)
	})

	t.Run("starts received with a zero fee", func(t *testing.T) {
		ticket, err := NewWarrantyTicket("BH-2026-00001", uuid.New(), "SRP0011001", "screen flickers")

		require.NoError(t, err)
		assert.Equal(t, TicketTypeWarranty, ticket.Type)
		assert.Equal(t, TicketStatusReceived, ticket.Status)
		require.NotNil(t, ticket.SerialNumber)
		assert.Equal(t, "SRP0011001", *ticket.SerialNumber)
		assert.True(t, ticket.Fee.IsZero())
		assert.False(t, ticket.ReceivedAt.IsZero())
	})
}

func TestNewRepairTicket(t *testing.T) {
	t.Run("carries a fee and no serial requirement", func(t *testing.T) {
		ticket, err := NewRepairTicket("SC-2026-00001", uuid.New(), "broken hinge", decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.Equal(t, TicketTypeRepair, ticket.Type)
		assert.Nil(t, ticket.SerialNumber)
		assert.True(t, ticket.Fee.Equal(decimal.NewFromInt(50)))
	})

	t.Run("rejects a negative fee", func(t *testing.T) {
		_, err := NewRepairTicket("SC-2026-00001", uuid.New(), "broken hinge", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects missing description and customer", func(t *testing.T) {
		_, err := NewRepairTicket("SC-2026-00001", uuid.New(), "", decimal.Zero)
		assert.Error(t, err)

		_, err = NewRepairTicket("SC-2026-00001", uuid.Nil, "broken hinge", decimal.Zero)
		assert.Error(t, err)
	})
}

func TestTicketTransition(t *testing.T) {
	newProcessingTicket := func(t *testing.T) *Ticket {
		t.Helper()
		ticket, err := NewRepairTicket("SC-2026-00001", uuid.New(), "broken hinge", decimal.NewFromInt(50))
		require.NoError(t, err)
		require.NoError(t, ticket.Transition(TicketStatusProcessing))
		return ticket
	}

	t.Run("returning stamps the returned time", func(t *testing.T) {
		ticket := newProcessingTicket(t)

		require.NoError(t, ticket.Transition(TicketStatusReturned))
		assert.Equal(t, TicketStatusReturned, ticket.Status)
		assert.NotNil(t, ticket.ReturnedAt)
	})

	t.Run("cancelling leaves no returned time", func(t *testing.T) {
		ticket := newProcessingTicket(t)

		require.NoError(t, ticket.Transition(TicketStatusCancelled))
		assert.Nil(t, ticket.ReturnedAt)
	})

	t.Run("rejects unknown and disallowed targets", func(t *testing.T) {
		ticket := newProcessingTicket(t)

		assert.Error(t, ticket.Transition(TicketStatus("LOST")))
		assert.Error(t, ticket.Transition(TicketStatusReceived))
	})

	t.Run("terminal tickets reject all transitions", func(t *testing.T) {
		ticket := newProcessingTicket(t)
		require.NoError(t, ticket.Transition(TicketStatusReturned))

		assert.Error(t, ticket.Transition(TicketStatusProcessing))
	})
}

func TestTicketSetFee(t *testing.T) {
	t.Run("updates the fee on a repair ticket", func(t *testing.T) {
		ticket, err := NewRepairTicket("SC-2026-00001", uuid.New(), "broken hinge", decimal.NewFromInt(50))
		require.NoError(t, err)

		require.NoError(t, ticket.SetFee(decimal.NewFromInt(75)))
		assert.True(t, ticket.Fee.Equal(decimal.NewFromInt(75)))
	})

	t.Run("warranty tickets carry no fee", func(t *testing.T) {
		ticket, err := NewWarrantyTicket("BH-2026-00001", uuid.New(), "SRP0011001", "screen flickers")
		require.NoError(t, err)

		assert.Error(t, ticket.SetFee(decimal.NewFromInt(10)))
	})

	t.Run("rejects a negative fee", func(t *testing.T) {
		ticket, err := NewRepairTicket("SC-2026-00001", uuid.New(), "broken hinge", decimal.NewFromInt(50))
		require.NoError(t, err)

		assert.Error(t, ticket.SetFee(decimal.NewFromInt(-5)))
	})
}
