package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laptechvn/backend/internal/domain/shared"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Test", uuid.New())}
}

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler blew up")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func TestInMemoryEventBusDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("routes events to handlers by type", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		orders := &recordingHandler{types: []string{"order.created"}}
		payments := &recordingHandler{types: []string{"payment.settled"}}
		bus.Subscribe(orders)
		bus.Subscribe(payments)

		require.NoError(t, bus.Publish(ctx, newTestEvent("order.created")))

		assert.Len(t, orders.received, 1)
		assert.Empty(t, payments.received)
	})

	t.Run("subscribing without types falls back to the handler's own list", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{"a", "b"}}
		bus.Subscribe(handler)

		require.NoError(t, bus.Publish(ctx, newTestEvent("a"), newTestEvent("b"), newTestEvent("c")))

		assert.Len(t, handler.received, 2)
	})

	t.Run("explicit subscription types override the handler's list", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{"a"}}
		bus.Subscribe(handler, "b")

		require.NoError(t, bus.Publish(ctx, newTestEvent("a"), newTestEvent("b")))

		require.Len(t, handler.received, 1)
		assert.Equal(t, "b", handler.received[0].EventType())
	})

	t.Run("a failing handler does not block the others", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{types: []string{"x"}, err: errors.New("boom")}
		healthy := &recordingHandler{types: []string{"x"}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		require.NoError(t, bus.Publish(ctx, newTestEvent("x")))

		assert.Len(t, healthy.received, 1)
	})

	t.Run("a panicking handler is recovered", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		panicking := &recordingHandler{types: []string{"x"}, panics: true}
		healthy := &recordingHandler{types: []string{"x"}}
		bus.Subscribe(panicking)
		bus.Subscribe(healthy)

		require.NoError(t, bus.Publish(ctx, newTestEvent("x")))

		assert.Len(t, healthy.received, 1)
	})

	t.Run("unsubscribed handlers receive nothing", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{"x"}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		require.NoError(t, bus.Publish(ctx, newTestEvent("x")))

		assert.Empty(t, handler.received)
	})
}

func TestHandlerRegistry(t *testing.T) {
	t.Run("wildcard handlers receive every event type", func(t *testing.T) {
		registry := NewHandlerRegistry()
		wildcard := &recordingHandler{}
		typed := &recordingHandler{types: []string{"x"}}
		registry.Register(wildcard)
		registry.Register(typed, "x")

		assert.Len(t, registry.GetHandlers("x"), 2)
		assert.Len(t, registry.GetHandlers("y"), 1)
	})

	t.Run("unregister removes the handler everywhere", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := &recordingHandler{}
		registry.Register(handler, "x", "y")
		registry.Unregister(handler)

		assert.Empty(t, registry.GetHandlers("x"))
		assert.Empty(t, registry.GetHandlers("y"))
	})
}
