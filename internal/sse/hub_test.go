package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/event"
	"github.com/osse101/Farmstead_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		t.Fatalf("unexpected event %s", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_BroadcastRespectsFilters(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	turnsOnly := hub.Register([]string{EventTypeTurnAdvanced})
	assert.Equal(t, 2, hub.ClientCount())

	hub.Broadcast(EventTypeSnapshotUpdated, SnapshotPayload{Version: 2})
	hub.Broadcast(EventTypeTurnAdvanced, TurnPayload{Turn: 2})

	assert.Equal(t, EventTypeSnapshotUpdated, receive(t, all).Type)
	assert.Equal(t, EventTypeTurnAdvanced, receive(t, all).Type)

	got := receive(t, turnsOnly)
	assert.Equal(t, EventTypeTurnAdvanced, got.Type)
	assert.NotEmpty(t, got.ID)
	assertNoEvent(t, turnsOnly)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	hub.Unregister(c.ID)
	hub.Unregister(c.ID)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Register(nil)
	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())

	// late unregister from a handler must not panic
	hub.Unregister(c.ID)
}

func TestHub_SlowClientDropsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Register(nil)
	for i := 0; i < ClientEventBuffer+10; i++ {
		hub.Broadcast(EventTypeKeepalive, nil)
	}

	require.Eventually(t, func() bool { return len(slow.EventChannel) == ClientEventBuffer },
		time.Second, 5*time.Millisecond)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: EventTypeTurnAdvanced, Timestamp: 1, Payload: TurnPayload{Turn: 3}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: turn.advanced\ndata: {"))
	assert.Contains(t, s, `"turn":3`)
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()
	c := hub.Register(nil)
	ctx := context.Background()

	snap := &domain.Snapshot{Version: 7, Resources: domain.Resources{Turn: 2, ActionsRemaining: 3}}
	require.NoError(t, bus.Publish(ctx, event.NewSnapshotUpdatedEvent("plant", snap)))
	require.NoError(t, bus.Publish(ctx, event.NewTurnAdvancedEvent(snap, true)))
	require.NoError(t, bus.Publish(ctx, event.NewShopTransactionEvent(event.ItemSold, "sell", "item", domain.ItemCorn, 4, 24, 74)))
	require.NoError(t, bus.Publish(ctx, event.NewCropHarvestedEvent("plot_0", domain.ItemCornSeed, 1)))

	e := receive(t, c)
	require.Equal(t, EventTypeSnapshotUpdated, e.Type)
	sp := e.Payload.(SnapshotPayload)
	assert.Equal(t, uint64(7), sp.Version)
	assert.Equal(t, "plant", sp.Action)
	assert.Same(t, snap, sp.Snapshot)

	e = receive(t, c)
	require.Equal(t, EventTypeTurnAdvanced, e.Type)
	assert.True(t, e.Payload.(TurnPayload).Automatic)

	e = receive(t, c)
	require.Equal(t, EventTypeItemSold, e.Type)
	assert.Equal(t, ShopPayload{Action: "sell", Kind: "item", ItemID: domain.ItemCorn, Quantity: 4, Amount: 24, Currency: 74}, e.Payload)

	e = receive(t, c)
	require.Equal(t, EventTypeCropHarvested, e.Type)
	assert.Equal(t, "plot_0", e.Payload.(HarvestPayload).PlotID)
}

func TestSubscriber_IgnoresMalformedPayload(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()
	c := hub.Register(nil)

	err := bus.Publish(context.Background(), event.Event{Type: event.TurnAdvanced, Payload: "not a payload"})
	assert.NoError(t, err)
	assertNoEvent(t, c)
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		hub.Register(nil)
		hub.Register(nil)
		hub.Stop()
	})
}
