package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/Farmstead_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SnapshotUpdated, s.handleSnapshotUpdated)
	s.bus.Subscribe(event.TurnAdvanced, s.handleTurnAdvanced)
	s.bus.Subscribe(event.ItemBought, s.handleShopTransaction)
	s.bus.Subscribe(event.ItemSold, s.handleShopTransaction)
	s.bus.Subscribe(event.CropHarvested, s.handleCropHarvested)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			string(event.SnapshotUpdated),
			string(event.TurnAdvanced),
			string(event.ItemBought),
			string(event.ItemSold),
			string(event.CropHarvested),
		})
}

func (s *Subscriber) handleSnapshotUpdated(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SnapshotUpdatedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidEventPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSnapshotUpdated, SnapshotPayload{
		Version:          p.Version,
		Turn:             p.Turn,
		ActionsRemaining: p.ActionsRemaining,
		Action:           p.Action,
		Snapshot:         p.Snapshot,
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeSnapshotUpdated, "version", p.Version)
	return nil
}

func (s *Subscriber) handleTurnAdvanced(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.TurnAdvancedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidEventPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeTurnAdvanced, TurnPayload{
		Turn:      p.Turn,
		Forecast:  p.Forecast,
		Drought:   p.Drought,
		Aquifer:   p.Aquifer,
		Score:     p.Score,
		Automatic: p.Automatic,
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeTurnAdvanced, "turn", p.Turn)
	return nil
}

func (s *Subscriber) handleShopTransaction(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ShopTransactionPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidEventPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), ShopPayload{
		Action:   p.Action,
		Kind:     p.Kind,
		ItemID:   p.ItemID,
		Quantity: p.Quantity,
		Amount:   p.Amount,
		Currency: p.Currency,
	})
	return nil
}

func (s *Subscriber) handleCropHarvested(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.CropHarvestedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidEventPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeCropHarvested, HarvestPayload{
		PlotID:     p.PlotID,
		SeedID:     p.SeedID,
		Production: p.Production,
	})
	return nil
}
