package metrics

import (
	"context"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/event"
	"github.com/osse101/Farmstead_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SnapshotUpdated,
		event.TurnAdvanced,
		event.ItemBought,
		event.ItemSold,
		event.CropHarvested,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SnapshotUpdated:
		payload, err := event.DecodePayload[event.SnapshotUpdatedPayloadV1](evt.Payload)
		if err != nil || payload.Snapshot == nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type)
			return nil
		}
		ObserveSnapshot(payload.Snapshot)

	case event.TurnAdvanced:
		payload, err := event.DecodePayload[event.TurnAdvancedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type)
			return nil
		}
		mode := ModeManual
		if payload.Automatic {
			mode = ModeAutomatic
		}
		TurnsAdvanced.WithLabelValues(mode).Inc()

	case event.ItemBought, event.ItemSold:
		payload, err := event.DecodePayload[event.ShopTransactionPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type)
			return nil
		}
		item := payload.ItemID
		if item == "" {
			item = payload.Action
		}
		if evt.Type == event.ItemBought {
			ItemsBought.WithLabelValues(item).Add(float64(payload.Quantity))
			MoneySpent.Add(float64(payload.Amount))
		} else {
			ItemsSold.WithLabelValues(item).Add(float64(payload.Quantity))
			MoneyEarned.Add(float64(payload.Amount))
		}

	case event.CropHarvested:
		payload, err := event.DecodePayload[event.CropHarvestedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type)
			return nil
		}
		Harvests.WithLabelValues(payload.SeedID).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// ObserveSnapshot updates the state gauges from a snapshot
func ObserveSnapshot(s *domain.Snapshot) {
	Currency.Set(float64(s.Resources.Currency))
	Turn.Set(float64(s.Resources.Turn))
	StoredWater.Set(float64(s.Resources.StoredWater()))
	Aquifer.Set(float64(s.Aquifer))
}

// RecordAction counts an applied player action
func RecordAction(action string) {
	ActionsTotal.WithLabelValues(action).Inc()
}

// RecordRejection counts an action refused as a no-op
func RecordRejection(action, reason string) {
	ActionsRejected.WithLabelValues(action, reason).Inc()
}
