package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Simulation event types
const (
	SnapshotUpdated Type = domain.EventTypeSnapshotUpdated
	TurnAdvanced    Type = domain.EventTypeTurnAdvanced
	ItemBought      Type = domain.EventTypeItemBought
	ItemSold        Type = domain.EventTypeItemSold
	CropHarvested   Type = domain.EventTypeCropHarvested
)

// Typed event payloads for type safety

// SnapshotUpdatedPayloadV1 announces a newly installed snapshot.
// Subscribers can fetch the full state by version; the snapshot itself is
// included for in-process consumers and must be treated as read-only.
type SnapshotUpdatedPayloadV1 struct {
	Version          uint64           `json:"version"`
	Turn             int              `json:"turn"`
	ActionsRemaining int              `json:"actions_remaining"`
	Action           string           `json:"action"`
	Snapshot         *domain.Snapshot `json:"snapshot,omitempty"`
	Timestamp        int64            `json:"timestamp"`
}

// TurnAdvancedPayloadV1 summarises an end-of-turn update
type TurnAdvancedPayloadV1 struct {
	Turn      int             `json:"turn"`
	Forecast  domain.Forecast `json:"forecast"`
	Drought   bool            `json:"drought"`
	Aquifer   int             `json:"aquifer"`
	Score     domain.Score    `json:"score"`
	Automatic bool            `json:"automatic"`
	Timestamp int64           `json:"timestamp"`
}

// ShopTransactionPayloadV1 is the typed payload for buy and sell events
type ShopTransactionPayloadV1 struct {
	Action    string `json:"action"`
	Kind      string `json:"kind"`
	ItemID    string `json:"item_id,omitempty"`
	Quantity  int    `json:"quantity"`
	Amount    int    `json:"amount"`
	Currency  int    `json:"currency"`
	Timestamp int64  `json:"timestamp"`
}

// CropHarvestedPayloadV1 is the typed payload for harvest events
type CropHarvestedPayloadV1 struct {
	PlotID     string `json:"plot_id"`
	SeedID     string `json:"seed_id"`
	Production int    `json:"production"`
	Timestamp  int64  `json:"timestamp"`
}

// NewSnapshotUpdatedEvent creates a snapshot notification for the given action
func NewSnapshotUpdatedEvent(action string, s *domain.Snapshot) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SnapshotUpdated,
		Payload: SnapshotUpdatedPayloadV1{
			Version:          s.Version,
			Turn:             s.Resources.Turn,
			ActionsRemaining: s.Resources.ActionsRemaining,
			Action:           action,
			Snapshot:         s,
			Timestamp:        time.Now().Unix(),
		},
		Metadata: Metadata{MetadataKeyAction: action},
	}
}

// NewTurnAdvancedEvent creates an end-of-turn event from the post-turn snapshot
func NewTurnAdvancedEvent(s *domain.Snapshot, automatic bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TurnAdvanced,
		Payload: TurnAdvancedPayloadV1{
			Turn:      s.Resources.Turn,
			Forecast:  s.Forecast,
			Drought:   s.Drought,
			Aquifer:   s.Aquifer,
			Score:     s.Score,
			Automatic: automatic,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewShopTransactionEvent creates a buy or sell event
func NewShopTransactionEvent(eventType Type, action, kind, itemID string, quantity, amount, currency int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: ShopTransactionPayloadV1{
			Action:    action,
			Kind:      kind,
			ItemID:    itemID,
			Quantity:  quantity,
			Amount:    amount,
			Currency:  currency,
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{MetadataKeyAction: action},
	}
}

// NewCropHarvestedEvent creates a harvest event
func NewCropHarvestedEvent(plotID, seedID string, production int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: CropHarvestedPayloadV1{
			PlotID:     plotID,
			SeedID:     seedID,
			Production: production,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
