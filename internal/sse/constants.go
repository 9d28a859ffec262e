package sse

import (
	"time"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// QueryParamTypes is the comma separated event type filter
	QueryParamTypes = "types"
)

// Event types for SSE
const (
	// EventTypeSnapshotUpdated is sent whenever a new snapshot is installed
	EventTypeSnapshotUpdated = domain.EventTypeSnapshotUpdated

	// EventTypeTurnAdvanced is sent after the end-of-turn update
	EventTypeTurnAdvanced = domain.EventTypeTurnAdvanced

	// EventTypeItemBought and EventTypeItemSold mirror shop transactions
	EventTypeItemBought = domain.EventTypeItemBought
	EventTypeItemSold   = domain.EventTypeItemSold

	// EventTypeCropHarvested is sent when a plot is harvested
	EventTypeCropHarvested = domain.EventTypeCropHarvested

	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected     = "SSE client connected"
	LogMsgClientDisconnected  = "SSE client disconnected"
	LogMsgEventBroadcast      = "Broadcasting SSE event"
	LogMsgEventDropped        = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError          = "Failed to write SSE event"
	LogMsgSubscriberReady     = "SSE subscriber registered for event types"
	LogMsgInvalidEventPayload = "Invalid event payload for SSE"
)
