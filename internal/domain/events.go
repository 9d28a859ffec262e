package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "snapshot.updated")
const (
	// EventTypeSnapshotUpdated is published every time the controller installs a new snapshot
	EventTypeSnapshotUpdated = "snapshot.updated"

	// EventTypeTurnAdvanced is published when the end-of-turn update runs
	EventTypeTurnAdvanced = "turn.advanced"

	// EventTypeItemBought is published when the shop sells something to the player
	EventTypeItemBought = "item.bought"

	// EventTypeItemSold is published when the player sells inventory to the shop
	EventTypeItemSold = "item.sold"

	// EventTypeCropHarvested is published when a plot yields its harvest
	EventTypeCropHarvested = "crop.harvested"
)
