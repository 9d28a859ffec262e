package sse

import "github.com/osse101/Farmstead_Go/internal/domain"

// SnapshotPayload is sent to renderers for every installed snapshot
type SnapshotPayload struct {
	Version          uint64           `json:"version"`
	Turn             int              `json:"turn"`
	ActionsRemaining int              `json:"actions_remaining"`
	Action           string           `json:"action,omitempty"`
	Snapshot         *domain.Snapshot `json:"snapshot"`
}

// TurnPayload summarises the end-of-turn update
type TurnPayload struct {
	Turn      int             `json:"turn"`
	Forecast  domain.Forecast `json:"forecast"`
	Drought   bool            `json:"drought"`
	Aquifer   int             `json:"aquifer"`
	Score     domain.Score    `json:"score"`
	Automatic bool            `json:"automatic"`
}

// ShopPayload describes a completed buy or sell
type ShopPayload struct {
	Action   string `json:"action"`
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id,omitempty"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount"`
	Currency int    `json:"currency"`
}

// HarvestPayload announces a harvested plot
type HarvestPayload struct {
	PlotID     string `json:"plot_id"`
	SeedID     string `json:"seed_id"`
	Production int    `json:"production"`
}

// ConnectedPayload is the body of the initial connected event
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
