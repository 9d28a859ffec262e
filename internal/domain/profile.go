package domain

import "time"

// Profile is the only datum that outlives a game session
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	District    string    `json:"district,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultProfileID is used by the single-player host
const DefaultProfileID = "local"
