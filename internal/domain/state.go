package domain

// Facing is the horizontal direction the player sprite faces
type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Player is the avatar position used for proximity checks
type Player struct {
	Position Position `json:"position"`
	Facing   Facing   `json:"facing"`
}

// Center returns the centre of the player's bounding box
func (p Player) Center() Position {
	return Position{X: p.Position.X + PlayerWidth/2, Y: p.Position.Y + PlayerHeight/2}
}

// Resources holds the player's consumable bookkeeping
type Resources struct {
	WaterTanks       []int `json:"water_tanks"`
	Currency         int   `json:"currency"`
	Turn             int   `json:"turn"`
	ActionsRemaining int   `json:"actions_remaining"`
}

// StoredWater returns the total water across all tanks
func (r Resources) StoredWater() int {
	total := 0
	for _, level := range r.WaterTanks {
		total += level
	}
	return total
}

// Score tracks the long-running performance counters
type Score struct {
	Production     int `json:"production"`
	Sustainability int `json:"sustainability"`
	Resilience     int `json:"resilience"`
}

// Snapshot is the complete simulation state at one instant.
// A snapshot is never mutated after it has been installed; transitions build a new one.
type Snapshot struct {
	Version        uint64          `json:"version"`
	Player         Player          `json:"player"`
	Plots          []Plot          `json:"plots"`
	Resources      Resources       `json:"resources"`
	Inventory      Inventory       `json:"inventory"`
	SelectedSeedID string          `json:"selected_seed_id,omitempty"`
	Decorations    map[string]bool `json:"decorations"`
	Forecast       Forecast        `json:"forecast"`
	Drought        bool            `json:"drought"`
	Aquifer        int             `json:"aquifer"`
	Score          Score           `json:"score"`
	District       string          `json:"district,omitempty"`
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.Plots = make([]Plot, len(s.Plots))
	for i, p := range s.Plots {
		out.Plots[i] = p.Clone()
	}
	out.Resources.WaterTanks = append([]int(nil), s.Resources.WaterTanks...)
	out.Inventory = s.Inventory.Clone()
	out.Decorations = make(map[string]bool, len(s.Decorations))
	for k, v := range s.Decorations {
		out.Decorations[k] = v
	}
	return &out
}

// FindPlot returns the index of the plot with the given ID, or -1
func (s *Snapshot) FindPlot(id string) int {
	for i := range s.Plots {
		if s.Plots[i].ID == id {
			return i
		}
	}
	return -1
}

// HasDecoration reports whether a unique decoration is owned
func (s *Snapshot) HasDecoration(id string) bool {
	return s.Decorations[id]
}
