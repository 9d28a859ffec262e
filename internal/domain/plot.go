package domain

import "fmt"

// Stage is the growth stage of a plot
type Stage int

const (
	StageEmpty         Stage = 0
	StageSown          Stage = 1
	StageGrowing       Stage = 2
	StageGrowingLate   Stage = 3
	StageAlmostHarvest Stage = 4
	StageHarvestable   Stage = 5
)

// String returns a stable name for logs and metrics labels
func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageSown:
		return "sown"
	case StageGrowing, StageGrowingLate:
		return "growing"
	case StageAlmostHarvest:
		return "almost_harvest"
	case StageHarvestable:
		return "harvestable"
	default:
		return fmt.Sprintf("stage_%d", int(s))
	}
}

// Position is a point in scene coordinates
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Icon describes how the renderer should draw an item
type Icon struct {
	Kind string `json:"kind"` // "emoji" or "img"
	Href string `json:"href"`
}

// SeedRef identifies the seed planted in a plot
type SeedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon Icon   `json:"icon"`
}

// Plot is a single plantable land unit
type Plot struct {
	ID           string   `json:"id"`
	Position     Position `json:"position"`
	Stage        Stage    `json:"stage"`
	Moisture     float64  `json:"moisture"`
	Alive        bool     `json:"alive"`
	Hydrated     bool     `json:"hydrated"`
	LastMonthWet bool     `json:"last_month_wet"`
	Seed         *SeedRef `json:"seed,omitempty"`
}

// HasCrop reports whether the plot currently holds a seed
func (p Plot) HasCrop() bool {
	return p.Seed != nil
}

// Center returns the plot's interaction centre
func (p Plot) Center() Position {
	return Position{X: p.Position.X + PlotCenterOffset, Y: p.Position.Y + PlotCenterOffset}
}

// Clone returns a copy that shares no pointers with p
func (p Plot) Clone() Plot {
	if p.Seed != nil {
		seed := *p.Seed
		p.Seed = &seed
	}
	return p
}

// PlotID builds the stable identifier for the plot at the given index
func PlotID(index int) string {
	return fmt.Sprintf("plot_%d", index)
}

// PlotPosition returns the grid slot for the plot at the given index
func PlotPosition(index int) Position {
	col := index % PlotGridColumns
	row := index / PlotGridColumns
	return Position{
		X: PlotGridOriginX + float64(col)*PlotGridSpacing,
		Y: PlotGridOriginY + float64(row)*PlotGridSpacing,
	}
}

// NewPlot creates an empty plot at the given grid index
func NewPlot(index int) Plot {
	return Plot{
		ID:       PlotID(index),
		Position: PlotPosition(index),
		Stage:    StageEmpty,
		Moisture: InitialPlotMoisture,
	}
}
