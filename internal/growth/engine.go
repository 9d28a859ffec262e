package growth

import (
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/inventory"
)

// Engine provides pure plot and crop logic. It never touches the action budget;
// the turn controller charges an action after a transition succeeds.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a growth engine backed by the given catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// AdvancePlot applies one end-of-turn step to a plot.
// Moisture is updated by evaporation and rain, then a planted crop moves one
// stage up inside the healthy band or one stage down below the wilt threshold.
func (e *Engine) AdvancePlot(plot domain.Plot, forecast domain.Forecast, drought bool) domain.Plot {
	next := plot.Clone()

	evaporation := domain.EvaporationPerTurn
	if drought {
		evaporation = domain.DroughtEvaporationPerTurn
	}
	next.Moisture = Clamp01(plot.Moisture - evaporation + forecast.RainMm*domain.RainToMoistureRatio)

	if next.HasCrop() {
		switch {
		case InBand(next.Moisture):
			if next.Stage < domain.StageHarvestable {
				next.Stage++
			}
		case next.Moisture < domain.WiltThreshold:
			next.Stage--
			if next.Stage <= domain.StageEmpty {
				next.Stage = domain.StageEmpty
				next.Seed = nil
				next.Alive = false
			}
		}
	}

	next.LastMonthWet = forecast.RainMm > 0 || plot.Hydrated
	next.Hydrated = false
	return next
}

// Plant sows the selected seed into an empty plot. A harvestable plot is
// harvested instead. The input snapshot is never modified.
func (e *Engine) Plant(s *domain.Snapshot, plotID string) (*domain.Snapshot, error) {
	idx := s.FindPlot(plotID)
	if idx < 0 {
		return s, fmt.Errorf(ErrFmtPlot, domain.ErrPlotNotFound, plotID)
	}

	plot := s.Plots[idx]
	if plot.Stage == domain.StageHarvestable {
		return e.Harvest(s, plotID)
	}
	if plot.Stage != domain.StageEmpty || plot.HasCrop() {
		return s, fmt.Errorf(ErrFmtPlot, domain.ErrPlotNotEmpty, plotID)
	}

	if s.SelectedSeedID == "" {
		return s, domain.ErrNoSeedSelected
	}
	inv, err := inventory.Decrement(s.Inventory, s.SelectedSeedID, domain.ItemTypeSeed, 1)
	if err != nil {
		return s, fmt.Errorf("%w: %s", err, s.SelectedSeedID)
	}

	next := s.Clone()
	next.Inventory = inv

	seed := e.catalog.SeedRef(s.SelectedSeedID)
	p := &next.Plots[idx]
	p.Stage = domain.StageSown
	p.Seed = &seed
	p.Alive = true
	if p.Moisture < domain.InitialPlotMoisture {
		p.Moisture = domain.InitialPlotMoisture
	}
	return next, nil
}

// Harvest collects a ripe plot's yield into the inventory and resets the plot
func (e *Engine) Harvest(s *domain.Snapshot, plotID string) (*domain.Snapshot, error) {
	idx := s.FindPlot(plotID)
	if idx < 0 {
		return s, fmt.Errorf(ErrFmtPlot, domain.ErrPlotNotFound, plotID)
	}

	plot := s.Plots[idx]
	if plot.Stage != domain.StageHarvestable || !plot.HasCrop() {
		return s, fmt.Errorf(ErrFmtPlot, domain.ErrNotHarvestable, plotID)
	}

	next := s.Clone()
	next.Inventory = inventory.Add(next.Inventory, e.catalog.Yield(*plot.Seed)...)

	p := &next.Plots[idx]
	p.Stage = domain.StageEmpty
	p.Seed = nil
	next.Score.Production++
	return next, nil
}

// Clamp01 bounds v to [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// InBand reports whether moisture is inside the healthy growing range
func InBand(moisture float64) bool {
	return moisture >= domain.MoistureOKMin && moisture <= domain.MoistureOKMax
}
