package scenario

import (
	"context"
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/inventory"
	"github.com/osse101/Farmstead_Go/internal/logger"
)

// Autoplay tuning
const (
	autoplaySeed      = domain.ItemCornSeed
	autoplaySeedPrice = 8
	// tankReserve is the cash kept back when buying tanks or plots
	tankReserve  = 20
	maxAutoTanks = 3
)

// TurnReport records one simulated turn
type TurnReport struct {
	Turn      int                  `json:"turn"`
	Forecast  domain.ForecastLabel `json:"forecast"`
	RainMm    float64              `json:"rain_mm"`
	Drought   bool                 `json:"drought"`
	Currency  int                  `json:"currency"`
	Planted   int                  `json:"planted"`
	Harvested int                  `json:"harvested"`
	Irrigated int                  `json:"irrigated"`
	Filled    int                  `json:"filled"`
}

// AutoplayReport summarizes an unattended run
type AutoplayReport struct {
	Seed      int64        `json:"seed"`
	Turns     int          `json:"turns"`
	FinalTurn int          `json:"final_turn"`
	Currency  int          `json:"currency"`
	Plots     int          `json:"plots"`
	Tanks     int          `json:"tanks"`
	Score     domain.Score `json:"score"`
	Applied   int          `json:"applied"`
	Rejected  int          `json:"rejected"`
	History   []TurnReport `json:"history"`
}

// Autoplay plays a fresh seeded game for the given number of turns
func (e *Engine) Autoplay(ctx context.Context, seed int64, turns int) (*AutoplayReport, error) {
	runner, err := e.factory(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create game for autoplay: %w", err)
	}
	report, err := Play(ctx, runner, turns)
	if report != nil {
		report.Seed = seed
	}
	return report, err
}

// Play drives runner with a simple greedy farming policy.
// Each turn it harvests, sells, shops, plants, draws water and irrigates,
// then advances if the action budget was not used up.
func Play(ctx context.Context, runner Runner, turns int) (*AutoplayReport, error) {
	if turns < 1 {
		return nil, fmt.Errorf("%w: turns must be positive", ErrMissingParameter)
	}

	p := &autopilot{runner: runner}
	report := &AutoplayReport{Turns: turns}

	for i := 0; i < turns; i++ {
		if err := ctx.Err(); err != nil {
			p.fill(report)
			return report, err
		}
		report.History = append(report.History, p.playTurn(ctx))
	}

	p.fill(report)
	logger.FromContext(ctx).Info("Autoplay finished", "turns", turns,
		"currency", report.Currency, "production", report.Score.Production)
	return report, nil
}

type autopilot struct {
	runner   Runner
	applied  int
	rejected int
}

func (p *autopilot) fill(r *AutoplayReport) {
	s := p.runner.Snapshot()
	r.FinalTurn = s.Resources.Turn
	r.Currency = s.Resources.Currency
	r.Plots = len(s.Plots)
	r.Tanks = len(s.Resources.WaterTanks)
	r.Score = s.Score
	r.Applied = p.applied
	r.Rejected = p.rejected
}

func (p *autopilot) do(res game.Result) bool {
	if res.Applied {
		p.applied++
	} else {
		p.rejected++
	}
	return res.Applied
}

// playTurn spends one turn's budget and always ends the turn
func (p *autopilot) playTurn(ctx context.Context) TurnReport {
	start := p.runner.Snapshot()
	turn := start.Resources.Turn
	tr := TurnReport{
		Turn:     turn,
		Forecast: start.Forecast.Label,
		RainMm:   start.Forecast.RainMm,
		Drought:  start.Drought,
	}
	sameTurn := func() bool { return p.runner.Snapshot().Resources.Turn == turn }

	for _, plot := range start.Plots {
		if plot.Stage == domain.StageHarvestable && sameTurn() {
			if p.do(p.runner.Harvest(ctx, plot.ID)) {
				tr.Harvested++
			}
		}
	}

	if sameTurn() {
		p.sell(ctx)
		p.shop(ctx)
		tr.Planted = p.plant(ctx, sameTurn)
		tr.Filled = p.drawWater(ctx, sameTurn)
		tr.Irrigated = p.irrigate(ctx, sameTurn)
	}

	if sameTurn() {
		p.do(p.runner.AdvanceTurn(ctx))
	}
	tr.Currency = p.runner.Snapshot().Resources.Currency
	return tr
}

func (p *autopilot) sell(ctx context.Context) {
	s := p.runner.Snapshot()
	for _, item := range s.Inventory {
		if item.Type != domain.ItemTypeSeed && item.Quantity > 0 {
			p.do(p.runner.SellAll(ctx))
			return
		}
	}
}

// shop grows the farm when cash allows and buys seed for every empty plot
func (p *autopilot) shop(ctx context.Context) {
	s := p.runner.Snapshot()
	if len(s.Resources.WaterTanks) < maxAutoTanks && s.Resources.Currency >= domain.PriceTank+tankReserve {
		p.do(p.runner.Buy(ctx, domain.ItemTank))
	}

	s = p.runner.Snapshot()
	if len(s.Plots) < domain.MaxPlots {
		cost := domain.PlotCosts[len(s.Plots)-1]
		if s.Resources.Currency >= cost+tankReserve {
			p.do(p.runner.Buy(ctx, domain.ItemPlot))
		}
	}

	s = p.runner.Snapshot()
	need := emptyPlots(s) - inventory.Quantity(s.Inventory, autoplaySeed, domain.ItemTypeSeed)
	for ; need > 0 && p.runner.Snapshot().Resources.Currency >= autoplaySeedPrice; need-- {
		if !p.do(p.runner.Buy(ctx, autoplaySeed)) {
			break
		}
	}

	s = p.runner.Snapshot()
	if s.SelectedSeedID != autoplaySeed && inventory.Quantity(s.Inventory, autoplaySeed, domain.ItemTypeSeed) > 0 {
		p.do(p.runner.SelectSeed(ctx, autoplaySeed))
	}
}

func (p *autopilot) plant(ctx context.Context, sameTurn func() bool) int {
	planted := 0
	for _, plot := range p.runner.Snapshot().Plots {
		if !sameTurn() || p.runner.Snapshot().Resources.ActionsRemaining <= 1 {
			break
		}
		if plot.Stage != domain.StageEmpty {
			continue
		}
		s := p.runner.Snapshot()
		if inventory.Quantity(s.Inventory, s.SelectedSeedID, domain.ItemTypeSeed) == 0 {
			break
		}
		if p.do(p.runner.Plant(ctx, plot.ID)) {
			planted++
		}
	}
	return planted
}

// drawWater walks to the river and fills until the thirsty plots are covered,
// keeping enough actions to irrigate them
func (p *autopilot) drawWater(ctx context.Context, sameTurn func() bool) int {
	s := p.runner.Snapshot()
	if s.Forecast.IsDry() {
		return 0
	}
	need := len(thirstyPlots(s))
	if need == 0 || s.Resources.StoredWater() >= need {
		return 0
	}
	if _, err := walkTo(ctx, p.runner, TargetRiver); err != nil {
		return 0
	}

	filled := 0
	for sameTurn() {
		s = p.runner.Snapshot()
		stored := s.Resources.StoredWater()
		irrigations := min(need, stored)
		if stored >= need || s.Resources.ActionsRemaining <= irrigations+1 {
			break
		}
		if !p.do(p.runner.FillFromRiver(ctx)) {
			break
		}
		filled++
	}
	return filled
}

func (p *autopilot) irrigate(ctx context.Context, sameTurn func() bool) int {
	irrigated := 0
	for _, id := range thirstyPlots(p.runner.Snapshot()) {
		if !sameTurn() || p.runner.Snapshot().Resources.StoredWater() == 0 {
			break
		}
		if p.do(p.runner.Irrigate(ctx, id)) {
			irrigated++
		}
	}
	return irrigated
}

func emptyPlots(s *domain.Snapshot) int {
	n := 0
	for _, plot := range s.Plots {
		if plot.Stage == domain.StageEmpty {
			n++
		}
	}
	return n
}

// thirstyPlots lists planted plots that would leave the healthy band after
// this turn's evaporation and forecast rain
func thirstyPlots(s *domain.Snapshot) []string {
	evaporation := domain.EvaporationPerTurn
	if s.Drought {
		evaporation = domain.DroughtEvaporationPerTurn
	}
	rain := s.Forecast.RainMm * domain.RainToMoistureRatio

	var ids []string
	for _, plot := range s.Plots {
		if !plot.HasCrop() || plot.Hydrated {
			continue
		}
		if plot.Moisture-evaporation+rain < domain.MoistureOKMin {
			ids = append(ids, plot.ID)
		}
	}
	return ids
}
