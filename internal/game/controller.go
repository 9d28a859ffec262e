package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/economy"
	"github.com/osse101/Farmstead_Go/internal/event"
	"github.com/osse101/Farmstead_Go/internal/growth"
	"github.com/osse101/Farmstead_Go/internal/inventory"
	"github.com/osse101/Farmstead_Go/internal/logger"
	"github.com/osse101/Farmstead_Go/internal/metrics"
	"github.com/osse101/Farmstead_Go/internal/water"
	"github.com/osse101/Farmstead_Go/internal/weather"
)

// Result reports the outcome of a single operation.
// A rejected operation leaves the snapshot untouched and spends nothing.
type Result struct {
	Applied      bool             `json:"applied"`
	Reason       error            `json:"-"`
	Code         string           `json:"code,omitempty"`
	Message      string           `json:"message,omitempty"`
	TurnAdvanced bool             `json:"turn_advanced"`
	Version      uint64           `json:"version"`
	Receipt      *economy.Receipt `json:"receipt,omitempty"`
}

// transition is a pure step from one snapshot to the next
type transition func(s *domain.Snapshot) (*domain.Snapshot, error)

// Controller owns the current snapshot and serializes every transition.
// Readers load the snapshot without locking and never observe a partial update.
type Controller struct {
	mu      sync.Mutex
	current atomic.Pointer[domain.Snapshot]

	catalog *catalog.Catalog
	weather *weather.Generator
	growth  *growth.Engine
	economy *economy.Engine
	bus     event.Bus
	history *lru.Cache[uint64, *domain.Snapshot]
}

// Option configures a Controller
type Option func(*controllerOptions)

type controllerOptions struct {
	bus         event.Bus
	historySize int
}

// WithBus publishes snapshot notifications on bus
func WithBus(bus event.Bus) Option {
	return func(o *controllerOptions) { o.bus = bus }
}

// WithHistorySize sets how many recent snapshots stay retrievable by version
func WithHistorySize(n int) Option {
	return func(o *controllerOptions) {
		if n > 0 {
			o.historySize = n
		}
	}
}

// NewController creates a controller holding a fresh game
func NewController(c *catalog.Catalog, gen *weather.Generator, opts ...Option) (*Controller, error) {
	if c == nil {
		return nil, errors.New(ErrMsgNilCatalog)
	}
	if gen == nil {
		return nil, errors.New(ErrMsgNilWeather)
	}

	o := controllerOptions{historySize: DefaultHistorySize}
	for _, opt := range opts {
		opt(&o)
	}

	history, err := lru.New[uint64, *domain.Snapshot](o.historySize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateHistoryFailed, err)
	}

	ctrl := &Controller{
		catalog: c,
		weather: gen,
		growth:  growth.NewEngine(c),
		economy: economy.NewEngine(c),
		bus:     o.bus,
		history: history,
	}

	initial := ctrl.initialSnapshot()
	initial.Version = 1
	ctrl.current.Store(initial)
	ctrl.history.Add(initial.Version, initial)
	metrics.ObserveSnapshot(initial)
	return ctrl, nil
}

// initialSnapshot builds the starting farm with a freshly drawn forecast
func (c *Controller) initialSnapshot() *domain.Snapshot {
	stack := c.catalog.Stack
	return &domain.Snapshot{
		Player: domain.Player{
			Position: domain.Position{X: domain.PlayerStartX, Y: domain.PlayerStartY},
			Facing:   domain.FacingRight,
		},
		Plots: []domain.Plot{domain.NewPlot(0)},
		Resources: domain.Resources{
			WaterTanks:       []int{0},
			Currency:         domain.StartingCurrency,
			Turn:             domain.StartingTurn,
			ActionsRemaining: domain.ActionsPerTurn,
		},
		Inventory: domain.Inventory{
			stack(domain.ItemCornSeed, domain.ItemTypeSeed, 1),
			stack(domain.ItemPotatoSeed, domain.ItemTypeSeed, 0),
			stack(domain.ItemBlueberrySeed, domain.ItemTypeSeed, 0),
			stack(domain.ItemCorn, domain.ItemTypeCrop, 0),
			stack(domain.ItemPotato, domain.ItemTypeCrop, 0),
			stack(domain.ItemBlueberry, domain.ItemTypeCrop, 0),
			stack(domain.ItemEgg, domain.ItemTypeEgg, 0),
		},
		SelectedSeedID: domain.ItemCornSeed,
		Decorations:    map[string]bool{},
		Forecast:       c.weather.Generate(),
		Aquifer:        domain.AquiferStart,
	}
}

// Snapshot returns the currently installed snapshot. Callers must not modify it.
func (c *Controller) Snapshot() *domain.Snapshot {
	return c.current.Load()
}

// SnapshotAt returns a recent snapshot by version
func (c *Controller) SnapshotAt(version uint64) (*domain.Snapshot, bool) {
	return c.history.Get(version)
}

// Catalog returns the catalog the controller prices against
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// ==================== Budgeted actions ====================

// Plant sows the selected seed, or harvests when the plot is ripe.
// An empty plotID targets the nearest plot.
func (c *Controller) Plant(ctx context.Context, plotID string) Result {
	return c.applyAction(ctx, ActionPlant, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		id, err := c.resolvePlot(s, plotID)
		if err != nil {
			return s, err
		}
		return c.growth.Plant(s, id)
	})
}

// Harvest collects a ripe plot
func (c *Controller) Harvest(ctx context.Context, plotID string) Result {
	return c.applyAction(ctx, ActionHarvest, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		id, err := c.resolvePlot(s, plotID)
		if err != nil {
			return s, err
		}
		return c.growth.Harvest(s, id)
	})
}

// Irrigate waters a plot from the tanks
// An empty plotID targets the nearest plot not yet irrigated this turn.
func (c *Controller) Irrigate(ctx context.Context, plotID string) Result {
	return c.applyAction(ctx, ActionIrrigate, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		if plotID == "" {
			if id, ok := NearestPlotWhere(s, isDry); ok {
				return water.Irrigate(s, id)
			}
		}
		id, err := c.resolvePlot(s, plotID)
		if err != nil {
			return s, err
		}
		return water.Irrigate(s, id)
	})
}

// FillFromRiver tops up a tank from the river
func (c *Controller) FillFromRiver(ctx context.Context) Result {
	return c.applyAction(ctx, ActionFill, water.FillFromRiver)
}

// Feed gives the selected seed to the hen. An empty target means the hen.
func (c *Controller) Feed(ctx context.Context, targetID string) Result {
	if targetID == "" {
		targetID = domain.DecorationHen
	}
	var receipt *economy.Receipt
	res := c.applyAction(ctx, ActionFeed, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		next, r, err := c.economy.Feed(s, targetID)
		receipt = r
		return next, err
	})
	if res.Applied {
		res.Receipt = receipt
	}
	return res
}

// AdvanceTurn skips the rest of the turn and runs the end-of-turn update
func (c *Controller) AdvanceTurn(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	next := c.endOfTurn(cur.Clone())
	return c.install(ctx, ActionAdvance, cur, next, true, false)
}

// ==================== Shop ====================

// Buy purchases one unit of itemID. Shopping never spends actions.
func (c *Controller) Buy(ctx context.Context, itemID string) Result {
	return c.applyShop(ctx, ActionBuy, event.ItemBought, func(s *domain.Snapshot) (*domain.Snapshot, *economy.Receipt, error) {
		return c.economy.Buy(s, itemID)
	})
}

// Sell sells the whole stack of itemID
func (c *Controller) Sell(ctx context.Context, itemID string) Result {
	return c.applyShop(ctx, ActionSell, event.ItemSold, func(s *domain.Snapshot) (*domain.Snapshot, *economy.Receipt, error) {
		return c.economy.Sell(s, itemID)
	})
}

// SellAll sells every sellable stack
func (c *Controller) SellAll(ctx context.Context) Result {
	return c.applyShop(ctx, ActionSellAll, event.ItemSold, c.economy.SellAll)
}

// Listings returns the shop offers for the current snapshot
func (c *Controller) Listings(district string) ([]economy.Listing, error) {
	return c.economy.Listings(c.Snapshot(), district)
}

// Quote prices a single item for the current snapshot
func (c *Controller) Quote(itemID, district string) (economy.Listing, error) {
	return c.economy.Quote(c.Snapshot(), itemID, district)
}

// ==================== Free intents ====================

// Move walks the player along (dx, dy) for dt seconds, clamped to the scene
func (c *Controller) Move(ctx context.Context, dx, dy, dt float64) Result {
	return c.applyFree(ctx, ActionMove, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		length := math.Hypot(dx, dy)
		if length == 0 || dt <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
			return s, fmt.Errorf(ErrMsgInvalidMoveFmt, domain.ErrInvalidInput)
		}

		next := s.Clone()
		step := domain.PlayerSpeed * dt
		p := &next.Player
		p.Position.X = clamp(p.Position.X+dx/length*step, 0, domain.SceneWidth-domain.PlayerWidth)
		p.Position.Y = clamp(p.Position.Y+dy/length*step, 0, domain.SceneHeight-domain.PlayerHeight)
		if dx < 0 {
			p.Facing = domain.FacingLeft
		} else if dx > 0 {
			p.Facing = domain.FacingRight
		}
		return next, nil
	})
}

// Face turns the player sprite
func (c *Controller) Face(ctx context.Context, dir domain.Facing) Result {
	return c.applyFree(ctx, ActionFace, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		if dir != domain.FacingLeft && dir != domain.FacingRight {
			return s, fmt.Errorf(ErrMsgInvalidFacingFmt, domain.ErrInvalidInput, dir)
		}
		next := s.Clone()
		next.Player.Facing = dir
		return next, nil
	})
}

// SelectSeed chooses the seed used by plant and feed
func (c *Controller) SelectSeed(ctx context.Context, seedID string) Result {
	return c.applyFree(ctx, ActionSelectSeed, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		if inventory.Quantity(s.Inventory, seedID, domain.ItemTypeSeed) <= 0 {
			if _, known := c.catalog.Item(seedID); !known {
				return s, fmt.Errorf("%w: %s", domain.ErrItemNotFound, seedID)
			}
			return s, fmt.Errorf("%w: %s", domain.ErrNotInInventory, seedID)
		}
		next := s.Clone()
		next.SelectedSeedID = seedID
		return next, nil
	})
}

// CycleSeed selects the next seed stack that still has units
func (c *Controller) CycleSeed(ctx context.Context) Result {
	return c.applyFree(ctx, ActionCycleSeed, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		seeds := inventory.Seeds(s.Inventory)
		if len(seeds) == 0 {
			return s, fmt.Errorf("%w: no seeds", domain.ErrNotInInventory)
		}

		idx := -1
		for i, seed := range seeds {
			if seed.ID == s.SelectedSeedID {
				idx = i
				break
			}
		}
		next := s.Clone()
		next.SelectedSeedID = seeds[(idx+1)%len(seeds)].ID
		return next, nil
	})
}

// SelectDistrict sets the district whose price adjustments are displayed
func (c *Controller) SelectDistrict(ctx context.Context, name string) Result {
	return c.applyFree(ctx, ActionDistrict, func(s *domain.Snapshot) (*domain.Snapshot, error) {
		d, ok := c.catalog.District(name)
		if !ok {
			return s, fmt.Errorf("%w: %s", domain.ErrDistrictNotFound, name)
		}
		next := s.Clone()
		next.District = d.Name
		return next, nil
	})
}

// Reset starts a new game. Versions keep increasing across resets.
func (c *Controller) Reset(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	logger.FromContext(ctx).Info(LogMsgControllerReset, "previous_turn", cur.Resources.Turn)
	return c.install(ctx, ActionReset, cur, c.initialSnapshot(), false, false)
}

// NearestPlotID returns the closest plot within reach of the player
func (c *Controller) NearestPlotID() (string, bool) {
	return NearestPlot(c.Snapshot())
}

// NearestPlot returns the closest plot whose centre is within the interaction radius
func NearestPlot(s *domain.Snapshot) (string, bool) {
	return NearestPlotWhere(s, nil)
}

// NearestPlotWhere is NearestPlot restricted to plots accepted by keep; a nil keep accepts all
func NearestPlotWhere(s *domain.Snapshot, keep func(p domain.Plot) bool) (string, bool) {
	pc := s.Player.Center()
	best, bestDist := "", math.Inf(1)
	for _, p := range s.Plots {
		if keep != nil && !keep(p) {
			continue
		}
		center := p.Center()
		d := math.Hypot(center.X-pc.X, center.Y-pc.Y)
		if d <= domain.InteractRadius && d < bestDist {
			best, bestDist = p.ID, d
		}
	}
	return best, best != ""
}

// ==================== Core loop ====================

// applyAction gates a transition on the action budget, charges one action on
// success and runs the end-of-turn update when the budget reaches zero
func (c *Controller) applyAction(ctx context.Context, action string, fn transition) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	if cur.Resources.ActionsRemaining <= 0 {
		return c.reject(ctx, action, cur, domain.ErrNoActionsRemaining)
	}

	next, err := fn(cur)
	if err != nil {
		return c.reject(ctx, action, cur, err)
	}

	next.Resources.ActionsRemaining--
	advanced := false
	if next.Resources.ActionsRemaining == 0 {
		next = c.endOfTurn(next)
		advanced = true
	}
	return c.install(ctx, action, cur, next, advanced, true)
}

// applyFree runs a transition that does not touch the action budget
func (c *Controller) applyFree(ctx context.Context, action string, fn transition) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	next, err := fn(cur)
	if err != nil {
		return c.reject(ctx, action, cur, err)
	}
	return c.install(ctx, action, cur, next, false, false)
}

// applyShop runs a shop transition and publishes its receipt after the snapshot
func (c *Controller) applyShop(ctx context.Context, action string, eventType event.Type, fn func(*domain.Snapshot) (*domain.Snapshot, *economy.Receipt, error)) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.current.Load()
	next, receipt, err := fn(cur)
	if err != nil {
		return c.reject(ctx, action, cur, err)
	}

	res := c.install(ctx, action, cur, next, false, false)
	res.Receipt = receipt
	c.publish(ctx, event.NewShopTransactionEvent(eventType, receipt.Action, receipt.Kind, receipt.ItemID,
		receipt.Quantity, receipt.Amount, next.Resources.Currency))
	return res
}

// endOfTurn draws the next forecast, grows every plot and resets the budget.
// s must be a snapshot owned by the caller.
func (c *Controller) endOfTurn(s *domain.Snapshot) *domain.Snapshot {
	start := time.Now()
	defer func() { metrics.EndOfTurnDuration.Observe(time.Since(start).Seconds()) }()

	forecast := c.weather.Generate()
	drought := c.weather.RollDrought(s.Drought)

	anyCrop := false
	for i := range s.Plots {
		s.Plots[i] = c.growth.AdvancePlot(s.Plots[i], forecast, drought)
		if s.Plots[i].HasCrop() {
			anyCrop = true
		}
	}

	s.Aquifer = water.RechargeAquifer(s.Aquifer, forecast.RainMm)
	if forecast.RainMm > 0 && water.BelowRecoveryThreshold(s.Resources.WaterTanks) {
		s.Score.Sustainability++
	}
	if anyCrop {
		s.Score.Resilience++
	}

	s.Forecast = forecast
	s.Drought = drought
	s.Resources.Turn++
	s.Resources.ActionsRemaining = domain.ActionsPerTurn
	return s
}

// install swaps in next and notifies subscribers. Events are published while
// the controller lock is held so subscribers see versions in order.
func (c *Controller) install(ctx context.Context, action string, cur, next *domain.Snapshot, advanced, automatic bool) Result {
	next.Version = cur.Version + 1
	c.current.Store(next)
	c.history.Add(next.Version, next)

	log := logger.FromContext(ctx)
	log.Debug(LogMsgActionApplied, "action", action, "version", next.Version,
		"turn", next.Resources.Turn, "actions_remaining", next.Resources.ActionsRemaining)
	metrics.RecordAction(action)

	if harvested := next.Score.Production - cur.Score.Production; harvested > 0 {
		if plotID, seedID, ok := harvestedPlot(cur, next); ok {
			c.publish(ctx, event.NewCropHarvestedEvent(plotID, seedID, next.Score.Production))
		}
	}

	c.publish(ctx, event.NewSnapshotUpdatedEvent(action, next))
	if advanced {
		log.Info(LogMsgTurnAdvanced, "turn", next.Resources.Turn, "rain_mm", next.Forecast.RainMm,
			"label", next.Forecast.Label, "drought", next.Drought, "automatic", automatic)
		c.publish(ctx, event.NewTurnAdvancedEvent(next, automatic))
	}

	return Result{Applied: true, TurnAdvanced: advanced, Version: next.Version}
}

func (c *Controller) reject(ctx context.Context, action string, cur *domain.Snapshot, err error) Result {
	code := ReasonCode(err)
	logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", action, "reason", code, "error", err)
	metrics.RecordRejection(action, code)
	return Result{Applied: false, Reason: err, Code: code, Message: err.Error(), Version: cur.Version}
}

func (c *Controller) publish(ctx context.Context, evt event.Event) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}
}

// resolvePlot returns plotID, or the nearest plot when plotID is empty
func (c *Controller) resolvePlot(s *domain.Snapshot, plotID string) (string, error) {
	if plotID != "" {
		return plotID, nil
	}
	id, ok := NearestPlot(s)
	if !ok {
		return "", domain.ErrNoNearbyPlot
	}
	return id, nil
}

func isDry(p domain.Plot) bool {
	return !p.Hydrated
}

// harvestedPlot finds the plot that lost a ripe crop between two snapshots
func harvestedPlot(before, after *domain.Snapshot) (string, string, bool) {
	for i, p := range before.Plots {
		if p.Stage == domain.StageHarvestable && p.HasCrop() && i < len(after.Plots) && !after.Plots[i].HasCrop() {
			return p.ID, p.Seed.ID, true
		}
	}
	return "", "", false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
