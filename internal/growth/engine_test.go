package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/inventory"
)

var dry = domain.Forecast{RainMm: 0, Label: domain.ForecastDry}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewEngine(c)
}

func plantedPlot(stage domain.Stage, moisture float64) domain.Plot {
	p := domain.NewPlot(0)
	p.Stage = stage
	p.Moisture = moisture
	p.Alive = true
	p.Seed = &domain.SeedRef{ID: domain.ItemCornSeed, Name: "Corn seed"}
	return p
}

func testSnapshot(c *catalog.Catalog, plots ...domain.Plot) *domain.Snapshot {
	if len(plots) == 0 {
		plots = []domain.Plot{domain.NewPlot(0)}
	}
	return &domain.Snapshot{
		Plots:          plots,
		Resources:      domain.Resources{WaterTanks: []int{0}, Currency: 50, Turn: 1, ActionsRemaining: 5},
		Inventory:      domain.Inventory{c.Stack(domain.ItemCornSeed, domain.ItemTypeSeed, 1)},
		SelectedSeedID: domain.ItemCornSeed,
		Decorations:    map[string]bool{},
	}
}

func TestAdvancePlot_Stages(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name          string
		plot          domain.Plot
		forecast      domain.Forecast
		drought       bool
		wantStage     domain.Stage
		wantMoisture  float64
		wantSeedAfter bool
	}{
		{"in band advances", plantedPlot(domain.StageSown, 0.5), dry, false, domain.StageGrowing, 0.35, true},
		{"harvestable saturates", plantedPlot(domain.StageHarvestable, 0.5), dry, false, domain.StageHarvestable, 0.35, true},
		{"below wilt regresses", plantedPlot(domain.StageGrowingLate, 0.25), dry, false, domain.StageGrowing, 0.10, true},
		{"between wilt and band holds", plantedPlot(domain.StageGrowing, 0.4), dry, true, domain.StageGrowing, 0.16, true},
		{"drought evaporates faster", plantedPlot(domain.StageGrowing, 0.5), dry, true, domain.StageGrowing, 0.26, true},
		{"rain moves into band", plantedPlot(domain.StageSown, 0.1), domain.Forecast{RainMm: 8, Label: domain.ForecastModerate}, false, domain.StageGrowing, 0.35, true},
		{"flooded plot holds", plantedPlot(domain.StageGrowing, 0.9), domain.Forecast{RainMm: 20, Label: domain.ForecastHeavy}, false, domain.StageGrowing, 1.0, true},
		{"sown crop dies", plantedPlot(domain.StageSown, 0.2), dry, false, domain.StageEmpty, 0.05, false},
		{"empty plot never changes stage", domain.NewPlot(0), domain.Forecast{RainMm: 10, Label: domain.ForecastHeavy}, false, domain.StageEmpty, 0.6, false},
		{"moisture floors at zero", plantedPlot(domain.StageGrowing, 0.05), dry, false, domain.StageSown, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.AdvancePlot(tt.plot, tt.forecast, tt.drought)

			assert.Equal(t, tt.wantStage, got.Stage)
			assert.InDelta(t, tt.wantMoisture, got.Moisture, 1e-9)
			assert.Equal(t, tt.wantSeedAfter, got.HasCrop())
			assert.Equal(t, got.Stage == domain.StageEmpty, !got.HasCrop(), "stage 0 iff no seed")
		})
	}
}

func TestAdvancePlot_WiltClearsAlive(t *testing.T) {
	engine := newTestEngine(t)

	got := engine.AdvancePlot(plantedPlot(domain.StageSown, 0.1), dry, false)

	assert.Equal(t, domain.StageEmpty, got.Stage)
	assert.Nil(t, got.Seed)
	assert.False(t, got.Alive)
}

func TestAdvancePlot_Flags(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("hydrated is cleared and recorded as wet", func(t *testing.T) {
		p := plantedPlot(domain.StageSown, 0.5)
		p.Hydrated = true

		got := engine.AdvancePlot(p, dry, false)

		assert.False(t, got.Hydrated)
		assert.True(t, got.LastMonthWet)
	})

	t.Run("rain marks the plot wet", func(t *testing.T) {
		got := engine.AdvancePlot(plantedPlot(domain.StageSown, 0.5), domain.Forecast{RainMm: 1, Label: domain.ForecastLight}, false)
		assert.True(t, got.LastMonthWet)
	})

	t.Run("dry turn without irrigation is not wet", func(t *testing.T) {
		p := plantedPlot(domain.StageSown, 0.5)
		p.LastMonthWet = true

		got := engine.AdvancePlot(p, dry, false)
		assert.False(t, got.LastMonthWet)
	})

	t.Run("input plot is not modified", func(t *testing.T) {
		p := plantedPlot(domain.StageSown, 0.1)
		_ = engine.AdvancePlot(p, dry, false)

		require.NotNil(t, p.Seed)
		assert.Equal(t, domain.StageSown, p.Stage)
		assert.InDelta(t, 0.1, p.Moisture, 1e-9)
	})
}

func TestPlant(t *testing.T) {
	engine := newTestEngine(t)
	c := engine.catalog

	t.Run("sows the selected seed", func(t *testing.T) {
		s := testSnapshot(c)

		next, err := engine.Plant(s, "plot_0")
		require.NoError(t, err)

		plot := next.Plots[0]
		assert.Equal(t, domain.StageSown, plot.Stage)
		require.NotNil(t, plot.Seed)
		assert.Equal(t, domain.ItemCornSeed, plot.Seed.ID)
		assert.True(t, plot.Alive)
		assert.GreaterOrEqual(t, plot.Moisture, domain.InitialPlotMoisture)
		assert.Equal(t, -1, inventory.Find(next.Inventory, domain.ItemCornSeed, domain.ItemTypeSeed), "empty stack is pruned")

		// original untouched
		assert.Equal(t, domain.StageEmpty, s.Plots[0].Stage)
		assert.Equal(t, 1, inventory.Quantity(s.Inventory, domain.ItemCornSeed, domain.ItemTypeSeed))
	})

	t.Run("raises dry soil to the planting minimum", func(t *testing.T) {
		p := domain.NewPlot(0)
		p.Moisture = 0.05
		next, err := engine.Plant(testSnapshot(c, p), "plot_0")
		require.NoError(t, err)
		assert.InDelta(t, domain.InitialPlotMoisture, next.Plots[0].Moisture, 1e-9)
	})

	t.Run("zero seeds is rejected", func(t *testing.T) {
		s := testSnapshot(c)
		s.Inventory = domain.Inventory{c.Stack(domain.ItemCornSeed, domain.ItemTypeSeed, 0)}

		next, err := engine.Plant(s, "plot_0")
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		assert.Same(t, s, next)
	})

	t.Run("no seed selected", func(t *testing.T) {
		s := testSnapshot(c)
		s.SelectedSeedID = ""

		_, err := engine.Plant(s, "plot_0")
		assert.ErrorIs(t, err, domain.ErrNoSeedSelected)
	})

	t.Run("unknown plot", func(t *testing.T) {
		_, err := engine.Plant(testSnapshot(c), "plot_7")
		assert.ErrorIs(t, err, domain.ErrPlotNotFound)
	})

	t.Run("growing plot is rejected", func(t *testing.T) {
		for _, stage := range []domain.Stage{domain.StageSown, domain.StageGrowing, domain.StageGrowingLate, domain.StageAlmostHarvest} {
			s := testSnapshot(c, plantedPlot(stage, 0.5))
			next, err := engine.Plant(s, "plot_0")
			assert.ErrorIs(t, err, domain.ErrPlotNotEmpty, "stage %d", stage)
			assert.Same(t, s, next)
		}
	})

	t.Run("harvestable plot is harvested instead", func(t *testing.T) {
		s := testSnapshot(c, plantedPlot(domain.StageHarvestable, 0.5))

		next, err := engine.Plant(s, "plot_0")
		require.NoError(t, err)
		assert.Equal(t, domain.StageEmpty, next.Plots[0].Stage)
		assert.Equal(t, 4, inventory.Quantity(next.Inventory, domain.ItemCorn, domain.ItemTypeCrop))
		assert.Equal(t, 1, next.Score.Production)
	})
}

func TestHarvest_Yields(t *testing.T) {
	engine := newTestEngine(t)
	c := engine.catalog

	tests := []struct {
		seed   string
		wantID string
		wantTy domain.ItemType
		want   int
		seeds  int
	}{
		{domain.ItemPotatoSeed, domain.ItemPotatoSeed, domain.ItemTypeSeed, 6, 6},
		{domain.ItemCornSeed, domain.ItemCorn, domain.ItemTypeCrop, 4, 2},
		{domain.ItemBlueberrySeed, domain.ItemBlueberry, domain.ItemTypeCrop, 6, 2},
		{"pumpkin_seed", "pumpkin", domain.ItemTypeCrop, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			p := plantedPlot(domain.StageHarvestable, 0.5)
			ref := c.SeedRef(tt.seed)
			p.Seed = &ref
			s := testSnapshot(c, p)
			s.Inventory = nil

			next, err := engine.Harvest(s, "plot_0")
			require.NoError(t, err)

			assert.Equal(t, tt.want, inventory.Quantity(next.Inventory, tt.wantID, tt.wantTy))
			assert.Equal(t, tt.seeds, inventory.Quantity(next.Inventory, tt.seed, domain.ItemTypeSeed))
			assert.Equal(t, domain.StageEmpty, next.Plots[0].Stage)
			assert.Nil(t, next.Plots[0].Seed)
			assert.Equal(t, 1, next.Score.Production)
		})
	}
}

func TestHarvest_MergesIntoExistingStacks(t *testing.T) {
	engine := newTestEngine(t)
	c := engine.catalog
	s := testSnapshot(c, plantedPlot(domain.StageHarvestable, 0.5))
	s.Inventory = inventory.Add(s.Inventory, c.Stack(domain.ItemCorn, domain.ItemTypeCrop, 3))

	next, err := engine.Harvest(s, "plot_0")
	require.NoError(t, err)

	assert.Equal(t, 7, inventory.Quantity(next.Inventory, domain.ItemCorn, domain.ItemTypeCrop))
	assert.Equal(t, 3, inventory.Quantity(next.Inventory, domain.ItemCornSeed, domain.ItemTypeSeed))
	assert.Len(t, next.Inventory, 2)
}

func TestHarvest_Rejections(t *testing.T) {
	engine := newTestEngine(t)
	c := engine.catalog

	t.Run("not ripe", func(t *testing.T) {
		s := testSnapshot(c, plantedPlot(domain.StageAlmostHarvest, 0.5))
		next, err := engine.Harvest(s, "plot_0")
		assert.ErrorIs(t, err, domain.ErrNotHarvestable)
		assert.Same(t, s, next)
	})

	t.Run("empty plot", func(t *testing.T) {
		_, err := engine.Harvest(testSnapshot(c), "plot_0")
		assert.ErrorIs(t, err, domain.ErrNotHarvestable)
	})

	t.Run("unknown plot", func(t *testing.T) {
		_, err := engine.Harvest(testSnapshot(c), "nope")
		assert.ErrorIs(t, err, domain.ErrPlotNotFound)
	})
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.4, Clamp01(0.4))
}
