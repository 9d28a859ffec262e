package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

var rainy = domain.Forecast{RainMm: 1.5, Label: domain.ForecastLight}

// playerAt places the player so its centre lands on (x, y)
func playerAt(x, y float64) domain.Player {
	return domain.Player{Position: domain.Position{X: x - domain.PlayerWidth/2, Y: y - domain.PlayerHeight/2}}
}

func riverSnapshot(tanks ...int) *domain.Snapshot {
	return &domain.Snapshot{
		Player:      playerAt(domain.RiverX+100, domain.RiverY),
		Plots:       []domain.Plot{domain.NewPlot(0)},
		Resources:   domain.Resources{WaterTanks: tanks, ActionsRemaining: domain.ActionsPerTurn},
		Forecast:    rainy,
		Decorations: map[string]bool{},
	}
}

func TestNearRiver(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"on the river", domain.RiverX, domain.RiverY, true},
		{"at the radius", domain.RiverX + domain.RiverRadius, domain.RiverY, true},
		{"just outside", domain.RiverX + domain.RiverRadius + 1, domain.RiverY, false},
		{"start position", domain.PlayerStartX + domain.PlayerWidth/2, domain.PlayerStartY + domain.PlayerHeight/2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearRiver(playerAt(tt.x, tt.y)))
		})
	}
}

func TestFillFromRiver(t *testing.T) {
	t.Run("fills the first tank with room", func(t *testing.T) {
		s := riverSnapshot(domain.MaxTankCapacity, 4, 0)

		next, err := FillFromRiver(s)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 5, 0}, next.Resources.WaterTanks)
		assert.Equal(t, []int{10, 4, 0}, s.Resources.WaterTanks, "input is not modified")
	})

	t.Run("all tanks full", func(t *testing.T) {
		s := riverSnapshot(domain.MaxTankCapacity)
		next, err := FillFromRiver(s)
		assert.ErrorIs(t, err, domain.ErrNoTankAvailable)
		assert.Same(t, s, next)
	})

	t.Run("too far away", func(t *testing.T) {
		s := riverSnapshot(0)
		s.Player = playerAt(900, 100)
		_, err := FillFromRiver(s)
		assert.ErrorIs(t, err, domain.ErrNotNearRiver)
	})

	t.Run("dry river", func(t *testing.T) {
		s := riverSnapshot(0)
		s.Forecast = domain.Forecast{Label: domain.ForecastDry}
		_, err := FillFromRiver(s)
		assert.ErrorIs(t, err, domain.ErrRiverDry)
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		s := riverSnapshot(0)
		for i := 0; i < domain.MaxTankCapacity+3; i++ {
			next, err := FillFromRiver(s)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrNoTankAvailable)
				break
			}
			s = next
		}
		assert.Equal(t, []int{domain.MaxTankCapacity}, s.Resources.WaterTanks)
	})
}

func TestIrrigate(t *testing.T) {
	t.Run("spends water and hydrates the plot", func(t *testing.T) {
		s := riverSnapshot(0, domain.MaxTankCapacity)

		next, err := Irrigate(s, "plot_0")
		require.NoError(t, err)

		assert.Equal(t, []int{0, 9}, next.Resources.WaterTanks)
		assert.InDelta(t, domain.InitialPlotMoisture+domain.IrrigationDelta, next.Plots[0].Moisture, 1e-9)
		assert.True(t, next.Plots[0].Hydrated)
		assert.False(t, s.Plots[0].Hydrated)
	})

	t.Run("moisture is clamped", func(t *testing.T) {
		s := riverSnapshot(1)
		s.Plots[0].Moisture = 0.9

		next, err := Irrigate(s, "plot_0")
		require.NoError(t, err)
		assert.Equal(t, 1.0, next.Plots[0].Moisture)
	})

	t.Run("once per turn", func(t *testing.T) {
		s := riverSnapshot(5)
		next, err := Irrigate(s, "plot_0")
		require.NoError(t, err)

		again, err := Irrigate(next, "plot_0")
		assert.ErrorIs(t, err, domain.ErrAlreadyHydrated)
		assert.Same(t, next, again)
	})

	t.Run("no water", func(t *testing.T) {
		_, err := Irrigate(riverSnapshot(0, 0), "plot_0")
		assert.ErrorIs(t, err, domain.ErrNoWaterInTanks)
	})

	t.Run("unknown plot", func(t *testing.T) {
		_, err := Irrigate(riverSnapshot(3), "plot_4")
		assert.ErrorIs(t, err, domain.ErrPlotNotFound)
	})
}

func TestAddTank(t *testing.T) {
	tanks := []int{3}
	out, err := AddTank(tanks)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0}, out)
	assert.Equal(t, []int{3}, tanks)

	full := make([]int, domain.MaxTanks)
	_, err = AddTank(full)
	assert.ErrorIs(t, err, domain.ErrTankLimitReached)
}

func TestAquifer(t *testing.T) {
	tests := []struct {
		rain  float64
		level int
		want  int
	}{
		{0, 60, 60},
		{0.5, 60, 61},
		{3, 60, 61},
		{3.1, 60, 62},
		{12, 99, 100},
		{12, 100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RechargeAquifer(tt.level, tt.rain), "rain=%v level=%d", tt.rain, tt.level)
	}
}

func TestBelowRecoveryThreshold(t *testing.T) {
	assert.True(t, BelowRecoveryThreshold([]int{0}))
	assert.True(t, BelowRecoveryThreshold([]int{8}))
	assert.False(t, BelowRecoveryThreshold([]int{9}))
	assert.False(t, BelowRecoveryThreshold([]int{10, 8}))
	assert.True(t, BelowRecoveryThreshold([]int{10, 7}))
}
