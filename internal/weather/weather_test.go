package weather

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// sequenceSource replays fixed uniform draws in [0,1)
type sequenceSource struct {
	draws []float64
	i     int
}

func (s *sequenceSource) Uint64() uint64 {
	p := s.draws[s.i%len(s.draws)]
	s.i++
	return uint64(math.Ceil(p * (1 << 53)))
}

func generatorWithDraws(draws ...float64) *Generator {
	return NewGenerator(rand.New(&sequenceSource{draws: draws}))
}

func TestGenerate_BucketThresholds(t *testing.T) {
	tests := []struct {
		name  string
		p     float64
		label domain.ForecastLabel
		minMm float64
		maxMm float64
	}{
		{"zero is dry", 0.0, domain.ForecastDry, 0, 0},
		{"just under dry cutoff", 0.2499, domain.ForecastDry, 0, 0},
		{"dry cutoff is light", 0.25, domain.ForecastLight, 0.5, 2},
		{"light upper", 0.4499, domain.ForecastLight, 0.5, 2},
		{"moderate lower", 0.45, domain.ForecastModerate, 3, 8},
		{"moderate upper", 0.7499, domain.ForecastModerate, 3, 8},
		{"heavy lower", 0.75, domain.ForecastHeavy, 8, 20},
		{"heavy upper", 0.9999, domain.ForecastHeavy, 8, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := generatorWithDraws(tt.p, 0.5)
			f := g.Generate()

			assert.Equal(t, tt.label, f.Label)
			assert.GreaterOrEqual(t, f.RainMm, tt.minMm)
			assert.LessOrEqual(t, f.RainMm, tt.maxMm)
		})
	}
}

func TestGenerate_DryMeansZeroRain(t *testing.T) {
	g := generatorWithDraws(0.1)
	for i := 0; i < 10; i++ {
		f := g.Generate()
		assert.Equal(t, domain.ForecastDry, f.Label)
		assert.Zero(t, f.RainMm)
		assert.True(t, f.IsDry())
	}
}

func TestGenerate_RainIsInterpolatedWithinBucket(t *testing.T) {
	// second draw picks the midpoint of the moderate range
	g := generatorWithDraws(0.5, 0.5)
	f := g.Generate()
	assert.Equal(t, domain.ForecastModerate, f.Label)
	assert.InDelta(t, 5.5, f.RainMm, 1e-9)
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	a := NewSeededGenerator(42)
	b := NewSeededGenerator(42)
	c := NewSeededGenerator(43)

	var seqA, seqB, seqC []domain.Forecast
	for i := 0; i < 20; i++ {
		seqA = append(seqA, a.Generate())
		seqB = append(seqB, b.Generate())
		seqC = append(seqC, c.Generate())
	}

	assert.Equal(t, seqA, seqB, "same seed must replay the same forecasts")
	assert.NotEqual(t, seqA, seqC, "different seeds should diverge")
}

func TestGenerate_DistributionRoughlyMatchesBuckets(t *testing.T) {
	g := NewSeededGenerator(7)
	counts := map[domain.ForecastLabel]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		f := g.Generate()
		counts[f.Label]++
		require.GreaterOrEqual(t, f.RainMm, 0.0)
	}

	assert.InDelta(t, 0.25, float64(counts[domain.ForecastDry])/n, 0.02)
	assert.InDelta(t, 0.20, float64(counts[domain.ForecastLight])/n, 0.02)
	assert.InDelta(t, 0.30, float64(counts[domain.ForecastModerate])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts[domain.ForecastHeavy])/n, 0.02)
}

func TestWithBuckets(t *testing.T) {
	g := generatorWithDraws(0.3, 0.0).WithBuckets([]Bucket{
		{Label: domain.ForecastHeavy, Threshold: 1.0, MinMm: 10, MaxMm: 10},
	})
	f := g.Generate()
	assert.Equal(t, domain.ForecastHeavy, f.Label)
	assert.Equal(t, 10.0, f.RainMm)
}

func TestWithBuckets_EmptyKeepsCurrentTable(t *testing.T) {
	g := generatorWithDraws(0.3, 0.0).WithBuckets(nil).WithBuckets([]Bucket{})

	var f domain.Forecast
	require.NotPanics(t, func() { f = g.Generate() })
	assert.Equal(t, domain.ForecastLight, f.Label)
	assert.Equal(t, 0.5, f.RainMm)
}

func TestRollDrought(t *testing.T) {
	t.Run("starts a drought on a low first draw", func(t *testing.T) {
		g := generatorWithDraws(0.05)
		assert.True(t, g.RollDrought(false))
	})

	t.Run("keeps the previous state on a mid second draw", func(t *testing.T) {
		g := generatorWithDraws(0.5, 0.3)
		assert.True(t, g.RollDrought(true))

		g = generatorWithDraws(0.5, 0.3)
		assert.False(t, g.RollDrought(false))
	})

	t.Run("clears on a high second draw", func(t *testing.T) {
		g := generatorWithDraws(0.5, 0.9)
		assert.False(t, g.RollDrought(true))
	})
}
