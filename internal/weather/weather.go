package weather

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// Bucket is one band of the forecast distribution.
// A draw p selects the first bucket whose Threshold is greater than p.
type Bucket struct {
	Label     domain.ForecastLabel `yaml:"label"`
	Threshold float64              `yaml:"threshold"`
	MinMm     float64              `yaml:"min_mm"`
	MaxMm     float64              `yaml:"max_mm"`
}

// Generator produces forecasts and drought rolls from an injected random source
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	buckets []Bucket
}

// NewGenerator creates a generator using the given source and the default distribution
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, buckets: DefaultBuckets}
}

// NewSeededGenerator creates a deterministic generator for the given seed
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(SeededRNG(seed))
}

// WithBuckets replaces the forecast distribution. An empty table is ignored.
func (g *Generator) WithBuckets(buckets []Bucket) *Generator {
	if len(buckets) == 0 {
		return g
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buckets = append([]Bucket(nil), buckets...)
	return g
}

// Generate draws the forecast for the next turn
func (g *Generator) Generate() domain.Forecast {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.rng.Float64()
	for _, b := range g.buckets {
		if p < b.Threshold {
			return domain.Forecast{RainMm: g.uniform(b.MinMm, b.MaxMm), Label: b.Label}
		}
	}

	last := g.buckets[len(g.buckets)-1]
	return domain.Forecast{RainMm: g.uniform(last.MinMm, last.MaxMm), Label: last.Label}
}

// RollDrought decides whether the coming turn is a drought turn
func (g *Generator) RollDrought(prev bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rng.Float64() < DroughtStartChance {
		return true
	}
	if g.rng.Float64() < DroughtPersistChance {
		return prev
	}
	return false
}

// uniform returns a value in [lo, hi); caller must hold the mutex
func (g *Generator) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// SeededRNG builds a PCG source whose two words are derived from seed
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
