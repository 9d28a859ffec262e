package water

import (
	"fmt"
	"math"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// NearRiver reports whether the player's centre is within reach of the river
func NearRiver(player domain.Player) bool {
	c := player.Center()
	return math.Hypot(c.X-domain.RiverX, c.Y-domain.RiverY) <= domain.RiverRadius
}

// FirstFillable returns the index of the first tank with room left, or -1
func FirstFillable(tanks []int) int {
	for i, level := range tanks {
		if level < domain.MaxTankCapacity {
			return i
		}
	}
	return -1
}

// FirstWithWater returns the index of the first tank holding water, or -1
func FirstWithWater(tanks []int) int {
	for i, level := range tanks {
		if level > 0 {
			return i
		}
	}
	return -1
}

// FillFromRiver adds one unit of water to the first tank that has room.
// The river must be close and carry water this turn.
func FillFromRiver(s *domain.Snapshot) (*domain.Snapshot, error) {
	if !NearRiver(s.Player) {
		return s, domain.ErrNotNearRiver
	}
	if s.Forecast.IsDry() {
		return s, domain.ErrRiverDry
	}
	idx := FirstFillable(s.Resources.WaterTanks)
	if idx < 0 {
		return s, domain.ErrNoTankAvailable
	}

	next := s.Clone()
	next.Resources.WaterTanks[idx]++
	return next, nil
}

// Irrigate spends one unit of stored water to raise a plot's moisture.
// A plot can be irrigated once per turn.
func Irrigate(s *domain.Snapshot, plotID string) (*domain.Snapshot, error) {
	pi := s.FindPlot(plotID)
	if pi < 0 {
		return s, fmt.Errorf("%w: %s", domain.ErrPlotNotFound, plotID)
	}
	if s.Plots[pi].Hydrated {
		return s, fmt.Errorf("%w: %s", domain.ErrAlreadyHydrated, plotID)
	}
	ti := FirstWithWater(s.Resources.WaterTanks)
	if ti < 0 {
		return s, domain.ErrNoWaterInTanks
	}

	next := s.Clone()
	next.Resources.WaterTanks[ti]--
	p := &next.Plots[pi]
	p.Moisture = math.Min(1, math.Max(0, p.Moisture+domain.IrrigationDelta))
	p.Hydrated = true
	return next, nil
}

// AddTank appends an empty tank, up to the tank limit
func AddTank(tanks []int) ([]int, error) {
	if len(tanks) >= domain.MaxTanks {
		return tanks, domain.ErrTankLimitReached
	}
	out := make([]int, len(tanks), len(tanks)+1)
	copy(out, tanks)
	return append(out, 0), nil
}

// Capacity returns the total amount of water the tanks can hold
func Capacity(tanks []int) int {
	return len(tanks) * domain.MaxTankCapacity
}

// BelowRecoveryThreshold reports whether stored water is under the share of
// capacity at which a rainy turn counts toward sustainability
func BelowRecoveryThreshold(tanks []int) bool {
	total := 0
	for _, level := range tanks {
		total += level
	}
	return float64(total) < float64(Capacity(tanks))*domain.DroughtRecoveryThreshold
}

// AquiferGain returns how much the aquifer recharges after a turn with the given rain
func AquiferGain(rainMm float64) int {
	switch {
	case rainMm > 3:
		return 2
	case rainMm > 0:
		return 1
	default:
		return 0
	}
}

// RechargeAquifer applies a turn's gain, capped at the aquifer maximum
func RechargeAquifer(level int, rainMm float64) int {
	return min(domain.AquiferMax, level+AquiferGain(rainMm))
}
