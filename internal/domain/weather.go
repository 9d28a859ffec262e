package domain

// ForecastLabel is the categorical rain intensity, ordered by severity
type ForecastLabel string

const (
	ForecastDry      ForecastLabel = "dry"
	ForecastLight    ForecastLabel = "light"
	ForecastModerate ForecastLabel = "moderate"
	ForecastHeavy    ForecastLabel = "heavy"
)

// Severity returns the label's position in dry < light < moderate < heavy
func (l ForecastLabel) Severity() int {
	switch l {
	case ForecastDry:
		return 0
	case ForecastLight:
		return 1
	case ForecastModerate:
		return 2
	case ForecastHeavy:
		return 3
	default:
		return -1
	}
}

// Forecast is the rain outlook for the coming turn
type Forecast struct {
	RainMm float64       `json:"rain_mm"`
	Label  ForecastLabel `json:"label"`
}

// IsDry reports whether the river can't be drawn from this turn
func (f Forecast) IsDry() bool {
	return f.Label == ForecastDry
}
