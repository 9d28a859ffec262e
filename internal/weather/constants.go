package weather

import "github.com/osse101/Farmstead_Go/internal/domain"

// Drought roll probabilities
const (
	// DroughtStartChance is the chance a drought begins regardless of the previous turn
	DroughtStartChance = 0.12

	// DroughtPersistChance is the chance the previous drought state carries over
	DroughtPersistChance = 0.6
)

// DefaultBuckets is the forecast distribution: 25% dry, 20% light, 30% moderate, 25% heavy
var DefaultBuckets = []Bucket{
	{Label: domain.ForecastDry, Threshold: 0.25, MinMm: 0, MaxMm: 0},
	{Label: domain.ForecastLight, Threshold: 0.45, MinMm: 0.5, MaxMm: 2},
	{Label: domain.ForecastModerate, Threshold: 0.75, MinMm: 3, MaxMm: 8},
	{Label: domain.ForecastHeavy, Threshold: 1.0, MinMm: 8, MaxMm: 20},
}
