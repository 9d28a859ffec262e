package bootstrap

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/osse101/Farmstead_Go/internal/catalog"
	"github.com/osse101/Farmstead_Go/internal/config"
	"github.com/osse101/Farmstead_Go/internal/event"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/weather"
)

// LoadCatalog reads the catalog file named in the config, or the embedded
// default when none is set.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	source := cfg.CatalogPath
	var (
		c   *catalog.Catalog
		err error
	)
	if source == "" {
		source = CatalogSourceEmbedded
		c, err = catalog.Default()
	} else {
		c, err = catalog.Load(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"items", len(c.Items()),
		"districts", len(c.Districts()))
	return c, nil
}

// ResolveSeed returns the configured seed, or a fresh one when it is zero.
// The chosen seed is logged so a session can be replayed.
func ResolveSeed(configured int64) int64 {
	if configured != 0 {
		return configured
	}
	// #nosec G404
	seed := rand.Int64()
	slog.Info(LogMsgEntropySeedDrawn, "seed", seed)
	return seed
}

// InitializeSimulation builds the controller for a fresh game
func InitializeSimulation(cfg *config.Config, c *catalog.Catalog, bus event.Bus) (*game.Controller, error) {
	seed := ResolveSeed(cfg.SimSeed)

	ctrl, err := game.NewController(c, weather.NewSeededGenerator(seed),
		game.WithBus(bus),
		game.WithHistorySize(cfg.SnapshotHistory))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEngine, err)
	}

	s := ctrl.Snapshot()
	slog.Info(LogMsgSimulationReady,
		"seed", seed,
		"history", cfg.SnapshotHistory,
		"forecast", s.Forecast.Label,
		"rain_mm", s.Forecast.RainMm)
	return ctrl, nil
}
