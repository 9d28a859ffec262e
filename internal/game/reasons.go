package game

import (
	"errors"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// ReasonUnknown labels errors that don't wrap a known rejection
const ReasonUnknown = "unknown"

var reasonCodes = []struct {
	err  error
	code string
}{
	{domain.ErrNoActionsRemaining, "no_actions_remaining"},
	{domain.ErrPlotNotFound, "plot_not_found"},
	{domain.ErrNoNearbyPlot, "no_nearby_plot"},
	{domain.ErrPlotNotEmpty, "plot_not_empty"},
	{domain.ErrNotHarvestable, "not_harvestable"},
	{domain.ErrAlreadyHydrated, "already_hydrated"},
	{domain.ErrPlotLimitReached, "plot_limit_reached"},
	{domain.ErrNoSeedSelected, "no_seed_selected"},
	{domain.ErrInsufficientQuantity, "insufficient_quantity"},
	{domain.ErrNotInInventory, "not_in_inventory"},
	{domain.ErrSeedNotEligible, "seed_not_eligible"},
	{domain.ErrNoTankAvailable, "no_tank_available"},
	{domain.ErrNoWaterInTanks, "no_water_in_tanks"},
	{domain.ErrNotNearRiver, "not_near_river"},
	{domain.ErrRiverDry, "river_dry"},
	{domain.ErrTankLimitReached, "tank_limit_reached"},
	{domain.ErrInsufficientFunds, "insufficient_funds"},
	{domain.ErrItemNotFound, "item_not_found"},
	{domain.ErrNotSellable, "not_sellable"},
	{domain.ErrNotBuyable, "not_buyable"},
	{domain.ErrDecorationOwned, "decoration_owned"},
	{domain.ErrHenMissing, "hen_missing"},
	{domain.ErrDistrictNotFound, "district_not_found"},
	{domain.ErrInvalidInput, "invalid_input"},
}

// ReasonCode maps a rejection to a stable snake_case code for clients and metrics
func ReasonCode(err error) string {
	if err == nil {
		return ""
	}
	for _, rc := range reasonCodes {
		if errors.Is(err, rc.err) {
			return rc.code
		}
	}
	return ReasonUnknown
}
