package domain

import "errors"

// Error message string constants - single source of truth for rejection reasons
// Use these in assert.Contains() checks when testing error messages
const (
	// Turn budget
	ErrMsgNoActionsRemaining = "no actions remaining this turn"

	// Plot errors
	ErrMsgPlotNotFound     = "plot not found"
	ErrMsgNoNearbyPlot     = "no plot within reach"
	ErrMsgPlotNotEmpty     = "plot is already planted"
	ErrMsgNotHarvestable   = "plot is not ready to harvest"
	ErrMsgAlreadyHydrated  = "plot was already irrigated this turn"
	ErrMsgPlotLimitReached = "plot limit reached"

	// Seed and inventory errors
	ErrMsgNoSeedSelected       = "no seed selected"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgNotInInventory       = "item not in inventory"
	ErrMsgSeedNotEligible      = "seed cannot be used as feed"

	// Water errors
	ErrMsgNoTankAvailable  = "all water tanks are full"
	ErrMsgNoWaterInTanks   = "no water in tanks"
	ErrMsgNotNearRiver     = "too far from the river"
	ErrMsgRiverDry         = "river is dry this turn"
	ErrMsgTankLimitReached = "tank limit reached"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgNotSellable       = "item is not sellable"
	ErrMsgNotBuyable        = "is not buyable"
	ErrMsgDecorationOwned   = "decoration already owned"
	ErrMsgHenMissing        = "no hen to feed"
	ErrMsgDistrictNotFound  = "district not found"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Rejections are reported as these sentinels, never as panics.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNoActionsRemaining = errors.New(ErrMsgNoActionsRemaining)

	ErrPlotNotFound     = errors.New(ErrMsgPlotNotFound)
	ErrNoNearbyPlot     = errors.New(ErrMsgNoNearbyPlot)
	ErrPlotNotEmpty     = errors.New(ErrMsgPlotNotEmpty)
	ErrNotHarvestable   = errors.New(ErrMsgNotHarvestable)
	ErrAlreadyHydrated  = errors.New(ErrMsgAlreadyHydrated)
	ErrPlotLimitReached = errors.New(ErrMsgPlotLimitReached)

	ErrNoSeedSelected       = errors.New(ErrMsgNoSeedSelected)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrNotInInventory       = errors.New(ErrMsgNotInInventory)
	ErrSeedNotEligible      = errors.New(ErrMsgSeedNotEligible)

	ErrNoTankAvailable  = errors.New(ErrMsgNoTankAvailable)
	ErrNoWaterInTanks   = errors.New(ErrMsgNoWaterInTanks)
	ErrNotNearRiver     = errors.New(ErrMsgNotNearRiver)
	ErrRiverDry         = errors.New(ErrMsgRiverDry)
	ErrTankLimitReached = errors.New(ErrMsgTankLimitReached)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrNotSellable       = errors.New(ErrMsgNotSellable)
	ErrNotBuyable        = errors.New(ErrMsgNotBuyable)
	ErrDecorationOwned   = errors.New(ErrMsgDecorationOwned)
	ErrHenMissing        = errors.New(ErrMsgHenMissing)
	ErrDistrictNotFound  = errors.New(ErrMsgDistrictNotFound)

	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
