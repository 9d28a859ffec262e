package domain

// Item ID constants - stable code identifiers used by the catalog and the rules
const (
	ItemCornSeed      = "corn_seed"
	ItemPotatoSeed    = "potato_seed"
	ItemBlueberrySeed = "blueberry_seed"

	ItemCorn      = "corn"
	ItemPotato    = "potato"
	ItemBlueberry = "blueberry"
	ItemEgg       = "egg"

	// Shop-only purchases that never enter the inventory
	ItemPlot = "plot"
	ItemTank = "tank"

	// Unique decorations
	DecorationHen = "hen"
	DecorationPet = "pet"
)

// Scene geometry (display units)
const (
	SceneWidth  = 1090.0
	SceneHeight = 663.0

	PlayerWidth  = 65.0
	PlayerHeight = 105.0
	PlayerSpeed  = 200.0 // units per second

	PlayerStartX = 360.0
	PlayerStartY = 430.0

	// InteractRadius is the maximum distance from the player's centre to a plot's centre
	InteractRadius = 80.0

	RiverX      = 62.0
	RiverY      = 482.0
	RiverRadius = 200.0

	// HenX/HenY is the fixed coop location for the hen decoration
	HenX = 930.0
	HenY = 350.0
)

// Plot grid layout
const (
	PlotGridOriginX  = 350.0
	PlotGridOriginY  = 250.0
	PlotGridColumns  = 3
	PlotGridSpacing  = 86.0
	PlotCenterOffset = 36.0
)

// Growth and moisture rules
const (
	EvaporationPerTurn        = 0.15
	DroughtEvaporationPerTurn = 0.24
	RainToMoistureRatio       = 1.0 / 20.0
	MoistureOKMin             = 0.30
	MoistureOKMax             = 0.85
	WiltThreshold             = 0.15
	IrrigationDelta           = 0.25
	InitialPlotMoisture       = 0.25
)

// Resource limits
const (
	MaxTankCapacity  = 10
	MaxTanks         = 10
	MaxPlots         = 9
	ActionsPerTurn   = 5
	StartingTurn     = 1
	StartingCurrency = 50

	AquiferStart = 60
	AquiferMax   = 100
)

// Fixed prices
const (
	PriceTank = 25
	PriceHen  = 75
	PricePet  = 250
	PriceEgg  = 2
)

// EggsPerFeed is the number of eggs produced each time the hen is fed
const EggsPerFeed = 2

// PlotCosts is the price schedule for additional plots, indexed by plotCount-1
var PlotCosts = []int{3, 5, 8, 11, 14, 17, 20, 23}

// DroughtRecoveryThreshold is the share of total tank capacity under which a
// rainy turn counts toward sustainability.
const DroughtRecoveryThreshold = 0.9
