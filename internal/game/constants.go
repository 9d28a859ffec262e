package game

// Action names used in events, logs and metrics labels
const (
	ActionPlant      = "plant"
	ActionHarvest    = "harvest"
	ActionIrrigate   = "irrigate"
	ActionFill       = "fill"
	ActionFeed       = "feed"
	ActionAdvance    = "advance"
	ActionBuy        = "buy"
	ActionSell       = "sell"
	ActionSellAll    = "sell_all"
	ActionMove       = "move"
	ActionFace       = "face"
	ActionSelectSeed = "select_seed"
	ActionCycleSeed  = "cycle_seed"
	ActionDistrict   = "district"
	ActionReset      = "reset"
)

// DefaultHistorySize is how many recent snapshots can be fetched by version
const DefaultHistorySize = 64

// Log messages
const (
	LogMsgActionApplied   = "Action applied"
	LogMsgActionRejected  = "Action rejected"
	LogMsgTurnAdvanced    = "Turn advanced"
	LogMsgPublishFailed   = "Failed to publish event"
	LogMsgControllerReset = "Game reset"
)

// Error messages
const (
	ErrMsgCreateHistoryFailed = "failed to create snapshot history: %w"
	ErrMsgNilCatalog          = "catalog is required"
	ErrMsgNilWeather          = "weather generator is required"
	ErrMsgInvalidMoveFmt      = "%w: move needs a non-zero direction and a positive dt"
	ErrMsgInvalidFacingFmt    = "%w: facing must be left or right, got %q"
)
