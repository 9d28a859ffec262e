package bootstrap

// =============================================================================
// Simulation
// =============================================================================

// Log messages for simulation setup
const (
	LogMsgCatalogLoaded      = "Catalog loaded"
	LogMsgSimulationReady    = "Simulation initialized"
	LogMsgEntropySeedDrawn   = "No SIM_SEED configured, drew an entropy seed"
	ErrMsgFailedLoadCatalog  = "failed to load catalog"
	ErrMsgFailedCreateEngine = "failed to create game controller"
)

// Turn clock
const (
	JobNameTurnClock       = "turn_clock"
	LogMsgTurnClockStarted = "Turn clock started"
	LogMsgStoppingClock    = "Stopping turn clock..."
)

// CatalogSourceEmbedded labels the built-in catalog in logs
const CatalogSourceEmbedded = "embedded"

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Repositories
// =============================================================================

const (
	LogMsgProfileStoreMemory   = "Using in-memory profile store"
	LogMsgProfileStorePostgres = "Using PostgreSQL profile store"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to apply migrations"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownSSE      = "Closing event streams..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
