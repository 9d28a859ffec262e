package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Simulation metric names
const (
	MetricNameActionsTotal      = "farm_actions_total"
	MetricNameActionsRejected   = "farm_actions_rejected_total"
	MetricNameTurnsAdvanced     = "farm_turns_advanced_total"
	MetricNameEndOfTurnDuration = "farm_end_of_turn_duration_seconds"
	MetricNameCurrency          = "farm_currency"
	MetricNameTurn              = "farm_turn"
	MetricNameStoredWater       = "farm_stored_water"
	MetricNameAquifer           = "farm_aquifer_level"
	MetricNameHarvests          = "farm_harvests_total"
)

// Business metric names
const (
	MetricNameItemsSold   = "items_sold_total"
	MetricNameItemsBought = "items_bought_total"
	MetricNameMoneyEarned = "money_earned_total"
	MetricNameMoneySpent  = "money_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Simulation metric help text
const (
	HelpTextActionsTotal      = "Total number of player actions applied"
	HelpTextActionsRejected   = "Total number of player actions rejected as no-ops"
	HelpTextTurnsAdvanced     = "Total number of end-of-turn updates"
	HelpTextEndOfTurnDuration = "Time spent computing the end-of-turn update in seconds"
	HelpTextCurrency          = "Current currency balance"
	HelpTextTurn              = "Current turn number"
	HelpTextStoredWater       = "Water currently stored across all tanks"
	HelpTextAquifer           = "Current aquifer level"
	HelpTextHarvests          = "Total number of harvested plots"
)

// Business metric help text
const (
	HelpTextItemsSold   = "Total number of items sold"
	HelpTextItemsBought = "Total number of items bought"
	HelpTextMoneyEarned = "Total money earned from selling items"
	HelpTextMoneySpent  = "Total money spent buying items"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelAction = "action"
	LabelReason = "reason"
	LabelMode   = "mode"
	LabelSeed   = "seed"
)

// Turn advance modes
const (
	ModeAutomatic = "automatic"
	ModeManual    = "manual"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EndOfTurnBuckets covers 1µs to 10ms
var EndOfTurnBuckets = []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005, .01}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that did not match any route
const UnmatchedRoute = "unmatched"
