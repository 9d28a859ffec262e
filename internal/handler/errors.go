package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidVersion    = "Invalid snapshot version"
	ErrMsgVersionNotFound   = "Snapshot version is no longer available"

	// Shop error messages
	ErrMsgGetCatalogFailed = "Failed to load shop catalog"

	// Profile error messages
	ErrMsgGetProfileFailed    = "Failed to load profile"
	ErrMsgUpdateProfileFailed = "Failed to update profile"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgDatabaseUnavailable  = "database connection failed"
)

// Log messages
const (
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgActionRejected      = "Game action rejected"
	LogMsgProfileUpdateFailed = "Profile update failed"
)
