package profile

import "time"

// Display name limits
const (
	MaxDisplayNameLength = 32
)

// Cache defaults
const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 10 * time.Minute
)

// Error messages
const (
	ErrMsgGetProfileFailed    = "failed to get profile %s: %w"
	ErrMsgSaveProfileFailed   = "failed to save profile %s: %w"
	ErrMsgDisplayNameEmpty    = "%w: display name is empty"
	ErrMsgDisplayNameTooLong  = "%w: display name exceeds %d characters"
	ErrMsgDisplayNameControls = "%w: display name contains control characters"
)

// Log messages
const (
	LogMsgProfileCacheHit  = "Profile cache hit"
	LogMsgProfileLoaded    = "Profile loaded from repository"
	LogMsgProfileSaved     = "Profile saved"
	LogMsgProfileSaveError = "Failed to save profile"
)
