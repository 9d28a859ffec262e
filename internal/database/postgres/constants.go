package postgres

// Error Messages - Profile Operations
const (
	ErrMsgFailedToGetProfile    = "failed to get profile"
	ErrMsgFailedToUpsertProfile = "failed to upsert profile"
)
