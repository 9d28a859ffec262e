package config

import "time"

// Profile store backends
const (
	ProfileStoreMemory   = "memory"
	ProfileStorePostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "farmstead"
	DefaultVersion           = "dev"
	DefaultProfileID         = "local"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSnapshotHistory   = 64
	DefaultProfileCacheSize  = 128
	DefaultProfileCacheTTL   = 10 * time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPortFmt     = "invalid PORT value: %w"
	ErrMsgInvalidSimSeedFmt  = "invalid SIM_SEED value: %w"
	ErrMsgValidationFailed   = "invalid configuration: %w"
	ErrMsgSchemaVersionUnset = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatchFmt  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVarsFmt  = "missing required environment variables: %s"
)
