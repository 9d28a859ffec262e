package catalog

// Configuration
const (
	// SchemaName is the registered name of the embedded catalog schema
	SchemaName = "catalog.schema.json"

	// MaxSuggestionDistance is the largest edit distance accepted for a "did you mean" hint
	MaxSuggestionDistance = 3

	// Fallback harvest for seeds without a yield entry
	DefaultCropYield = 1
	DefaultSeedYield = 2

	seedSuffix = "_seed"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog: %w"
	ErrMsgLoadSchemaFailed     = "failed to load catalog schema: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil           = "config is nil"
	ErrMsgNoItemsDefined      = "no items defined"
	ErrMsgNoPlotCosts         = "no plot costs defined"
	ErrFmtItemAtIndexEmpty    = "%w: item at index %d has empty id"
	ErrFmtItemHasEmptyName    = "%w: item '%s' has empty name"
	ErrFmtItemNegativePrice   = "%w: item '%s' has negative price"
	ErrFmtItemUnknownType     = "%w: item '%s' has unknown type '%s'"
	ErrFmtYieldUnknownSeed    = "%w: yield defined for unknown seed '%s'"
	ErrFmtYieldUnknownItem    = "%w: yield for '%s' produces unknown item '%s'"
	ErrFmtDistrictEmptyName   = "%w: district at index %d has empty name"
	ErrFmtDistrictUnknownItem = "%w: district '%s' modifies unknown item '%s'"
)
