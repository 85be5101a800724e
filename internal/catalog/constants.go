package catalog

// Catalog file defaults
const (
	// DefaultPath is where the planner looks for the catalog when none is configured
	DefaultPath = "configs/items.json"
)

// Error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed  = "failed to parse catalog: %w"
	ErrMsgSchemaFailed        = "catalog schema validation failed: %w"
	ErrFmtDuplicateItem       = "%w: duplicate item name %q"
	ErrFmtEmptyItemName       = "%w: item at index %d has empty name"
	ErrFmtNegativeItemCost    = "%w: item %q has negative unlock cost"
	ErrFmtNegativeUpgradeCost = "%w: upgrade %d of %q has negative unlock cost"
	ErrFmtDuplicateUpgrade    = "%w: duplicate upgrade name %q"
	ErrFmtSuggestion          = "%w: %q (did you mean %q?)"
	ErrFmtNoSuggestion        = "%w: %q"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)

// Suggestion tuning
const (
	// MinSuggestionDistance is the edit distance always accepted for a suggestion
	MinSuggestionDistance = 2
	// SuggestionLengthDivisor bounds the distance for longer names to len/3
	SuggestionLengthDivisor = 3
)
