package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidCategory   = "Invalid category '%s'. Valid options: Trap, Weapon, Trinket"

	// Session operation error messages
	ErrMsgCreateSessionFailed = "Failed to create session"
	ErrMsgOpenSessionFailed   = "Failed to open session"
	ErrMsgResetSessionFailed  = "Failed to reset session"
	ErrMsgViewFailed          = "Failed to build view"
	ErrMsgExportFailed        = "Failed to export session"
	ErrMsgActionFailed        = "Failed to apply action"
)

