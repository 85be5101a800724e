package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgUpgradeNotFound = "upgrade not found"
	ErrMsgInvalidCatalog  = "invalid catalog"

	// Session errors
	ErrMsgSessionNotFound  = "session not found"
	ErrMsgInvalidSnapshot  = "invalid state snapshot"
	ErrMsgStoreUnavailable = "session store unavailable"

	// Navigation errors
	ErrMsgInvalidTab = "invalid tab"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrUpgradeNotFound = errors.New(ErrMsgUpgradeNotFound)
	ErrInvalidCatalog  = errors.New(ErrMsgInvalidCatalog)

	// Session errors
	ErrSessionNotFound  = errors.New(ErrMsgSessionNotFound)
	ErrInvalidSnapshot  = errors.New(ErrMsgInvalidSnapshot)
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Navigation errors
	ErrInvalidTab = errors.New(ErrMsgInvalidTab)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
