package planner

// SortMode selects how category listings order items within the owned and
// unowned groups.
type SortMode string

const (
	// SortCompat keeps catalog order inside each group
	SortCompat SortMode = "compat"
	// SortAlphabetical orders each group by name
	SortAlphabetical SortMode = "alphabetical"
)

// Pane names what the shop area is showing
type Pane string

const (
	PaneSearch   Pane = "search"
	PaneItem     Pane = "item"
	PaneMyItems  Pane = "myitems"
	PaneCategory Pane = "category"
	PaneNone     Pane = "none"
)

// User-facing notes
const (
	RestrictedNote = "This item is restricted to a starting character"
	NoResultsNote  = "No results found"
	ActionBuy      = "Buy"
	ActionSell     = "Sell"
	ActionAdd      = "Add"
	ActionRemove   = "Remove"
)

// Error message fragments
const (
	ErrFmtUnknownTab      = "%w: %q"
	ErrFmtUnknownSortMode = "%w: unknown sort mode %q"
	ErrFmtSnapshotItem    = "%w: unknown item %q"
	ErrFmtSnapshotUpgrade = "%w: unknown upgrade %q"
	ErrFmtSnapshotTab     = "%w: unknown tab %q"
	ErrFmtNegativeBudget  = "%w: negative skull budget"
)
