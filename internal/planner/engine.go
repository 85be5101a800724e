package planner

import (
	"fmt"

	"github.com/osse101/OMD2Planner_Go/internal/catalog"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// Engine applies planner transitions and computes views over one catalog.
// It holds no session state and is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	sortMode SortMode
}

// Option configures an Engine
type Option func(*Engine)

// WithSortMode sets how category listings are ordered
func WithSortMode(mode SortMode) Option {
	return func(e *Engine) {
		e.sortMode = mode
	}
}

// NewEngine creates an engine over c. The default sort mode is SortCompat.
func NewEngine(c *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: c, sortMode: SortCompat}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseSortMode validates a configured sort mode
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortCompat, SortAlphabetical:
		return SortMode(s), nil
	}
	return "", fmt.Errorf(ErrFmtUnknownSortMode, domain.ErrInvalidInput, s)
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Validate checks that every name in s resolves in the catalog. States loaded
// from outside the engine go through this before any view is computed.
func (e *Engine) Validate(s domain.SessionState) error {
	if s.SkullBudget < 0 {
		return fmt.Errorf(ErrFmtNegativeBudget, domain.ErrInvalidSnapshot)
	}
	for _, name := range s.PurchasedItems {
		if !e.catalog.HasItem(name) {
			return fmt.Errorf(ErrFmtSnapshotItem, domain.ErrInvalidSnapshot, name)
		}
	}
	for _, name := range s.HighlightedItems {
		if !e.catalog.HasItem(name) {
			return fmt.Errorf(ErrFmtSnapshotItem, domain.ErrInvalidSnapshot, name)
		}
	}
	for _, name := range s.PurchasedUpgrades {
		if !e.catalog.HasUpgrade(name) {
			return fmt.Errorf(ErrFmtSnapshotUpgrade, domain.ErrInvalidSnapshot, name)
		}
	}
	if s.SelectedItem != "" && !e.catalog.HasItem(s.SelectedItem) {
		return fmt.Errorf(ErrFmtSnapshotItem, domain.ErrInvalidSnapshot, s.SelectedItem)
	}
	if s.SelectedTab != "" && !domain.ValidTab(s.SelectedTab) {
		return fmt.Errorf(ErrFmtSnapshotTab, domain.ErrInvalidSnapshot, s.SelectedTab)
	}
	return nil
}
