package planner

import (
	"fmt"
	"slices"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// Transitions never modify their input. Each returns a fresh state, or the
// input unchanged together with an error when a name does not resolve.

// SetSearchTerm starts a search, leaving tab and item browsing
func (e *Engine) SetSearchTerm(s domain.SessionState, text string) domain.SessionState {
	next := s.Clone()
	next.SearchTerm = text
	next.SelectedTab = ""
	next.SelectedItem = ""
	return next
}

// SelectTab switches to a tab, clearing the selected item and the search
func (e *Engine) SelectTab(s domain.SessionState, tab string) (domain.SessionState, error) {
	if !domain.ValidTab(tab) {
		return s, fmt.Errorf(ErrFmtUnknownTab, domain.ErrInvalidTab, tab)
	}
	next := s.Clone()
	next.SelectedTab = tab
	next.SelectedItem = ""
	next.SearchTerm = ""
	return next, nil
}

// SelectItem focuses one item's detail view and clears the search
func (e *Engine) SelectItem(s domain.SessionState, name string) (domain.SessionState, error) {
	if _, err := e.catalog.Item(name); err != nil {
		return s, err
	}
	next := s.Clone()
	next.SelectedItem = name
	next.SearchTerm = ""
	return next, nil
}

// BuyItem adds the item to the purchased set
func (e *Engine) BuyItem(s domain.SessionState, name string) (domain.SessionState, error) {
	if _, err := e.catalog.Item(name); err != nil {
		return s, err
	}
	next := s.Clone()
	if !next.OwnsItem(name) {
		next.PurchasedItems = append(next.PurchasedItems, name)
	}
	return next, nil
}

// SellItem removes the item and every purchased upgrade that belongs to it
func (e *Engine) SellItem(s domain.SessionState, name string) (domain.SessionState, error) {
	item, err := e.catalog.Item(name)
	if err != nil {
		return s, err
	}

	owned := make(map[string]bool, len(item.Upgrades))
	for _, u := range item.Upgrades {
		owned[u.Name] = true
	}

	next := s.Clone()
	next.PurchasedItems = removeAll(next.PurchasedItems, name)
	next.PurchasedUpgrades = slices.DeleteFunc(next.PurchasedUpgrades, func(u string) bool {
		return owned[u]
	})
	return next, nil
}

// BuyUpgrade adds the upgrade to the purchased set. The parent item does not
// have to be owned.
func (e *Engine) BuyUpgrade(s domain.SessionState, name string) (domain.SessionState, error) {
	if _, err := e.catalog.Upgrade(name); err != nil {
		return s, err
	}
	next := s.Clone()
	if !next.OwnsUpgrade(name) {
		next.PurchasedUpgrades = append(next.PurchasedUpgrades, name)
	}
	return next, nil
}

// SellUpgrade removes the upgrade from the purchased set
func (e *Engine) SellUpgrade(s domain.SessionState, name string) (domain.SessionState, error) {
	if _, err := e.catalog.Upgrade(name); err != nil {
		return s, err
	}
	next := s.Clone()
	next.PurchasedUpgrades = removeAll(next.PurchasedUpgrades, name)
	return next, nil
}

// HighlightItem appends the item to the loadout. Duplicates are kept.
func (e *Engine) HighlightItem(s domain.SessionState, name string) (domain.SessionState, error) {
	if _, err := e.catalog.Item(name); err != nil {
		return s, err
	}
	next := s.Clone()
	next.HighlightedItems = append(next.HighlightedItems, name)
	return next, nil
}

// UnhighlightItem removes every loadout entry for the item
func (e *Engine) UnhighlightItem(s domain.SessionState, name string) (domain.SessionState, error) {
	if _, err := e.catalog.Item(name); err != nil {
		return s, err
	}
	next := s.Clone()
	next.HighlightedItems = removeAll(next.HighlightedItems, name)
	return next, nil
}

// SetSkullBudget declares the skulls available. Non-positive values are ignored.
func (e *Engine) SetSkullBudget(s domain.SessionState, n int) domain.SessionState {
	next := s.Clone()
	if n > 0 {
		next.SkullBudget = n
	}
	return next
}

// Reset returns the default state
func (e *Engine) Reset() domain.SessionState {
	return domain.DefaultSessionState()
}

func removeAll(list []string, name string) []string {
	return slices.DeleteFunc(list, func(v string) bool { return v == name })
}
