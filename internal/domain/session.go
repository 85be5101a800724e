package domain

import "slices"

// SessionState is one user's planner state.
// Empty strings mean "none" for SelectedTab, SelectedItem and SearchTerm.
type SessionState struct {
	SkullBudget       int      `json:"skullCount"`
	PurchasedItems    []string `json:"purchasedItems"`
	PurchasedUpgrades []string `json:"purchasedUpgrades"`
	HighlightedItems  []string `json:"highlightedItems"`
	SelectedTab       string   `json:"selectedTab"`
	SelectedItem      string   `json:"selectedItem"`
	SearchTerm        string   `json:"searchTerm"`
}

// DefaultSessionState is the state of a brand new session
func DefaultSessionState() SessionState {
	return SessionState{
		PurchasedItems:    []string{},
		PurchasedUpgrades: []string{},
		HighlightedItems:  []string{},
		SelectedTab:       TabMyItems,
	}
}

// Clone returns a deep copy so transitions never share backing arrays
func (s SessionState) Clone() SessionState {
	out := s
	out.PurchasedItems = cloneList(s.PurchasedItems)
	out.PurchasedUpgrades = cloneList(s.PurchasedUpgrades)
	out.HighlightedItems = cloneList(s.HighlightedItems)
	return out
}

// OwnsItem reports whether name was bought with skulls
func (s SessionState) OwnsItem(name string) bool {
	return slices.Contains(s.PurchasedItems, name)
}

// OwnsUpgrade reports whether the upgrade was bought
func (s SessionState) OwnsUpgrade(name string) bool {
	return slices.Contains(s.PurchasedUpgrades, name)
}

// IsHighlighted reports whether the item is in the loadout
func (s SessionState) IsHighlighted(name string) bool {
	return slices.Contains(s.HighlightedItems, name)
}

// ValidTab reports whether tab is a known tab id
func ValidTab(tab string) bool {
	switch tab {
	case TabMyItems, TabTrap, TabWeapon, TabTrinket:
		return true
	}
	return false
}

func cloneList(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
