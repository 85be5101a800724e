package planner

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// SkullSummary is the budget read-out
type SkullSummary struct {
	Budget     int  `json:"budget"`
	Used       int  `json:"used"`
	Remaining  int  `json:"remaining"`
	OverBudget bool `json:"overBudget"`
}

// UpgradeLabel is the short ("T2") and long ("Tier 2") label of an upgrade
type UpgradeLabel struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// UsedSkulls sums the cost of every purchased item and upgrade
func (e *Engine) UsedSkulls(s domain.SessionState) int {
	total := 0
	for _, name := range s.PurchasedItems {
		total += e.catalog.MustItem(name).UnlockCost
	}
	for _, name := range s.PurchasedUpgrades {
		total += e.catalog.MustUpgrade(name).UnlockCost
	}
	return total
}

// Skulls summarizes budget against spending
func (e *Engine) Skulls(s domain.SessionState) SkullSummary {
	used := e.UsedSkulls(s)
	return SkullSummary{
		Budget:     s.SkullBudget,
		Used:       used,
		Remaining:  s.SkullBudget - used,
		OverBudget: used > s.SkullBudget,
	}
}

// Owned reports whether an item is usable: bought or free
func (e *Engine) Owned(s domain.SessionState, item domain.Item) bool {
	return item.Free() || s.OwnsItem(item.Name)
}

// MyItems lists purchased items followed by the free ones, without repeats
func (e *Engine) MyItems(s domain.SessionState) []domain.Item {
	seen := make(map[string]bool)
	out := make([]domain.Item, 0, len(s.PurchasedItems))

	for _, name := range s.PurchasedItems {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, e.catalog.MustItem(name))
	}
	for _, item := range e.catalog.StarterItems() {
		if seen[item.Name] {
			continue
		}
		seen[item.Name] = true
		out = append(out, item)
	}
	return out
}

// ItemsByCategory lists a category with owned and free items first
func (e *Engine) ItemsByCategory(s domain.SessionState, category domain.Category) []domain.Item {
	items := e.catalog.ItemsByCategory(category)
	slices.SortStableFunc(items, func(a, b domain.Item) int {
		aOwned, bOwned := e.Owned(s, a), e.Owned(s, b)
		switch {
		case aOwned && !bOwned:
			return -1
		case !aOwned && bOwned:
			return 1
		case e.sortMode == SortAlphabetical:
			return cmp.Compare(a.Name, b.Name)
		default:
			return 0
		}
	})
	return items
}

// SearchResults returns items whose descriptive text or upgrade descriptions
// contain term, ignoring case. Names are not searched. A blank term matches
// nothing.
func (e *Engine) SearchResults(term string) []domain.Item {
	if strings.TrimSpace(term) == "" {
		return nil
	}

	fold := cases.Fold()
	needle := fold.String(term)
	matches := func(text string) bool {
		return strings.Contains(fold.String(text), needle)
	}

	var out []domain.Item
	for _, item := range e.catalog.Items() {
		if slices.ContainsFunc(item.Texts(), matches) {
			out = append(out, item)
			continue
		}
		if slices.ContainsFunc(item.Upgrades, func(u domain.Upgrade) bool { return matches(u.Description) }) {
			out = append(out, item)
		}
	}
	return out
}

// LabelFor numbers an upgrade among the upgrades of the same kind on its item
func LabelFor(u domain.Upgrade, item domain.Item) UpgradeLabel {
	position := 0
	for _, other := range item.Upgrades {
		if other.Kind != u.Kind {
			continue
		}
		position++
		if other.Name == u.Name {
			break
		}
	}

	n := strconv.Itoa(position)
	long := n
	if u.Kind != domain.UpgradeUnclassified {
		long = string(u.Kind) + " " + n
	}
	return UpgradeLabel{Short: u.Kind.Initial() + n, Long: long}
}

// Loadout returns the visible loadout slots; empty slots are "".
// Entries past the last slot are kept in state but not shown.
func (e *Engine) Loadout(s domain.SessionState) []string {
	slots := make([]string, domain.LoadoutSlots)
	copy(slots, s.HighlightedItems)
	return slots
}
