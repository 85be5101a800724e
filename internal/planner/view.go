package planner

import (
	"fmt"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// View is everything the shop screen needs for one state
type View struct {
	Pane    Pane         `json:"pane"`
	Tab     string       `json:"tab,omitempty"`
	Search  string       `json:"search,omitempty"`
	Items   []ItemTile   `json:"items,omitempty"`
	Detail  *ItemDetail  `json:"detail,omitempty"`
	Note    string       `json:"note,omitempty"`
	Skulls  SkullSummary `json:"skulls"`
	Loadout []string     `json:"loadout"`
}

// ItemTile is the compact listing entry for an item
type ItemTile struct {
	Name                string          `json:"name"`
	Category            domain.Category `json:"category"`
	UnlockCost          int             `json:"unlockCost"`
	ShortDescription    string          `json:"shortDescription,omitempty"`
	Texts               []string        `json:"texts,omitempty"`
	PurchasedWithSkulls bool            `json:"purchasedWithSkulls"`
	Free                bool            `json:"free"`
	Upgrades            []UpgradeTile   `json:"upgrades"`
}

// UpgradeTile shows one upgrade of an item
type UpgradeTile struct {
	Name        string             `json:"name"`
	Kind        domain.UpgradeKind `json:"kind"`
	Label       UpgradeLabel       `json:"label"`
	Description string             `json:"description"`
	UnlockCost  int                `json:"unlockCost"`
	Purchased   bool               `json:"purchased"`
	// Available is false until the parent item is owned
	Available bool `json:"available"`
}

// ItemDetail is the focused view of a single item
type ItemDetail struct {
	Item            domain.Item   `json:"item"`
	Owned           bool          `json:"owned"`
	Highlighted     bool          `json:"highlighted"`
	CanHighlight    bool          `json:"canHighlight"`
	PurchaseAction  string        `json:"purchaseAction"`
	HighlightAction string        `json:"highlightAction"`
	RestrictionNote string        `json:"restrictionNote,omitempty"`
	Upgrades        []UpgradeTile `json:"upgrades"`
}

// View composes the shop pane. Precedence: search, selected item, my items,
// category tab, nothing.
func (e *Engine) View(s domain.SessionState) (View, error) {
	v := View{
		Tab:     s.SelectedTab,
		Search:  s.SearchTerm,
		Skulls:  e.Skulls(s),
		Loadout: e.Loadout(s),
	}

	switch {
	case s.SearchTerm != "":
		v.Pane = PaneSearch
		v.Items = e.tiles(s, e.SearchResults(s.SearchTerm))
		if len(v.Items) == 0 {
			v.Note = NoResultsNote
		}
	case s.SelectedItem != "":
		detail, err := e.ItemDetail(s, s.SelectedItem)
		if err != nil {
			return View{}, err
		}
		v.Pane = PaneItem
		v.Detail = &detail
	case s.SelectedTab == domain.TabMyItems:
		v.Pane = PaneMyItems
		v.Items = e.tiles(s, e.MyItems(s))
	case s.SelectedTab != "":
		category := domain.Category(s.SelectedTab)
		if !category.Valid() {
			return View{}, fmt.Errorf(ErrFmtUnknownTab, domain.ErrInvalidTab, s.SelectedTab)
		}
		v.Pane = PaneCategory
		v.Items = e.tiles(s, e.ItemsByCategory(s, category))
	default:
		v.Pane = PaneNone
	}

	return v, nil
}

// ItemDetail describes one item against the state
func (e *Engine) ItemDetail(s domain.SessionState, name string) (ItemDetail, error) {
	item, err := e.catalog.Item(name)
	if err != nil {
		return ItemDetail{}, err
	}

	owned := e.Owned(s, item)
	highlighted := s.IsHighlighted(name)

	d := ItemDetail{
		Item:            item,
		Owned:           owned,
		Highlighted:     highlighted,
		CanHighlight:    owned,
		PurchaseAction:  ActionBuy,
		HighlightAction: ActionAdd,
		Upgrades:        e.upgradeTiles(s, item, owned),
	}
	if owned {
		d.PurchaseAction = ActionSell
	}
	if highlighted {
		d.HighlightAction = ActionRemove
	}
	if item.Restriction() != "" {
		d.RestrictionNote = RestrictedNote
	}
	return d, nil
}

func (e *Engine) tiles(s domain.SessionState, items []domain.Item) []ItemTile {
	out := make([]ItemTile, 0, len(items))
	for _, item := range items {
		var texts []string
		if item.Details != nil {
			for _, t := range item.Details.Texts() {
				if t != "" {
					texts = append(texts, t)
				}
			}
		}
		out = append(out, ItemTile{
			Name:                item.Name,
			Category:            item.Category(),
			UnlockCost:          item.UnlockCost,
			ShortDescription:    item.ShortDescription,
			Texts:               texts,
			PurchasedWithSkulls: s.OwnsItem(item.Name),
			Free:                item.Free(),
			Upgrades:            e.upgradeTiles(s, item, e.Owned(s, item)),
		})
	}
	return out
}

func (e *Engine) upgradeTiles(s domain.SessionState, item domain.Item, available bool) []UpgradeTile {
	out := make([]UpgradeTile, 0, len(item.Upgrades))
	for _, u := range item.Upgrades {
		out = append(out, UpgradeTile{
			Name:        u.Name,
			Kind:        u.Kind,
			Label:       LabelFor(u, item),
			Description: u.Description,
			UnlockCost:  u.UnlockCost,
			Purchased:   s.OwnsUpgrade(u.Name),
			Available:   available,
		})
	}
	return out
}
