package catalog

import (
	"fmt"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// Catalog is the read-only item reference data. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	items    []domain.Item
	byName   map[string]int
	upgrades map[string]upgradeRef
}

type upgradeRef struct {
	item  int
	index int
}

// UpgradeName derives the identifier of the upgrade at index on item
func UpgradeName(itemName string, kind domain.UpgradeKind, index int) string {
	return fmt.Sprintf("%s_%s_%d", itemName, kind, index)
}

// New builds a catalog from items, assigning derived upgrade names.
// The slice is copied so later changes by the caller have no effect.
func New(items []domain.Item) (*Catalog, error) {
	c := &Catalog{
		items:    make([]domain.Item, len(items)),
		byName:   make(map[string]int, len(items)),
		upgrades: make(map[string]upgradeRef),
	}

	for i, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf(ErrFmtEmptyItemName, domain.ErrInvalidCatalog, i)
		}
		if _, dup := c.byName[item.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateItem, domain.ErrInvalidCatalog, item.Name)
		}
		if item.UnlockCost < 0 {
			return nil, fmt.Errorf(ErrFmtNegativeItemCost, domain.ErrInvalidCatalog, item.Name)
		}
		if !item.Category().Valid() {
			return nil, fmt.Errorf("%w: item %q has no category", domain.ErrInvalidCatalog, item.Name)
		}

		upgrades := make([]domain.Upgrade, len(item.Upgrades))
		for j, u := range item.Upgrades {
			if u.UnlockCost < 0 {
				return nil, fmt.Errorf(ErrFmtNegativeUpgradeCost, domain.ErrInvalidCatalog, j, item.Name)
			}
			u.Name = UpgradeName(item.Name, u.Kind, j)
			if _, dup := c.upgrades[u.Name]; dup {
				return nil, fmt.Errorf(ErrFmtDuplicateUpgrade, domain.ErrInvalidCatalog, u.Name)
			}
			c.upgrades[u.Name] = upgradeRef{item: i, index: j}
			upgrades[j] = u
		}
		item.Upgrades = upgrades

		c.items[i] = item
		c.byName[item.Name] = i
	}

	return c, nil
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns every item in catalog order
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsByCategory returns the items of one category in catalog order
func (c *Catalog) ItemsByCategory(category domain.Category) []domain.Item {
	var out []domain.Item
	for _, item := range c.items {
		if item.Category() == category {
			out = append(out, item)
		}
	}
	return out
}

// StarterItems returns the items owned without purchase
func (c *Catalog) StarterItems() []domain.Item {
	var out []domain.Item
	for _, item := range c.items {
		if item.Free() {
			out = append(out, item)
		}
	}
	return out
}

// HasItem reports whether name is a catalog item
func (c *Catalog) HasItem(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// HasUpgrade reports whether name is a catalog upgrade
func (c *Catalog) HasUpgrade(name string) bool {
	_, ok := c.upgrades[name]
	return ok
}

// Item looks up an item by name
func (c *Catalog) Item(name string) (domain.Item, error) {
	idx, ok := c.byName[name]
	if !ok {
		return domain.Item{}, c.notFound(domain.ErrItemNotFound, name, c.itemNames())
	}
	return c.items[idx], nil
}

// Upgrade looks up an upgrade by its derived name
func (c *Catalog) Upgrade(name string) (domain.Upgrade, error) {
	ref, ok := c.upgrades[name]
	if !ok {
		return domain.Upgrade{}, c.notFound(domain.ErrUpgradeNotFound, name, c.upgradeNames())
	}
	return c.items[ref.item].Upgrades[ref.index], nil
}

// UpgradeOwner returns the item an upgrade belongs to
func (c *Catalog) UpgradeOwner(upgradeName string) (domain.Item, error) {
	ref, ok := c.upgrades[upgradeName]
	if !ok {
		return domain.Item{}, c.notFound(domain.ErrUpgradeNotFound, upgradeName, c.upgradeNames())
	}
	return c.items[ref.item], nil
}

// MustItem is Item for names that are known to be valid. Unknown names are a
// data-integrity bug and panic.
func (c *Catalog) MustItem(name string) domain.Item {
	item, err := c.Item(name)
	if err != nil {
		panic(err)
	}
	return item
}

// MustUpgrade is Upgrade for names that are known to be valid.
func (c *Catalog) MustUpgrade(name string) domain.Upgrade {
	u, err := c.Upgrade(name)
	if err != nil {
		panic(err)
	}
	return u
}

func (c *Catalog) itemNames() []string {
	names := make([]string, len(c.items))
	for i, item := range c.items {
		names[i] = item.Name
	}
	return names
}

func (c *Catalog) upgradeNames() []string {
	names := make([]string, 0, len(c.upgrades))
	for _, item := range c.items {
		for _, u := range item.Upgrades {
			names = append(names, u.Name)
		}
	}
	return names
}

func (c *Catalog) notFound(sentinel error, name string, candidates []string) error {
	if s, ok := Suggest(name, candidates); ok {
		return fmt.Errorf(ErrFmtSuggestion, sentinel, name, s)
	}
	return fmt.Errorf(ErrFmtNoSuggestion, sentinel, name)
}
