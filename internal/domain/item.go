package domain

import (
	"encoding/json"
	"fmt"
)

// Category is the item family: trap, weapon or trinket
type Category string

// Categories returns every category in catalog order
func Categories() []Category {
	return []Category{CategoryTrap, CategoryWeapon, CategoryTrinket}
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryTrap, CategoryWeapon, CategoryTrinket:
		return true
	}
	return false
}

// UpgradeKind classifies an upgrade
type UpgradeKind string

// Initial is the short label prefix ("T", "U", "S"); empty for unclassified upgrades
func (k UpgradeKind) Initial() string {
	if k == UpgradeUnclassified {
		return ""
	}
	return string(k)[:1]
}

// Upgrade is a purchasable modifier owned by exactly one item.
// Name is derived by the catalog loader and is not part of the catalog file.
type Upgrade struct {
	Name        string      `json:"name,omitempty"`
	Kind        UpgradeKind `json:"type"`
	Description string      `json:"description"`
	UnlockCost  int         `json:"unlockCost"`
}

// Details is the category-specific payload of an item
type Details interface {
	Category() Category
	// Texts returns the searchable text fields of the payload
	Texts() []string
}

// TrapDetails holds trap-only fields
type TrapDetails struct {
	Placement string
	Character string // restricted starting character, empty when unrestricted
}

func (TrapDetails) Category() Category { return CategoryTrap }
func (d TrapDetails) Texts() []string  { return nil }

// WeaponDetails holds weapon-only fields
type WeaponDetails struct {
	Primary   string
	Secondary string
}

func (WeaponDetails) Category() Category { return CategoryWeapon }
func (d WeaponDetails) Texts() []string  { return []string{d.Primary, d.Secondary} }

// TrinketDetails holds trinket-only fields
type TrinketDetails struct {
	Passive string
	Active  string
}

func (TrinketDetails) Category() Category { return CategoryTrinket }
func (d TrinketDetails) Texts() []string  { return []string{d.Passive, d.Active} }

// Item is a purchasable catalog entry. Name is the primary key.
type Item struct {
	Name             string
	UnlockCost       int
	BuildCost        int
	ShortDescription string
	Upgrades         []Upgrade
	Details          Details
}

// Category returns the category carried by the item's payload
func (i Item) Category() Category {
	if i.Details == nil {
		return ""
	}
	return i.Details.Category()
}

// Free reports whether the item is owned without purchase
func (i Item) Free() bool {
	return i.UnlockCost == 0
}

// Texts returns every non-empty descriptive text field of the item itself
func (i Item) Texts() []string {
	out := make([]string, 0, 3)
	if i.ShortDescription != "" {
		out = append(out, i.ShortDescription)
	}
	if i.Details != nil {
		for _, t := range i.Details.Texts() {
			if t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// Restriction returns the character the item is limited to, if any
func (i Item) Restriction() string {
	if d, ok := i.Details.(TrapDetails); ok {
		return d.Character
	}
	return ""
}

// itemRecord is the flat catalog file representation
type itemRecord struct {
	Name             string    `json:"name"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Type             Category  `json:"type"`
	UnlockCost       int       `json:"unlockCost"`
	BuildCost        int       `json:"buildCost,omitempty"`
	Upgrades         []Upgrade `json:"upgrades"`
	Placement        string    `json:"placement,omitempty"`
	Character        string    `json:"character,omitempty"`
	Primary          string    `json:"primary,omitempty"`
	Secondary        string    `json:"secondary,omitempty"`
	Passive          string    `json:"passive,omitempty"`
	Active           string    `json:"active,omitempty"`
}

// MarshalJSON flattens the item into the catalog record shape
func (i Item) MarshalJSON() ([]byte, error) {
	rec := itemRecord{
		Name:             i.Name,
		ShortDescription: i.ShortDescription,
		Type:             i.Category(),
		UnlockCost:       i.UnlockCost,
		BuildCost:        i.BuildCost,
		Upgrades:         i.Upgrades,
	}
	if rec.Upgrades == nil {
		rec.Upgrades = []Upgrade{}
	}

	switch d := i.Details.(type) {
	case TrapDetails:
		rec.Placement = d.Placement
		rec.Character = d.Character
	case WeaponDetails:
		rec.Primary = d.Primary
		rec.Secondary = d.Secondary
	case TrinketDetails:
		rec.Passive = d.Passive
		rec.Active = d.Active
	default:
		return nil, fmt.Errorf("%w: item %q has no category payload", ErrInvalidCatalog, i.Name)
	}

	return json.Marshal(rec)
}

// UnmarshalJSON reads a catalog record and picks the payload from its type
func (i *Item) UnmarshalJSON(data []byte) error {
	var rec itemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	item := Item{
		Name:             rec.Name,
		UnlockCost:       rec.UnlockCost,
		BuildCost:        rec.BuildCost,
		ShortDescription: rec.ShortDescription,
		Upgrades:         rec.Upgrades,
	}

	switch rec.Type {
	case CategoryTrap:
		item.Details = TrapDetails{Placement: rec.Placement, Character: rec.Character}
	case CategoryWeapon:
		item.Details = WeaponDetails{Primary: rec.Primary, Secondary: rec.Secondary}
	case CategoryTrinket:
		item.Details = TrinketDetails{Passive: rec.Passive, Active: rec.Active}
	default:
		return fmt.Errorf("%w: item %q has unknown type %q", ErrInvalidCatalog, rec.Name, rec.Type)
	}

	*i = item
	return nil
}
