package domain

// Item categories as they appear in the catalog "type" field
const (
	CategoryTrap    Category = "Trap"
	CategoryWeapon  Category = "Weapon"
	CategoryTrinket Category = "Trinket"
)

// Upgrade kinds. Unclassified is stored as the empty string.
const (
	UpgradeTier         UpgradeKind = "Tier"
	UpgradeUnique       UpgradeKind = "Unique"
	UpgradeSpecial      UpgradeKind = "Special"
	UpgradeUnclassified UpgradeKind = ""
)

// Trap placements
const (
	PlacementFloor    = "Floor"
	PlacementWall     = "Wall"
	PlacementCeiling  = "Ceiling"
	PlacementGuardian = "Guardian"
)

// Starting characters an item can be restricted to
const (
	CharacterSorceress = "Sorceress"
	CharacterWarMage   = "War Mage"
)

// Tabs. Category tabs use the category value as their id.
const (
	TabMyItems = "myitems"
	TabTrap    = string(CategoryTrap)
	TabWeapon  = string(CategoryWeapon)
	TabTrinket = string(CategoryTrinket)
)

// LoadoutSlots is the number of visible loadout slots
const LoadoutSlots = 10
