package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemJSON_PayloadByType(t *testing.T) {
	raw := `[
		{"name":"Arrow Wall","type":"Trap","unlockCost":0,"buildCost":400,"placement":"Wall","character":null,
		 "shortDescription":"Fires arrows.","upgrades":[{"type":"Tier","description":"More arrows","unlockCost":5}]},
		{"name":"Crossbow","type":"Weapon","unlockCost":0,"primary":"Shoots bolts","secondary":"Knockback","upgrades":[]},
		{"name":"Ring of Ice","type":"Trinket","unlockCost":10,"passive":"Chills","active":"Freezes","upgrades":[]}
	]`

	var items []Item
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 3)

	assert.Equal(t, CategoryTrap, items[0].Category())
	assert.Equal(t, TrapDetails{Placement: "Wall"}, items[0].Details)
	assert.Equal(t, 400, items[0].BuildCost)
	assert.Equal(t, UpgradeTier, items[0].Upgrades[0].Kind)

	assert.Equal(t, WeaponDetails{Primary: "Shoots bolts", Secondary: "Knockback"}, items[1].Details)
	assert.Equal(t, []string{"Shoots bolts", "Knockback"}, items[1].Texts())

	assert.Equal(t, TrinketDetails{Passive: "Chills", Active: "Freezes"}, items[2].Details)
	assert.False(t, items[2].Free())
}

func TestItemJSON_UnknownType(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"name":"Mystery","type":"Hat","unlockCost":0,"upgrades":[]}`), &item)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
}

func TestItemJSON_MarshalFlattens(t *testing.T) {
	item := Item{
		Name:       "Brimstone",
		UnlockCost: 6,
		Details:    TrapDetails{Placement: PlacementFloor, Character: CharacterSorceress},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Trap", got["type"])
	assert.Equal(t, "Floor", got["placement"])
	assert.Equal(t, "Sorceress", got["character"])
	assert.Equal(t, []interface{}{}, got["upgrades"])
	assert.NotContains(t, got, "primary")
}

func TestItemJSON_MarshalWithoutPayload(t *testing.T) {
	_, err := json.Marshal(Item{Name: "Broken"})
	assert.Error(t, err)
}

func TestUpgradeKindInitial(t *testing.T) {
	assert.Equal(t, "T", UpgradeTier.Initial())
	assert.Equal(t, "U", UpgradeUnique.Initial())
	assert.Equal(t, "S", UpgradeSpecial.Initial())
	assert.Equal(t, "", UpgradeUnclassified.Initial())
}

func TestItemRestriction(t *testing.T) {
	assert.Equal(t, CharacterWarMage, Item{Details: TrapDetails{Character: CharacterWarMage}}.Restriction())
	assert.Empty(t, Item{Details: WeaponDetails{}}.Restriction())
}
