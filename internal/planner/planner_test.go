package planner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/OMD2Planner_Go/internal/catalog"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

const (
	barricade = "Barricade"
	arrowWall = "Arrow Wall"
	iceVent   = "Ice Vent"
	crossbow  = "Crossbow"
	sceptre   = "Sceptre of Domination"
	ring      = "Ring of Lightning"

	sceptreTier1   = "Sceptre of Domination_Tier_0"
	sceptreTier2   = "Sceptre of Domination_Tier_1"
	barricadeTier1 = "Barricade_Tier_0"
	ventSpecial    = "Ice Vent_Special_0"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	c, err := catalog.NewLoader().Load(context.Background(), filepath.Join("..", "catalog", "testdata", "items.json"))
	require.NoError(t, err)
	return NewEngine(c, opts...)
}

func names(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func mustApply(t *testing.T, e *Engine, s domain.SessionState, actions ...Action) domain.SessionState {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = e.Apply(s, a)
		require.NoError(t, err, "action %s %q", a.Kind, a.Name)
	}
	return s
}

// =============================================================================
// Transitions
// =============================================================================

func TestNavigation_MutualExclusion(t *testing.T) {
	e := newTestEngine(t)
	s := domain.DefaultSessionState()

	// CASE 1: search clears tab and item
	s, err := e.SelectItem(s, crossbow)
	require.NoError(t, err)
	s = e.SetSearchTerm(s, "bolt")
	assert.Equal(t, "bolt", s.SearchTerm)
	assert.Empty(t, s.SelectedTab)
	assert.Empty(t, s.SelectedItem)

	// CASE 2: tab clears item and search
	s, err = e.SelectTab(s, domain.TabWeapon)
	require.NoError(t, err)
	assert.Equal(t, domain.TabWeapon, s.SelectedTab)
	assert.Empty(t, s.SearchTerm)

	// CASE 3: item clears search but keeps the tab
	s = e.SetSearchTerm(s, "orb")
	s.SelectedTab = domain.TabTrap
	s, err = e.SelectItem(s, sceptre)
	require.NoError(t, err)
	assert.Equal(t, sceptre, s.SelectedItem)
	assert.Empty(t, s.SearchTerm)
	assert.Equal(t, domain.TabTrap, s.SelectedTab)
}

func TestSelectTab_Invalid(t *testing.T) {
	e := newTestEngine(t)
	s := domain.DefaultSessionState()

	next, err := e.SelectTab(s, "hats")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTab))
	assert.Equal(t, s, next)
}

func TestBuySell_UsedSkullsRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	s := domain.DefaultSessionState()

	// ARRANGE: the documented example
	s = mustApply(t, e, s,
		Action{Kind: ActionBuyItem, Name: sceptre},
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier1},
	)

	// ASSERT
	assert.Equal(t, 550, e.UsedSkulls(s))

	// ACT: selling cascades the upgrade
	s = mustApply(t, e, s, Action{Kind: ActionSellItem, Name: sceptre})
	assert.Zero(t, e.UsedSkulls(s))
	assert.Empty(t, s.PurchasedUpgrades)
	assert.Empty(t, s.PurchasedItems)
}

func TestSellItem_CascadesOnlyOwnUpgrades(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionBuyItem, Name: sceptre},
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier1},
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier2},
		Action{Kind: ActionBuyUpgrade, Name: barricadeTier1},
		Action{Kind: ActionBuyItem, Name: iceVent},
		Action{Kind: ActionBuyUpgrade, Name: ventSpecial},
	)

	s = mustApply(t, e, s, Action{Kind: ActionSellItem, Name: sceptre})

	assert.Equal(t, []string{iceVent}, s.PurchasedItems)
	assert.Equal(t, []string{barricadeTier1, ventSpecial}, s.PurchasedUpgrades)
}

func TestBuyItem_SetSemantics(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionBuyItem, Name: ring},
		Action{Kind: ActionBuyItem, Name: ring},
		Action{Kind: ActionBuyUpgrade, Name: "Ring of Lightning__0"},
		Action{Kind: ActionBuyUpgrade, Name: "Ring of Lightning__0"},
	)

	assert.Equal(t, []string{ring}, s.PurchasedItems)
	assert.Equal(t, []string{"Ring of Lightning__0"}, s.PurchasedUpgrades)
	assert.Equal(t, 20, e.UsedSkulls(s))
}

func TestBuyUpgrade_WithoutParent(t *testing.T) {
	e := newTestEngine(t)

	s, err := e.BuyUpgrade(domain.DefaultSessionState(), sceptreTier2)
	require.NoError(t, err)
	assert.Equal(t, []string{sceptreTier2}, s.PurchasedUpgrades)
	assert.Equal(t, 100, e.UsedSkulls(s))
}

func TestSellUpgrade(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier1},
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier2},
		Action{Kind: ActionSellUpgrade, Name: sceptreTier1},
	)
	assert.Equal(t, []string{sceptreTier2}, s.PurchasedUpgrades)
}

func TestHighlight_DuplicatesAndRemoval(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionHighlightItem, Name: barricade},
		Action{Kind: ActionHighlightItem, Name: crossbow},
		Action{Kind: ActionHighlightItem, Name: barricade},
	)
	assert.Equal(t, []string{barricade, crossbow, barricade}, s.HighlightedItems)

	s = mustApply(t, e, s, Action{Kind: ActionUnhighlightItem, Name: barricade})
	assert.Equal(t, []string{crossbow}, s.HighlightedItems)
}

func TestSetSkullBudget_IgnoresNonPositive(t *testing.T) {
	e := newTestEngine(t)
	s := e.SetSkullBudget(domain.DefaultSessionState(), 300)
	assert.Equal(t, 300, s.SkullBudget)

	assert.Equal(t, 300, e.SetSkullBudget(s, 0).SkullBudget)
	assert.Equal(t, 300, e.SetSkullBudget(s, -5).SkullBudget)
}

func TestTransitions_UnknownNames(t *testing.T) {
	e := newTestEngine(t)
	s := domain.DefaultSessionState()

	tests := []struct {
		action   Action
		sentinel error
	}{
		{Action{Kind: ActionBuyItem, Name: "Nope"}, domain.ErrItemNotFound},
		{Action{Kind: ActionSellItem, Name: "Nope"}, domain.ErrItemNotFound},
		{Action{Kind: ActionSelectItem, Name: "Nope"}, domain.ErrItemNotFound},
		{Action{Kind: ActionHighlightItem, Name: "Nope"}, domain.ErrItemNotFound},
		{Action{Kind: ActionUnhighlightItem, Name: "Nope"}, domain.ErrItemNotFound},
		{Action{Kind: ActionBuyUpgrade, Name: "Nope"}, domain.ErrUpgradeNotFound},
		{Action{Kind: ActionSellUpgrade, Name: "Nope"}, domain.ErrUpgradeNotFound},
		{Action{Kind: "dance"}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(string(tt.action.Kind), func(t *testing.T) {
			next, err := e.Apply(s, tt.action)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Equal(t, s, next)
		})
	}
}

func TestTransitions_DoNotMutateInput(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionBuyItem, Name: sceptre},
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier1},
		Action{Kind: ActionHighlightItem, Name: crossbow},
	)
	snapshot := s.Clone()

	_ = mustApply(t, e, s,
		Action{Kind: ActionSellItem, Name: sceptre},
		Action{Kind: ActionUnhighlightItem, Name: crossbow},
	)
	_ = mustApply(t, e, s, Action{Kind: ActionBuyItem, Name: ring})

	assert.Equal(t, snapshot, s)
}

func TestApply_Reset(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionBuyItem, Name: sceptre},
		Action{Kind: ActionSetSkullBudget, Amount: 1000},
		Action{Kind: ActionReset},
	)
	assert.Equal(t, domain.DefaultSessionState(), s)
}

// =============================================================================
// Views
// =============================================================================

func TestSkulls(t *testing.T) {
	e := newTestEngine(t)
	s := mustApply(t, e, domain.DefaultSessionState(),
		Action{Kind: ActionSetSkullBudget, Amount: 520},
		Action{Kind: ActionBuyItem, Name: sceptre},
		Action{Kind: ActionBuyUpgrade, Name: sceptreTier1},
	)

	assert.Equal(t, SkullSummary{Budget: 520, Used: 550, Remaining: -30, OverBudget: true}, e.Skulls(s))
}

func TestMyItems(t *testing.T) {
	e := newTestEngine(t)

	// CASE 1: free items always present
	assert.Equal(t, []string{barricade, arrowWall, crossbow}, names(e.MyItems(domain.DefaultSessionState())))

	// CASE 2: purchased first, free items not repeated
	s := domain.DefaultSessionState()
	s.PurchasedItems = []string{ring, crossbow}
	assert.Equal(t, []string{ring, crossbow, barricade, arrowWall}, names(e.MyItems(s)))
}

func TestItemsByCategory_OwnedFirst(t *testing.T) {
	s := domain.DefaultSessionState()

	// CASE 1: compat keeps catalog order within each group
	e := newTestEngine(t)
	assert.Equal(t, []string{barricade, arrowWall, iceVent}, names(e.ItemsByCategory(s, domain.CategoryTrap)))
	assert.Equal(t, []string{crossbow, sceptre}, names(e.ItemsByCategory(s, domain.CategoryWeapon)))

	// CASE 2: alphabetical orders within groups
	alpha := newTestEngine(t, WithSortMode(SortAlphabetical))
	assert.Equal(t, []string{arrowWall, barricade, iceVent}, names(alpha.ItemsByCategory(s, domain.CategoryTrap)))

	// CASE 3: a purchased item joins the owned group
	withVent := s
	withVent.PurchasedItems = []string{iceVent}
	assert.Equal(t, []string{arrowWall, barricade, iceVent}, names(alpha.ItemsByCategory(withVent, domain.CategoryTrap)))
}

func TestItemsByCategory_UnownedAfterOwned(t *testing.T) {
	items := []domain.Item{
		{Name: "Zed", UnlockCost: 5, Details: domain.TrapDetails{}},
		{Name: "Alpha", UnlockCost: 0, Details: domain.TrapDetails{}},
		{Name: "Mid", UnlockCost: 3, Details: domain.TrapDetails{}},
		{Name: "Beta", UnlockCost: 0, Details: domain.TrapDetails{}},
	}
	c, err := catalog.New(items)
	require.NoError(t, err)

	s := domain.DefaultSessionState()
	s.PurchasedItems = []string{"Mid"}

	got := names(NewEngine(c).ItemsByCategory(s, domain.CategoryTrap))
	assert.Equal(t, []string{"Alpha", "Mid", "Beta", "Zed"}, got)
}

func TestSearchResults(t *testing.T) {
	e := newTestEngine(t)

	// CASE 1: upgrade description alone is enough
	assert.Equal(t, []string{iceVent}, names(e.SearchResults("SHATTER")))

	// CASE 2: payload fields are searched
	assert.Equal(t, []string{sceptre}, names(e.SearchResults("homing")))

	// CASE 3: names are not searched
	assert.Empty(t, e.SearchResults("Crossbow"))

	// CASE 4: blank term
	assert.Empty(t, e.SearchResults(""))
	assert.Empty(t, e.SearchResults("   "))

	// CASE 5: several matches keep catalog order
	assert.Equal(t, []string{barricade, arrowWall, iceVent, crossbow}, names(e.SearchResults("enemies")))
}

func TestLabelFor(t *testing.T) {
	e := newTestEngine(t)
	item := e.Catalog().MustItem(barricade)

	assert.Equal(t, UpgradeLabel{Short: "T1", Long: "Tier 1"}, LabelFor(item.Upgrades[0], item))
	assert.Equal(t, UpgradeLabel{Short: "T2", Long: "Tier 2"}, LabelFor(item.Upgrades[1], item))
	assert.Equal(t, UpgradeLabel{Short: "U1", Long: "Unique 1"}, LabelFor(item.Upgrades[2], item))

	r := e.Catalog().MustItem(ring)
	assert.Equal(t, UpgradeLabel{Short: "1", Long: "1"}, LabelFor(r.Upgrades[0], r))
}

func TestLoadout_TenSlots(t *testing.T) {
	e := newTestEngine(t)
	s := domain.DefaultSessionState()
	for i := 0; i < 12; i++ {
		s.HighlightedItems = append(s.HighlightedItems, crossbow)
	}

	slots := e.Loadout(s)
	assert.Len(t, slots, domain.LoadoutSlots)
	assert.Equal(t, crossbow, slots[9])

	empty := e.Loadout(domain.DefaultSessionState())
	assert.Len(t, empty, domain.LoadoutSlots)
	assert.Empty(t, empty[0])
}

func TestView_Precedence(t *testing.T) {
	e := newTestEngine(t)

	// CASE 1: default state shows my items
	v, err := e.View(domain.DefaultSessionState())
	require.NoError(t, err)
	assert.Equal(t, PaneMyItems, v.Pane)
	assert.Len(t, v.Items, 3)
	assert.Len(t, v.Loadout, domain.LoadoutSlots)

	// CASE 2: category tab
	s, err := e.SelectTab(domain.DefaultSessionState(), domain.TabTrinket)
	require.NoError(t, err)
	v, err = e.View(s)
	require.NoError(t, err)
	assert.Equal(t, PaneCategory, v.Pane)
	require.Len(t, v.Items, 1)
	assert.False(t, v.Items[0].Upgrades[0].Available)

	// CASE 3: selected item wins over tab
	s, err = e.SelectItem(s, iceVent)
	require.NoError(t, err)
	v, err = e.View(s)
	require.NoError(t, err)
	assert.Equal(t, PaneItem, v.Pane)
	require.NotNil(t, v.Detail)
	assert.Equal(t, RestrictedNote, v.Detail.RestrictionNote)

	// CASE 4: search wins over everything
	s = e.SetSearchTerm(s, "no such text anywhere")
	v, err = e.View(s)
	require.NoError(t, err)
	assert.Equal(t, PaneSearch, v.Pane)
	assert.Equal(t, NoResultsNote, v.Note)

	// whitespace is a search that matches nothing
	v, err = e.View(e.SetSearchTerm(s, "  "))
	require.NoError(t, err)
	assert.Equal(t, PaneSearch, v.Pane)
	assert.Empty(t, v.Items)
	assert.Equal(t, NoResultsNote, v.Note)

	// CASE 5: nothing selected
	v, err = e.View(domain.SessionState{})
	require.NoError(t, err)
	assert.Equal(t, PaneNone, v.Pane)
}

func TestItemDetail(t *testing.T) {
	e := newTestEngine(t)
	s := domain.DefaultSessionState()

	// CASE 1: unowned item cannot be highlighted and upgrades are unavailable
	d, err := e.ItemDetail(s, sceptre)
	require.NoError(t, err)
	assert.False(t, d.Owned)
	assert.False(t, d.CanHighlight)
	assert.Equal(t, ActionBuy, d.PurchaseAction)
	assert.False(t, d.Upgrades[0].Available)

	// CASE 2: free item counts as owned
	d, err = e.ItemDetail(s, barricade)
	require.NoError(t, err)
	assert.True(t, d.Owned)
	assert.Equal(t, ActionSell, d.PurchaseAction)
	assert.True(t, d.Upgrades[0].Available)
	assert.Empty(t, d.RestrictionNote)

	// CASE 3: highlighted and purchased upgrade
	s = mustApply(t, e, s,
		Action{Kind: ActionHighlightItem, Name: barricade},
		Action{Kind: ActionBuyUpgrade, Name: barricadeTier1},
	)
	d, err = e.ItemDetail(s, barricade)
	require.NoError(t, err)
	assert.Equal(t, ActionRemove, d.HighlightAction)
	assert.True(t, d.Upgrades[0].Purchased)
	assert.Equal(t, "T1", d.Upgrades[0].Label.Short)

	// CASE 4: unknown item
	_, err = e.ItemDetail(s, "Nope")
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))
}

func TestValidate(t *testing.T) {
	e := newTestEngine(t)

	assert.NoError(t, e.Validate(domain.DefaultSessionState()))
	assert.NoError(t, e.Validate(domain.SessionState{}))

	tests := []struct {
		name  string
		state domain.SessionState
	}{
		{"unknown purchased item", domain.SessionState{PurchasedItems: []string{"Nope"}}},
		{"unknown highlighted item", domain.SessionState{HighlightedItems: []string{"Nope"}}},
		{"unknown upgrade", domain.SessionState{PurchasedUpgrades: []string{"Nope"}}},
		{"unknown selected item", domain.SessionState{SelectedItem: "Nope"}},
		{"unknown tab", domain.SessionState{SelectedTab: "hats"}},
		{"negative budget", domain.SessionState{SkullBudget: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Validate(tt.state)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidSnapshot))
		})
	}
}

func TestParseSortMode(t *testing.T) {
	mode, err := ParseSortMode("alphabetical")
	require.NoError(t, err)
	assert.Equal(t, SortAlphabetical, mode)

	_, err = ParseSortMode("random")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
