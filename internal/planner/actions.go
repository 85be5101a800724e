package planner

import (
	"fmt"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// ActionKind names a transition
type ActionKind string

const (
	ActionSetSearchTerm   ActionKind = "search"
	ActionSelectTab       ActionKind = "tab"
	ActionSelectItem      ActionKind = "select"
	ActionBuyItem         ActionKind = "buy_item"
	ActionSellItem        ActionKind = "sell_item"
	ActionBuyUpgrade      ActionKind = "buy_upgrade"
	ActionSellUpgrade     ActionKind = "sell_upgrade"
	ActionHighlightItem   ActionKind = "highlight"
	ActionUnhighlightItem ActionKind = "unhighlight"
	ActionSetSkullBudget  ActionKind = "skulls"
	ActionReset           ActionKind = "reset"
)

// Action is one user intent. Name carries the text argument and Amount the
// skull budget.
type Action struct {
	Kind   ActionKind
	Name   string
	Amount int
}

// Apply dispatches an action to its transition
func (e *Engine) Apply(s domain.SessionState, a Action) (domain.SessionState, error) {
	switch a.Kind {
	case ActionSetSearchTerm:
		return e.SetSearchTerm(s, a.Name), nil
	case ActionSelectTab:
		return e.SelectTab(s, a.Name)
	case ActionSelectItem:
		return e.SelectItem(s, a.Name)
	case ActionBuyItem:
		return e.BuyItem(s, a.Name)
	case ActionSellItem:
		return e.SellItem(s, a.Name)
	case ActionBuyUpgrade:
		return e.BuyUpgrade(s, a.Name)
	case ActionSellUpgrade:
		return e.SellUpgrade(s, a.Name)
	case ActionHighlightItem:
		return e.HighlightItem(s, a.Name)
	case ActionUnhighlightItem:
		return e.UnhighlightItem(s, a.Name)
	case ActionSetSkullBudget:
		return e.SetSkullBudget(s, a.Amount), nil
	case ActionReset:
		return e.Reset(), nil
	}
	return s, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, a.Kind)
}
