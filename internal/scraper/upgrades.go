package scraper

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// parseUpgradeBlock expands one bold upgrade label and its trailing text.
// "(4) - desc" yields one upgrade; "(2, 4, 6): desc" yields three that share
// the description. A label with no trailing text is skipped, as is text in
// neither format.
func parseUpgradeBlock(label *html.Node, itemName string) ([]domain.Upgrade, error) {
	text, ok := followingText(label)
	if !ok || text == "" {
		return nil, nil
	}

	costs, desc, ok := splitUpgradeText(text)
	if !ok {
		return nil, nil
	}

	kind := upgradeKind(textContent(label))
	upgrades := make([]domain.Upgrade, 0, len(costs))
	for _, raw := range costs {
		cost, err := leadingInt(raw)
		if err != nil {
			return nil, expectErr(itemName, ExpectUpgradeCost, err)
		}
		upgrades = append(upgrades, domain.Upgrade{
			Kind:        kind,
			Description: desc,
			UnlockCost:  cost,
		})
	}
	return upgrades, nil
}

// splitUpgradeText separates the parenthesized cost list from the description
func splitUpgradeText(text string) ([]string, string, bool) {
	open := strings.Index(text, "(")
	if open < 0 {
		return nil, "", false
	}
	closeIdx := strings.Index(text[open:], ")")
	if closeIdx < 0 {
		return nil, "", false
	}
	closeIdx += open

	list := text[open+1 : closeIdx]
	rest := text[closeIdx+1:]

	var desc string
	switch {
	case strings.HasPrefix(rest, MarkerDashDesc):
		desc = strings.TrimPrefix(rest, MarkerDashDesc)
	case strings.HasPrefix(rest, MarkerColonDesc):
		desc = strings.TrimPrefix(rest, MarkerColonDesc)
	default:
		return nil, "", false
	}

	return strings.Split(list, CostListSeparator), strings.TrimSpace(desc), true
}

func upgradeKind(label string) domain.UpgradeKind {
	switch {
	case strings.Contains(label, KindLabelTier):
		return domain.UpgradeTier
	case strings.Contains(label, KindLabelUnique):
		return domain.UpgradeUnique
	case strings.Contains(label, KindLabelSpecial):
		return domain.UpgradeSpecial
	}
	return domain.UpgradeUnclassified
}
