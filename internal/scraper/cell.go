package scraper

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
)

// parseCell reads one item description block
func parseCell(cell *html.Node, category domain.Category) (domain.Item, error) {
	anchor := firstChildElement(cell, atom.A)
	if anchor == nil {
		return domain.Item{}, expect("", ExpectAnchor)
	}
	slug, ok := attr(anchor, "name")
	if !ok {
		return domain.Item{}, expect("", ExpectAnchorName)
	}
	name := nameFromSlug(slug)

	cost, err := parseHeading(anchor, name)
	if err != nil {
		return domain.Item{}, err
	}

	bolds := childElements(cell, atom.Strong)
	if len(bolds) == 0 {
		return domain.Item{}, expect(name, ExpectBold)
	}
	firstLabel := textContent(bolds[0])

	item := domain.Item{Name: name, UnlockCost: cost}

	// labels whose text is a field value rather than an upgrade
	consumed := map[*html.Node]bool{bolds[0]: true}

	var first, second string
	switch {
	case strings.Contains(firstLabel, MarkerPassive):
		first, second, err = pairedFields(bolds, LabelPassive, LabelActive, name, consumed)
	case strings.Contains(firstLabel, MarkerPrimary):
		first, second, err = pairedFields(bolds, LabelPrimary, LabelSecondary, name, consumed)
	default:
		item.ShortDescription, err = shortDescription(cell, name)
	}
	if err != nil {
		return domain.Item{}, err
	}

	switch category {
	case domain.CategoryTrap:
		item.Details = domain.TrapDetails{
			Placement: placement(firstLabel),
			Character: restriction(cell),
		}
	case domain.CategoryWeapon:
		item.Details = domain.WeaponDetails{Primary: first, Secondary: second}
	case domain.CategoryTrinket:
		item.Details = domain.TrinketDetails{Passive: first, Active: second}
	}

	for _, b := range bolds[1:] {
		if consumed[b] {
			continue
		}
		upgrades, err := parseUpgradeBlock(b, name)
		if err != nil {
			return domain.Item{}, err
		}
		item.Upgrades = append(item.Upgrades, upgrades...)
	}
	if item.Upgrades == nil {
		item.Upgrades = []domain.Upgrade{}
	}

	return item, nil
}

// parseHeading reads the unlock cost from the anchor's heading
func parseHeading(anchor *html.Node, name string) (int, error) {
	heading := firstChildElement(anchor, atom.H6)
	if heading == nil {
		heading = firstChildElement(anchor, atom.H4)
	}
	if heading == nil {
		return 0, expect(name, ExpectHeading)
	}
	text := firstChildText(heading)
	if text == nil {
		return 0, expect(name, ExpectHeadingText)
	}
	return parseUnlockCost(text.Data, name)
}

// parseUnlockCost understands "Name (Cost: 12):" and "Name - Cost: 12 skulls".
// Headings without a cost marker belong to starting items.
func parseUnlockCost(text, name string) (int, error) {
	var raw string
	switch {
	case strings.Contains(text, MarkerCostOpen):
		_, after, found := strings.Cut(text, MarkerCost)
		if !found {
			return 0, nil
		}
		raw, _, _ = strings.Cut(after, MarkerCostClose)
	case strings.Contains(text, MarkerSkullsWord):
		_, after, found := strings.Cut(text, MarkerCost)
		if !found {
			return 0, expect(name, ExpectCost)
		}
		raw, _, _ = strings.Cut(after, MarkerSkulls)
	default:
		return 0, nil
	}

	cost, err := leadingInt(raw)
	if err != nil {
		return 0, expectErr(name, ExpectCost, err)
	}
	return cost, nil
}

// leadingInt parses the integer at the start of s, ignoring anything after it
func leadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		end = len(s)
	}
	return strconv.Atoi(s[:end])
}

// pairedFields reads the text following two labels such as Passive:/Active:
func pairedFields(bolds []*html.Node, firstLabel, secondLabel, name string, consumed map[*html.Node]bool) (string, string, error) {
	first, err := labelValue(bolds, firstLabel, name, consumed)
	if err != nil {
		return "", "", err
	}
	second, err := labelValue(bolds, secondLabel, name, consumed)
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}

func labelValue(bolds []*html.Node, label, name string, consumed map[*html.Node]bool) (string, error) {
	for _, b := range bolds {
		if !strings.Contains(textContent(b), label) {
			continue
		}
		text, ok := followingText(b)
		if !ok {
			return "", expect(name, fmt.Sprintf(ExpectLabelTextFmt, label))
		}
		consumed[b] = true
		return strings.TrimSpace(text), nil
	}
	return "", expect(name, fmt.Sprintf(ExpectLabelFmt, label))
}

// shortDescription is the first non-blank text directly inside the cell
func shortDescription(cell *html.Node, name string) (string, error) {
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		if isText(c) && strings.TrimSpace(c.Data) != "" {
			return strings.TrimSpace(c.Data), nil
		}
	}
	return "", expect(name, ExpectText)
}

// placement strips the " Trap" suffix from the first label, "Floor Trap" -> "Floor"
func placement(label string) string {
	label = strings.TrimSpace(label)
	if !strings.Contains(label, MarkerTrap) {
		return ""
	}
	return strings.Replace(label, MarkerTrapSuffix, "", 1)
}

func restriction(cell *html.Node) string {
	text := textContent(cell)
	switch {
	case strings.Contains(text, MarkerSorceress):
		return domain.CharacterSorceress
	case strings.Contains(text, MarkerWarMage):
		return domain.CharacterWarMage
	}
	return ""
}
