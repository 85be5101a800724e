package scraper

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameCorrections maps known source typos to the names used in game
var nameCorrections = map[string]string{
	"Spore Mushroom":     "Spore Mushrooms",
	"Sceptre":            "Sceptre of Domination",
	"Vampiric Guantlets": "Vampiric Gauntlets",
}

// nameFromSlug turns an anchor slug like "ring-of-ice" into "Ring of Ice"
func nameFromSlug(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, NameSlugSeparator, NameWordSeparator), NameWordSeparator)
	upper := cases.Upper(language.English)
	for i, w := range words {
		if w == NameKeepLowercase || w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(r)) + w[size:]
	}
	return correctName(strings.Join(words, NameWordSeparator))
}

func correctName(name string) string {
	if fixed, ok := nameCorrections[name]; ok {
		return fixed
	}
	return name
}
