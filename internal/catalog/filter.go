package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the products matching query and category, in catalog order.
//
// An empty category matches every product. An empty query matches every
// name; otherwise the lower-cased product name must contain the lower-cased
// query. Lower-casing is per rune with no folding of ligatures or ß, so
// "weissbrot" does not match "Weißbrot". The input slice is never modified.
func Filter(products []Product, query, category string) []Product {
	m := newMatcher(query, category)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// matcher holds a Caser, which is stateful, so one is built per Filter call.
type matcher struct {
	lower    cases.Caser
	needle   string
	category string
}

func newMatcher(query, category string) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		lower:    lower,
		needle:   lower.String(query),
		category: category,
	}
}

func (m *matcher) match(p Product) bool {
	if m.category != "" && p.Category != m.category {
		return false
	}
	if m.needle == "" {
		return true
	}
	return strings.Contains(m.lower.String(p.Name), m.needle)
}
