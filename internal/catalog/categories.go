package catalog

import (
	"unicode"
	"unicode/utf8"
)

// Category is a browsable product grouping shown in the category grid.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

var defaultCategories = []Category{
	{ID: "fruits", Name: "Fruits", Emoji: "🍎"},
	{ID: "vegetables", Name: "Vegetables", Emoji: "🥬"},
	{ID: "dairy", Name: "Dairy", Emoji: "🥛"},
	{ID: "bakery", Name: "Bakery", Emoji: "🍞"},
	{ID: "beverages", Name: "Beverages", Emoji: "🧃"},
	{ID: "snacks", Name: "Snacks", Emoji: "🍿"},
}

// DefaultCategories returns a copy of the storefront's category grid.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// Heading is the product section title for the selected category.
func Heading(selected string) string {
	if selected == "" {
		return "Featured Products"
	}
	r, size := utf8.DecodeRuneInString(selected)
	return string(unicode.ToUpper(r)) + selected[size:]
}
