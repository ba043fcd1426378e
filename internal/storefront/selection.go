package storefront

// ToggleCategory returns the selection after clicking a category chip.
// Clicking the active category clears the filter.
func ToggleCategory(current, clicked string) string {
	if clicked == current {
		return ""
	}
	return clicked
}
