package catalog

import (
	"errors"
	"fmt"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Validate checks the invariants every loaded catalog must hold: non-empty
// unique ids, non-empty names and non-negative prices.
func Validate(products []Product) error {
	var errs []error
	seen := make(map[string]bool, len(products))

	for i, p := range products {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("product %d: empty id", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Errorf("product %d: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("product %q: empty name", p.ID))
		}
		if p.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("product %q: negative price %s", p.ID, p.Price))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}
