package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// productRow is the column layout shared by the SQL sources. Prices travel as
// text so neither driver has to know about decimal.Decimal.
type productRow struct {
	ID            string
	Name          string
	Price         string
	OriginalPrice *string
	Image         string
	Category      string
	Unit          string
	Organic       bool
}

func (r productRow) product() (Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return Product{}, fmt.Errorf("product %q: price %q: %w", r.ID, r.Price, err)
	}

	p := Product{
		ID:       r.ID,
		Name:     r.Name,
		Price:    price,
		Image:    r.Image,
		Category: r.Category,
		Unit:     r.Unit,
		Organic:  r.Organic,
	}

	if r.OriginalPrice != nil {
		original, err := decimal.NewFromString(*r.OriginalPrice)
		if err != nil {
			return Product{}, fmt.Errorf("product %q: original price %q: %w", r.ID, *r.OriginalPrice, err)
		}
		p.OriginalPrice = &original
	}

	return p, nil
}

func rowFrom(p Product) productRow {
	r := productRow{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price.StringFixed(2),
		Image:    p.Image,
		Category: p.Category,
		Unit:     p.Unit,
		Organic:  p.Organic,
	}
	if p.OriginalPrice != nil {
		s := p.OriginalPrice.StringFixed(2)
		r.OriginalPrice = &s
	}
	return r
}
