package catalog

import "github.com/shopspring/decimal"

// Product is a purchasable catalog entry. Products are treated as immutable
// once a Source has loaded them.
type Product struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	Price         decimal.Decimal  `json:"price" yaml:"price"`
	Image         string           `json:"image" yaml:"image"`
	Category      string           `json:"category" yaml:"category"`
	Unit          string           `json:"unit" yaml:"unit"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty" yaml:"original_price,omitempty"`
	Organic       bool             `json:"organic,omitempty" yaml:"organic,omitempty"`
}

// OnSale reports whether the product carries a pre-discount price above its
// current price.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// DiscountPercent is the rounded percentage off the original price, or 0 when
// the product is not on sale.
func (p Product) DiscountPercent() int64 {
	if !p.OnSale() {
		return 0
	}
	off := p.OriginalPrice.Sub(p.Price)
	return off.Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
