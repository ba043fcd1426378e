package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

func TestProduct_OnSale(t *testing.T) {
	assert.True(t, Product{Price: price("3.99"), OriginalPrice: pricePtr("4.99")}.OnSale())
	assert.False(t, Product{Price: price("3.99")}.OnSale(), "no original price")
	assert.False(t, Product{Price: price("3.99"), OriginalPrice: pricePtr("3.99")}.OnSale(), "equal prices")
	assert.False(t, Product{Price: price("3.99"), OriginalPrice: pricePtr("2.99")}.OnSale(), "original below price")
}

func TestProduct_DiscountPercent(t *testing.T) {
	byID := map[string]Product{}
	for _, p := range Fixture() {
		byID[p.ID] = p
	}

	assert.EqualValues(t, 20, byID["1"].DiscountPercent(), "apples 4.99 -> 3.99")
	assert.EqualValues(t, 13, byID["5"].DiscountPercent(), "bread 3.99 -> 3.49")
	assert.EqualValues(t, 0, byID["4"].DiscountPercent(), "milk is not on sale")
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Featured Products", Heading(""))
	assert.Equal(t, "Fruits", Heading("fruits"))
	assert.Equal(t, "Éclairs", Heading("éclairs"))
}
