package cart

import (
	"math"
	"math/rand"
	"testing"

	"freshmart/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, name, price string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

var (
	apple  = product("1", "Fresh Red Apples", "3.99")
	banana = product("2", "Organic Bananas", "2.49")
	milk   = product("4", "Whole Milk", "4.29")
)

func lineIDs(c *Cart) []string {
	var out []string
	for _, l := range c.Lines() {
		out = append(out, l.Product.ID)
	}
	return out
}

type recorder struct {
	got []Notification
}

func (r *recorder) Notify(n Notification) { r.got = append(r.got, n) }

func TestAdd_MergesIntoExistingLine(t *testing.T) {
	c := New(nil)

	c.Add(apple)
	c.Add(apple)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.QuantityOf(apple.ID))
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	c := New(nil)

	c.Add(apple)
	c.Add(banana)
	c.Add(apple)

	assert.Equal(t, []string{"1", "2"}, lineIDs(c))
	assert.Equal(t, 2, c.QuantityOf(apple.ID))
	assert.Equal(t, 1, c.QuantityOf(banana.ID))
}

func TestAdd_NotifiesOnlyForNewLines(t *testing.T) {
	rec := &recorder{}
	c := New(rec)

	c.Add(apple)
	c.Add(apple)
	c.Add(milk)

	require.Len(t, rec.got, 2)
	assert.Equal(t, "Added to cart", rec.got[0].Title)
	assert.Equal(t, "Fresh Red Apples has been added to your cart.", rec.got[0].Message)
	assert.Equal(t, "Whole Milk has been added to your cart.", rec.got[1].Message)
}

func TestAdd_NotifierFunc(t *testing.T) {
	var titles []string
	c := New(NotifierFunc(func(n Notification) { titles = append(titles, n.Title) }))

	c.Add(banana)

	assert.Equal(t, []string{"Added to cart"}, titles)
}

func TestRemove(t *testing.T) {
	t.Run("quantity two decrements", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)
		c.Add(apple)

		c.Remove(apple.ID)

		assert.Equal(t, 1, c.QuantityOf(apple.ID))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("quantity one removes the line", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)
		c.Add(banana)

		c.Remove(apple.ID)

		assert.Equal(t, 0, c.QuantityOf(apple.ID))
		assert.Equal(t, []string{"2"}, lineIDs(c))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)

		c.Remove("missing")

		assert.Equal(t, []string{"1"}, lineIDs(c))
		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("replaces quantity in place", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)
		c.Add(banana)

		c.SetQuantity(apple.ID, 7)

		assert.Equal(t, []string{"1", "2"}, lineIDs(c))
		assert.Equal(t, 7, c.QuantityOf(apple.ID))
	})

	for _, q := range []int{0, -5} {
		t.Run("non-positive removes the whole line", func(t *testing.T) {
			c := New(nil)
			c.Add(apple)
			c.Add(apple)
			c.Add(apple)

			c.SetQuantity(apple.ID, q)

			assert.Equal(t, 0, c.Len(), "quantity %d", q)
		})
	}

	t.Run("unknown id with positive quantity is a no-op", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)

		c.SetQuantity(milk.ID, 3)

		assert.Equal(t, []string{"1"}, lineIDs(c))
		assert.Equal(t, 0, c.QuantityOf(milk.ID))
	})

	t.Run("unknown id with zero quantity is a no-op", func(t *testing.T) {
		c := New(nil)
		c.SetQuantity(milk.ID, 0)
		assert.Equal(t, 0, c.Len())
	})
}

func TestQuantityBounds(t *testing.T) {
	t.Run("set quantity clamps to the maximum", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)

		c.SetQuantity(apple.ID, math.MaxInt)

		assert.Equal(t, MaxQuantity, c.QuantityOf(apple.ID))
	})

	t.Run("add at the maximum does not wrap", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)
		c.SetQuantity(apple.ID, math.MaxInt)

		c.Add(apple)

		assert.Equal(t, MaxQuantity, c.QuantityOf(apple.ID))
		assert.Equal(t, MaxQuantity, c.ItemCount())
		assert.False(t, c.Total().IsNegative())
		assert.True(t, apple.Price.Mul(decimal.NewFromInt(MaxQuantity)).Equal(c.Total()))
	})

	t.Run("two full lines keep a positive count", func(t *testing.T) {
		c := New(nil)
		c.Add(apple)
		c.Add(banana)
		c.SetQuantity(apple.ID, math.MaxInt)
		c.SetQuantity(banana.ID, math.MaxInt)

		assert.Equal(t, 2*MaxQuantity, c.ItemCount())
	})
}

func TestRemoveLine(t *testing.T) {
	c := New(nil)
	c.Add(apple)
	c.Add(apple)
	c.Add(milk)

	c.RemoveLine(apple.ID)
	c.RemoveLine("missing")

	assert.Equal(t, []string{"4"}, lineIDs(c))
}

func TestTotals(t *testing.T) {
	c := New(nil)
	c.Add(apple)
	c.Add(apple)
	c.Add(milk)

	assert.Equal(t, 3, c.ItemCount())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("12.27")), "got %s", c.Total())
}

func TestTotals_UseCurrentPrice(t *testing.T) {
	original := decimal.RequireFromString("4.99")
	onSale := apple
	onSale.OriginalPrice = &original

	c := New(nil)
	c.Add(onSale)

	assert.Equal(t, "3.99", c.Total().StringFixed(2))
}

func TestTotals_EmptyCart(t *testing.T) {
	c := New(nil)

	assert.Equal(t, 0, c.ItemCount())
	assert.True(t, c.Total().IsZero())
	assert.Empty(t, c.Lines())
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New(nil)
	c.Add(apple)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.QuantityOf(apple.ID))
}

// Random operation sequences must never produce duplicate or empty lines.
func TestCart_InvariantsHoldUnderRandomOperations(t *testing.T) {
	products := []catalog.Product{apple, banana, milk}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		c := New(nil)
		for step := 0; step < 50; step++ {
			p := products[rng.Intn(len(products))]
			switch rng.Intn(4) {
			case 0:
				c.Add(p)
			case 1:
				c.Remove(p.ID)
			case 2:
				c.SetQuantity(p.ID, rng.Intn(7)-2)
			case 3:
				c.RemoveLine(p.ID)
			}

			seen := map[string]bool{}
			sum := 0
			for _, l := range c.Lines() {
				require.False(t, seen[l.Product.ID], "duplicate line for %s", l.Product.ID)
				require.GreaterOrEqual(t, l.Quantity, 1)
				seen[l.Product.ID] = true
				sum += l.Quantity
			}
			require.Equal(t, sum, c.ItemCount())
		}
	}
}
