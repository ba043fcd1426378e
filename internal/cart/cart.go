package cart

import (
	"freshmart/internal/catalog"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the most units a single line can hold.
const MaxQuantity = 999

// Cart is an ordered set of lines, at most one per product id. The first
// line added for a product keeps its position for as long as it exists.
//
// A Cart is not safe for concurrent use; the owning session serialises access.
type Cart struct {
	lines    []Line
	notifier Notifier
}

// New returns an empty cart. notifier may be nil.
func New(notifier Notifier) *Cart {
	return &Cart{notifier: notifier}
}

func (c *Cart) index(productID string) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add merges one unit of p into its existing line, or appends a new line with
// quantity 1. A line already at MaxQuantity is left as is. Only a new line
// triggers a notification.
func (c *Cart) Add(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		if c.lines[i].Quantity < MaxQuantity {
			c.lines[i].Quantity++
		}
		return
	}

	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	if c.notifier != nil {
		c.notifier.Notify(lineAdded(p))
	}
}

// Remove takes one unit off the product's line, dropping the line when its
// quantity reaches zero. Unknown ids are ignored.
func (c *Cart) Remove(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.removeAt(i)
}

// SetQuantity replaces the quantity of an existing line in place. A quantity
// of zero or less removes the whole line; anything above MaxQuantity is
// clamped to it. Ids without a line are ignored, whatever the quantity.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(productID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// RemoveLine drops the product's line regardless of its quantity.
func (c *Cart) RemoveLine(productID string) {
	if i := c.index(productID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total sums every line at the product's current price; OriginalPrice is
// never consulted.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) QuantityOf(productID string) int {
	return QuantityOf(c.lines, productID)
}
