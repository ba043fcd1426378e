package cart

import (
	"fmt"

	"freshmart/internal/catalog"

	"github.com/shopspring/decimal"
)

// Line associates one product with a quantity. Quantity is always >= 1 for
// lines held by a Cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line price at the product's current price.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Notification is a fire-and-forget message for transient user feedback.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func lineAdded(p catalog.Product) Notification {
	return Notification{
		Title:   "Added to cart",
		Message: fmt.Sprintf("%s has been added to your cart.", p.Name),
	}
}

// Notifier receives notifications emitted by a Cart.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
