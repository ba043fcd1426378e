package storefront

import (
	"fmt"

	"freshmart/internal/cart"
	"freshmart/internal/catalog"

	"github.com/shopspring/decimal"
)

// View is everything the storefront page renders, derived from a Session
// on every read.
type View struct {
	SearchQuery      string              `json:"search_query"`
	SelectedCategory string              `json:"selected_category"`
	Heading          string              `json:"heading"`
	ResultCount      int                 `json:"result_count"`
	ResultSummary    string              `json:"result_summary"`
	Categories       []CategoryChip      `json:"categories"`
	Products         []ProductCard       `json:"products"`
	Cart             CartView            `json:"cart"`
	Toasts           []cart.Notification `json:"toasts"`
}

type CategoryChip struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	Selected bool   `json:"selected"`
}

type ProductCard struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	ImageURL        string           `json:"image_url"`
	Category        string           `json:"category"`
	Unit            string           `json:"unit"`
	Organic         bool             `json:"organic"`
	OnSale          bool             `json:"on_sale"`
	DiscountPercent int64            `json:"discount_percent,omitempty"`
	Quantity        int              `json:"quantity"`
}

type CartView struct {
	Open        bool            `json:"open"`
	Lines       []LineView      `json:"lines"`
	ItemCount   int             `json:"item_count"`
	ItemSummary string          `json:"item_summary"`
	Total       decimal.Decimal `json:"total"`
}

func (c CartView) Empty() bool {
	return len(c.Lines) == 0
}

// LineView carries the quantity stepper targets for one cart line. The minus
// control removes the line outright when it holds a single unit.
type LineView struct {
	ProductID         string          `json:"product_id"`
	Name              string          `json:"name"`
	ImageURL          string          `json:"image_url"`
	Unit              string          `json:"unit"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DecrementRemoves  bool            `json:"decrement_removes"`
	DecrementQuantity int             `json:"decrement_quantity"`
	IncrementQuantity int             `json:"increment_quantity"`
}

// buildView must be called with s.mu held.
func (s *Session) buildView() View {
	lines := s.cart.Lines()
	products := s.catalog.Filter(s.search, s.category)

	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:              p.ID,
			Name:            p.Name,
			Price:           p.Price,
			OriginalPrice:   p.OriginalPrice,
			ImageURL:        s.catalog.ImageURL(p),
			Category:        p.Category,
			Unit:            p.Unit,
			Organic:         p.Organic,
			OnSale:          p.OnSale(),
			DiscountPercent: p.DiscountPercent(),
			Quantity:        cart.QuantityOf(lines, p.ID),
		})
	}

	categories := s.catalog.Categories()
	chips := make([]CategoryChip, 0, len(categories))
	for _, c := range categories {
		chips = append(chips, CategoryChip{
			ID:       c.ID,
			Name:     c.Name,
			Emoji:    c.Emoji,
			Selected: c.ID == s.category,
		})
	}

	lineViews := make([]LineView, 0, len(lines))
	for _, l := range lines {
		lineViews = append(lineViews, LineView{
			ProductID:         l.Product.ID,
			Name:              l.Product.Name,
			ImageURL:          s.catalog.ImageURL(l.Product),
			Unit:              l.Product.Unit,
			Price:             l.Product.Price,
			Quantity:          l.Quantity,
			Subtotal:          l.Subtotal(),
			DecrementRemoves:  l.Quantity == 1,
			DecrementQuantity: l.Quantity - 1,
			IncrementQuantity: min(l.Quantity+1, cart.MaxQuantity),
		})
	}

	itemCount := s.cart.ItemCount()

	toasts := make([]cart.Notification, len(s.toasts))
	copy(toasts, s.toasts)

	return View{
		SearchQuery:      s.search,
		SelectedCategory: s.category,
		Heading:          catalog.Heading(s.category),
		ResultCount:      len(cards),
		ResultSummary:    countLabel(len(cards), "product found", "products found"),
		Categories:       chips,
		Products:         cards,
		Cart: CartView{
			Open:        s.cartOpen,
			Lines:       lineViews,
			ItemCount:   itemCount,
			ItemSummary: countLabel(itemCount, "item", "items"),
			Total:       s.cart.Total(),
		},
		Toasts: toasts,
	}
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
