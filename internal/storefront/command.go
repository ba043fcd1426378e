package storefront

import (
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one user intent against a Session. Each intent has its own type.
type Command interface {
	Name() string
}

type ChangeSearch struct {
	Query string
}

// SelectCategory toggles Category: selecting the active category clears it.
type SelectCategory struct {
	Category string
}

type AddToCart struct {
	ProductID string
}

// RemoveFromCart takes one unit off a line, dropping it at zero.
type RemoveFromCart struct {
	ProductID string
}

type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// RemoveItem drops a whole line regardless of quantity.
type RemoveItem struct {
	ProductID string
}

type OpenCart struct{}

type CloseCart struct{}

func (ChangeSearch) Name() string   { return "ChangeSearch" }
func (SelectCategory) Name() string { return "SelectCategory" }
func (AddToCart) Name() string      { return "AddToCart" }
func (RemoveFromCart) Name() string { return "RemoveFromCart" }
func (UpdateQuantity) Name() string { return "UpdateQuantity" }
func (RemoveItem) Name() string     { return "RemoveItem" }
func (OpenCart) Name() string       { return "OpenCart" }
func (CloseCart) Name() string      { return "CloseCart" }

// CommandRequest is the JSON form of a command posted to /api/commands.
type CommandRequest struct {
	Type      string `json:"type" binding:"required"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Query     string `json:"query"`
	Category  string `json:"category"`
}

// Command maps the request onto its typed command.
func (r CommandRequest) Command() (Command, error) {
	switch r.Type {
	case "ChangeSearch":
		return ChangeSearch{Query: r.Query}, nil
	case "SelectCategory":
		return SelectCategory{Category: r.Category}, nil
	case "AddToCart":
		return AddToCart{ProductID: r.ProductID}, nil
	case "RemoveFromCart":
		return RemoveFromCart{ProductID: r.ProductID}, nil
	case "UpdateQuantity":
		return UpdateQuantity{ProductID: r.ProductID, Quantity: r.Quantity}, nil
	case "RemoveItem":
		return RemoveItem{ProductID: r.ProductID}, nil
	case "OpenCart":
		return OpenCart{}, nil
	case "CloseCart":
		return CloseCart{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, r.Type)
	}
}
