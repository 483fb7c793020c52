package dto

import (
	"github.com/shopspring/decimal"

	"minimart/internal/model"
)

// View models returned by the services for the terminal layer to render;
// the core never prints anything itself.

// CategoryOption is one entry of the category menu.
type CategoryOption struct {
	Key   string // file key, e.g. "canned_food"
	Label string // display label from the document, e.g. "Canned Food"
}

// CatalogView is one category's product listing.
type CatalogView struct {
	Label    string
	Products []model.Product
}

// CartView is the user's current cart plus its running total.
type CartView struct {
	Items []model.CartItem
	Total decimal.Decimal
}
