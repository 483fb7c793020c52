package model

import "github.com/shopspring/decimal"

// Product is one catalog record. ID is the product's 1-based position
// within its category document; Quantity is mutated on purchase and
// persisted immediately.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Category is one catalog document: a display label plus its products.
type Category struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}
