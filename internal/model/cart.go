package model

import "github.com/shopspring/decimal"

// CartItem is one line in a user's cart. Price and Amount are snapshots
// taken at add-time; Amount is always round(Price × Quantity, 2).
// IDs form a dense 1..N sequence that is reassigned after every removal.
type CartItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// CartBucket holds one user's cart. Buckets accumulate in the shared cart
// document and are never deleted, only cleared.
type CartBucket struct {
	UserID string     `json:"userid"`
	Cart   []CartItem `json:"cart"`
}

// CartDocument is the whole cart file.
type CartDocument struct {
	Users []CartBucket `json:"users"`
}
