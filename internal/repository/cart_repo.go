package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"minimart/internal/apperr"
	"minimart/internal/model"
)

// CartRepository defines the data access contract for the shared cart
// document. Every mutator persists the full document before returning;
// there is no write batching.
type CartRepository interface {
	// Bucket returns the user's cart bucket, creating (and persisting) an
	// empty one on first use. Exactly one bucket exists per userid.
	Bucket(userid string) (model.CartBucket, error)
	// AddItem appends a line with id = len(cart)+1 and
	// amount = round(price × qty, 2).
	AddItem(userid, name string, qty int, price decimal.Decimal) (model.CartItem, error)
	// RemoveItem deletes the line at the 1-based position, renumbers the
	// remaining ids to 1..N and returns the removed line.
	RemoveItem(userid string, position int) (model.CartItem, error)
	// Clear empties the user's cart.
	Clear(userid string) error
}

type cartRepo struct{ path string }

func NewCartRepository(path string) CartRepository {
	return &cartRepo{path: path}
}

func (r *cartRepo) load() (model.CartDocument, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return model.CartDocument{}, fmt.Errorf("%w: read %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	var doc model.CartDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.CartDocument{}, fmt.Errorf("%w: decode %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	return doc, nil
}

func (r *cartRepo) save(doc model.CartDocument) error {
	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperr.ErrStorageUnavailable, r.path, err)
	}
	return nil
}

// bucketIndex scans all buckets and returns the position of the LAST one
// matching userid, or -1.
func bucketIndex(doc model.CartDocument, userid string) int {
	pos := -1
	for i := range doc.Users {
		if doc.Users[i].UserID == userid {
			pos = i
		}
	}
	return pos
}

func (r *cartRepo) Bucket(userid string) (model.CartBucket, error) {
	doc, err := r.load()
	if err != nil {
		return model.CartBucket{}, err
	}
	pos := bucketIndex(doc, userid)
	if pos == -1 {
		doc.Users = append(doc.Users, model.CartBucket{UserID: userid, Cart: []model.CartItem{}})
		pos = len(doc.Users) - 1
		if err := r.save(doc); err != nil {
			return model.CartBucket{}, err
		}
	}
	return doc.Users[pos], nil
}

func (r *cartRepo) AddItem(userid, name string, qty int, price decimal.Decimal) (model.CartItem, error) {
	doc, err := r.load()
	if err != nil {
		return model.CartItem{}, err
	}
	pos := bucketIndex(doc, userid)
	if pos == -1 {
		doc.Users = append(doc.Users, model.CartBucket{UserID: userid, Cart: []model.CartItem{}})
		pos = len(doc.Users) - 1
	}

	item := model.CartItem{
		ID:       len(doc.Users[pos].Cart) + 1,
		Name:     name,
		Quantity: qty,
		Price:    price,
		Amount:   price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
	doc.Users[pos].Cart = append(doc.Users[pos].Cart, item)

	if err := r.save(doc); err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

func (r *cartRepo) RemoveItem(userid string, position int) (model.CartItem, error) {
	doc, err := r.load()
	if err != nil {
		return model.CartItem{}, err
	}
	pos := bucketIndex(doc, userid)
	if pos == -1 {
		return model.CartItem{}, apperr.ErrProductIndexOutOfRange
	}

	cart := doc.Users[pos].Cart
	if position < 1 || position > len(cart) {
		return model.CartItem{}, apperr.ErrProductIndexOutOfRange
	}

	removed := cart[position-1]
	cart = append(cart[:position-1], cart[position:]...)
	for i := range cart {
		cart[i].ID = i + 1
	}
	doc.Users[pos].Cart = cart

	if err := r.save(doc); err != nil {
		return model.CartItem{}, err
	}
	return removed, nil
}

func (r *cartRepo) Clear(userid string) error {
	doc, err := r.load()
	if err != nil {
		return err
	}
	pos := bucketIndex(doc, userid)
	if pos == -1 {
		return nil
	}
	doc.Users[pos].Cart = []model.CartItem{}
	return r.save(doc)
}
