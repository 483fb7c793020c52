package service

import (
	"strconv"

	"github.com/shopspring/decimal"

	"minimart/internal/apperr"
	"minimart/internal/model"
)

// In-memory stand-ins for the file-backed stores. They mirror the store
// semantics the services rely on: sequential ids, last-match lookups,
// dense cart renumbering and the stock floor check.

type stubCredentialRepo struct {
	creds     []model.Credential
	appendErr error
}

func (s *stubCredentialRepo) All() ([]model.Credential, error) { return s.creds, nil }

func (s *stubCredentialRepo) FindByUsername(username string) (model.Credential, error) {
	found := false
	var match model.Credential
	for _, c := range s.creds {
		if c.Username == username {
			match = c
			found = true
		}
	}
	if !found {
		return model.Credential{}, apperr.ErrNotFound
	}
	return match, nil
}

func (s *stubCredentialRepo) Append(username, password string) (model.Credential, error) {
	if s.appendErr != nil {
		return model.Credential{}, s.appendErr
	}
	cred := model.Credential{ID: strconv.Itoa(len(s.creds) + 1), Username: username, Password: password}
	s.creds = append(s.creds, cred)
	return cred, nil
}

func (s *stubCredentialRepo) UpdateByID(id, username, password string) error {
	for i, c := range s.creds {
		if c.ID == id {
			s.creds[i].Username = username
			s.creds[i].Password = password
			return nil
		}
	}
	return apperr.ErrNotFound
}

type stubCatalogRepo struct {
	docs map[string]model.Category
	keys []string
}

func newStubCatalog() *stubCatalogRepo {
	return &stubCatalogRepo{
		keys: []string{"canned_food", "fruits"},
		docs: map[string]model.Category{
			"canned_food": {
				Category: "Canned Food",
				Products: []model.Product{
					{ID: 1, Name: "Baked Beans", Quantity: 10, Price: decimal.RequireFromString("2.50")},
					{ID: 2, Name: "Tomato Soup", Quantity: 3, Price: decimal.RequireFromString("3.20")},
				},
			},
			"fruits": {
				Category: "Fruits",
				Products: []model.Product{
					{ID: 1, Name: "Apple", Quantity: 15, Price: decimal.RequireFromString("0.80")},
				},
			},
		},
	}
}

func (s *stubCatalogRepo) Categories() []string { return s.keys }

func (s *stubCatalogRepo) Load(category string) (model.Category, error) {
	doc, ok := s.docs[category]
	if !ok {
		return model.Category{}, apperr.ErrStorageUnavailable
	}
	return doc, nil
}

func (s *stubCatalogRepo) Save(category string, doc model.Category) error {
	s.docs[category] = doc
	return nil
}

func (s *stubCatalogRepo) DecrementStock(category string, productIndex, qty int) error {
	doc, err := s.Load(category)
	if err != nil {
		return err
	}
	if productIndex < 1 || productIndex > len(doc.Products) {
		return apperr.ErrProductIndexOutOfRange
	}
	if qty > doc.Products[productIndex-1].Quantity {
		return apperr.ErrInsufficientStock
	}
	doc.Products[productIndex-1].Quantity -= qty
	return s.Save(category, doc)
}

func (s *stubCatalogRepo) RestoreStock(productName string, qty int) error {
	for _, key := range s.keys {
		doc := s.docs[key]
		for i := range doc.Products {
			if doc.Products[i].Name == productName {
				doc.Products[i].Quantity += qty
				s.docs[key] = doc
				return nil
			}
		}
	}
	return nil
}

type stubCartRepo struct {
	buckets map[string]*model.CartBucket
}

func newStubCarts() *stubCartRepo {
	return &stubCartRepo{buckets: map[string]*model.CartBucket{}}
}

func (s *stubCartRepo) bucket(userid string) *model.CartBucket {
	b, ok := s.buckets[userid]
	if !ok {
		b = &model.CartBucket{UserID: userid, Cart: []model.CartItem{}}
		s.buckets[userid] = b
	}
	return b
}

func (s *stubCartRepo) Bucket(userid string) (model.CartBucket, error) {
	return *s.bucket(userid), nil
}

func (s *stubCartRepo) AddItem(userid, name string, qty int, price decimal.Decimal) (model.CartItem, error) {
	b := s.bucket(userid)
	item := model.CartItem{
		ID:       len(b.Cart) + 1,
		Name:     name,
		Quantity: qty,
		Price:    price,
		Amount:   price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}
	b.Cart = append(b.Cart, item)
	return item, nil
}

func (s *stubCartRepo) RemoveItem(userid string, position int) (model.CartItem, error) {
	b := s.bucket(userid)
	if position < 1 || position > len(b.Cart) {
		return model.CartItem{}, apperr.ErrProductIndexOutOfRange
	}
	removed := b.Cart[position-1]
	b.Cart = append(b.Cart[:position-1], b.Cart[position:]...)
	for i := range b.Cart {
		b.Cart[i].ID = i + 1
	}
	return removed, nil
}

func (s *stubCartRepo) Clear(userid string) error {
	s.bucket(userid).Cart = []model.CartItem{}
	return nil
}
