package service

import (
	"github.com/rs/zerolog/log"

	"minimart/internal/apperr"
	"minimart/internal/dto"
	"minimart/internal/model"
	"minimart/internal/repository"
	"minimart/internal/view"
)

// CartService keeps the user's cart and the catalog consistent: adding a
// line reserves stock, removing a line releases it.
type CartService interface {
	View(userid string) (*dto.CartView, error)
	Add(userid string, req dto.AddToCartRequest) (model.CartItem, error)
	Remove(userid string, position int) (model.CartItem, error)
}

type cartService struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
}

func NewCartService(carts repository.CartRepository, catalog repository.CatalogRepository) CartService {
	return &cartService{carts: carts, catalog: catalog}
}

func (s *cartService) View(userid string) (*dto.CartView, error) {
	bucket, err := s.carts.Bucket(userid)
	if err != nil {
		return nil, err
	}

	return &dto.CartView{Items: bucket.Cart, Total: view.RunningTotal(bucket.Cart)}, nil
}

func (s *cartService) Add(userid string, req dto.AddToCartRequest) (model.CartItem, error) {
	if err := checkAs(req, apperr.ErrInvalidMenuChoice); err != nil {
		return model.CartItem{}, err
	}

	doc, err := s.catalog.Load(req.Category)
	if err != nil {
		return model.CartItem{}, err
	}
	if req.ProductIndex > len(doc.Products) {
		return model.CartItem{}, apperr.ErrProductIndexOutOfRange
	}
	product := doc.Products[req.ProductIndex-1]

	// Reserve stock first: the decrement carries the floor check, so an
	// oversized quantity fails before the cart is touched.
	if err := s.catalog.DecrementStock(req.Category, req.ProductIndex, req.Quantity); err != nil {
		return model.CartItem{}, err
	}

	item, err := s.carts.AddItem(userid, product.Name, req.Quantity, product.Price)
	if err != nil {
		return model.CartItem{}, err
	}

	log.Info().
		Str("user", userid).
		Str("product", product.Name).
		Int("qty", req.Quantity).
		Msg("added to cart")
	return item, nil
}

func (s *cartService) Remove(userid string, position int) (model.CartItem, error) {
	removed, err := s.carts.RemoveItem(userid, position)
	if err != nil {
		return model.CartItem{}, err
	}

	// Release the reserved quantity back to whichever category holds the
	// product; the line item does not record its category.
	if err := s.catalog.RestoreStock(removed.Name, removed.Quantity); err != nil {
		log.Warn().Err(err).Str("product", removed.Name).Msg("stock restore failed")
	}

	log.Info().Str("user", userid).Str("product", removed.Name).Msg("removed from cart")
	return removed, nil
}
