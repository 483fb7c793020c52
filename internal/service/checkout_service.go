package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"minimart/internal/apperr"
	"minimart/internal/model"
	"minimart/internal/repository"
	"minimart/internal/view"
)

// ReceiptWriter persists a rendered receipt somewhere durable (the PDF
// writer in internal/infra). A nil writer disables persistence.
type ReceiptWriter interface {
	Write(r *model.Receipt) (string, error)
}

// CheckoutService turns a non-empty cart into a receipt and clears it.
type CheckoutService interface {
	Checkout(userid string, method model.PaymentMethod) (*model.Receipt, error)
}

type checkoutService struct {
	carts    repository.CartRepository
	receipts ReceiptWriter
}

func NewCheckoutService(carts repository.CartRepository, receipts ReceiptWriter) CheckoutService {
	return &checkoutService{carts: carts, receipts: receipts}
}

func (s *checkoutService) Checkout(userid string, method model.PaymentMethod) (*model.Receipt, error) {
	bucket, err := s.carts.Bucket(userid)
	if err != nil {
		return nil, err
	}
	if len(bucket.Cart) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	receipt := &model.Receipt{
		ID:       uuid.New(),
		UserID:   userid,
		Lines:    bucket.Cart,
		Total:    view.RunningTotal(bucket.Cart),
		Method:   method,
		IssuedAt: time.Now(),
	}

	if err := s.carts.Clear(userid); err != nil {
		return nil, err
	}

	// Receipt persistence is best-effort: a failed PDF never rolls back a
	// completed purchase.
	if s.receipts != nil {
		if path, err := s.receipts.Write(receipt); err != nil {
			log.Warn().Err(err).Str("receipt", receipt.ID.String()).Msg("receipt write failed")
		} else {
			log.Info().Str("receipt", receipt.ID.String()).Str("path", path).Msg("receipt written")
		}
	}

	log.Info().
		Str("user", userid).
		Str("method", string(method)).
		Str("total", receipt.Total.StringFixed(2)).
		Msg("checkout completed")
	return receipt, nil
}
