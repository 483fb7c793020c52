package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the accepted checkout methods.
type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "credit_card"
	PaymentOnlineBanking PaymentMethod = "online_banking"
)

// Label returns the display name of the method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentOnlineBanking:
		return "Online Banking"
	}
	return string(m)
}

// Receipt is emitted by a successful checkout. Lines is the cart content
// at the moment of payment; Total equals the sum of their amounts.
type Receipt struct {
	ID       uuid.UUID
	UserID   string
	Lines    []CartItem
	Total    decimal.Decimal
	Method   PaymentMethod
	IssuedAt time.Time
}
