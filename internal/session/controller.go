// Package session implements the ordering workflow's state machine. The
// controller owns the logged-in identity and exposes one method per
// transition; the terminal layer loops over the current state, renders it
// and feeds validated input back in. Invalid input returns a typed error
// and leaves the state unchanged; nothing here recurses or blocks.
package session

import (
	"fmt"

	"minimart/internal/apperr"
	"minimart/internal/dto"
	"minimart/internal/model"
	"minimart/internal/service"
)

// State is the controller's position in the ordering workflow.
type State int

const (
	StateLoggedOut State = iota
	StateLoggedIn
	StateBrowsing
	StateCartReview
	StatePaying
	StateReceiptShown
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggedIn:
		return "logged_in"
	case StateBrowsing:
		return "browsing"
	case StateCartReview:
		return "cart_review"
	case StatePaying:
		return "paying"
	case StateReceiptShown:
		return "receipt_shown"
	}
	return "unknown"
}

// Controller drives the LoggedOut → LoggedIn → Browsing → CartReview →
// Paying → ReceiptShown cycle.
type Controller struct {
	state    State
	identity model.Credential
	category string
	receipt  *model.Receipt

	auth     service.AuthService
	catalog  service.CatalogService
	cart     service.CartService
	checkout service.CheckoutService
}

func NewController(
	auth service.AuthService,
	catalog service.CatalogService,
	cart service.CartService,
	checkout service.CheckoutService,
) *Controller {
	return &Controller{
		state:    StateLoggedOut,
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
	}
}

func (c *Controller) State() State               { return c.state }
func (c *Controller) Identity() model.Credential { return c.identity }
func (c *Controller) Category() string           { return c.category }

// LastReceipt is the receipt of the most recent checkout, shown in the
// ReceiptShown state.
func (c *Controller) LastReceipt() *model.Receipt { return c.receipt }

func (c *Controller) require(states ...State) error {
	for _, s := range states {
		if c.state == s {
			return nil
		}
	}
	return fmt.Errorf("%w: not allowed while %s", apperr.ErrInvalidMenuChoice, c.state)
}

// LoggedOut transitions.

func (c *Controller) Login(username, password string) error {
	if err := c.require(StateLoggedOut); err != nil {
		return err
	}
	cred, err := c.auth.Login(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	c.identity = cred
	c.state = StateLoggedIn
	return nil
}

func (c *Controller) Signup(username, password string) error {
	if err := c.require(StateLoggedOut); err != nil {
		return err
	}
	cred, err := c.auth.Signup(dto.SignupRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	// The new identity becomes the active session.
	c.identity = cred
	c.state = StateLoggedIn
	return nil
}

// LoggedIn transitions.

func (c *Controller) UpdateAccount(username, password string) error {
	if err := c.require(StateLoggedIn); err != nil {
		return err
	}
	cred, err := c.auth.UpdateAccount(c.identity.ID, dto.UpdateAccountRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}
	c.identity = cred
	return nil
}

func (c *Controller) Menu() ([]dto.CategoryOption, error) {
	return c.catalog.Menu()
}

func (c *Controller) SelectCategory(key string) error {
	if err := c.require(StateLoggedIn); err != nil {
		return err
	}
	for _, opt := range c.catalog.Categories() {
		if opt == key {
			c.category = key
			c.state = StateBrowsing
			return nil
		}
	}
	return apperr.ErrInvalidMenuChoice
}

func (c *Controller) Logout() error {
	if err := c.require(StateLoggedIn); err != nil {
		return err
	}
	c.identity = model.Credential{}
	c.state = StateLoggedOut
	return nil
}

// Browsing transitions.

func (c *Controller) BrowseView() (*dto.CatalogView, error) {
	if err := c.require(StateBrowsing); err != nil {
		return nil, err
	}
	return c.catalog.Browse(c.category)
}

// AddToCart reserves stock and appends a line item; the controller stays in
// Browsing so repeated adds loop naturally.
func (c *Controller) AddToCart(productIndex, qty int) (model.CartItem, error) {
	if err := c.require(StateBrowsing); err != nil {
		return model.CartItem{}, err
	}
	return c.cart.Add(c.identity.Username, dto.AddToCartRequest{
		Category:     c.category,
		ProductIndex: productIndex,
		Quantity:     qty,
	})
}

// Back returns from Browsing or CartReview to the main menu.
func (c *Controller) Back() error {
	if err := c.require(StateBrowsing, StateCartReview); err != nil {
		return err
	}
	c.category = ""
	c.state = StateLoggedIn
	return nil
}

// CartReview transitions.

// ViewCart enters cart review; the original allowed it both from the main
// menu and while browsing a category.
func (c *Controller) ViewCart() error {
	if err := c.require(StateLoggedIn, StateBrowsing); err != nil {
		return err
	}
	c.category = ""
	c.state = StateCartReview
	return nil
}

func (c *Controller) CartView() (*dto.CartView, error) {
	if err := c.require(StateCartReview, StatePaying); err != nil {
		return nil, err
	}
	return c.cart.View(c.identity.Username)
}

func (c *Controller) RemoveItem(position int) (model.CartItem, error) {
	if err := c.require(StateCartReview); err != nil {
		return model.CartItem{}, err
	}
	return c.cart.Remove(c.identity.Username, position)
}

// Checkout moves to payment; an empty cart is rejected and the state is
// unchanged.
func (c *Controller) Checkout() error {
	if err := c.require(StateCartReview); err != nil {
		return err
	}
	cart, err := c.cart.View(c.identity.Username)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return apperr.ErrEmptyCart
	}
	c.state = StatePaying
	return nil
}

// Paying transitions.

// Confirm completes the purchase: builds the receipt, clears the cart and
// shows the receipt.
func (c *Controller) Confirm(method model.PaymentMethod) error {
	if err := c.require(StatePaying); err != nil {
		return err
	}
	switch method {
	case model.PaymentCreditCard, model.PaymentOnlineBanking:
	default:
		return apperr.ErrInvalidMenuChoice
	}

	receipt, err := c.checkout.Checkout(c.identity.Username, method)
	if err != nil {
		return err
	}
	c.receipt = receipt
	c.state = StateReceiptShown
	return nil
}

// ReceiptShown transitions.

func (c *Controller) Acknowledge() error {
	if err := c.require(StateReceiptShown); err != nil {
		return err
	}
	c.state = StateLoggedIn
	return nil
}
