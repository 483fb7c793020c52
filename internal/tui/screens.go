package tui

import (
	"errors"
	"fmt"
	"strconv"

	"minimart/internal/apperr"
	"minimart/internal/model"
	"minimart/internal/view"
)

// ─── Logged out ──────────────────────────────────────────────────────────────

func (t *TUI) welcomeScreen() (bool, error) {
	t.banner("Welcome to Minimart")
	t.box(
		"     1. Login",
		"     2. Signup",
		"     3. Quit",
	)
	t.divider('=')

	choice, ok := t.readLine("Enter your choice: ")
	if !ok {
		return true, nil
	}
	switch choice {
	case "1":
		t.current = screenLogin
	case "2":
		t.current = screenSignup
	case "3":
		return true, nil
	default:
		t.setFlash("Invalid option")
	}
	return false, nil
}

func (t *TUI) loginScreen() (bool, error) {
	t.banner("Login Page")

	username, ok := t.readLine("Username : ")
	if !ok {
		return true, nil
	}
	password, ok := t.readLine("Password : ")
	if !ok {
		return true, nil
	}

	if err := t.ctrl.Login(username, password); err != nil {
		t.flashErr(err)
		// Bad credentials return to the welcome page; a format error
		// re-prompts the same page.
		if errors.Is(err, apperr.ErrAuthFailure) {
			t.current = screenWelcome
		}
		return false, nil
	}

	t.setFlash("Login successful!")
	t.current = screenMain
	return false, nil
}

func (t *TUI) signupScreen() (bool, error) {
	t.banner("Signup Page")

	username, ok := t.readLine("New username : ")
	if !ok {
		return true, nil
	}
	password, ok := t.readLine("New password : ")
	if !ok {
		return true, nil
	}

	if err := t.ctrl.Signup(username, password); err != nil {
		t.flashErr(err)
		return false, nil
	}

	t.setFlash("Account set up successfully")
	t.current = screenMain
	return false, nil
}

// ─── Logged in ───────────────────────────────────────────────────────────────

func (t *TUI) mainScreen() (bool, error) {
	t.banner("Main Page")
	t.box(
		"     1. Menu",
		"     2. Account",
		"     3. Cart",
		"     4. Logout",
	)
	t.divider('=')

	choice, ok := t.readLine("Enter your choice: ")
	if !ok {
		return true, nil
	}
	switch choice {
	case "1":
		t.current = screenMenu
	case "2":
		t.current = screenAccount
	case "3":
		if err := t.ctrl.ViewCart(); err != nil {
			t.flashErr(err)
		}
	case "4":
		if err := t.ctrl.Logout(); err != nil {
			t.flashErr(err)
		}
		t.current = screenWelcome
	default:
		t.setFlash("Invalid option")
	}
	return false, nil
}

func (t *TUI) accountScreen() (bool, error) {
	identity := t.ctrl.Identity()

	t.banner("Account Page")
	t.box(
		"     Username : "+identity.Username,
		"     Password : "+identity.Password,
	)
	t.divider('-')
	t.line("     1. Change account info")
	t.line("     2. Back to previous page")
	t.divider('=')

	choice, ok := t.readLine("Enter your choice: ")
	if !ok {
		return true, nil
	}
	switch choice {
	case "1":
		username, ok := t.readLine("Enter new username : ")
		if !ok {
			return true, nil
		}
		password, ok := t.readLine("Enter new password : ")
		if !ok {
			return true, nil
		}
		if err := t.ctrl.UpdateAccount(username, password); err != nil {
			t.flashErr(err)
		} else {
			t.setFlash("Account info changed successfully")
		}
	case "2":
		t.current = screenMain
	default:
		t.setFlash("Invalid option")
	}
	return false, nil
}

func (t *TUI) menuScreen() (bool, error) {
	options, err := t.ctrl.Menu()
	if err != nil {
		t.flashErr(err)
		t.current = screenMain
		return false, nil
	}

	t.banner("Menu Page")
	lines := []string{"   Categories:"}
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("     %d. %s", i+1, opt.Label))
	}
	t.box(lines...)
	t.divider('-')
	t.line("   Press (b): Back to previous page")
	t.line("   Press (p): Proceed to checkout")
	t.divider('=')

	choice, ok := t.readLine("Enter your choice: ")
	if !ok {
		return true, nil
	}
	switch choice {
	case "b":
		t.current = screenMain
	case "p":
		if err := t.ctrl.ViewCart(); err != nil {
			t.flashErr(err)
		}
	default:
		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(options) {
			t.setFlash("Invalid option")
			return false, nil
		}
		if err := t.ctrl.SelectCategory(options[n-1].Key); err != nil {
			t.flashErr(err)
		}
	}
	return false, nil
}

// ─── Browsing ────────────────────────────────────────────────────────────────

var productColumns = []view.Column[model.Product]{
	{Label: "No.", Width: 3, Align: view.AlignLeft, Value: func(p model.Product) string { return strconv.Itoa(p.ID) }},
	{Label: "Item", Width: 20, Align: view.AlignLeft, Value: func(p model.Product) string { return p.Name }},
	{Label: "Qty", Width: 4, Align: view.AlignRight, Value: func(p model.Product) string { return strconv.Itoa(p.Quantity) }},
	{Label: "Price", Width: 6, Align: view.AlignRight, Value: func(p model.Product) string { return p.Price.StringFixed(2) }},
}

func (t *TUI) productScreen() (bool, error) {
	listing, err := t.ctrl.BrowseView()
	if err != nil {
		t.flashErr(err)
		if backErr := t.ctrl.Back(); backErr != nil {
			return false, backErr
		}
		return false, nil
	}

	t.banner(listing.Label)
	fmt.Fprintln(t.out, view.Header(productColumns, t.width))
	t.divider('-')
	t.line("")
	for _, row := range view.Rows(productColumns, listing.Products, t.width) {
		fmt.Fprintln(t.out, row)
	}
	t.line("")
	t.divider('-')
	t.line("   Press (b): Back to previous page")
	t.divider('=')

	choice, ok := t.readLine("Enter your choice: ")
	if !ok {
		return true, nil
	}
	if choice == "b" {
		if err := t.ctrl.Back(); err != nil {
			t.flashErr(err)
		}
		t.current = screenMenu
		return false, nil
	}

	index, convErr := strconv.Atoi(choice)
	if convErr != nil {
		t.setFlash("Invalid option")
		return false, nil
	}

	qtyText, ok := t.readLine("Enter the quantity: ")
	if !ok {
		return true, nil
	}
	qty, convErr := strconv.Atoi(qtyText)
	if convErr != nil {
		t.setFlash("Invalid option")
		return false, nil
	}

	item, err := t.ctrl.AddToCart(index, qty)
	if err != nil {
		t.flashErr(err)
		return false, nil
	}
	t.setFlash(fmt.Sprintf("%s x%d added to cart", item.Name, item.Quantity))
	return false, nil
}

// ─── Cart review ─────────────────────────────────────────────────────────────

var cartColumns = []view.Column[model.CartItem]{
	{Label: "No.", Width: 3, Align: view.AlignLeft, Value: func(i model.CartItem) string { return strconv.Itoa(i.ID) }},
	{Label: "Item", Width: 20, Align: view.AlignLeft, Value: func(i model.CartItem) string { return i.Name }},
	{Label: "Qty", Width: 4, Align: view.AlignRight, Value: func(i model.CartItem) string { return strconv.Itoa(i.Quantity) }},
	{Label: "Price", Width: 6, Align: view.AlignRight, Value: func(i model.CartItem) string { return i.Price.StringFixed(2) }},
	{Label: "Amount", Width: 6, Align: view.AlignRight, Value: func(i model.CartItem) string { return i.Amount.StringFixed(2) }},
}

func (t *TUI) cartScreen() (bool, error) {
	cart, err := t.ctrl.CartView()
	if err != nil {
		t.flashErr(err)
		if backErr := t.ctrl.Back(); backErr != nil {
			return false, backErr
		}
		return false, nil
	}

	t.banner("Cart Page")
	fmt.Fprintln(t.out, view.Header(cartColumns, t.width))
	t.divider('-')
	t.line("")
	for _, row := range view.Rows(cartColumns, cart.Items, t.width) {
		fmt.Fprintln(t.out, row)
	}
	t.line("")
	t.divider('-')
	t.line("   Total Amount : " + cart.Total.StringFixed(2))
	t.divider('-')
	t.line("   Press (p): Proceed to checkout")
	t.line("   Press (b): Back to previous page")
	t.divider('=')

	choice, ok := t.readLine("Enter number to unselect product, or choice: ")
	if !ok {
		return true, nil
	}
	switch choice {
	case "p":
		if err := t.ctrl.Checkout(); err != nil {
			t.flashErr(err)
		}
	case "b":
		if err := t.ctrl.Back(); err != nil {
			t.flashErr(err)
		}
	default:
		pos, convErr := strconv.Atoi(choice)
		if convErr != nil {
			t.setFlash("Invalid option")
			return false, nil
		}
		if _, err := t.ctrl.RemoveItem(pos); err != nil {
			t.flashErr(err)
		} else {
			t.setFlash("Item has been removed")
		}
	}
	return false, nil
}

// ─── Paying ──────────────────────────────────────────────────────────────────

func (t *TUI) paymentScreen() (bool, error) {
	t.banner("Payment Page")
	t.box(
		"     1. Credit Card",
		"     2. Online Banking",
	)
	t.divider('=')

	choice, ok := t.readLine("Enter your choice: ")
	if !ok {
		return true, nil
	}

	var method model.PaymentMethod
	switch choice {
	case "1":
		method = model.PaymentCreditCard
	case "2":
		method = model.PaymentOnlineBanking
	default:
		t.setFlash("Invalid option")
		return false, nil
	}

	if err := t.ctrl.Confirm(method); err != nil {
		t.flashErr(err)
	}
	return false, nil
}

// ─── Receipt ─────────────────────────────────────────────────────────────────

func (t *TUI) receiptScreen() (bool, error) {
	receipt := t.ctrl.LastReceipt()

	t.banner("Receipt")
	if receipt != nil {
		t.line("   Receipt : " + receipt.ID.String()[:8])
		t.line("   Date    : " + receipt.IssuedAt.Format("02/01/2006 15:04"))
		t.divider('-')
		fmt.Fprintln(t.out, view.Header(cartColumns, t.width))
		for _, row := range view.Rows(cartColumns, receipt.Lines, t.width) {
			fmt.Fprintln(t.out, row)
		}
		t.divider('-')
		t.line("   Total Amount : " + receipt.Total.StringFixed(2))
		t.line("   Paid by      : " + receipt.Method.Label())
	}
	t.divider('=')

	if _, ok := t.readLine("Press Enter to continue..."); !ok {
		return true, nil
	}
	if err := t.ctrl.Acknowledge(); err != nil {
		t.flashErr(err)
	}
	t.current = screenMain
	return false, nil
}
