// Package tui draws the terminal screens and drives the session controller.
// It is deliberately thin: one loop renders the screen for the current
// state, reads a line of input, hands it to the controller and repeats.
// Errors come back typed and are shown as a banner above the next screen.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"minimart/internal/apperr"
	"minimart/internal/session"
	"minimart/internal/view"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenMain
	screenAccount
	screenMenu
	screenProduct
	screenCart
	screenPayment
	screenReceipt
)

// TUI owns the input scanner and the active sub-screen. The controller owns
// everything that matters; the sub-screen only distinguishes pages that
// share a controller state (welcome/login/signup, main/account/menu).
type TUI struct {
	ctrl    *session.Controller
	in      *bufio.Scanner
	out     io.Writer
	width   int
	flash   string
	current screen
}

func New(ctrl *session.Controller, in io.Reader, out io.Writer, width int) *TUI {
	return &TUI{
		ctrl:    ctrl,
		in:      bufio.NewScanner(in),
		out:     out,
		width:   width,
		current: screenWelcome,
	}
}

// Run loops until the user quits or input is exhausted.
func (t *TUI) Run() error {
	for {
		quit, err := t.step()
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(t.out, "Goodbye!")
			return nil
		}
	}
}

func (t *TUI) step() (bool, error) {
	switch t.screen() {
	case screenWelcome:
		return t.welcomeScreen()
	case screenLogin:
		return t.loginScreen()
	case screenSignup:
		return t.signupScreen()
	case screenMain:
		return t.mainScreen()
	case screenAccount:
		return t.accountScreen()
	case screenMenu:
		return t.menuScreen()
	case screenProduct:
		return t.productScreen()
	case screenCart:
		return t.cartScreen()
	case screenPayment:
		return t.paymentScreen()
	case screenReceipt:
		return t.receiptScreen()
	}
	return true, nil
}

// screen reconciles the tui sub-screen with the controller state, which is
// authoritative.
func (t *TUI) screen() screen {
	switch t.ctrl.State() {
	case session.StateLoggedOut:
		if t.current == screenLogin || t.current == screenSignup {
			return t.current
		}
		return screenWelcome
	case session.StateLoggedIn:
		if t.current == screenAccount || t.current == screenMenu {
			return t.current
		}
		return screenMain
	case session.StateBrowsing:
		return screenProduct
	case session.StateCartReview:
		return screenCart
	case session.StatePaying:
		return screenPayment
	case session.StateReceiptShown:
		return screenReceipt
	}
	return screenWelcome
}

// ─── Input / output helpers ──────────────────────────────────────────────────

// readLine prompts and returns one trimmed input line; ok is false when
// input is exhausted (EOF), which quits the program.
func (t *TUI) readLine(prompt string) (string, bool) {
	fmt.Fprintf(t.out, "   %s", prompt)
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *TUI) banner(title string) {
	fmt.Fprintln(t.out)
	if t.flash != "" {
		fmt.Fprintln(t.out, view.Center(t.flash, t.width))
		t.flash = ""
	}
	fmt.Fprintln(t.out, view.Divider(t.width, '='))
	fmt.Fprintln(t.out, view.Center(title, t.width))
	fmt.Fprintln(t.out, view.Divider(t.width, '='))
}

func (t *TUI) box(lines ...string) {
	fmt.Fprintln(t.out, view.BoxLine("", t.width))
	for _, l := range lines {
		fmt.Fprintln(t.out, view.BoxLine(l, t.width))
	}
	fmt.Fprintln(t.out, view.BoxLine("", t.width))
}

func (t *TUI) divider(symbol byte) {
	fmt.Fprintln(t.out, view.Divider(t.width, symbol))
}

func (t *TUI) line(s string) {
	fmt.Fprintln(t.out, view.BoxLine(s, t.width))
}

// setFlash records a message shown above the next screen.
func (t *TUI) setFlash(msg string) { t.flash = msg }

// flashErr translates a typed error into the banner shown on re-render.
func (t *TUI) flashErr(err error) {
	switch {
	case errors.Is(err, apperr.ErrAuthFailure):
		t.flash = "Invalid username or password, please try again."
	case errors.Is(err, apperr.ErrInvalidCredential):
		t.flash = "Invalid credentials: " + afterColon(err.Error())
	case errors.Is(err, apperr.ErrUsernameTaken):
		t.flash = "That username is already taken."
	case errors.Is(err, apperr.ErrEmptyCart):
		t.flash = "Your cart is empty."
	case errors.Is(err, apperr.ErrProductIndexOutOfRange):
		t.flash = "No product with that number."
	case errors.Is(err, apperr.ErrInsufficientStock):
		t.flash = "Not enough stock for that quantity."
	case errors.Is(err, apperr.ErrStorageUnavailable):
		t.flash = "Data files are unavailable: " + err.Error()
	default:
		t.flash = "Invalid option"
	}
}

// afterColon strips the sentinel prefix from a wrapped error message.
func afterColon(msg string) string {
	if _, rest, ok := strings.Cut(msg, ": "); ok {
		return rest
	}
	return msg
}
