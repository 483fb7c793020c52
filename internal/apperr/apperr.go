// Package apperr defines the canonical error kinds surfaced by the ordering
// workflow. Every failure shown to the user goes through one of these
// sentinels so the terminal layer can branch with errors.Is and never leaks
// internal details (file paths, decode errors, etc.).
package apperr

import "errors"

var (
	// ErrInvalidCredential reports a username/password that fails the
	// format rules (length, whitespace). The caller re-prompts.
	ErrInvalidCredential = errors.New("invalid credential format")

	// ErrAuthFailure reports a login attempt with no matching credential.
	ErrAuthFailure = errors.New("invalid username or password")

	// ErrUsernameTaken reports a signup with an already registered username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidMenuChoice reports input outside the current menu's options.
	ErrInvalidMenuChoice = errors.New("invalid option")

	// ErrEmptyCart blocks checkout on a cart with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductIndexOutOfRange reports an add/remove with a position
	// outside the listed range.
	ErrProductIndexOutOfRange = errors.New("product index out of range")

	// ErrInsufficientStock blocks an add-to-cart that would drive the
	// catalog quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStorageUnavailable reports an unreadable or missing data file.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound is the generic lookup miss returned by the stores.
	ErrNotFound = errors.New("not found")
)
