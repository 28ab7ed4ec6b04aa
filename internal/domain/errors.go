package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates the authenticated role lacks permission.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput indicates a malformed or out-of-range field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCart indicates a checkout attempt with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
