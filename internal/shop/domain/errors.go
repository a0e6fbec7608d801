package domain

import "errors"

var (
	// ErrInsufficientStock is returned when a requested quantity exceeds the
	// product's live stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned when a non-positive quantity is supplied.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrItemNotFound is returned when a cart operation references a line
	// that does not exist.
	ErrItemNotFound = errors.New("item not in cart")

	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
