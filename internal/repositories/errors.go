package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateKey is returned when a create would violate a uniqueness
	// rule (menu item id, coupon code).
	ErrDuplicateKey = errors.New("duplicate key violates uniqueness rule")
)
