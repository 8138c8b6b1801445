// internal/domain/cart/errors.go
package cart

import "errors"

// Sentinel errors for cart operations. Callers classify with errors.Is;
// everything else coming out of this package wraps one of these or is a
// programming error.
var (
	// ErrNotFound means the referenced line item is not in the
	// session's cart. Cart absence itself is never an error.
	ErrNotFound = errors.New("cart item not found")

	// ErrValidation means the mutation input was rejected before
	// reaching persistence.
	ErrValidation = errors.New("invalid cart input")

	// ErrUnavailable means the persistence medium failed; the
	// operation did not apply and may be retried.
	ErrUnavailable = errors.New("cart storage unavailable")
)
