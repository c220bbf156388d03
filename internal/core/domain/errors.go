package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the store wraps exactly one of these.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidState      = errors.New("invalid state")
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)

	ErrUnknownUserKind = fmt.Errorf("%w: unknown user kind, use 'customer' or 'administrator'", ErrInvalidArgument)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidArgument)
	ErrDuplicateItem   = fmt.Errorf("%w: product listed more than once", ErrInvalidArgument)

	ErrCustomersOnly = fmt.Errorf("%w: only customers can place orders", ErrPermissionDenied)
)

// ErrorReason maps err to a short, stable label suitable for metrics.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	default:
		return "internal"
	}
}
