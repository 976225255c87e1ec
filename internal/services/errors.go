package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophpos/internal/common"
)

var (
	ErrEmptyField         = fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	ErrPasswordMismatch   = fmt.Errorf("%w: password confirmation does not match", common.ErrorValidation)
	ErrInvalidQuantity    = fmt.Errorf("%w: quantity must be positive", common.ErrorValidation)
	ErrInvalidFilter      = fmt.Errorf("%w: invalid report filter", common.ErrorValidation)
	ErrUserExists         = fmt.Errorf("username already taken: %w", common.ErrorAlreadyExists)
	ErrInvalidCredentials = fmt.Errorf("invalid username or password: %w", common.ErrorUnauthorized)
	ErrProductNotFound    = fmt.Errorf("product %w", common.ErrorNotFound)
	ErrEmptyCart          = errors.New("cart is empty")
)

// InsufficientStockError reports the cart line that could not be fulfilled.
// It matches common.ErrInsufficientStock with errors.Is.
type InsufficientStockError struct {
	Product   string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Product, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return common.ErrInsufficientStock
}
