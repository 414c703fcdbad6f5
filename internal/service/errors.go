package service

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP outcomes by the handlers. Services never
// let raw storage errors leak upward as client-visible failures.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateCode    = errors.New("code already in use")
	ErrMaterialNotFound = errors.New("raw material not found")
	ErrProductNotFound  = errors.New("product not found")
)

// InsufficientStockError rejects a BOM association requesting more units
// than the material currently has in stock. The check is advisory and
// point-in-time: it does not reserve stock.
type InsufficientStockError struct {
	Required  int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Required: %d units, Available: %d units", e.Required, e.Available)
}
