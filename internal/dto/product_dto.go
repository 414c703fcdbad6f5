package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Code     string          `json:"code"     validate:"required,min=1,max=60"`
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Price    decimal.Decimal `json:"price"    validate:"required,gt=0"`
	Quantity *int            `json:"quantity" validate:"omitempty,min=0"`
}

// UpdateProductRequest is a full-field replace — PUT semantics, no partials.
type UpdateProductRequest struct {
	Code     string          `json:"code"     validate:"required,min=1,max=60"`
	Name     string          `json:"name"     validate:"required,min=1,max=120"`
	Price    decimal.Decimal `json:"price"    validate:"required,gt=0"`
	Quantity *int            `json:"quantity" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity *int            `json:"quantity"`
}
