package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateRawMaterialRequest struct {
	Code          string `json:"code"          validate:"required,min=1,max=60"`
	Name          string `json:"name"          validate:"required,min=1,max=120"`
	StockQuantity int    `json:"stockQuantity" validate:"min=0"`
}

// UpdateRawMaterialRequest is a full-field replace, same shape as create.
type UpdateRawMaterialRequest struct {
	Code          string `json:"code"          validate:"required,min=1,max=60"`
	Name          string `json:"name"          validate:"required,min=1,max=120"`
	StockQuantity int    `json:"stockQuantity" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RawMaterialResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stockQuantity"`
}
