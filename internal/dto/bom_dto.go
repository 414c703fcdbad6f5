package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateBOMLineRequest struct {
	ProductID        string `json:"productId"        validate:"required,uuid"`
	RawMaterialID    string `json:"rawMaterialId"    validate:"required,uuid"`
	RequiredQuantity int    `json:"requiredQuantity" validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BOMLineResponse struct {
	ID               string               `json:"id"`
	Product          *ProductResponse     `json:"product"`
	RawMaterial      *RawMaterialResponse `json:"rawMaterial"`
	RequiredQuantity int                  `json:"requiredQuantity"`
}
