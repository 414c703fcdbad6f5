package dto

import "github.com/shopspring/decimal"

// SuggestionEntry pairs one producible product with its committed quantity.
type SuggestionEntry struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

// SuggestionResponse is the production-suggestion payload. Products is in
// planner commit order (highest price first, producible entries only).
type SuggestionResponse struct {
	Products   []SuggestionEntry `json:"products"`
	TotalValue decimal.Decimal   `json:"totalValue"`
}
