package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a finished good the factory can manufacture.
// Quantity is the informational on-hand count; it is never read by the
// production planner, which works exclusively from raw-material stock.
type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string          `gorm:"uniqueIndex;not null"`
	Name      string          `gorm:"index;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
