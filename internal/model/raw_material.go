package model

import (
	"time"

	"github.com/google/uuid"
)

// RawMaterial is an input consumed when manufacturing products.
// StockQuantity is the single source of truth for available units;
// planning never writes it back.
type RawMaterial struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code          string    `gorm:"uniqueIndex;not null"`
	Name          string    `gorm:"index;not null"`
	StockQuantity int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default pluralization (raw_materials, not raw_material).
func (RawMaterial) TableName() string { return "raw_materials" }
