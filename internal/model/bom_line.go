package model

import (
	"time"

	"github.com/google/uuid"
)

// BOMLine links one Product to one RawMaterial: producing a single unit of
// the product consumes RequiredQuantity units of the material.
// The BOM table owns its rows — both parents are plain lookups, neither side
// holds a back-reference collection.
type BOMLine struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_bom_product_material"`
	RawMaterialID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_bom_product_material"`
	RequiredQuantity int       `gorm:"not null"`
	CreatedAt        time.Time

	Product     *Product     `gorm:"foreignKey:ProductID"`
	RawMaterial *RawMaterial `gorm:"foreignKey:RawMaterialID"`
}

// TableName overrides GORM's default pluralization (bom_lines, not bom_line_s).
func (BOMLine) TableName() string { return "bom_lines" }
