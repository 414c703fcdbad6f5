package planner

import (
	"fmt"

	"github.com/google/uuid"

	"stockplan/internal/model"
)

// Ledger is a private, per-invocation working copy of raw-material stock.
// It is built from persisted quantities at the start of a planning pass and
// discarded afterwards — nothing here is ever written back to the store.
type Ledger struct {
	stock map[uuid.UUID]int
}

// NewLedger snapshots the current stock of the given materials.
func NewLedger(materials []model.RawMaterial) *Ledger {
	stock := make(map[uuid.UUID]int, len(materials))
	for _, m := range materials {
		stock[m.ID] = m.StockQuantity
	}
	return &Ledger{stock: stock}
}

// Available returns the remaining stock for a material. Unknown materials
// report zero stock — a BOM line pointing at a vanished material simply
// makes its product unbuildable instead of failing the whole pass.
func (l *Ledger) Available(materialID uuid.UUID) int {
	return l.stock[materialID]
}

// Consume decrements the remaining stock. The allocation rule guarantees the
// planner never commits more than Available, so a negative balance is a
// programming defect: panic rather than floor to zero and hide it.
func (l *Ledger) Consume(materialID uuid.UUID, amount int) {
	remaining := l.stock[materialID] - amount
	if remaining < 0 {
		panic(fmt.Sprintf("planner: ledger overdraw on material %s (have %d, consume %d)",
			materialID, l.stock[materialID], amount))
	}
	l.stock[materialID] = remaining
}
