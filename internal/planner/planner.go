// Package planner implements the production-suggestion computation: a
// deterministic, single-pass greedy allocation of raw-material stock to
// products ordered by unit price. Greedy-by-price is a local heuristic, not
// a global optimum — once a quantity is committed it is never reconsidered.
package planner

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockplan/internal/model"
)

// Allocation pairs a product with the quantity the planner committed for it.
type Allocation struct {
	Product  model.Product
	Quantity int
}

// unbounded marks a product whose buildable quantity no BOM line has capped
// yet. A product that finishes the line loop still unbounded has no BOM
// lines at all and is skipped — it is not treated as infinitely producible.
const unbounded = math.MaxInt

// Suggest runs one greedy planning pass. Products are evaluated from highest
// to lowest price (stable on ties); each committed allocation consumes stock
// from the ledger before the next product is evaluated. The returned slice
// is in commit order and the total is the exact decimal sum of
// price × quantity over all allocations.
func Suggest(products []model.Product, lines map[uuid.UUID][]model.BOMLine, ledger *Ledger) ([]Allocation, decimal.Decimal) {
	ordered := make([]model.Product, len(products))
	copy(ordered, products)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Price.GreaterThan(ordered[j].Price)
	})

	allocations := make([]Allocation, 0, len(ordered))
	total := decimal.Zero

	for _, p := range ordered {
		maxQty := unbounded
		for _, ln := range lines[p.ID] {
			if ln.RequiredQuantity <= 0 {
				// Invariant requiredQuantity > 0 is enforced at association
				// time; if a bad row slips through, skip the product instead
				// of dividing by zero.
				maxQty = 0
				break
			}
			if q := ledger.Available(ln.RawMaterialID) / ln.RequiredQuantity; q < maxQty {
				maxQty = q
			}
		}
		if maxQty == 0 || maxQty == unbounded {
			continue
		}

		for _, ln := range lines[p.ID] {
			ledger.Consume(ln.RawMaterialID, ln.RequiredQuantity*maxQty)
		}
		allocations = append(allocations, Allocation{Product: p, Quantity: maxQty})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(maxQty))))
	}

	return allocations, total
}
