package planner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockplan/internal/model"
)

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func product(code, p string) model.Product {
	return model.Product{ID: uuid.New(), Code: code, Name: code, Price: price(p)}
}

func line(productID, materialID uuid.UUID, required int) model.BOMLine {
	return model.BOMLine{ID: uuid.New(), ProductID: productID, RawMaterialID: materialID, RequiredQuantity: required}
}

// The worked example: A(price 500, needs 2×M1), B(price 300, needs 1×M1),
// M1 stock = 5. A gets floor(5/2)=2 (consumes 4), B gets floor(1/1)=1,
// total 1300, order [A:2, B:1].
func TestSuggestSharedMaterialDepletion(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 5}
	a := product("A", "500")
	b := product("B", "300")

	lines := map[uuid.UUID][]model.BOMLine{
		a.ID: {line(a.ID, m1.ID, 2)},
		b.ID: {line(b.ID, m1.ID, 1)},
	}

	allocations, total := Suggest([]model.Product{b, a}, lines, NewLedger([]model.RawMaterial{m1}))

	require.Len(t, allocations, 2)
	assert.Equal(t, "A", allocations[0].Product.Code)
	assert.Equal(t, 2, allocations[0].Quantity)
	assert.Equal(t, "B", allocations[1].Product.Code)
	assert.Equal(t, 1, allocations[1].Quantity)
	assert.True(t, total.Equal(price("1300")), "total = %s", total)
}

func TestSuggestSkipsProductsWithoutBOMLines(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 100}
	qty := 50
	c := product("C", "999")
	c.Quantity = &qty // on-hand count is informational only
	d := product("D", "10")

	lines := map[uuid.UUID][]model.BOMLine{
		d.ID: {line(d.ID, m1.ID, 1)},
	}

	allocations, total := Suggest([]model.Product{c, d}, lines, NewLedger([]model.RawMaterial{m1}))

	require.Len(t, allocations, 1)
	assert.Equal(t, "D", allocations[0].Product.Code)
	assert.Equal(t, 100, allocations[0].Quantity)
	assert.True(t, total.Equal(price("1000")))
}

func TestSuggestEmptyInputs(t *testing.T) {
	allocations, total := Suggest(nil, nil, NewLedger(nil))
	assert.Empty(t, allocations)
	assert.True(t, total.IsZero())
}

func TestSuggestNoMaterialsInStock(t *testing.T) {
	a := product("A", "100")
	// BOM line references a material absent from the ledger: available
	// defaults to 0 and the product is simply omitted.
	lines := map[uuid.UUID][]model.BOMLine{
		a.ID: {line(a.ID, uuid.New(), 3)},
	}

	allocations, total := Suggest([]model.Product{a}, lines, NewLedger(nil))
	assert.Empty(t, allocations)
	assert.True(t, total.IsZero())
}

func TestSuggestUnproducibleDoesNotConsume(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 5}
	m2 := model.RawMaterial{ID: uuid.New(), Code: "M2", StockQuantity: 0}

	// The expensive product needs M2 which has no stock, so it commits
	// nothing — and must leave M1 untouched for the cheaper product.
	expensive := product("EXP", "1000")
	cheap := product("CHP", "50")

	lines := map[uuid.UUID][]model.BOMLine{
		expensive.ID: {line(expensive.ID, m1.ID, 1), line(expensive.ID, m2.ID, 1)},
		cheap.ID:     {line(cheap.ID, m1.ID, 1)},
	}

	allocations, total := Suggest([]model.Product{expensive, cheap}, lines, NewLedger([]model.RawMaterial{m1, m2}))

	require.Len(t, allocations, 1)
	assert.Equal(t, "CHP", allocations[0].Product.Code)
	assert.Equal(t, 5, allocations[0].Quantity)
	assert.True(t, total.Equal(price("250")))
}

func TestSuggestStableOrderOnEqualPrices(t *testing.T) {
	// Each product caps on its own material so earlier commits cannot
	// starve later ones: any reordering here comes from the sort alone.
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 10}
	m2 := model.RawMaterial{ID: uuid.New(), Code: "M2", StockQuantity: 10}
	m3 := model.RawMaterial{ID: uuid.New(), Code: "M3", StockQuantity: 10}

	first := product("FIRST", "100")
	second := product("SECOND", "100")
	third := product("THIRD", "100")
	products := []model.Product{first, second, third}

	lines := map[uuid.UUID][]model.BOMLine{
		first.ID:  {line(first.ID, m1.ID, 10)},
		second.ID: {line(second.ID, m2.ID, 10)},
		third.ID:  {line(third.ID, m3.ID, 10)},
	}

	allocations, _ := Suggest(products, lines, NewLedger([]model.RawMaterial{m1, m2, m3}))

	require.Len(t, allocations, 3)
	assert.Equal(t, "FIRST", allocations[0].Product.Code)
	assert.Equal(t, "SECOND", allocations[1].Product.Code)
	assert.Equal(t, "THIRD", allocations[2].Product.Code)
	for _, alloc := range allocations {
		assert.Equal(t, 1, alloc.Quantity)
	}
}

func TestSuggestOutputOrderNonIncreasingByPrice(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 1000}

	products := []model.Product{
		product("P10", "10"), product("P500", "500"),
		product("P50", "50"), product("P500B", "500"),
	}
	lines := make(map[uuid.UUID][]model.BOMLine)
	for _, p := range products {
		lines[p.ID] = []model.BOMLine{line(p.ID, m1.ID, 100)}
	}

	allocations, _ := Suggest(products, lines, NewLedger([]model.RawMaterial{m1}))

	for i := 1; i < len(allocations); i++ {
		assert.True(t, allocations[i-1].Product.Price.GreaterThanOrEqual(allocations[i].Product.Price),
			"output order must be non-increasing by price")
	}
}

// Conservation law: per material, the committed consumption never exceeds
// starting stock.
func TestSuggestConservation(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 17}
	m2 := model.RawMaterial{ID: uuid.New(), Code: "M2", StockQuantity: 9}

	a := product("A", "75.50")
	b := product("B", "75.50")
	c := product("C", "12.25")

	lines := map[uuid.UUID][]model.BOMLine{
		a.ID: {line(a.ID, m1.ID, 3), line(a.ID, m2.ID, 2)},
		b.ID: {line(b.ID, m1.ID, 2)},
		c.ID: {line(c.ID, m1.ID, 1), line(c.ID, m2.ID, 1)},
	}

	allocations, total := Suggest([]model.Product{a, b, c}, lines, NewLedger([]model.RawMaterial{m1, m2}))

	consumed := make(map[uuid.UUID]int)
	expectedTotal := decimal.Zero
	for _, alloc := range allocations {
		for _, ln := range lines[alloc.Product.ID] {
			consumed[ln.RawMaterialID] += ln.RequiredQuantity * alloc.Quantity
		}
		expectedTotal = expectedTotal.Add(alloc.Product.Price.Mul(decimal.NewFromInt(int64(alloc.Quantity))))
	}

	assert.LessOrEqual(t, consumed[m1.ID], 17)
	assert.LessOrEqual(t, consumed[m2.ID], 9)
	assert.True(t, total.Equal(expectedTotal), "total must equal decimal sum of price × quantity")
}

func TestSuggestIdempotentAcrossFreshLedgers(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 42}
	materials := []model.RawMaterial{m1}

	a := product("A", "9.99")
	b := product("B", "19.99")
	products := []model.Product{a, b}

	lines := map[uuid.UUID][]model.BOMLine{
		a.ID: {line(a.ID, m1.ID, 4)},
		b.ID: {line(b.ID, m1.ID, 5)},
	}

	first, firstTotal := Suggest(products, lines, NewLedger(materials))
	second, secondTotal := Suggest(products, lines, NewLedger(materials))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Product.ID, second[i].Product.ID)
		assert.Equal(t, first[i].Quantity, second[i].Quantity)
	}
	assert.True(t, firstTotal.Equal(secondTotal))
}

func TestSuggestSkipsNonPositiveRequiredQuantity(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 100}

	bad := product("BAD", "500")
	good := product("GOOD", "100")

	lines := map[uuid.UUID][]model.BOMLine{
		bad.ID:  {line(bad.ID, m1.ID, 0)}, // invariant violated upstream
		good.ID: {line(good.ID, m1.ID, 2)},
	}

	allocations, total := Suggest([]model.Product{bad, good}, lines, NewLedger([]model.RawMaterial{m1}))

	require.Len(t, allocations, 1)
	assert.Equal(t, "GOOD", allocations[0].Product.Code)
	assert.Equal(t, 50, allocations[0].Quantity)
	assert.True(t, total.Equal(price("5000")))
}

func TestSuggestDecimalPrecision(t *testing.T) {
	m1 := model.RawMaterial{ID: uuid.New(), Code: "M1", StockQuantity: 3}

	// 0.10 × 3 must be exactly 0.30 — no binary floating point drift.
	p := product("TENTH", "0.10")
	lines := map[uuid.UUID][]model.BOMLine{
		p.ID: {line(p.ID, m1.ID, 1)},
	}

	_, total := Suggest([]model.Product{p}, lines, NewLedger([]model.RawMaterial{m1}))
	assert.True(t, total.Equal(price("0.30")), "total = %s", total)
}
