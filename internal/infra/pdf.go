package infra

// pdf.go — Production-suggestion report rendering using go-pdf/fpdf.
// Generates an A4 report with a table of suggested (product, quantity)
// rows and a bold grand total. The PDF is a display artifact: all numbers
// come from the planner result, nothing is recomputed here.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"stockplan/internal/dto"
)

// truncateName shortens a display name to max runes. Counting runes, not
// bytes, so a multibyte name is never cut mid-character.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}

// GenerateSuggestionPDF renders a production-suggestion result as a PDF.
func GenerateSuggestionPDF(suggestion *dto.SuggestionResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Production Suggestion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.18 // code
	col2 := contentW * 0.40 // name
	col3 := contentW * 0.16 // unit price
	col4 := contentW * 0.10 // qty
	col5 := contentW * 0.16 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Code", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "Unit price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col5, 7, "Total", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range suggestion.Products {
		name := truncateName(entry.Product.Name, 40)
		lineTotal := entry.Product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		pdf.CellFormat(col1, 6, entry.Product.Code, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+entry.Product.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, fmt.Sprintf("x%d", entry.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col5, 6, "$"+lineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if len(suggestion.Products) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 8, "No producible products with current stock.", "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Grand total ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3+col4, 8, "TOTAL VALUE:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 8, "$"+suggestion.TotalValue.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
