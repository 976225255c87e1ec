package export

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/go-pdf/fpdf"
)

// pdfCompression is switched off in tests so page text can be inspected.
var pdfCompression = true

// SalesReportTitle heads the sales report PDF.
const SalesReportTitle = "Sales Report"

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(pdfCompression)
	pdf.AddPage()
	return pdf
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ReceiptPDF renders receipt lines in a fixed-width font, one cell per line.
func ReceiptPDF(lines []string) ([]byte, error) {
	pdf := newDocument()
	pdf.SetFont("Courier", "", 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range lines {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}

	return output(pdf)
}

// SalesPDF renders a centered title followed by one
// "timestamp | receipt | price x qty" line per row.
func SalesPDF(rows []models.SaleLine) ([]byte, error) {
	pdf := newDocument()
	pdf.SetFont("Arial", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.CellFormat(0, 10, SalesReportTitle, "", 1, "C", false, 0, "")

	for _, r := range rows {
		line := fmt.Sprintf("%s | %s | %d x %d", r.SoldAt.Format(TimeLayout), r.ReceiptNo, r.Price, r.Qty)
		pdf.CellFormat(0, 10, tr(line), "", 1, "L", false, 0, "")
	}

	return output(pdf)
}
