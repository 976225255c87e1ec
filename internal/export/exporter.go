package export

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/receipt"
)

// Exporter renders receipts and reports and writes them to a Store.
type Exporter struct {
	store Store
}

func NewExporter(store Store) *Exporter {
	return &Exporter{store: store}
}

// ReceiptFileBase turns a receipt number into a file name stem,
// e.g. CS/070324/0001 -> receipt-CS_070324_0001.
func ReceiptFileBase(number string) string {
	return "receipt-" + strings.ReplaceAll(number, "/", "_")
}

// Receipt writes the receipt as .txt and .pdf and returns their locations.
func (e *Exporter) Receipt(ctx context.Context, number string, lines []string) ([]string, error) {
	pdf, err := ReceiptPDF(lines)
	if err != nil {
		return nil, err
	}

	base := ReceiptFileBase(number)
	return e.putAll(ctx, []file{
		{name: base + ".txt", data: []byte(receipt.Text(lines) + "\n")},
		{name: base + ".pdf", data: pdf},
	})
}

// Sales writes the rows as .csv and .pdf named after slug.
func (e *Exporter) Sales(ctx context.Context, slug string, rows []models.SaleLine) ([]string, error) {
	csvData, err := SalesCSV(rows)
	if err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	pdf, err := SalesPDF(rows)
	if err != nil {
		return nil, err
	}

	base := "sales-" + slug
	return e.putAll(ctx, []file{
		{name: base + ".csv", data: csvData},
		{name: base + ".pdf", data: pdf},
	})
}

type file struct {
	name string
	data []byte
}

func (e *Exporter) putAll(ctx context.Context, files []file) ([]string, error) {
	locs := make([]string, 0, len(files))
	for _, f := range files {
		loc, err := e.store.Put(ctx, f.name, f.data)
		if err != nil {
			return locs, fmt.Errorf("store %s: %w", f.name, err)
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".pdf":
		return "application/pdf"
	case ".csv":
		return "text/csv"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
