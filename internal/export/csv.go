package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/dmitrijs2005/gophpos/internal/models"
)

// TimeLayout is used for sale timestamps in CSV and PDF exports.
const TimeLayout = "2006-01-02 15:04:05"

// SalesHeader matches the sales table column names.
var SalesHeader = []string{"id", "name", "price", "qty", "cashier", "sold_at", "receipt_no"}

// SalesCSV renders rows with a SalesHeader header line.
func SalesCSV(rows []models.SaleLine) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(SalesHeader); err != nil {
		return nil, err
	}

	for _, r := range rows {
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			strconv.FormatInt(r.Price, 10),
			strconv.FormatInt(r.Qty, 10),
			r.Cashier,
			r.SoldAt.Format(TimeLayout),
			r.ReceiptNo,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
