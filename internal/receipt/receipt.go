// Package receipt builds receipt numbers and the fixed-width printed layout.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/money"
)

const (
	// Width is the printable width of a receipt line.
	Width = 30

	// Prefix starts every receipt number.
	Prefix = "CS"

	// TimeLayout is used for the issue time printed on receipts.
	TimeLayout = "02 Jan 06 15:04"

	dayLayout  = "020106"
	labelWidth = 25
	nameWidth  = 20
	amountCol  = 7
)

// DayKey returns the ddmmyy key under which t's receipt counter is stored.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// Number formats a receipt number as CS/ddmmyy/NNNN.
func Number(day time.Time, seq int64) string {
	return fmt.Sprintf("%s/%s/%04d", Prefix, DayKey(day), seq)
}

// Lines renders r in the 30 column receipt layout.
func Lines(storeName string, r models.Receipt) []string {
	ts := r.IssuedAt.Format(TimeLayout)
	single := strings.Repeat("-", Width)
	double := strings.Repeat("=", Width)

	out := make([]string, 0, len(r.Lines)+14)
	out = append(out,
		center(storeName, Width),
		double,
		"Receipt : "+r.Number,
		"Time    : "+ts,
		single,
	)

	for _, l := range r.Lines {
		out = append(out, fmt.Sprintf("%d %-*s %*s", l.Qty, nameWidth, l.Name, amountCol, money.Format(l.Total())))
	}

	out = append(out,
		single,
		amountLine(fmt.Sprintf("Subtotal %d Items", len(r.Lines)), r.Total),
		amountLine("Total Due", r.Total),
		"",
		"Debit/Credit Card",
		amountLine("Total Paid", r.Total),
		double,
		"Paid "+ts,
		"Printed by: "+r.Cashier,
	)
	return out
}

// Text joins receipt lines with newlines.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}

func amountLine(label string, amount int64) string {
	return fmt.Sprintf("%-*s%*s", labelWidth, label, amountCol, money.Format(amount))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
