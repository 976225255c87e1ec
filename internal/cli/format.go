package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophpos/internal/export"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/money"
	"github.com/dmitrijs2005/gophpos/internal/services"
)

func formatMoney(n int64) string {
	return "Rp " + money.Format(n)
}

func printProducts(w io.Writer, ps []models.Product) {
	fmt.Fprintf(w, "%-5s %-24s %12s %6s\n", "ID", "Name", "Price", "Stock")
	for _, p := range ps {
		fmt.Fprintf(w, "%-5d %-24s %12s %6d\n", p.ID, p.Name, money.Format(p.Price), p.Stock)
	}
}

func printCart(w io.Writer, cart []models.CartLine, total int64) {
	for _, l := range cart {
		fmt.Fprintf(w, "%3d x %-24s %12s\n", l.Qty, l.Name, money.Format(l.Total()))
	}
	fmt.Fprintf(w, "Total: %s\n", formatMoney(total))
}

func printReport(w io.Writer, rep *services.Report) {
	fmt.Fprintf(w, "Sales report (%s)\n", rep.Filter.Slug())
	if len(rep.Rows) == 0 {
		fmt.Fprintln(w, "No transactions for the selected period.")
	}
	for _, r := range rep.Rows {
		fmt.Fprintf(w, "%s  %-15s %-20s %3d x %10s  %s\n",
			r.SoldAt.Format(export.TimeLayout), r.ReceiptNo, r.Name, r.Qty, money.Format(r.Price), r.Cashier)
	}

	fmt.Fprintln(w, "Summary")
	fmt.Fprintf(w, "  Total sales: %s\n", formatMoney(rep.Summary.Revenue))
	fmt.Fprintf(w, "  Items sold:  %d\n", rep.Summary.Items)
	fmt.Fprintf(w, "  Receipts:    %d\n", rep.Summary.Receipts)
	if rep.Skipped > 0 {
		fmt.Fprintf(w, "Warning: %d sales row(s) with unreadable timestamps were skipped.\n", rep.Skipped)
	}

	fmt.Fprintln(w, "Current stock")
	for _, p := range rep.Products {
		fmt.Fprintf(w, "  %-24s %6d\n", p.Name, p.Stock)
	}
}

func printLocations(w io.Writer, locations []string) {
	for _, l := range locations {
		fmt.Fprintln(w, "Saved:", l)
	}
}
