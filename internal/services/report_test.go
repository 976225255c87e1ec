package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSale(t *testing.T, s *ReportService, at time.Time, name string, price, qty int64, receiptNo string) {
	t.Helper()
	_, err := s.repomanager.Sales(s.db).Insert(context.Background(), &models.SaleLine{
		Name: name, Price: price, Qty: qty, Cashier: "ani", SoldAt: at, ReceiptNo: receiptNo,
	})
	require.NoError(t, err)
}

func newReportService(t *testing.T) *ReportService {
	t.Helper()
	db, m := newTestDB(t)
	s := NewReportService(db, m, nopLog())
	s.loc = time.UTC
	return s
}

func TestSales_MonthlyFilterAcrossThreeMonths(t *testing.T) {
	s := newReportService(t)
	ctx := context.Background()

	jan := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 3, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)

	seedSale(t, s, jan, "Kopi", 5000, 2, "CS/150124/0001")
	seedSale(t, s, feb, "Kopi", 5000, 1, "CS/030224/0001")
	seedSale(t, s, feb, "Roti", 8000, 3, "CS/030224/0001")
	seedSale(t, s, feb.Add(2*time.Hour), "Teh", 3000, 4, "CS/030224/0002")
	seedSale(t, s, mar, "Kopi", 5000, 10, "CS/310324/0001")

	rep, err := s.Sales(ctx, Monthly(2024, time.February))
	require.NoError(t, err)

	require.Len(t, rep.Rows, 3)
	for _, r := range rep.Rows {
		assert.Equal(t, time.February, r.SoldAt.Month())
	}
	assert.Equal(t, int64(5000*1+8000*3+3000*4), rep.Summary.Revenue)
	assert.Equal(t, int64(8), rep.Summary.Items)
	assert.Equal(t, 2, rep.Summary.Receipts)
	assert.Equal(t, 0, rep.Skipped)

	rep, err = s.Sales(ctx, Monthly(2023, time.February))
	require.NoError(t, err)
	assert.Empty(t, rep.Rows)
	assert.Equal(t, Summary{}, rep.Summary)
}

func TestSales_DailyFilter(t *testing.T) {
	s := newReportService(t)

	day := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	seedSale(t, s, day.Add(time.Minute), "Kopi", 5000, 1, "A")
	seedSale(t, s, day.Add(23*time.Hour+59*time.Minute), "Kopi", 5000, 1, "B")
	seedSale(t, s, day.Add(24*time.Hour), "Kopi", 5000, 1, "C")

	rep, err := s.Sales(context.Background(), Daily(day))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 2, rep.Summary.Receipts)
}

func TestSales_WeeklyFilterUsesCalendarYear(t *testing.T) {
	s := newReportService(t)

	// 30 Dec 2024 is in ISO week 1 but in calendar year 2024.
	seedSale(t, s, time.Date(2024, time.December, 30, 12, 0, 0, 0, time.UTC), "Kopi", 5000, 1, "A")
	seedSale(t, s, time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC), "Kopi", 5000, 1, "B")
	seedSale(t, s, time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC), "Kopi", 5000, 1, "C")
	seedSale(t, s, time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC), "Kopi", 5000, 1, "D")

	rep, err := s.Sales(context.Background(), Weekly(2024, 1))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "A", rep.Rows[0].ReceiptNo)
	assert.Equal(t, "D", rep.Rows[1].ReceiptNo)

	rep, err = s.Sales(context.Background(), Weekly(2025, 1))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "B", rep.Rows[0].ReceiptNo)
}

func TestFilterMatch_WeeklyYearBoundary(t *testing.T) {
	d := time.Date(2024, time.December, 30, 12, 0, 0, 0, time.UTC)
	assert.True(t, Weekly(2024, 1).Match(d))
	assert.False(t, Weekly(2025, 1).Match(d))
}

func TestSales_SkipsUnparseableTimestampsAndIncludesStock(t *testing.T) {
	s := newReportService(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `INSERT INTO sales (name, price, qty, cashier, sold_at, receipt_no)
		VALUES ('Kopi', 5000, 1, 'ani', 'not a date', 'X')`)
	require.NoError(t, err)
	seedSale(t, s, time.Date(2024, time.March, 7, 8, 0, 0, 0, time.UTC), "Kopi", 5000, 1, "Y")

	_, err = s.repomanager.Products(s.db).Create(ctx, &models.Product{Name: "Kopi", Price: 5000, Stock: 9})
	require.NoError(t, err)

	rep, err := s.Sales(ctx, Monthly(2024, time.March))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
	require.Len(t, rep.Rows, 1)
	require.Len(t, rep.Products, 1)
	assert.Equal(t, int64(9), rep.Products[0].Stock)
}

func TestSales_InvalidFilter(t *testing.T) {
	s := newReportService(t)

	for _, f := range []Filter{
		{},
		Daily(time.Time{}),
		Weekly(2024, 0),
		Weekly(2024, 54),
		Monthly(2024, 13),
		Monthly(0, time.May),
	} {
		_, err := s.Sales(context.Background(), f)
		require.ErrorIs(t, err, ErrInvalidFilter, "%+v", f)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize([]models.SaleLine{
		{Price: 5000, Qty: 2, ReceiptNo: "A"},
		{Price: 1000, Qty: 1, ReceiptNo: "A"},
		{Price: 2500, Qty: 4, ReceiptNo: "B"},
	})
	assert.Equal(t, Summary{Revenue: 21000, Items: 7, Receipts: 2}, got)
}

func TestFilter_SlugAndKind(t *testing.T) {
	assert.Equal(t, "daily-2024-03-07", Daily(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)).Slug())
	assert.Equal(t, "weekly-2025-W01", Weekly(2025, 1).Slug())
	assert.Equal(t, "monthly-2024-02", Monthly(2024, time.February).Slug())
	assert.Equal(t, "report", Filter{}.Slug())

	assert.Equal(t, "weekly", FilterWeekly.String())
	assert.Equal(t, "unknown", FilterKind(0).String())
}
