package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/repositories/repomanager"
)

type FilterKind int

const (
	FilterDaily FilterKind = iota + 1
	FilterWeekly
	FilterMonthly
)

func (k FilterKind) String() string {
	switch k {
	case FilterDaily:
		return "daily"
	case FilterWeekly:
		return "weekly"
	case FilterMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// Filter selects the sales included in a report. Weekly filters pair the
// ISO week number with the calendar year of the sale.
type Filter struct {
	Kind  FilterKind
	Date  time.Time
	Year  int
	Week  int
	Month time.Month
}

func Daily(date time.Time) Filter {
	return Filter{Kind: FilterDaily, Date: date}
}

func Weekly(year, week int) Filter {
	return Filter{Kind: FilterWeekly, Year: year, Week: week}
}

func Monthly(year int, month time.Month) Filter {
	return Filter{Kind: FilterMonthly, Year: year, Month: month}
}

func (f Filter) Validate() error {
	switch f.Kind {
	case FilterDaily:
		if f.Date.IsZero() {
			return ErrInvalidFilter
		}
	case FilterWeekly:
		if f.Year < 1 || f.Week < 1 || f.Week > 53 {
			return ErrInvalidFilter
		}
	case FilterMonthly:
		if f.Year < 1 || f.Month < time.January || f.Month > time.December {
			return ErrInvalidFilter
		}
	default:
		return ErrInvalidFilter
	}
	return nil
}

// Match reports whether t falls into the filter's period. t is compared in
// its own location.
func (f Filter) Match(t time.Time) bool {
	switch f.Kind {
	case FilterDaily:
		y, m, d := t.Date()
		fy, fm, fd := f.Date.Date()
		return y == fy && m == fm && d == fd
	case FilterWeekly:
		_, w := t.ISOWeek()
		return t.Year() == f.Year && w == f.Week
	case FilterMonthly:
		return t.Year() == f.Year && t.Month() == f.Month
	default:
		return false
	}
}

// Slug is a short file-name friendly description of the period.
func (f Filter) Slug() string {
	switch f.Kind {
	case FilterDaily:
		return "daily-" + f.Date.Format("2006-01-02")
	case FilterWeekly:
		return fmt.Sprintf("weekly-%04d-W%02d", f.Year, f.Week)
	case FilterMonthly:
		return fmt.Sprintf("monthly-%04d-%02d", f.Year, int(f.Month))
	default:
		return "report"
	}
}

// Summary aggregates the rows of a report.
type Summary struct {
	Revenue  int64
	Items    int64
	Receipts int
}

// Report is the filtered sales history plus the current stock table.
type Report struct {
	Filter   Filter
	Rows     []models.SaleLine
	Summary  Summary
	Skipped  int
	Products []models.Product
}

// Summarize computes revenue (sum of price*qty), items (sum of qty) and the
// number of distinct receipts in rows.
func Summarize(rows []models.SaleLine) Summary {
	var s Summary
	seen := make(map[string]struct{})
	for _, r := range rows {
		s.Revenue += r.Total()
		s.Items += r.Qty
		seen[r.ReceiptNo] = struct{}{}
	}
	s.Receipts = len(seen)
	return s
}

// ReportService builds sales reports.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	loc         *time.Location
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *ReportService {
	return &ReportService{db: db, repomanager: m, log: log, loc: time.Local}
}

// Sales returns the sales rows matching f. Rows whose timestamp could not be
// parsed are excluded and counted in Report.Skipped.
func (s *ReportService) Sales(ctx context.Context, f Filter) (*Report, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	all, err := s.repomanager.Sales(s.db).List(ctx)
	if err != nil {
		s.log.Error(ctx, "load sales failed", "error", err)
		return nil, common.ErrorInternal
	}

	products, err := s.repomanager.Products(s.db).List(ctx)
	if err != nil {
		s.log.Error(ctx, "load products failed", "error", err)
		return nil, common.ErrorInternal
	}

	rep := &Report{Filter: f, Products: products}
	for _, row := range all {
		if row.SoldAt.IsZero() {
			rep.Skipped++
			continue
		}
		if f.Match(row.SoldAt.In(s.loc)) {
			rep.Rows = append(rep.Rows, row)
		}
	}
	rep.Summary = Summarize(rep.Rows)

	if rep.Skipped > 0 {
		s.log.Warn(ctx, "sales rows with unreadable timestamps skipped", "count", rep.Skipped)
	}
	s.log.Debug(ctx, "report built", "filter", f.Kind.String(), "rows", len(rep.Rows), "revenue", rep.Summary.Revenue)
	return rep, nil
}
