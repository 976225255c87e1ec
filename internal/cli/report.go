package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/services"
	"github.com/dmitrijs2005/gophpos/internal/session"
)

var ErrInvalidDate = fmt.Errorf("%w: invalid date", common.ErrorValidation)

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(s), loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// readFilter prompts for a report period, defaulting to the current one.
func (a *App) readFilter() (services.Filter, error) {
	now := a.now()

	kind, err := a.askDefault("Filter by daily, weekly or monthly", "daily")
	if err != nil {
		return services.Filter{}, err
	}

	switch strings.ToLower(kind) {
	case "d", "daily":
		v, err := a.askDefault("Date (YYYY-MM-DD)", now.Format("2006-01-02"))
		if err != nil {
			return services.Filter{}, err
		}
		d, err := parseDate(v, now.Location())
		if err != nil {
			return services.Filter{}, err
		}
		return services.Daily(d), nil

	case "w", "weekly":
		_, isoWeek := now.ISOWeek()
		year, err := a.askInt("Year", now.Year())
		if err != nil {
			return services.Filter{}, err
		}
		week, err := a.askInt("Week (1-53)", isoWeek)
		if err != nil {
			return services.Filter{}, err
		}
		return services.Weekly(year, week), nil

	case "m", "monthly":
		month, err := a.askInt("Month (1-12)", int(now.Month()))
		if err != nil {
			return services.Filter{}, err
		}
		year, err := a.askInt("Year", now.Year())
		if err != nil {
			return services.Filter{}, err
		}
		return services.Monthly(year, time.Month(month)), nil
	}

	return services.Filter{}, services.ErrInvalidFilter
}

// Report prints the sales for a chosen period with a summary and the
// current stock, then exports the rows as CSV and PDF.
func (a *App) Report(ctx context.Context, s *session.Session) error {
	s.Menu = session.MenuReport

	f, err := a.readFilter()
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	rep, err := a.reportService.Sales(opCtx, f)
	if err != nil {
		return err
	}
	printReport(a.out, rep)

	locations, err := a.exporter.Sales(opCtx, f.Slug(), rep.Rows)
	printLocations(a.out, locations)
	if err != nil {
		a.log.Warn(ctx, "report export failed", "filter", f.Slug(), "error", err)
		return err
	}
	return nil
}
