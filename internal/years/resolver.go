// Package years serves Hebrew year summaries through the SQLite year table.
//
// A Resolver reads a stored row when one exists and otherwise computes the
// summary with the calendar package and stores it, so the table fills as
// years are requested. Seed fills a span of years up front.
package years

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/database"
)

// MaxSeedSpan is the largest number of years one Seed call will write.
const MaxSeedSpan = 1000

// ErrInvalidRange is returned by Seed for an empty, reversed or oversized span.
var ErrInvalidRange = errors.New("invalid year range")

// Resolver is a read-through cache of year summaries.
type Resolver struct {
	db     *database.DB
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by db.
func NewResolver(db *database.DB, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{db: db, logger: logger}
}

// Get returns the summary of a Hebrew year. Calendar errors (invalid or
// out-of-range years) are returned unwrapped.
func (r *Resolver) Get(ctx context.Context, year int) (*database.YearRecord, error) {
	rec, err := r.db.GetYear(ctx, year)
	if err == nil {
		return rec, nil
	}
	if !database.IsNotFound(err) {
		return nil, fmt.Errorf("load year %d: %w", year, err)
	}

	summary, err := calendar.SummarizeYear(year)
	if err != nil {
		return nil, err
	}

	// A concurrent request may have stored the same row first; its data is
	// identical.
	err = r.db.CreateYear(ctx, Record(summary))
	switch {
	case err == nil:
		r.logger.Debug("year cached", slog.Int("year", year))
	case !errors.Is(err, database.ErrDuplicate):
		return nil, fmt.Errorf("store year %d: %w", year, err)
	}

	return r.db.GetYear(ctx, year)
}

// Containing returns the summary of the Hebrew year that includes the given
// absolute day.
func (r *Resolver) Containing(ctx context.Context, abs int) (*database.YearRecord, error) {
	rec, err := r.db.GetYearContaining(ctx, abs)
	if err == nil {
		return rec, nil
	}
	if !database.IsNotFound(err) {
		return nil, fmt.Errorf("load year containing day %d: %w", abs, err)
	}

	date, err := calendar.AbsoluteToHebrew(abs)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, date.Year)
}

// Seed computes the years in [from, to] and writes them in one transaction,
// replacing rows already stored. It returns the number of years written.
func (r *Resolver) Seed(ctx context.Context, from, to int) (int, error) {
	if from < 1 || to < from || to-from+1 > MaxSeedSpan {
		return 0, fmt.Errorf("%w: %d-%d", ErrInvalidRange, from, to)
	}

	start := time.Now()
	records := make([]*database.YearRecord, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range records {
		i := i
		year := from + i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := calendar.SummarizeYear(year)
			if err != nil {
				return err
			}
			records[i] = Record(summary)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("compute years %d-%d: %w", from, to, err)
	}

	err := r.db.WithTx(ctx, func(tx *database.Tx) error {
		for _, rec := range records {
			if err := tx.UpsertYear(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed years %d-%d: %w", from, to, err)
	}

	r.logger.Info("year table seeded",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("count", len(records)),
		slog.Duration("duration", time.Since(start)),
	)

	return len(records), nil
}

// Record converts a computed summary into its stored form.
func Record(s calendar.YearSummary) *database.YearRecord {
	months := make([]database.MonthRecord, 0, len(s.Months))
	for _, m := range s.Months {
		months = append(months, database.MonthRecord{
			Month:    int(m.Month),
			Name:     m.Name,
			Days:     m.Days,
			FirstDay: m.FirstDay.String(),
		})
	}

	return &database.YearRecord{
		Year:                s.Year,
		Leap:                s.Leap,
		Days:                s.Days,
		Kviah:               s.Kviah,
		RoshHashanaAbsolute: s.RoshHashanaAbsolute,
		RoshHashanaDate:     s.RoshHashana.String(),
		Months:              months,
	}
}
