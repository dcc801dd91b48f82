package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so every query below runs
// either standalone or inside WithTx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if parsing fails.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const yearColumns = `
	year, is_leap, days, kviah,
	rosh_hashana_abs, rosh_hashana_date, months,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanYear(row rowScanner) (*YearRecord, error) {
	var rec YearRecord
	var isLeap int
	var monthsJSON string
	var createdAt, updatedAt sql.NullString

	if err := row.Scan(
		&rec.Year,
		&isLeap,
		&rec.Days,
		&rec.Kviah,
		&rec.RoshHashanaAbsolute,
		&rec.RoshHashanaDate,
		&monthsJSON,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	months, err := UnmarshalMonths(monthsJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal months of year %d: %w", rec.Year, err)
	}

	rec.Leap = isLeap == 1
	rec.Months = months
	rec.CreatedAt = parseTimestamp(createdAt)
	rec.UpdatedAt = parseTimestamp(updatedAt)
	return &rec, nil
}

// =============================================================================
// Year Queries
// =============================================================================

// CreateYear inserts a new year. Returns ErrDuplicate if the year is already
// stored.
func (db *DB) CreateYear(ctx context.Context, rec *YearRecord) error {
	months, err := MarshalMonths(rec.Months)
	if err != nil {
		return fmt.Errorf("marshal months: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO hebrew_years (
			year, is_leap, days, kviah,
			rosh_hashana_abs, rosh_hashana_date, months
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.Year, boolToInt(rec.Leap), rec.Days, rec.Kviah,
		rec.RoshHashanaAbsolute, rec.RoshHashanaDate, months,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert year %d: %w", rec.Year, err)
	}

	return nil
}

// UpsertYear inserts or replaces a year.
func (db *DB) UpsertYear(ctx context.Context, rec *YearRecord) error {
	return upsertYear(ctx, db.DB, rec)
}

// UpsertYear inserts or replaces a year within the transaction.
func (tx *Tx) UpsertYear(ctx context.Context, rec *YearRecord) error {
	return upsertYear(ctx, tx.Tx, rec)
}

func upsertYear(ctx context.Context, q querier, rec *YearRecord) error {
	months, err := MarshalMonths(rec.Months)
	if err != nil {
		return fmt.Errorf("marshal months: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO hebrew_years (
			year, is_leap, days, kviah,
			rosh_hashana_abs, rosh_hashana_date, months
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			is_leap = excluded.is_leap,
			days = excluded.days,
			kviah = excluded.kviah,
			rosh_hashana_abs = excluded.rosh_hashana_abs,
			rosh_hashana_date = excluded.rosh_hashana_date,
			months = excluded.months,
			updated_at = datetime('now')
	`,
		rec.Year, boolToInt(rec.Leap), rec.Days, rec.Kviah,
		rec.RoshHashanaAbsolute, rec.RoshHashanaDate, months,
	)
	if err != nil {
		return fmt.Errorf("upsert year %d: %w", rec.Year, err)
	}

	return nil
}

// GetYear retrieves one year. Returns ErrNotFound if it is not stored.
func (db *DB) GetYear(ctx context.Context, year int) (*YearRecord, error) {
	row := db.QueryRowContext(ctx, `SELECT `+yearColumns+` FROM hebrew_years WHERE year = ?`, year)

	rec, err := scanYear(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query year %d: %w", year, err)
	}

	return rec, nil
}

// GetYearContaining retrieves the stored year whose span includes the given
// absolute day. Returns ErrNotFound if no stored year covers it.
func (db *DB) GetYearContaining(ctx context.Context, abs int) (*YearRecord, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+yearColumns+`
		FROM hebrew_years
		WHERE rosh_hashana_abs <= ?
		ORDER BY rosh_hashana_abs DESC
		LIMIT 1
	`, abs)

	rec, err := scanYear(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query year containing day %d: %w", abs, err)
	}

	if abs >= rec.RoshHashanaAbsolute+rec.Days {
		return nil, ErrNotFound
	}

	return rec, nil
}

// ListYears retrieves stored years in [from, to], ordered by year.
// Returns an empty slice if none are stored.
func (db *DB) ListYears(ctx context.Context, from, to int) ([]YearRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+yearColumns+`
		FROM hebrew_years
		WHERE year >= ? AND year <= ?
		ORDER BY year ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query years %d-%d: %w", from, to, err)
	}
	defer rows.Close()

	years := []YearRecord{}
	for rows.Next() {
		rec, err := scanYear(rows)
		if err != nil {
			return nil, fmt.Errorf("scan year row: %w", err)
		}
		years = append(years, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate year rows: %w", err)
	}

	return years, nil
}

// DeleteYear removes one year. Returns ErrNotFound if it was not stored.
func (db *DB) DeleteYear(ctx context.Context, year int) error {
	result, err := db.ExecContext(ctx, `DELETE FROM hebrew_years WHERE year = ?`, year)
	if err != nil {
		return fmt.Errorf("delete year %d: %w", year, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetYearStats summarizes the year table.
func (db *DB) GetYearStats(ctx context.Context) (*YearStats, error) {
	var stats YearStats
	var first, last sql.NullInt64

	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(year), MAX(year), COALESCE(SUM(is_leap), 0)
		FROM hebrew_years
	`).Scan(&stats.Count, &first, &last, &stats.LeapYears)
	if err != nil {
		return nil, fmt.Errorf("query year stats: %w", err)
	}

	stats.FirstYear = int(first.Int64)
	stats.LastYear = int(last.Int64)
	return &stats, nil
}
