package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/years"
)

func gregorianToHebrew(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected YYYY-MM-DD, got %d arguments", len(args))
	}

	parts := strings.Split(args[0], "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", args[0])
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", args[0], err)
	}

	abs, err := calendar.GregorianToAbsolute(nums[0], time.Month(nums[1]), nums[2])
	if err != nil {
		return err
	}
	return printDay(out, abs)
}

func hebrewToGregorian(out io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected YEAR MONTH DAY, got %d arguments", len(args))
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}
	month, err := calendar.ParseHebrewMonth(args[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid day %q", args[2])
	}

	abs, err := calendar.HebrewToAbsolute(year, month, day)
	if err != nil {
		return err
	}
	return printDay(out, abs)
}

func absoluteDay(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected DAY, got %d arguments", len(args))
	}
	abs, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q", args[0])
	}
	return printDay(out, abs)
}

// printDay writes one line: Gregorian date, Hebrew date, weekday and absolute day.
func printDay(out io.Writer, abs int) error {
	g, err := calendar.AbsoluteToGregorian(abs)
	if err != nil {
		return err
	}
	h, err := calendar.AbsoluteToHebrew(abs)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s\t%s\t%s\t%d\n", g, h, calendar.Weekday(abs), abs)
	return err
}

func showYear(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected YEAR, got %d arguments", len(args))
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}

	s, err := calendar.SummarizeYear(year)
	if err != nil {
		return err
	}

	leap := "common"
	if s.Leap {
		leap = "leap"
	}
	fmt.Fprintf(out, "%d: %s year, %d days, %s\n", s.Year, leap, s.Days, s.Kviah)
	fmt.Fprintf(out, "Rosh Hashana: %s (%s)\n", s.RoshHashana, s.RoshHashanaWeekday)
	for _, m := range s.Months {
		fmt.Fprintf(out, "  %-9s %2d days  from %s (%s)\n", m.Name, m.Days, m.FirstDay, m.Weekday)
	}
	return nil
}

func seedYears(ctx context.Context, out io.Writer, dbPath string, args []string) error {
	from, to, err := parseSpan(args)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := years.NewResolver(db, quietLogger()).Seed(ctx, from, to)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "seeded %d years (%d-%d) into %s\n", n, from, to, dbPath)
	return err
}

// exportYears writes [from, to] as a YAML or JSON list. The span is seeded
// first and then read back in one query.
func exportYears(ctx context.Context, out io.Writer, dbPath, format string, args []string) error {
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unknown format %q, use yaml or json", format)
	}

	from, to, err := parseSpan(args)
	if err != nil {
		return err
	}
	db, err := openDB(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := years.NewResolver(db, quietLogger()).Seed(ctx, from, to); err != nil {
		return err
	}
	records, err := db.ListYears(ctx, from, to)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

func openDB(ctx context.Context, path string) (*database.DB, error) {
	db, err := database.Open(database.DefaultConfig(path), quietLogger())
	if err != nil {
		return nil, err
	}
	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func parseSpan(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected FROM TO, got %d arguments", len(args))
	}
	nums, err := atoiAll(args)
	if err != nil {
		return 0, 0, err
	}
	if nums[0] < 1 || nums[1] < nums[0] {
		return 0, 0, fmt.Errorf("%w: %d-%d", years.ErrInvalidRange, nums[0], nums[1])
	}
	return nums[0], nums[1], nil
}

func atoiAll(ss []string) ([]int, error) {
	nums := make([]int, len(ss))
	for i, s := range ss {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		nums[i] = n
	}
	return nums, nil
}
