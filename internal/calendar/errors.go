package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrInvalidYear is returned for years below 1.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidMonth is returned for months outside the calendar's range,
	// including Adar II in a common Hebrew year.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay is returned for days below 1 or past the end of the month.
	ErrInvalidDay = errors.New("invalid day")

	// ErrOutOfRange is returned for dates before absolute day 1
	// (January 1, year 1, which is 18 Teves 3761).
	ErrOutOfRange = errors.New("date out of range")
)

// Calendar names used in DateError.
const (
	Gregorian = "gregorian"
	Hebrew    = "hebrew"
	Absolute  = "absolute"
)

// DateError describes a rejected date. It unwraps to one of the sentinel errors
// above, so callers can test it with errors.Is.
type DateError struct {
	Calendar string
	Year     int
	Month    int
	Day      int
	Err      error
}

func (e *DateError) Error() string {
	if e.Calendar == Absolute {
		return fmt.Sprintf("%s day %d: %v", e.Calendar, e.Day, e.Err)
	}
	return fmt.Sprintf("%s date %04d-%02d-%02d: %v", e.Calendar, e.Year, e.Month, e.Day, e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

func hebrewError(year int, month HebrewMonth, day int, err error) error {
	return &DateError{Calendar: Hebrew, Year: year, Month: int(month), Day: day, Err: err}
}

func gregorianError(year, month, day int, err error) error {
	return &DateError{Calendar: Gregorian, Year: year, Month: month, Day: day, Err: err}
}

func absoluteError(abs int, err error) error {
	return &DateError{Calendar: Absolute, Day: abs, Err: err}
}
