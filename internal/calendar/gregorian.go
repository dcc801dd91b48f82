package calendar

import (
	"fmt"
	"time"
)

// GregorianDate is a date in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// String formats the date as YYYY-MM-DD.
func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), g.Day)
}

// Time returns midnight UTC on the date.
func (g GregorianDate) Time() time.Time {
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, time.UTC)
}

// GregorianFromTime returns the calendar date of t in its own location.
func GregorianFromTime(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: m, Day: d}
}

// daysBeforeMonth holds the days elapsed before each month in a common year.
// Index 13 is the length of the year.
var daysBeforeMonth = [14]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// IsGregorianLeapYear reports whether the Gregorian year has a February 29.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysBeforeMonthStart returns the days in the year before the first of month.
// month may be 13, giving the length of the year.
func daysBeforeMonthStart(month, year int) int {
	if month > 2 && IsGregorianLeapYear(year) {
		return daysBeforeMonth[month] + 1
	}
	return daysBeforeMonth[month]
}

// DaysInGregorianMonth returns the length of a Gregorian month, or 0 when month
// is outside January..December.
func DaysInGregorianMonth(month time.Month, year int) int {
	if month < time.January || month > time.December {
		return 0
	}
	return daysBeforeMonthStart(int(month)+1, year) - daysBeforeMonthStart(int(month), year)
}

func absoluteFromGregorian(year, month, day int) int {
	prior := year - 1
	return day +
		daysBeforeMonthStart(month, year) +
		365*prior + // days in prior years ignoring leap days
		prior/4 - // Julian leap days
		prior/100 + // minus century years
		prior/400 // plus years divisible by 400
}

// GregorianToAbsolute returns the absolute day number of a Gregorian date.
func GregorianToAbsolute(year int, month time.Month, day int) (int, error) {
	if err := validateGregorian(year, month, day); err != nil {
		return 0, err
	}
	return absoluteFromGregorian(year, int(month), day), nil
}

// AbsoluteToGregorian returns the Gregorian date of an absolute day number.
func AbsoluteToGregorian(abs int) (GregorianDate, error) {
	if abs < 1 {
		return GregorianDate{}, absoluteError(abs, ErrOutOfRange)
	}
	return gregorianFromAbsolute(abs), nil
}

// gregorianFromAbsolute searches forward from an approximate year, then month by
// month. abs must be positive.
func gregorianFromAbsolute(abs int) GregorianDate {
	year := abs / 366
	for abs >= absoluteFromGregorian(year+1, 1, 1) {
		year++
	}

	offset := abs - absoluteFromGregorian(year, 1, 1)
	month := 1
	for month < 12 && daysBeforeMonthStart(month+1, year) <= offset {
		month++
	}

	day := abs - absoluteFromGregorian(year, month, 1) + 1
	return GregorianDate{Year: year, Month: time.Month(month), Day: day}
}

func validateGregorian(year int, month time.Month, day int) error {
	if year < 1 {
		return gregorianError(year, int(month), day, ErrInvalidYear)
	}
	if month < time.January || month > time.December {
		return gregorianError(year, int(month), day, ErrInvalidMonth)
	}
	if day < 1 || day > DaysInGregorianMonth(month, year) {
		return gregorianError(year, int(month), day, ErrInvalidDay)
	}
	return nil
}
