package calendar

import "time"

// hebrewYearOffset is the difference between the Hebrew year in progress on
// January 1 of a Gregorian year and that Gregorian year.
const hebrewYearOffset = 3760

// GregorianToHebrew converts a Gregorian date to the Hebrew calendar.
func GregorianToHebrew(year int, month time.Month, day int) (HebrewDate, error) {
	abs, err := GregorianToAbsolute(year, month, day)
	if err != nil {
		return HebrewDate{}, err
	}
	return hebrewFromAbsolute(abs, year+hebrewYearOffset), nil
}

// HebrewToGregorian converts a Hebrew date to the Gregorian calendar. Dates
// before 18 Teves 3761 have no Gregorian equivalent and return ErrOutOfRange.
func HebrewToGregorian(year int, month HebrewMonth, day int) (GregorianDate, error) {
	abs, err := HebrewToAbsolute(year, month, day)
	if err != nil {
		return GregorianDate{}, err
	}
	if abs < 1 {
		return GregorianDate{}, hebrewError(year, month, day, ErrOutOfRange)
	}
	return gregorianFromAbsolute(abs), nil
}

// AbsoluteToHebrew returns the Hebrew date of an absolute day number.
func AbsoluteToHebrew(abs int) (HebrewDate, error) {
	if abs < 1 {
		return HebrewDate{}, absoluteError(abs, ErrOutOfRange)
	}
	g := gregorianFromAbsolute(abs)
	return hebrewFromAbsolute(abs, g.Year+hebrewYearOffset), nil
}

// Gregorian returns the Gregorian date of h, which must be a valid date on or
// after 18 Teves 3761.
func (h HebrewDate) Gregorian() GregorianDate {
	return gregorianFromAbsolute(h.Absolute())
}

// Absolute returns the absolute day number of g, which must be valid.
func (g GregorianDate) Absolute() int {
	return absoluteFromGregorian(g.Year, int(g.Month), g.Day)
}

// Hebrew returns the Hebrew date of g, which must be valid.
func (g GregorianDate) Hebrew() HebrewDate {
	return hebrewFromAbsolute(g.Absolute(), g.Year+hebrewYearOffset)
}
