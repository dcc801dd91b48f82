package calendar

import "fmt"

// HebrewDate is a date in the Hebrew calendar. Month is counted from Nissan.
type HebrewDate struct {
	Year  int         `json:"year"`
	Month HebrewMonth `json:"month"`
	Day   int         `json:"day"`
}

// String formats the date as "day Month year", e.g. "9 Kislev 5778".
func (h HebrewDate) String() string {
	return fmt.Sprintf("%d %s %d", h.Day, h.Month, h.Year)
}

// NewHebrewDate validates and returns a Hebrew date.
func NewHebrewDate(year int, month HebrewMonth, day int) (HebrewDate, error) {
	if err := validateHebrew(year, month, day); err != nil {
		return HebrewDate{}, err
	}
	return HebrewDate{Year: year, Month: month, Day: day}, nil
}

// HebrewToAbsolute returns the absolute day number of a Hebrew date. The result
// may be zero or negative for dates before 18 Teves 3761.
func HebrewToAbsolute(year int, month HebrewMonth, day int) (int, error) {
	if err := validateHebrew(year, month, day); err != nil {
		return 0, err
	}
	return absoluteFromHebrew(year, month, day), nil
}

// Absolute returns the absolute day number of h, which must be valid.
func (h HebrewDate) Absolute() int {
	return absoluteFromHebrew(h.Year, h.Month, h.Day)
}

func absoluteFromHebrew(year int, month HebrewMonth, day int) int {
	return day + shapeOf(year).daysBefore(month) + roshHashanaDay(year) + hebrewEpoch
}

// roshHashanaAbsolute returns the absolute day of Tishrei 1 of year.
func roshHashanaAbsolute(year int) int {
	return roshHashanaDay(year) + hebrewEpoch + 1
}

// hebrewFromAbsolute finds the Hebrew date of abs, starting the search at
// approxYear. Rosh Hashana drifts through the Gregorian year over the
// millennia, so the estimate may land on either side of the containing year.
func hebrewFromAbsolute(abs, approxYear int) HebrewDate {
	year := approxYear
	for year > 1 && abs < roshHashanaAbsolute(year) {
		year--
	}
	next := roshHashanaAbsolute(year + 1)
	for abs >= next {
		year++
		// No year is shorter than minYearLength, so the following year cannot
		// have started yet.
		if abs-next < minYearLength {
			break
		}
		next = roshHashanaAbsolute(year + 1)
	}

	shape := shapeOf(year)
	offset := abs - roshHashanaAbsolute(year)
	for _, month := range MonthsInYear(year) {
		n := shape.length(month)
		if offset < n {
			return HebrewDate{Year: year, Month: month, Day: offset + 1}
		}
		offset -= n
	}

	// Unreachable: offset is below the year length by construction.
	panic(fmt.Sprintf("calendar: absolute day %d past the end of Hebrew year %d", abs, year))
}

func validateHebrew(year int, month HebrewMonth, day int) error {
	if year < 1 {
		return hebrewError(year, month, day, ErrInvalidYear)
	}
	if !month.ValidIn(year) {
		return hebrewError(year, month, day, ErrInvalidMonth)
	}
	if day < 1 || day > MonthLength(month, year) {
		return hebrewError(year, month, day, ErrInvalidDay)
	}
	return nil
}
