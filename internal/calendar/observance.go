package calendar

import "time"

// Weekday returns the day of the week of an absolute day number. Absolute day 1,
// January 1 of year 1, was a Monday.
func Weekday(abs int) time.Weekday {
	return time.Weekday(mod(abs, 7))
}

// Weekday returns the day of the week of h.
func (h HebrewDate) Weekday() time.Weekday {
	return Weekday(h.Absolute())
}

// AddDays returns the Hebrew date n days after h (before h when n is negative).
func (h HebrewDate) AddDays(n int) (HebrewDate, error) {
	if err := validateHebrew(h.Year, h.Month, h.Day); err != nil {
		return HebrewDate{}, err
	}
	return AbsoluteToHebrew(h.Absolute() + n)
}

// IsRoshChodesh reports whether h is the first day of a month or the thirtieth
// day of the preceding one. Rosh Hashana is not Rosh Chodesh.
func (h HebrewDate) IsRoshChodesh() bool {
	return (h.Day == 1 && h.Month != Tishrei) || h.Day == 30
}

// IsErevRoshChodesh reports whether h is the 29th of a month other than Elul.
// Erev Rosh Hashana is not Erev Rosh Chodesh.
func (h HebrewDate) IsErevRoshChodesh() bool {
	return h.Day == 29 && h.Month != Elul
}

// DayOfOmer returns the day of the Omer count (1 through 49), or 0 when h falls
// outside the count. The Omer runs from 16 Nissan to 5 Sivan.
func (h HebrewDate) DayOfOmer() int {
	switch {
	case h.Month == Nissan && h.Day >= 16:
		return h.Day - 15
	case h.Month == Iyar:
		return h.Day + 15
	case h.Month == Sivan && h.Day < 6:
		return h.Day + 44
	}
	return 0
}

// YearKind classifies a Hebrew year by the lengths of Cheshvan and Kislev.
type YearKind int

const (
	// Chaseirim: Cheshvan and Kislev both have 29 days.
	Chaseirim YearKind = iota
	// Kesidran: Cheshvan has 29 days and Kislev 30.
	Kesidran
	// Shelaimim: Cheshvan and Kislev both have 30 days.
	Shelaimim
)

func (k YearKind) String() string {
	switch k {
	case Chaseirim:
		return "chaseirim"
	case Kesidran:
		return "kesidran"
	case Shelaimim:
		return "shelaimim"
	}
	return "unknown"
}

// Kviah returns the year kind of the given Hebrew year.
func Kviah(year int) YearKind {
	s := shapeOf(year)
	switch s.cheshvan + s.kislev {
	case 60:
		return Shelaimim
	case 58:
		return Chaseirim
	default:
		return Kesidran
	}
}
