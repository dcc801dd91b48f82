// Package calendar converts dates between the Hebrew and Gregorian calendars.
//
// Both calendars are mapped onto a shared absolute day count in which day 1 is
// January 1 of year 1 (Gregorian). Every function in this package is a pure
// computation over integers and is safe for concurrent use.
package calendar

// Lunar-cycle constants. A chelek (plural chalakim) is 1/1080 of an hour.
const (
	chalakimPerHour = 1080
	chalakimPerDay  = 24 * chalakimPerHour // 25920

	// Mean synodic month: 29 days, 12 hours and 793 chalakim.
	chalakimPerMonth = (29*24+12)*chalakimPerHour + 793 // 765433

	// Chalakim from the start of the Sunday before the epoch to Molad Tohu
	// (BeHaRaD: Monday, 5 hours, 204 chalakim).
	chalakimMoladTohu = 31524

	monthsPerCycle = 235 // months in a 19-year Metonic cycle
	yearsPerCycle  = 19

	// hebrewEpoch places day 0 of the Hebrew reckoning on the absolute day axis.
	hebrewEpoch = -1373429
)

// Dechiya thresholds, in chalakim since the start of the molad day.
const (
	moladZakenParts = 18 * chalakimPerHour     // noon
	gatradParts     = 9*chalakimPerHour + 204  // Tuesday, 9h 204p
	betutakfotParts = 15*chalakimPerHour + 589 // Monday, 15h 589p
	minYearLength   = 353                      // shortest possible year
)

// IsLeapYear reports whether the Hebrew year has thirteen months. Years 3, 6, 8,
// 11, 14, 17 and 19 of each 19-year cycle are leap years.
func IsLeapYear(year int) bool {
	return mod(7*year+1, yearsPerCycle) < 7
}

// monthOrdinalFromTishrei converts a Nissan-based month to its position counted
// from Tishrei (Tishrei = 1).
func monthOrdinalFromTishrei(year int, month HebrewMonth) int {
	if IsLeapYear(year) {
		return mod(int(month)+6, 13) + 1
	}
	return mod(int(month)+5, 12) + 1
}

// molad is the mean conjunction expressed as whole days since the Hebrew
// reckoning began plus the chalakim elapsed within that day.
type molad struct {
	day   int
	parts int
}

// chalakimSinceMoladTohu returns the chalakim from the start of the reckoning to
// the molad of the given month. The count exceeds 32 bits for any modern year.
func chalakimSinceMoladTohu(year int, month HebrewMonth) int64 {
	yearInCycle := mod(year-1, yearsPerCycle)
	months := div(year-1, yearsPerCycle)*monthsPerCycle +
		yearInCycle*12 +
		div(7*yearInCycle+1, yearsPerCycle) +
		monthOrdinalFromTishrei(year, month) - 1
	return chalakimMoladTohu + chalakimPerMonth*int64(months)
}

func moladOf(year int, month HebrewMonth) molad {
	c := chalakimSinceMoladTohu(year, month)
	day, parts := c/chalakimPerDay, c%chalakimPerDay
	if parts < 0 {
		day--
		parts += chalakimPerDay
	}
	return molad{day: int(day), parts: int(parts)}
}

// roshHashanaDay returns the day, counted from the Hebrew epoch, on which Tishrei 1
// of the given year falls after all four dechiyot are applied.
func roshHashanaDay(year int) int {
	m := moladOf(year, Tishrei)
	day := m.day

	switch {
	case m.parts >= moladZakenParts:
		// Molad zaken: the molad is at or after noon.
		day++
	case mod(m.day, 7) == 2 && m.parts >= gatradParts && !IsLeapYear(year):
		// GaTRaD.
		day++
	case mod(m.day, 7) == 1 && m.parts >= betutakfotParts && IsLeapYear(year-1):
		// BeTuTaKFoT: the year after a leap year.
		day++
	}

	// Lo ADU Rosh: never Sunday, Wednesday or Friday.
	switch mod(day, 7) {
	case 0, 3, 5:
		day++
	}
	return day
}

// DaysInYear returns the length of the Hebrew year in days. The result is one of
// 353, 354 or 355 for common years and 383, 384 or 385 for leap years.
func DaysInYear(year int) int {
	return roshHashanaDay(year+1) - roshHashanaDay(year)
}

// IsCheshvanLong reports whether Cheshvan has 30 days in the given year.
func IsCheshvanLong(year int) bool {
	return DaysInYear(year)%10 == 5
}

// IsKislevShort reports whether Kislev has 29 days in the given year.
func IsKislevShort(year int) bool {
	return DaysInYear(year)%10 == 3
}

// MonthLength returns the number of days in a Hebrew month of the given year.
// The result is meaningless for months that do not exist in that year.
func MonthLength(month HebrewMonth, year int) int {
	return shapeOf(year).length(month)
}

// yearShape caches the per-year facts the month walks need, so that a single
// conversion resolves the year length only once.
type yearShape struct {
	leap     bool
	cheshvan int
	kislev   int
}

func shapeOf(year int) yearShape {
	days := DaysInYear(year)
	s := yearShape{leap: IsLeapYear(year), cheshvan: 29, kislev: 30}
	if days%10 == 5 {
		s.cheshvan = 30
	}
	if days%10 == 3 {
		s.kislev = 29
	}
	return s
}

func (s yearShape) length(month HebrewMonth) int {
	switch month {
	case Cheshvan:
		return s.cheshvan
	case Kislev:
		return s.kislev
	case Adar:
		if s.leap {
			return 30
		}
		return 29
	case Iyar, Tamuz, Elul, Teves, AdarII:
		return 29
	default:
		return 30
	}
}

func (s yearShape) lastMonth() HebrewMonth {
	if s.leap {
		return AdarII
	}
	return Adar
}

// daysBefore returns the days between Tishrei 1 and the first day of
// month within the same Hebrew year.
func (s yearShape) daysBefore(month HebrewMonth) int {
	days := 0
	if month < Tishrei {
		for m := Tishrei; m <= s.lastMonth(); m++ {
			days += s.length(m)
		}
		for m := Nissan; m < month; m++ {
			days += s.length(m)
		}
		return days
	}
	for m := Tishrei; m < month; m++ {
		days += s.length(m)
	}
	return days
}

// div and mod floor toward negative infinity so that the cycle arithmetic stays
// well defined for years before the first cycle.
func div(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
