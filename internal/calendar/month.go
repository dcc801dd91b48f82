package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// HebrewMonth identifies a month of the Hebrew year.
//
// Months are numbered from Nissan, following the biblical count, even though the
// civil year (and all molad arithmetic) begins at Tishrei. AdarII exists only in
// leap years; in a common year the single Adar is month 12.
type HebrewMonth int

// Hebrew months, Nissan = 1 through Adar II = 13.
const (
	Nissan HebrewMonth = iota + 1
	Iyar
	Sivan
	Tamuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Teves
	Shevat
	Adar
	AdarII
)

var monthNames = [...]string{
	Nissan:   "Nissan",
	Iyar:     "Iyar",
	Sivan:    "Sivan",
	Tamuz:    "Tamuz",
	Av:       "Av",
	Elul:     "Elul",
	Tishrei:  "Tishrei",
	Cheshvan: "Cheshvan",
	Kislev:   "Kislev",
	Teves:    "Teves",
	Shevat:   "Shevat",
	Adar:     "Adar",
	AdarII:   "Adar II",
}

// String returns the transliterated month name.
func (m HebrewMonth) String() string {
	if m < Nissan || m > AdarII {
		return fmt.Sprintf("HebrewMonth(%d)", int(m))
	}
	return monthNames[m]
}

// ValidIn reports whether the month exists in the given Hebrew year.
func (m HebrewMonth) ValidIn(year int) bool {
	return m >= Nissan && m <= LastMonthOfYear(year)
}

// LastMonthOfYear returns Adar II in leap years and Adar otherwise.
func LastMonthOfYear(year int) HebrewMonth {
	if IsLeapYear(year) {
		return AdarII
	}
	return Adar
}

// MonthsInYear returns the months of the year in calendar order, starting at Tishrei.
func MonthsInYear(year int) []HebrewMonth {
	last := LastMonthOfYear(year)
	months := make([]HebrewMonth, 0, int(last))
	for m := Tishrei; m <= last; m++ {
		months = append(months, m)
	}
	for m := Nissan; m < Tishrei; m++ {
		months = append(months, m)
	}
	return months
}

// monthAliases maps normalized spellings to months. Keys are lower case with
// spaces, hyphens and apostrophes removed.
var monthAliases = map[string]HebrewMonth{
	"nissan":      Nissan,
	"nisan":       Nissan,
	"iyar":        Iyar,
	"sivan":       Sivan,
	"tamuz":       Tamuz,
	"tammuz":      Tamuz,
	"av":          Av,
	"elul":        Elul,
	"tishrei":     Tishrei,
	"tishri":      Tishrei,
	"cheshvan":    Cheshvan,
	"heshvan":     Cheshvan,
	"marcheshvan": Cheshvan,
	"kislev":      Kislev,
	"teves":       Teves,
	"tevet":       Teves,
	"shevat":      Shevat,
	"shvat":       Shevat,
	"adar":        Adar,
	"adari":       Adar,
	"adar1":       Adar,
	"adarii":      AdarII,
	"adar2":       AdarII,
}

// ParseHebrewMonth parses a month number (1-13, Nissan = 1) or a transliterated
// name such as "Kislev", "adar-ii" or "Adar 2". It does not check that the
// month exists in any particular year.
func ParseHebrewMonth(s string) (HebrewMonth, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := HebrewMonth(n)
		if m < Nissan || m > AdarII {
			return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, n)
		}
		return m, nil
	}

	key := strings.NewReplacer(" ", "", "-", "", "'", "", "_", "").Replace(strings.ToLower(s))
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}
