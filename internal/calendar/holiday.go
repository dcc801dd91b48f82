package calendar

import "time"

// Holiday identifies a festival, fast or commemorative day.
type Holiday int

const (
	NoHoliday Holiday = iota
	ErevPesach
	Pesach
	CholHamoedPesach
	PesachSheni
	LagBaomer
	ErevShavuos
	Shavuos
	SeventeenOfTamuz
	TishaBeav
	TuBeav
	ErevRoshHashana
	RoshHashana
	FastOfGedalyah
	ErevYomKippur
	YomKippur
	ErevSuccos
	Succos
	CholHamoedSuccos
	HoshanaRabba
	SheminiAtzeres
	SimchasTorah
	Chanukah
	TenthOfTeves
	TuBeshevat
	FastOfEsther
	Purim
	ShushanPurim
	PurimKatan
	YomHashoah
	YomHazikaron
	YomHaatzmaut
	YomYerushalayim
)

var holidayNames = [...]string{
	NoHoliday:        "",
	ErevPesach:       "Erev Pesach",
	Pesach:           "Pesach",
	CholHamoedPesach: "Chol Hamoed Pesach",
	PesachSheni:      "Pesach Sheni",
	LagBaomer:        "Lag BaOmer",
	ErevShavuos:      "Erev Shavuos",
	Shavuos:          "Shavuos",
	SeventeenOfTamuz: "Seventeenth of Tamuz",
	TishaBeav:        "Tisha B'Av",
	TuBeav:           "Tu B'Av",
	ErevRoshHashana:  "Erev Rosh Hashana",
	RoshHashana:      "Rosh Hashana",
	FastOfGedalyah:   "Fast of Gedalyah",
	ErevYomKippur:    "Erev Yom Kippur",
	YomKippur:        "Yom Kippur",
	ErevSuccos:       "Erev Succos",
	Succos:           "Succos",
	CholHamoedSuccos: "Chol Hamoed Succos",
	HoshanaRabba:     "Hoshana Rabba",
	SheminiAtzeres:   "Shemini Atzeres",
	SimchasTorah:     "Simchas Torah",
	Chanukah:         "Chanukah",
	TenthOfTeves:     "Tenth of Teves",
	TuBeshevat:       "Tu BiShvat",
	FastOfEsther:     "Fast of Esther",
	Purim:            "Purim",
	ShushanPurim:     "Shushan Purim",
	PurimKatan:       "Purim Katan",
	YomHashoah:       "Yom HaShoah",
	YomHazikaron:     "Yom HaZikaron",
	YomHaatzmaut:     "Yom HaAtzmaut",
	YomYerushalayim:  "Yom Yerushalayim",
}

func (d Holiday) String() string {
	if d < 0 || int(d) >= len(holidayNames) {
		return "unknown"
	}
	return holidayNames[d]
}

// HolidayOptions selects the holiday scheme.
type HolidayOptions struct {
	// Israel observes one day of Pesach, Shavuos and Shemini Atzeres instead
	// of two.
	Israel bool
	// Modern adds the Israeli national days of Iyar and Nissan.
	Modern bool
}

// Holiday returns the holiday falling on h, or NoHoliday. h must be valid.
func (h HebrewDate) Holiday(opts HolidayOptions) Holiday {
	wd := h.Weekday()

	switch h.Month {
	case Nissan:
		switch {
		case h.Day == 14:
			return ErevPesach
		case h.Day == 15 || h.Day == 21:
			return Pesach
		case h.Day == 16 && !opts.Israel, h.Day == 22 && !opts.Israel:
			return Pesach
		case h.Day >= 16 && h.Day <= 20:
			return CholHamoedPesach
		}
		if opts.Modern && isYomHashoah(h.Day, wd) {
			return YomHashoah
		}

	case Iyar:
		if opts.Modern {
			switch {
			case isYomHazikaron(h.Day, wd):
				return YomHazikaron
			case isYomHaatzmaut(h.Day, wd):
				return YomHaatzmaut
			case h.Day == 28:
				return YomYerushalayim
			}
		}
		switch h.Day {
		case 14:
			return PesachSheni
		case 18:
			return LagBaomer
		}

	case Sivan:
		switch {
		case h.Day == 5:
			return ErevShavuos
		case h.Day == 6, h.Day == 7 && !opts.Israel:
			return Shavuos
		}

	case Tamuz:
		// Postponed to Sunday when the 17th is Shabbos.
		if (h.Day == 17 && wd != time.Saturday) || (h.Day == 18 && wd == time.Sunday) {
			return SeventeenOfTamuz
		}

	case Av:
		if (h.Day == 9 && wd != time.Saturday) || (h.Day == 10 && wd == time.Sunday) {
			return TishaBeav
		}
		if h.Day == 15 {
			return TuBeav
		}

	case Elul:
		if h.Day == 29 {
			return ErevRoshHashana
		}

	case Tishrei:
		switch {
		case h.Day == 1 || h.Day == 2:
			return RoshHashana
		case h.Day == 3 && wd != time.Saturday, h.Day == 4 && wd == time.Sunday:
			return FastOfGedalyah
		case h.Day == 9:
			return ErevYomKippur
		case h.Day == 10:
			return YomKippur
		case h.Day == 14:
			return ErevSuccos
		case h.Day == 15:
			return Succos
		case h.Day == 16 && !opts.Israel:
			return Succos
		case h.Day >= 16 && h.Day <= 20:
			return CholHamoedSuccos
		case h.Day == 21:
			return HoshanaRabba
		case h.Day == 22:
			return SheminiAtzeres
		case h.Day == 23 && !opts.Israel:
			return SimchasTorah
		}

	case Kislev:
		if h.Day >= 25 {
			return Chanukah
		}

	case Teves:
		if h.Day <= 2 || (h.Day == 3 && IsKislevShort(h.Year)) {
			return Chanukah
		}
		if h.Day == 10 {
			return TenthOfTeves
		}

	case Shevat:
		if h.Day == 15 {
			return TuBeshevat
		}

	case Adar, AdarII:
		// Purim is kept in the last Adar of the year.
		if h.Month != LastMonthOfYear(h.Year) {
			if h.Day == 14 {
				return PurimKatan
			}
			return NoHoliday
		}
		switch {
		// Moved back to Thursday when the 13th is Shabbos.
		case h.Day == 13 && wd != time.Saturday, h.Day == 11 && wd == time.Thursday:
			return FastOfEsther
		case h.Day == 14:
			return Purim
		case h.Day == 15:
			return ShushanPurim
		}
	}

	return NoHoliday
}

// Yom HaShoah is 27 Nissan, moved off Friday to Thursday and off Sunday to
// Monday.
func isYomHashoah(day int, wd time.Weekday) bool {
	switch day {
	case 26:
		return wd == time.Thursday
	case 27:
		return wd != time.Friday && wd != time.Sunday
	case 28:
		return wd == time.Monday
	}
	return false
}

// Yom HaZikaron is 4 Iyar and Yom HaAtzmaut 5 Iyar. Both move back when
// Atzmaut would fall on Friday or Shabbos, and forward when Zikaron would
// fall on Sunday.
func isYomHazikaron(day int, wd time.Weekday) bool {
	switch day {
	case 2, 3:
		return wd == time.Wednesday
	case 4:
		return wd == time.Tuesday
	case 5:
		return wd == time.Monday
	}
	return false
}

func isYomHaatzmaut(day int, wd time.Weekday) bool {
	switch day {
	case 3, 4:
		return wd == time.Thursday
	case 5:
		return wd == time.Wednesday
	case 6:
		return wd == time.Tuesday
	}
	return false
}

// IsYomTov reports whether h is a festival day on which work is prohibited:
// Rosh Hashana, Yom Kippur and the first and last days of Pesach, Shavuos and
// Succos.
func (h HebrewDate) IsYomTov(opts HolidayOptions) bool {
	switch h.Holiday(opts) {
	case Pesach, Shavuos, RoshHashana, YomKippur, Succos, SheminiAtzeres, SimchasTorah:
		return true
	}
	return false
}

// IsCholHamoed reports whether h is one of the intermediate days of Pesach or
// Succos.
func (h HebrewDate) IsCholHamoed(opts HolidayOptions) bool {
	switch h.Holiday(opts) {
	case CholHamoedPesach, CholHamoedSuccos:
		return true
	}
	return false
}

// IsErevYomTov reports whether h is the eve of Pesach, Shavuos, Rosh Hashana,
// Yom Kippur or Succos.
func (h HebrewDate) IsErevYomTov() bool {
	switch h.Holiday(HolidayOptions{}) {
	case ErevPesach, ErevShavuos, ErevRoshHashana, ErevYomKippur, ErevSuccos:
		return true
	}
	return false
}

// IsTaanis reports whether h is a public fast day, taking postponements into
// account.
func (h HebrewDate) IsTaanis() bool {
	switch h.Holiday(HolidayOptions{}) {
	case SeventeenOfTamuz, TishaBeav, YomKippur, FastOfGedalyah, TenthOfTeves, FastOfEsther:
		return true
	}
	return false
}

// IsChanukah reports whether h falls in the eight days of Chanukah.
func (h HebrewDate) IsChanukah() bool {
	return h.Holiday(HolidayOptions{}) == Chanukah
}

// DayOfChanukah returns the day of Chanukah (1 through 8), or 0 when h falls
// outside it. Chanukah starts on 25 Kislev and runs into Teves, one day
// further when Kislev is short.
func (h HebrewDate) DayOfChanukah() int {
	if !h.IsChanukah() {
		return 0
	}
	if h.Month == Kislev {
		return h.Day - 24
	}
	return h.Day + MonthLength(Kislev, h.Year) - 24
}
