package calendar

import "time"

// MonthSummary describes one month of a Hebrew year.
type MonthSummary struct {
	Month    HebrewMonth   `json:"month"`
	Name     string        `json:"name"`
	Days     int           `json:"days"`
	FirstDay GregorianDate `json:"first_day"`
	Weekday  time.Weekday  `json:"weekday"`
}

// YearSummary describes the structure of a Hebrew year.
type YearSummary struct {
	Year                int            `json:"year"`
	Leap                bool           `json:"leap"`
	Days                int            `json:"days"`
	Kviah               string         `json:"kviah"`
	RoshHashanaAbsolute int            `json:"rosh_hashana_absolute"`
	RoshHashana         GregorianDate  `json:"rosh_hashana"`
	RoshHashanaWeekday  time.Weekday   `json:"rosh_hashana_weekday"`
	Months              []MonthSummary `json:"months"`
}

// SummarizeYear returns the structure of a Hebrew year. The year must begin on
// or after January 1, year 1; earlier years return ErrOutOfRange.
func SummarizeYear(year int) (YearSummary, error) {
	if year < 1 {
		return YearSummary{}, hebrewError(year, Tishrei, 1, ErrInvalidYear)
	}
	rh := roshHashanaAbsolute(year)
	if rh < 1 {
		return YearSummary{}, hebrewError(year, Tishrei, 1, ErrOutOfRange)
	}

	shape := shapeOf(year)
	summary := YearSummary{
		Year:                year,
		Leap:                shape.leap,
		Days:                DaysInYear(year),
		Kviah:               Kviah(year).String(),
		RoshHashanaAbsolute: rh,
		RoshHashana:         gregorianFromAbsolute(rh),
		RoshHashanaWeekday:  Weekday(rh),
	}

	first := rh
	for _, month := range MonthsInYear(year) {
		n := shape.length(month)
		summary.Months = append(summary.Months, MonthSummary{
			Month:    month,
			Name:     month.String(),
			Days:     n,
			FirstDay: gregorianFromAbsolute(first),
			Weekday:  Weekday(first),
		})
		first += n
	}

	return summary, nil
}

// SummarizeMonth returns one month of a Hebrew year.
func SummarizeMonth(year int, month HebrewMonth) (MonthSummary, error) {
	abs, err := HebrewToAbsolute(year, month, 1)
	if err != nil {
		return MonthSummary{}, err
	}
	if abs < 1 {
		return MonthSummary{}, hebrewError(year, month, 1, ErrOutOfRange)
	}
	return MonthSummary{
		Month:    month,
		Name:     month.String(),
		Days:     MonthLength(month, year),
		FirstDay: gregorianFromAbsolute(abs),
		Weekday:  Weekday(abs),
	}, nil
}
