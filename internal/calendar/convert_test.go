package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGregorianToHebrew(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  HebrewDate
	}{
		{"kislev 9 5778", 2017, time.November, 27, HebrewDate{5778, Kislev, 9}},
		{"rosh hashana 5778", 2017, time.September, 21, HebrewDate{5778, Tishrei, 1}},
		{"erev rosh hashana 5778", 2017, time.September, 20, HebrewDate{5777, Elul, 29}},
		{"pesach 5778", 2018, time.March, 31, HebrewDate{5778, Nissan, 15}},
		{"pesach 5779", 2019, time.April, 20, HebrewDate{5779, Nissan, 15}},
		{"purim 5784", 2024, time.March, 24, HebrewDate{5784, AdarII, 14}},
		{"yom kippur 5785", 2024, time.October, 12, HebrewDate{5785, Tishrei, 10}},
		{"gregorian epoch", 1, time.January, 1, HebrewDate{3761, Teves, 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GregorianToHebrew(tt.year, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHebrewToGregorian(t *testing.T) {
	tests := []struct {
		name string
		date HebrewDate
		want GregorianDate
	}{
		{"kislev 10 5778", HebrewDate{5778, Kislev, 10}, GregorianDate{2017, time.November, 28}},
		{"rosh hashana 5785", HebrewDate{5785, Tishrei, 1}, GregorianDate{2024, time.October, 3}},
		{"adar I 5784", HebrewDate{5784, Adar, 1}, GregorianDate{2024, time.February, 10}},
		{"teves 18 3761", HebrewDate{3761, Teves, 18}, GregorianDate{1, time.January, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HebrewToGregorian(tt.date.Year, tt.date.Month, tt.date.Day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHebrewToGregorian_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month HebrewMonth
		day   int
		want  error
	}{
		{"year zero", 0, Tishrei, 1, ErrInvalidYear},
		{"adar II in common year", 5777, AdarII, 1, ErrInvalidMonth},
		{"month zero", 5778, 0, 1, ErrInvalidMonth},
		{"month fourteen", 5779, 14, 1, ErrInvalidMonth},
		{"day zero", 5778, Nissan, 0, ErrInvalidDay},
		{"iyar 30", 5778, Iyar, 30, ErrInvalidDay},
		{"short cheshvan 30", 5778, Cheshvan, 30, ErrInvalidDay},
		{"before gregorian epoch", 3761, Teves, 17, ErrOutOfRange},
		{"early year", 100, Nissan, 1, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HebrewToGregorian(tt.year, tt.month, tt.day)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdarII_LeapOnly(t *testing.T) {
	_, err := HebrewToAbsolute(5777, AdarII, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = HebrewToAbsolute(5779, AdarII, 1)
	assert.NoError(t, err)
}

func TestScenario_AbsoluteRoundTrip(t *testing.T) {
	abs, err := GregorianToAbsolute(2017, time.November, 27)
	require.NoError(t, err)

	got, err := AbsoluteToGregorian(abs)
	require.NoError(t, err)
	assert.Equal(t, GregorianDate{2017, time.November, 27}, got)
}

func TestHebrew_RoundTrip(t *testing.T) {
	for year := 5700; year <= 5800; year++ {
		for _, month := range MonthsInYear(year) {
			for day := 1; day <= MonthLength(month, year); day++ {
				g, err := HebrewToGregorian(year, month, day)
				require.NoError(t, err)

				h, err := GregorianToHebrew(g.Year, g.Month, g.Day)
				require.NoError(t, err)
				require.Equal(t, HebrewDate{year, month, day}, h, "round trip through %s", g)
			}
		}
	}
}

func TestHebrew_ConsecutiveDays(t *testing.T) {
	start := absoluteFromGregorian(1900, 1, 1)
	prev, err := AbsoluteToHebrew(start)
	require.NoError(t, err)

	for abs := start + 1; abs < start+365*250; abs++ {
		h, err := AbsoluteToHebrew(abs)
		require.NoError(t, err)

		if h.Day == 1 {
			require.Equal(t, MonthLength(prev.Month, prev.Year), prev.Day, "month ended early at %s", prev)
		} else {
			require.Equal(t, prev.Day+1, h.Day, "gap after %s", prev)
			require.Equal(t, prev.Month, h.Month)
		}
		require.Equal(t, abs, h.Absolute())
		prev = h
	}
}

func TestAbsoluteToHebrew(t *testing.T) {
	h, err := AbsoluteToHebrew(736660)
	require.NoError(t, err)
	assert.Equal(t, HebrewDate{5778, Kislev, 9}, h)

	_, err = AbsoluteToHebrew(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDateValueMethods(t *testing.T) {
	g := GregorianDate{2017, time.November, 27}
	assert.Equal(t, 736660, g.Absolute())
	assert.Equal(t, HebrewDate{5778, Kislev, 9}, g.Hebrew())
	assert.Equal(t, g, g.Hebrew().Gregorian())
	assert.Equal(t, "9 Kislev 5778", g.Hebrew().String())
}

func TestAbsoluteToHebrew_DistantFuture(t *testing.T) {
	// From Gregorian 22336 on, January falls before Rosh Hashana of
	// year+3760, so the search has to step back a year.
	for _, gy := range []int{22335, 22336, 22337, 50000, 99999} {
		for _, day := range []int{1, 15, 31} {
			abs, err := GregorianToAbsolute(gy, time.January, day)
			require.NoError(t, err)

			h, err := AbsoluteToHebrew(abs)
			require.NoError(t, err)
			require.GreaterOrEqual(t, h.Day, 1, "%d-01-%02d gave %s", gy, day, h)
			require.LessOrEqual(t, h.Day, MonthLength(h.Month, h.Year), "%d-01-%02d gave %s", gy, day, h)
			assert.Equal(t, abs, h.Absolute(), "%d-01-%02d round trip via %s", gy, day, h)

			g, err := GregorianToHebrew(gy, time.January, day)
			require.NoError(t, err)
			assert.Equal(t, h, g)
		}
	}
}

func TestAbsoluteToHebrew_DistantFutureConsecutive(t *testing.T) {
	start, err := GregorianToAbsolute(50000, time.January, 1)
	require.NoError(t, err)

	prev, err := AbsoluteToHebrew(start - 400)
	require.NoError(t, err)
	for abs := start - 399; abs <= start+400; abs++ {
		h, err := AbsoluteToHebrew(abs)
		require.NoError(t, err)
		next, err := prev.AddDays(1)
		require.NoError(t, err)
		require.Equal(t, next, h, "day %d", abs)
		prev = h
	}
}

func TestNewHebrewDate(t *testing.T) {
	h, err := NewHebrewDate(5784, Teves, 3)
	require.NoError(t, err)
	assert.Equal(t, HebrewDate{5784, Teves, 3}, h)

	_, err = NewHebrewDate(5784, Kislev, 30)
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = NewHebrewDate(5778, AdarII, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = NewHebrewDate(0, Nissan, 1)
	assert.ErrorIs(t, err, ErrInvalidYear)
}
