package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{5776, true},
		{5777, false},
		{5778, false},
		{5779, true},
		{5782, true},
		{5784, true},
		{5785, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "IsLeapYear(%d)", tt.year)
	}
}

func TestIsLeapYear_SevenPerCycle(t *testing.T) {
	for start := 1; start <= 6000; start += 7 {
		leaps := 0
		for y := start; y < start+19; y++ {
			if IsLeapYear(y) {
				leaps++
			}
		}
		require.Equal(t, 7, leaps, "leap years in [%d, %d]", start, start+18)
	}
}

func TestMonthOrdinalFromTishrei(t *testing.T) {
	// 5778 is a common year, 5779 a leap year.
	assert.Equal(t, 1, monthOrdinalFromTishrei(5778, Tishrei))
	assert.Equal(t, 6, monthOrdinalFromTishrei(5778, Adar))
	assert.Equal(t, 7, monthOrdinalFromTishrei(5778, Nissan))
	assert.Equal(t, 12, monthOrdinalFromTishrei(5778, Elul))

	assert.Equal(t, 1, monthOrdinalFromTishrei(5779, Tishrei))
	assert.Equal(t, 6, monthOrdinalFromTishrei(5779, Adar))
	assert.Equal(t, 7, monthOrdinalFromTishrei(5779, AdarII))
	assert.Equal(t, 8, monthOrdinalFromTishrei(5779, Nissan))
	assert.Equal(t, 13, monthOrdinalFromTishrei(5779, Elul))
}

func TestMolad_PartsWithinDay(t *testing.T) {
	for y := 1; y <= 6000; y++ {
		m := moladOf(y, Tishrei)
		require.GreaterOrEqual(t, m.parts, 0)
		require.Less(t, m.parts, chalakimPerDay)
	}
}

func TestMolad_Tohu(t *testing.T) {
	// Molad Tohu, the molad of Tishrei of year 1: Monday (day 1), 5 hours, 204 parts.
	m := moladOf(1, Tishrei)
	assert.Equal(t, 1, m.day)
	assert.Equal(t, 5*chalakimPerHour+204, m.parts)
}

func TestRoshHashanaDay_LoADURosh(t *testing.T) {
	for y := 1; y <= 6000; y++ {
		switch roshHashanaDay(y) % 7 {
		case 0, 3, 5:
			t.Fatalf("Rosh Hashana %d falls on a forbidden weekday (day %d)", y, roshHashanaDay(y))
		}
	}
}

func TestRoshHashanaAbsolute(t *testing.T) {
	tests := []struct {
		year int
		want GregorianDate
	}{
		{5778, GregorianDate{2017, 9, 21}},
		{5779, GregorianDate{2018, 9, 10}},
		{5780, GregorianDate{2019, 9, 30}},
		{5784, GregorianDate{2023, 9, 16}},
		{5785, GregorianDate{2024, 10, 3}},
		{5786, GregorianDate{2025, 9, 23}},
	}

	for _, tt := range tests {
		got := gregorianFromAbsolute(roshHashanaAbsolute(tt.year))
		assert.Equal(t, tt.want, got, "Rosh Hashana %d", tt.year)
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{5778, 354},
		{5779, 385},
		{5784, 383},
		{5785, 355},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInYear(tt.year), "DaysInYear(%d)", tt.year)
	}
}

func TestDaysInYear_ValidLengths(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}

	for y := 1; y <= 6000; y++ {
		days := DaysInYear(y)
		require.True(t, valid[days], "DaysInYear(%d) = %d", y, days)
		if IsLeapYear(y) {
			require.Greater(t, days, 380, "leap year %d", y)
		} else {
			require.Less(t, days, 360, "common year %d", y)
		}
	}
}

func TestMonthLength(t *testing.T) {
	// 5785 is a complete (355-day) common year.
	assert.Equal(t, 30, MonthLength(Cheshvan, 5785))
	assert.Equal(t, 30, MonthLength(Kislev, 5785))
	assert.Equal(t, 29, MonthLength(Adar, 5785))

	// 5784 is a deficient (383-day) leap year.
	assert.Equal(t, 29, MonthLength(Cheshvan, 5784))
	assert.Equal(t, 29, MonthLength(Kislev, 5784))
	assert.Equal(t, 30, MonthLength(Adar, 5784))
	assert.Equal(t, 29, MonthLength(AdarII, 5784))

	// 5778 is a regular (354-day) common year.
	assert.Equal(t, 29, MonthLength(Cheshvan, 5778))
	assert.Equal(t, 30, MonthLength(Kislev, 5778))

	for _, m := range []HebrewMonth{Nissan, Sivan, Av, Tishrei, Shevat} {
		assert.Equal(t, 30, MonthLength(m, 5778), "%s", m)
	}
	for _, m := range []HebrewMonth{Iyar, Tamuz, Elul, Teves} {
		assert.Equal(t, 29, MonthLength(m, 5778), "%s", m)
	}
}

func TestMonthLength_SumsToYear(t *testing.T) {
	for y := 5600; y <= 5900; y++ {
		total := 0
		for _, m := range MonthsInYear(y) {
			total += MonthLength(m, y)
		}
		require.Equal(t, DaysInYear(y), total, "year %d", y)
	}
}

func TestCheshvanKislevFlags(t *testing.T) {
	for y := 5600; y <= 5900; y++ {
		// A year cannot be both complete and deficient.
		require.False(t, IsCheshvanLong(y) && IsKislevShort(y), "year %d", y)
	}
}

func TestHebrewMonth_ValidIn(t *testing.T) {
	assert.False(t, AdarII.ValidIn(5777))
	assert.True(t, Adar.ValidIn(5777))
	assert.True(t, AdarII.ValidIn(5779))
	assert.False(t, HebrewMonth(0).ValidIn(5779))
	assert.False(t, HebrewMonth(14).ValidIn(5779))
}

func TestMonthsInYear(t *testing.T) {
	common := MonthsInYear(5778)
	require.Len(t, common, 12)
	assert.Equal(t, Tishrei, common[0])
	assert.Equal(t, Adar, common[5])
	assert.Equal(t, Nissan, common[6])
	assert.Equal(t, Elul, common[11])

	leap := MonthsInYear(5779)
	require.Len(t, leap, 13)
	assert.Equal(t, AdarII, leap[6])
	assert.Equal(t, Elul, leap[12])
}

func TestHebrewMonth_String(t *testing.T) {
	assert.Equal(t, "Kislev", Kislev.String())
	assert.Equal(t, "Adar II", AdarII.String())
	assert.Equal(t, "HebrewMonth(14)", HebrewMonth(14).String())
}

func TestParseHebrewMonth(t *testing.T) {
	tests := []struct {
		in   string
		want HebrewMonth
	}{
		{"9", Kislev},
		{"13", AdarII},
		{"Kislev", Kislev},
		{"kislev", Kislev},
		{" Tishrei ", Tishrei},
		{"adar-ii", AdarII},
		{"Adar II", AdarII},
		{"Adar 2", AdarII},
		{"Adar I", Adar},
		{"Tevet", Teves},
	}

	for _, tt := range tests {
		got, err := ParseHebrewMonth(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"0", "14", "-1", "", "Ianuarius"} {
		_, err := ParseHebrewMonth(bad)
		assert.ErrorIs(t, err, ErrInvalidMonth, bad)
	}
}

func TestFloorDivMod(t *testing.T) {
	assert.Equal(t, -1, div(-1, 19))
	assert.Equal(t, 18, mod(-1, 19))
	assert.Equal(t, 2, div(38, 19))
	assert.Equal(t, 0, mod(38, 19))
}
