package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday(t *testing.T) {
	assert.Equal(t, time.Monday, Weekday(1))
	assert.Equal(t, time.Monday, Weekday(736660)) // 2017-11-27
	assert.Equal(t, time.Thursday, HebrewDate{5778, Tishrei, 1}.Weekday())
	assert.Equal(t, time.Saturday, HebrewDate{5785, Tishrei, 10}.Weekday())
}

func TestRoshHashana_Weekday(t *testing.T) {
	for y := 3762; y <= 6000; y++ {
		switch (HebrewDate{y, Tishrei, 1}).Weekday() {
		case time.Sunday, time.Wednesday, time.Friday:
			t.Fatalf("Rosh Hashana %d on %s", y, HebrewDate{y, Tishrei, 1}.Weekday())
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		from HebrewDate
		n    int
		want HebrewDate
	}{
		{"forward within month", HebrewDate{5778, Kislev, 9}, 1, HebrewDate{5778, Kislev, 10}},
		{"forward across year", HebrewDate{5777, Elul, 29}, 1, HebrewDate{5778, Tishrei, 1}},
		{"back across year", HebrewDate{5778, Tishrei, 1}, -1, HebrewDate{5777, Elul, 29}},
		{"adar to adar II", HebrewDate{5779, Adar, 30}, 1, HebrewDate{5779, AdarII, 1}},
		{"adar II back to adar", HebrewDate{5779, AdarII, 1}, -1, HebrewDate{5779, Adar, 30}},
		{"adar to nissan", HebrewDate{5778, Adar, 29}, 1, HebrewDate{5778, Nissan, 1}},
		{"nissan back in leap year", HebrewDate{5779, Nissan, 1}, -1, HebrewDate{5779, AdarII, 29}},
		{"a full common year", HebrewDate{5778, Tishrei, 1}, 354, HebrewDate{5779, Tishrei, 1}},
		{"zero", HebrewDate{5778, Sivan, 6}, 0, HebrewDate{5778, Sivan, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.AddDays(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDays_Invalid(t *testing.T) {
	_, err := HebrewDate{5777, AdarII, 1}.AddDays(1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = HebrewDate{3761, Teves, 18}.AddDays(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestIsRoshChodesh(t *testing.T) {
	assert.False(t, HebrewDate{5778, Tishrei, 1}.IsRoshChodesh())
	assert.True(t, HebrewDate{5778, Cheshvan, 1}.IsRoshChodesh())
	assert.True(t, HebrewDate{5778, Tishrei, 30}.IsRoshChodesh())
	assert.True(t, HebrewDate{5778, Nissan, 1}.IsRoshChodesh())
	assert.False(t, HebrewDate{5778, Nissan, 15}.IsRoshChodesh())
}

func TestDayOfOmer(t *testing.T) {
	assert.Equal(t, 0, HebrewDate{5778, Nissan, 15}.DayOfOmer())
	assert.Equal(t, 1, HebrewDate{5778, Nissan, 16}.DayOfOmer())
	assert.Equal(t, 15, HebrewDate{5778, Nissan, 30}.DayOfOmer())
	assert.Equal(t, 16, HebrewDate{5778, Iyar, 1}.DayOfOmer())
	assert.Equal(t, 33, HebrewDate{5778, Iyar, 18}.DayOfOmer())
	assert.Equal(t, 49, HebrewDate{5778, Sivan, 5}.DayOfOmer())
	assert.Equal(t, 0, HebrewDate{5778, Sivan, 6}.DayOfOmer())
}

func TestKviah(t *testing.T) {
	assert.Equal(t, Kesidran, Kviah(5778))
	assert.Equal(t, Shelaimim, Kviah(5779))
	assert.Equal(t, Chaseirim, Kviah(5784))
	assert.Equal(t, Shelaimim, Kviah(5785))
	assert.Equal(t, "chaseirim", Chaseirim.String())
}

func TestIsErevRoshChodesh(t *testing.T) {
	assert.True(t, HebrewDate{5778, Tishrei, 29}.IsErevRoshChodesh())
	assert.True(t, HebrewDate{5778, Kislev, 29}.IsErevRoshChodesh())
	assert.False(t, HebrewDate{5777, Elul, 29}.IsErevRoshChodesh())
	assert.False(t, HebrewDate{5778, Kislev, 30}.IsErevRoshChodesh())
}
