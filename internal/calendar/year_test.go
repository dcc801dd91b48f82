package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeYear(t *testing.T) {
	s, err := SummarizeYear(5784)
	require.NoError(t, err)

	assert.Equal(t, 5784, s.Year)
	assert.True(t, s.Leap)
	assert.Equal(t, 383, s.Days)
	assert.Equal(t, "chaseirim", s.Kviah)
	assert.Equal(t, GregorianDate{2023, time.September, 16}, s.RoshHashana)
	assert.Equal(t, time.Saturday, s.RoshHashanaWeekday)
	require.Len(t, s.Months, 13)

	total := 0
	for i, m := range s.Months {
		total += m.Days
		if i > 0 {
			prev := s.Months[i-1]
			assert.Equal(t, prev.FirstDay.Absolute()+prev.Days, m.FirstDay.Absolute(), "%s follows %s", m.Name, prev.Name)
		}
	}
	assert.Equal(t, s.Days, total)

	adarII := s.Months[6]
	assert.Equal(t, AdarII, adarII.Month)
	assert.Equal(t, "Adar II", adarII.Name)
	assert.Equal(t, GregorianDate{2024, time.March, 11}, adarII.FirstDay)
}

func TestSummarizeYear_Invalid(t *testing.T) {
	_, err := SummarizeYear(0)
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, err = SummarizeYear(3761)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSummarizeMonth(t *testing.T) {
	m, err := SummarizeMonth(5778, Kislev)
	require.NoError(t, err)
	assert.Equal(t, 30, m.Days)
	assert.Equal(t, GregorianDate{2017, time.November, 19}, m.FirstDay)
	assert.Equal(t, time.Sunday, m.Weekday)

	_, err = SummarizeMonth(5778, AdarII)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
