package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		fail             bool
		expected         string
	}{
		{name: "Valid", year: 2016, month: 7, day: 10, expected: "2016-07-10"},
		{name: "FirstOfYear", year: 2016, month: 1, day: 1, expected: "2016-01-01"},
		{name: "LastOfYear", year: 2016, month: 12, day: 31, expected: "2016-12-31"},
		{name: "LeapDay", year: 2016, month: 2, day: 29, expected: "2016-02-29"},
		{name: "CenturyLeapDay", year: 2000, month: 2, day: 29, expected: "2000-02-29"},
		{name: "NonLeapFebTwentyNinth", year: 2015, month: 2, day: 29, fail: true},
		{name: "CenturyNonLeap", year: 1900, month: 2, day: 29, fail: true},
		{name: "MonthThirteen", year: 2016, month: 13, day: 1, fail: true},
		{name: "MonthZero", year: 2016, month: 0, day: 1, fail: true},
		{name: "DayZero", year: 2016, month: 7, day: 0, fail: true},
		{name: "FebruaryThirtieth", year: 2016, month: 2, day: 30, fail: true},
		{name: "AprilThirtyFirst", year: 2016, month: 4, day: 31, fail: true},
		{name: "DayThirtyTwo", year: 2016, month: 7, day: 32, fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := NewDate(tt.year, tt.month, tt.day)
			if tt.fail {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date.String())
		})
	}
}

func TestMustDatePanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		MustDate(2016, 2, 30)
	})
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, MustDate(2016, 7, 10).IsZero())
}
