package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/dates"
)

// TestIsLeapYear covers the canonical Gregorian fixtures: centuries are not
// leap unless divisible by 400.
func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2012, true},
		{1900, false},
		{2001, false},
		{2015, false},
	}
	for _, tc := range cases {
		d := time.Date(tc.year, time.June, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, dates.IsLeapYear(d), "year %d", tc.year)
	}
}
