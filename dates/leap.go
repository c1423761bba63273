package dates

import "time"

// Gregorian leap-year divisors (no magic numbers).
const (
	leapCycle      = 4
	centuryCycle   = 100
	quadCentennial = 400
)

// IsLeapYear reports whether t's year is a Gregorian leap year: divisible by
// 4 and (not divisible by 100 or divisible by 400).
func IsLeapYear(t time.Time) bool {
	y := t.Year()
	return y%leapCycle == 0 && (y%centuryCycle != 0 || y%quadCentennial == 0)
}
