package dates

import (
	"math"
	"time"
)

// Timestamp is a point in time as float64 epoch milliseconds (UTC).
//
// The invalid sentinel is NaN: parse failures return Invalid() rather than
// an error, and NaN ≠ NaN makes direct comparison useless — always branch on
// IsValid.
type Timestamp float64

// Invalid returns the NaN sentinel marking unparseable input.
func Invalid() Timestamp {
	return Timestamp(math.NaN())
}

// IsValid reports whether ts holds a real instant (is not the sentinel).
func (ts Timestamp) IsValid() bool {
	return !math.IsNaN(float64(ts))
}

// Time converts ts to a UTC time.Time, truncating sub-millisecond precision.
// The zero time is returned for the invalid sentinel.
func (ts Timestamp) Time() time.Time {
	if !ts.IsValid() {
		return time.Time{}
	}
	return time.UnixMilli(int64(ts)).UTC()
}

// At converts a time.Time into a Timestamp.
func At(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}
