package dates_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/dates"
)

const angleTolerance = 1e-9

// utcClock builds a UTC instant with the given hour and minute.
func utcClock(hour, minute int) time.Time {
	return time.Date(2016, 6, 27, hour, minute, 0, 0, time.UTC)
}

// TestClockAngle_Cardinal verifies the cardinal hand positions.
func TestClockAngle_Cardinal(t *testing.T) {
	assert.InDelta(t, 0, dates.ClockAngle(utcClock(0, 0)), angleTolerance, "midnight: hands overlap")
	assert.InDelta(t, math.Pi/2, dates.ClockAngle(utcClock(3, 0)), angleTolerance, "03:00: right angle")
	assert.InDelta(t, math.Pi, dates.ClockAngle(utcClock(6, 0)), angleTolerance, "06:00: straight line")
	assert.InDelta(t, 0, dates.ClockAngle(utcClock(12, 0)), angleTolerance, "noon folds to 0")
}

// TestClockAngle_ContinuousHourHand verifies the hour hand drifts with the
// minutes: at 3:30 the angle is 75°, not 90°.
func TestClockAngle_ContinuousHourHand(t *testing.T) {
	want := 75 * math.Pi / 180
	assert.InDelta(t, want, dates.ClockAngle(utcClock(3, 30)), angleTolerance)
}

// TestClockAngle_ShorterArc verifies folding into [0, π]: at 9:00 the raw
// 270° separation folds to 90°.
func TestClockAngle_ShorterArc(t *testing.T) {
	assert.InDelta(t, math.Pi/2, dates.ClockAngle(utcClock(9, 0)), angleTolerance)
}

// TestClockAngle_UTCHourLocalMinute pins the documented field mix: the hour
// hand reads the UTC hour while the minute hand reads the argument's own
// wall-clock minute field.
func TestClockAngle_UTCHourLocalMinute(t *testing.T) {
	// Local 03:00 at +05:30 is 21:30 UTC: hour hand at UTC 21 (→ 9 on the
	// face), minute hand at the local :00 — yielding 270° folded to π/2,
	// not the pure-UTC 21:30 answer (105°).
	zone := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2016, 6, 27, 3, 0, 0, 0, zone)

	assert.InDelta(t, math.Pi/2, dates.ClockAngle(local), angleTolerance)
}
