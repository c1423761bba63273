package dates

import (
	"math"
	"time"
)

// Clock-face geometry (degrees).
const (
	degreesPerHour   = 30.0 // 360° / 12 hours
	degreesPerMinute = 5.5  // hour hand drifts 0.5°/min against 6°/min minute hand
	halfTurnDegrees  = 180.0
	fullTurnDegrees  = 360.0
	hoursOnFace      = 12
)

// ClockAngle returns the angle between the hour and minute hands of an
// analog clock showing t, in radians folded into the shorter arc [0, π].
//
// The hour hand position is taken from t's UTC hour field while the minute
// hand uses t's wall-clock minute field; the hour hand advances continuously
// with the minutes.
func ClockAngle(t time.Time) float64 {
	hour := float64(t.UTC().Hour() % hoursOnFace)
	minute := float64(t.Minute())

	degrees := math.Abs(degreesPerHour*hour - degreesPerMinute*minute)
	if degrees > halfTurnDegrees {
		degrees = fullTurnDegrees - degrees
	}
	return degrees * math.Pi / halfTurnDegrees
}
