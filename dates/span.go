package dates

import (
	"fmt"
	"time"
)

// FormatTimespan renders the wall-clock difference between start and end as
// "HH:mm:ss.sss": hours, minutes and seconds zero-padded to two digits,
// milliseconds to three.
//
// The difference is taken FIELD-WISE — end.Hour()−start.Hour(), and so on —
// with no borrow or carry across units. The contract assumes no end field is
// smaller than its start counterpart; when that assumption is violated the
// negative field is rendered as-is (e.g. "01:-1:00.000"). This limitation is
// documented, not handled.
func FormatTimespan(start, end time.Time) string {
	hours := end.Hour() - start.Hour()
	minutes := end.Minute() - start.Minute()
	seconds := end.Second() - start.Second()
	millis := (end.Nanosecond() - start.Nanosecond()) / int(time.Millisecond)

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
