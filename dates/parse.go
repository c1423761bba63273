package dates

import "time"

// rfc2822Layouts is the best-effort superset of RFC 2822 date shapes we
// accept, tried in order. Day-of-week and seconds are optional in the wire
// format, and both numeric offsets and zone abbreviations occur in the wild.
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006",
	"2 Jan 2006",
}

// iso8601Layouts covers ISO 8601 calendar datetimes from full RFC 3339 text
// down to a bare year, tried in order. Layouts without an offset parse as
// UTC.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseFirst tries each layout in order and converts the first success to a
// Timestamp; exhaustion yields the invalid sentinel, never an error.
func parseFirst(layouts []string, text string) Timestamp {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return At(t)
		}
	}
	return Invalid()
}

// ParseRFC2822 parses a best-effort superset of RFC 2822 date text into a
// Timestamp. Unparseable input yields the NaN sentinel; check IsValid.
func ParseRFC2822(text string) Timestamp {
	return parseFirst(rfc2822Layouts, text)
}

// ParseISO8601 parses ISO 8601 date text into a Timestamp. Unparseable
// input yields the NaN sentinel; check IsValid.
func ParseISO8601(text string) Timestamp {
	return parseFirst(iso8601Layouts, text)
}
