package sales

import (
	"strings"
	"time"
)

// TimestampLayout is the format sold_at is written in.
const TimestampLayout = time.RFC3339Nano

// fallbackLayouts cover timestamps written by older tools, tried in order.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a stored sold_at value. Values without a zone are
// read in loc. It reports false when no layout matches.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t for storage.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
