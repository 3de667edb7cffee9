package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown for missing or unreadable timestamps.
const Placeholder = "-"

const dateLayout = "2006-01-02 15:04"

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"20060102",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
}

// Date renders v as "YYYY-MM-DD HH:MM" in local time.
//
// v may be a time.Time, *time.Time, a string, or Unix seconds as int/int64.
// Absent values (nil, "", zero time, 0) and strings that do not parse
// render as Placeholder.
func Date(v any) string {
	return DateIn(v, time.Local)
}

// DateIn is Date rendered in loc. Strings without a zone are read in loc.
func DateIn(v any, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := toTime(v, loc)
	if !ok {
		return Placeholder
	}
	return t.In(loc).Format(dateLayout)
}

// Relative renders t relative to now, e.g. "3 hours ago".
func Relative(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return humanize.Time(t)
}

// ParseTime reads a timestamp string. Digit-only strings are Unix seconds.
func ParseTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n != 0 {
		return time.Unix(n, 0), true
	}
	return time.Time{}, false
}

func toTime(v any, loc *time.Location) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, !x.IsZero()
	case string:
		return ParseTime(x, loc)
	case int64:
		return time.Unix(x, 0), x != 0
	case int:
		return time.Unix(int64(x), 0), x != 0
	default:
		return time.Time{}, false
	}
}
