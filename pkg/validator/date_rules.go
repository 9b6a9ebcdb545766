package validator

import (
	"strings"
	"time"
)

// maxDateMillis is the largest distance from the epoch a millisecond
// timestamp may have and still denote a calendar date.
const maxDateMillis = 8.64e15

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	"Mon Jan 02 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Date passes for time.Time values, strings in a common date layout and
// numbers read as milliseconds since the Unix epoch.
func Date(_ string, value any, _ []any) (bool, error) {
	switch v := value.(type) {
	case time.Time:
		return true, nil
	case *time.Time:
		return v != nil, nil
	}

	if s, ok := asString(value); ok {
		return parseDate(s), nil
	}

	if f, ok := toFloat(value); ok {
		return isFinite(f) && f >= -maxDateMillis && f <= maxDateMillis, nil
	}
	return false, nil
}

func parseDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
