package analyzer

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// canonicalLayout is how executed_on is written to the CSV.
const canonicalLayout = "2006-01-02 15:04:05.999999999-07:00"

// Exact layouts tried before format inference, so written values always
// parse back unchanged.
var canonicalLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

// ParseTimestamp reads a date/time in any format dateparse recognizes.
// Values without an offset are read as UTC. The second result is false when
// the value is not a date/time.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range canonicalLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatTimestamp(t time.Time) string {
	return t.Format(canonicalLayout)
}
