package core

import (
	"sort"
	"time"
)

// dayLayout is the calendar-day encoding used throughout the document.
const dayLayout = "2006-01-02"

// DateKey formats a time as its local calendar day, "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.Format(dayLayout)
}

// parseDay interprets a stored timestamp as a local calendar day. Entries
// are either RFC 3339 timestamps (session logs) or bare "YYYY-MM-DD"
// strings (habit dates).
func parseDay(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return startOfDay(t.Local()), true
	}
	if t, err := time.ParseInLocation(dayLayout, s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// uniqueDaysDesc maps raw date strings to deduplicated local days, most
// recent first. Unparseable entries are dropped.
func uniqueDaysDesc(dates []string) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		day, ok := parseDay(s)
		if !ok {
			continue
		}
		key := DateKey(day)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}
