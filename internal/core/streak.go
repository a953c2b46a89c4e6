package core

import "time"

// Streak counts the consecutive run of calendar days, ending today or
// yesterday, on which at least one entry was recorded. A run whose most
// recent day is older than yesterday is broken, so the streak is 0.
// Duplicate entries on the same day count once.
func Streak(dates []string, now time.Time) int {
	days := uniqueDaysDesc(dates)
	if len(days) == 0 {
		return 0
	}

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 0
	cursor := days[0]
	for _, day := range days {
		if !day.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
