package core

import (
	"testing"
	"time"
)

func day(t time.Time, offset int) string {
	return DateKey(t.AddDate(0, 0, offset))
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "empty set",
			dates: nil,
			want:  0,
		},
		{
			name:  "single entry today",
			dates: []string{day(now, 0)},
			want:  1,
		},
		{
			name:  "single entry yesterday keeps streak alive",
			dates: []string{day(now, -1)},
			want:  1,
		},
		{
			name:  "single entry two days ago is stale",
			dates: []string{day(now, -2)},
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			dates: []string{day(now, -2), day(now, -1), day(now, 0)},
			want:  3,
		},
		{
			name:  "three consecutive days ending yesterday",
			dates: []string{day(now, -3), day(now, -2), day(now, -1)},
			want:  3,
		},
		{
			name:  "gap breaks the run",
			dates: []string{day(now, -4), day(now, -3), day(now, -1), day(now, 0)},
			want:  2,
		},
		{
			name:  "duplicates on one day count once",
			dates: []string{day(now, 0), day(now, 0), day(now, -1), day(now, -1)},
			want:  2,
		},
		{
			name:  "unordered input",
			dates: []string{day(now, -1), day(now, -3), day(now, 0), day(now, -2)},
			want:  4,
		},
		{
			name:  "long history with old break",
			dates: []string{day(now, -10), day(now, -2), day(now, -1), day(now, 0)},
			want:  3,
		},
		{
			name:  "unparseable entries are ignored",
			dates: []string{"not-a-date", day(now, 0)},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streak(tt.dates, now)
			if got != tt.want {
				t.Errorf("Streak(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestStreakRFC3339Timestamps(t *testing.T) {
	now := time.Date(2026, time.September, 1, 23, 50, 0, 0, time.Local)

	dates := []string{
		now.Add(-5 * time.Minute).Format(time.RFC3339),
		now.AddDate(0, 0, -1).Format(time.RFC3339),
	}
	if got := Streak(dates, now); got != 2 {
		t.Errorf("Streak with RFC 3339 session timestamps = %d, want 2", got)
	}

	// Two sessions on the same day stay a one-day streak.
	dates = []string{
		now.Format(time.RFC3339),
		now.Add(-3 * time.Hour).Format(time.RFC3339),
	}
	if got := Streak(dates, now); got != 1 {
		t.Errorf("Streak with same-day sessions = %d, want 1", got)
	}
}

func TestStreakLoggingTodayExtendsByOne(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	history := []string{day(now, -2), day(now, -1)}

	before := Streak(history, now)
	after := Streak(append(history, day(now, 0)), now)
	if after != before+1 {
		t.Errorf("adding today changed streak %d -> %d, want +1", before, after)
	}
}
