package subjectview

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/theme"
)

// subjectItem wraps a model.Subject so it can be used in a bubbles/list.
type subjectItem struct {
	subject model.Subject
	now     time.Time
}

// FilterValue returns the string used for fuzzy filtering.
func (i subjectItem) FilterValue() string { return i.subject.Name }

// itemDelegate renders one subject per line.
type itemDelegate struct{}

// Height returns the number of lines each item takes.
func (d itemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d itemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single subject line with level, progress, and streak.
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(subjectItem)
	if !ok {
		return
	}
	s := si.subject

	levelBadge := theme.LevelStyle(s.Level).Render(s.Level)
	progress := fmt.Sprintf("%3.0f%%", core.SubjectProgress(s))

	streakStr := ""
	if s.TrackStreak {
		if streak := core.Streak(s.SessionTimestamps, si.now); streak > 0 {
			streakStr = theme.StreakStyle.Render(fmt.Sprintf("  %d day streak", streak))
		}
	}

	line := fmt.Sprintf("%s %s  %s  %d topics%s",
		progress, s.Name, levelBadge, len(s.Topics), streakStr)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
