package habitview

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/keys"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/theme"
	"github.com/chiru-app/chiru/internal/ui"
)

// habitItem wraps a model.Habit so it can be used in a bubbles/list.
type habitItem struct {
	habit model.Habit
	now   time.Time
}

// FilterValue returns the string used for fuzzy filtering.
func (i habitItem) FilterValue() string { return i.habit.Name }

// itemDelegate renders one habit per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single habit line with today's check, category, and streak.
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	hi, ok := item.(habitItem)
	if !ok {
		return
	}
	h := hi.habit

	mark := "○"
	if doneToday(h, hi.now) {
		mark = "✓"
	}

	dot := lipgloss.NewStyle().
		Foreground(theme.PaletteColor(h.Color)).
		Render("●")

	category := theme.HelpStyle.Render(h.Category)

	streakStr := ""
	if streak := core.Streak(h.CompletedDates, hi.now); streak > 0 {
		streakStr = theme.StreakStyle.Render(fmt.Sprintf("  %d day streak", streak))
	}

	line := fmt.Sprintf("%s %s %s  %s%s", mark, dot, h.Name, category, streakStr)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// doneToday reports whether the habit has a completion entry for now's day.
func doneToday(h model.Habit, now time.Time) bool {
	today := core.DateKey(now)
	for _, d := range h.CompletedDates {
		if d == today {
			return true
		}
	}
	return false
}

// Model is the habit tracker view.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	now    time.Time
	width  int
	height int
}

// New creates a new habit view model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, itemDelegate{}, width, height-2)
	l.Title = "Habits"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		now:    time.Now(),
		width:  width,
		height: height,
	}
}

// SetDocument refreshes the view from the current document.
func (m *Model) SetDocument(doc model.AppData, now time.Time) {
	m.now = now
	items := make([]list.Item, len(doc.Habits))
	for i, h := range doc.Habits {
		items[i] = habitItem{habit: h, now: now}
	}
	m.list.SetItems(items)
}

// Update handles messages for the habit view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Toggle), key.Matches(keyMsg, m.keys.Select):
			if h, ok := m.selectedHabit(); ok {
				return m, ui.Dispatch(core.ToggleHabitDate{
					HabitID: h.ID,
					Date:    core.DateKey(m.now),
				})
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Delete):
			if h, ok := m.selectedHabit(); ok {
				return m, ui.Dispatch(core.DeleteHabits{IDs: []string{h.ID}})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the habit view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No habits yet.\n\nPress n to add one.")
	}
	return m.list.View()
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// SelectedHabit returns the habit under the cursor.
func (m Model) SelectedHabit() (model.Habit, bool) {
	return m.selectedHabit()
}

func (m Model) selectedHabit() (model.Habit, bool) {
	item, ok := m.list.SelectedItem().(habitItem)
	if !ok {
		return model.Habit{}, false
	}
	return item.habit, true
}
