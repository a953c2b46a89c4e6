package videoview

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

// videoItem wraps a model.Video so it can be used in a bubbles/list.
type videoItem struct {
	video model.Video
	now   time.Time
}

// FilterValue returns the string used for fuzzy filtering.
func (i videoItem) FilterValue() string { return i.video.Name }

// itemDelegate renders one video per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single video line with watch progress and streak.
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	vi, ok := item.(videoItem)
	if !ok {
		return
	}
	v := vi.video

	progress := core.VideoProgress(v)
	progressStr := fmt.Sprintf("%3.0f%%", progress)
	if progress >= 100 {
		progressStr = theme.CompletedStyle.Render("done")
	}

	dot := lipgloss.NewStyle().
		Foreground(theme.PaletteColor(v.Color)).
		Render("●")

	remaining := theme.HelpStyle.Render(
		fmt.Sprintf("%s left", formatDuration(v.TotalDuration-v.WatchedDuration)))

	streakStr := ""
	if v.TrackStreak {
		if streak := core.Streak(v.SessionTimestamps, vi.now); streak > 0 {
			streakStr = theme.StreakStyle.Render(fmt.Sprintf("  %d day streak", streak))
		}
	}

	line := fmt.Sprintf("%s %s %s  %s%s", progressStr, dot, v.Name, remaining, streakStr)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// formatDuration renders seconds as "1h23m" or "45m".
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Model is the watch-time tracker view.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	now    time.Time
	width  int
	height int
}

// New creates a new video view model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, itemDelegate{}, width, height-2)
	l.Title = "Videos"
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
	items := make([]list.Item, len(doc.Videos))
	for i, v := range doc.Videos {
		items[i] = videoItem{video: v, now: now}
	}
	m.list.SetItems(items)
}

// Update handles messages for the video view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Toggle):
			if v, ok := m.selectedVideo(); ok {
				return m, ui.Dispatch(core.MarkVideoComplete{VideoID: v.ID})
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Delete):
			if v, ok := m.selectedVideo(); ok {
				return m, ui.Dispatch(core.DeleteVideos{IDs: []string{v.ID}})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the video view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No videos yet.\n\nPress n to add one.")
	}
	return m.list.View()
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// SelectedVideoID returns the id of the video under the cursor.
func (m Model) SelectedVideoID() string {
	if v, ok := m.selectedVideo(); ok {
		return v.ID
	}
	return ""
}

// SelectedVideo returns the video under the cursor.
func (m Model) SelectedVideo() (model.Video, bool) {
	return m.selectedVideo()
}

func (m Model) selectedVideo() (model.Video, bool) {
	item, ok := m.list.SelectedItem().(videoItem)
	if !ok {
		return model.Video{}, false
	}
	return item.video, true
}
