package subjectview

import (
	"fmt"
	"strings"
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

// detailRow is one navigable line inside the subject detail: either a
// topic header or a toggleable subtopic.
type detailRow struct {
	topicID    string
	subTopicID string
	label      string
	completed  bool
	isTopic    bool
}

// Model is the study subjects view: a subject list that drills down into
// a topic and subtopic checklist.
type Model struct {
	list     list.Model
	subjects []model.Subject
	keys     *keys.KeyMap
	now      time.Time

	inDetail  bool
	detailID  string
	rows      []detailRow
	rowCursor int

	width  int
	height int
}

// New creates a new subjects view model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, itemDelegate{}, width, height-2)
	l.Title = "Subjects"
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
	m.subjects = doc.Subjects
	m.now = now

	items := make([]list.Item, len(doc.Subjects))
	for i, s := range doc.Subjects {
		items[i] = subjectItem{subject: s, now: now}
	}
	m.list.SetItems(items)

	if m.inDetail {
		if s, ok := m.subjectByID(m.detailID); ok {
			m.rebuildRows(s)
		} else {
			// Subject was deleted out from under the detail view.
			m.inDetail = false
		}
	}
}

// Update handles messages for the subjects view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.inDetail {
		return m.updateDetail(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		s, ok := m.selectedSubject()
		if !ok {
			return m, nil
		}
		m.inDetail = true
		m.detailID = s.ID
		m.rowCursor = 0
		m.rebuildRows(s)
		return m, nil

	case key.Matches(msg, m.keys.LogSession):
		if s, ok := m.selectedSubject(); ok && s.TrackStreak {
			return m, ui.Dispatch(core.LogStudySession{SubjectID: s.ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if s, ok := m.selectedSubject(); ok {
			return m, ui.Dispatch(core.DeleteSubjects{IDs: []string{s.ID}})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.inDetail = false
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.rowCursor < len(m.rows)-1 {
			m.rowCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.rowCursor > 0 {
			m.rowCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Select):
		if r, ok := m.currentRow(); ok && !r.isTopic {
			return m, ui.Dispatch(core.ToggleSubTopic{
				SubjectID:  m.detailID,
				TopicID:    r.topicID,
				SubTopicID: r.subTopicID,
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.LogSession):
		if s, ok := m.subjectByID(m.detailID); ok && s.TrackStreak {
			return m, ui.Dispatch(core.LogStudySession{SubjectID: s.ID})
		}
		return m, nil
	}

	return m, nil
}

// View renders the subjects view.
func (m Model) View() string {
	if m.inDetail {
		return m.viewDetail()
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState("No subjects yet.\n\nPress n to add one.")
	}
	return m.list.View()
}

func (m Model) viewDetail() string {
	s, ok := m.subjectByID(m.detailID)
	if !ok {
		return m.renderEmptyState("Subject not found")
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	header := fmt.Sprintf("%s  %s  %.0f%%",
		titleStyle.Render(s.Name),
		theme.LevelStyle(s.Level).Render(s.Level),
		core.SubjectProgress(s))
	sections = append(sections, header)

	if s.TrackStreak {
		streak := core.Streak(s.SessionTimestamps, m.now)
		sections = append(sections, theme.StreakStyle.Render(
			fmt.Sprintf("Study streak: %d days", streak)))
	}
	if s.Notes != "" {
		sections = append(sections, theme.HelpStyle.Render(s.Notes))
	}
	sections = append(sections, "")

	if len(m.rows) == 0 {
		sections = append(sections, theme.HelpStyle.Render("No topics yet. Press n to add one."))
	}
	for i, r := range m.rows {
		var line string
		if r.isTopic {
			line = lipgloss.NewStyle().Bold(true).Render(r.label)
		} else {
			mark := "○"
			label := r.label
			if r.completed {
				mark = "✓"
				label = theme.CompletedStyle.Render(label)
			}
			line = fmt.Sprintf("  %s %s", mark, label)
		}
		if i == m.rowCursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		sections = append(sections, line)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(strings.Join(sections, "\n"))
}

func (m Model) renderEmptyState(text string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray).
		Render(text)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// InDetail reports whether the topic checklist is open.
func (m Model) InDetail() bool { return m.inDetail }

// SelectedSubjectID returns the id of the subject the cursor is on, or
// the open subject while in detail.
func (m Model) SelectedSubjectID() string {
	if m.inDetail {
		return m.detailID
	}
	if s, ok := m.selectedSubject(); ok {
		return s.ID
	}
	return ""
}

// SelectedTopicID returns the topic under the detail cursor, if any.
func (m Model) SelectedTopicID() string {
	if !m.inDetail {
		return ""
	}
	if r, ok := m.currentRow(); ok {
		return r.topicID
	}
	return ""
}

// SelectedSubject returns the subject under the list cursor.
func (m Model) SelectedSubject() (model.Subject, bool) {
	if m.inDetail {
		return m.subjectByID(m.detailID)
	}
	return m.selectedSubject()
}

// SelectedTopic returns the topic under the detail cursor.
func (m Model) SelectedTopic() (model.Topic, bool) {
	topicID := m.SelectedTopicID()
	if topicID == "" {
		return model.Topic{}, false
	}
	s, ok := m.subjectByID(m.detailID)
	if !ok {
		return model.Topic{}, false
	}
	for _, t := range s.Topics {
		if t.ID == topicID {
			return t, true
		}
	}
	return model.Topic{}, false
}

func (m Model) selectedSubject() (model.Subject, bool) {
	item, ok := m.list.SelectedItem().(subjectItem)
	if !ok {
		return model.Subject{}, false
	}
	return item.subject, true
}

func (m Model) subjectByID(id string) (model.Subject, bool) {
	for _, s := range m.subjects {
		if s.ID == id {
			return s, true
		}
	}
	return model.Subject{}, false
}

func (m Model) currentRow() (detailRow, bool) {
	if m.rowCursor < 0 || m.rowCursor >= len(m.rows) {
		return detailRow{}, false
	}
	return m.rows[m.rowCursor], true
}

func (m *Model) rebuildRows(s model.Subject) {
	rows := make([]detailRow, 0, len(s.Topics))
	for _, t := range s.Topics {
		label := t.Name
		if n := len(t.Attachments); n > 0 {
			label = fmt.Sprintf("%s (%d files)", label, n)
		}
		rows = append(rows, detailRow{
			topicID: t.ID,
			label:   label,
			isTopic: true,
		})
		for _, st := range t.SubTopics {
			rows = append(rows, detailRow{
				topicID:    t.ID,
				subTopicID: st.ID,
				label:      st.Name,
				completed:  st.Completed,
			})
		}
	}
	m.rows = rows
	if m.rowCursor >= len(rows) {
		m.rowCursor = len(rows) - 1
	}
	if m.rowCursor < 0 {
		m.rowCursor = 0
	}
}
