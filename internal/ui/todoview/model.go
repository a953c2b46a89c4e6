package todoview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/keys"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/pomodoro"
	"github.com/chiru-app/chiru/internal/theme"
	"github.com/chiru-app/chiru/internal/ui"
)

// viewMode selects which task collection is shown.
type viewMode int

const (
	modeProjects viewMode = iota
	modeToday
	modeUpcoming
	modeCompleted
)

var modeNames = map[viewMode]string{
	modeProjects:  "Projects",
	modeToday:     "Today",
	modeUpcoming:  "Upcoming",
	modeCompleted: "Completed",
}

// tickMsg drives the pomodoro countdown.
type tickMsg time.Time

// row is one navigable line: a child project folder, a task, or a
// subtask under an expanded task.
type row struct {
	isProject bool
	isSubtask bool
	project   model.TodoList
	task      model.TodoItem
	subtask   model.Subtask
	projectID string
	label     string
}

// Model is the todo manager view: a nested project tree with per-project
// task lists, date-based task views, and a pomodoro timer.
type Model struct {
	doc      model.AppData
	keys     *keys.KeyMap
	now      time.Time
	mode     viewMode
	crumbs   []string
	rows     []row
	cursor   int
	expanded map[string]bool
	timer    pomodoro.Timer
	width    int
	height   int
}

// New creates a new todo view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:     k,
		now:      time.Now(),
		timer:    pomodoro.New(0),
		expanded: make(map[string]bool),
		width:    width,
		height:   height,
	}
}

// SetDocument refreshes the view from the current document.
func (m *Model) SetDocument(doc model.AppData, now time.Time) {
	m.doc = doc
	m.now = now

	// Drop breadcrumb entries for projects that no longer exist.
	kept := m.crumbs[:0]
	for _, id := range m.crumbs {
		if projectExists(doc, id) {
			kept = append(kept, id)
		} else {
			break
		}
	}
	m.crumbs = kept

	m.rebuildRows()
}

// Update handles messages for the todo view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.timer.Running() {
			return m, nil
		}
		m.timer = m.timer.Tick(time.Second)
		if m.timer.Running() {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleView):
		m.mode = (m.mode + 1) % 4
		m.cursor = 0
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		r, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if r.isProject {
			m.crumbs = append(m.crumbs, r.project.ID)
			m.cursor = 0
			m.rebuildRows()
			return m, nil
		}
		if !r.isSubtask {
			m.expanded[r.task.ID] = !m.expanded[r.task.ID]
			m.rebuildRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.mode != modeProjects {
			m.mode = modeProjects
			m.cursor = 0
			m.rebuildRows()
			return m, nil
		}
		if len(m.crumbs) > 0 {
			m.crumbs = m.crumbs[:len(m.crumbs)-1]
			m.cursor = 0
			m.rebuildRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		r, ok := m.currentRow()
		if !ok || r.isProject {
			return m, nil
		}
		if r.isSubtask {
			return m, ui.Dispatch(core.ToggleSubtask{
				ProjectID: r.projectID,
				TaskID:    r.task.ID,
				SubtaskID: r.subtask.ID,
			})
		}
		return m, ui.Dispatch(core.ToggleTask{
			ProjectID: r.projectID,
			TaskID:    r.task.ID,
		})

	case key.Matches(msg, m.keys.Delete):
		r, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if r.isProject {
			return m, ui.Dispatch(core.DeleteProjects{IDs: []string{r.project.ID}})
		}
		if r.isSubtask {
			return m, ui.Dispatch(core.DeleteSubtask{
				ProjectID: r.projectID,
				TaskID:    r.task.ID,
				SubtaskID: r.subtask.ID,
			})
		}
		return m, ui.Dispatch(core.DeleteTask{
			ProjectID: r.projectID,
			TaskID:    r.task.ID,
		})

	case key.Matches(msg, m.keys.Pomodoro):
		m.timer = m.timer.Toggle()
		if m.timer.Running() {
			return m, tick()
		}
		if m.timer.Done() {
			m.timer = m.timer.Reset()
		}
		return m, nil
	}

	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the todo view.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeaderLine())
	sections = append(sections, "")

	if len(m.rows) == 0 {
		sections = append(sections, theme.HelpStyle.Render(m.emptyText()))
	}
	for i, r := range m.rows {
		line := m.renderRow(r)
		if i == m.cursor {
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

func (m Model) renderHeaderLine() string {
	title := modeNames[m.mode]
	if m.mode == modeProjects {
		parts := []string{"Projects"}
		for _, id := range m.crumbs {
			if p := m.projectByID(id); p != nil {
				parts = append(parts, p.Name)
			}
		}
		title = strings.Join(parts, " › ")
	}

	titleRendered := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render(title)

	timerStr := ""
	if m.timer.Running() || m.timer.Done() {
		style := theme.StreakStyle
		if m.timer.Done() {
			style = theme.OverdueStyle
		}
		timerStr = "   " + style.Render("🍅 "+m.timer.String())
	}

	return titleRendered + timerStr
}

func (m Model) emptyText() string {
	switch m.mode {
	case modeToday:
		return "Nothing due today."
	case modeUpcoming:
		return "No upcoming tasks."
	case modeCompleted:
		return "No completed tasks yet."
	}
	if len(m.crumbs) == 0 {
		return "No projects yet. Press n to add one."
	}
	return "Empty project. Press n to add a task."
}

func (m Model) renderRow(r row) string {
	if r.isSubtask {
		mark := "○"
		text := r.subtask.Text
		if r.subtask.Completed {
			mark = "✓"
			text = theme.CompletedStyle.Render(text)
		}
		return fmt.Sprintf("    %s %s", mark, text)
	}

	if r.isProject {
		dot := lipgloss.NewStyle().
			Foreground(theme.PaletteColor(r.project.Color)).
			Render("●")
		stats := m.projectSummary(r.project.ID)
		return fmt.Sprintf("▸ %s %s  %s", dot, r.project.Name, theme.HelpStyle.Render(stats))
	}

	t := r.task

	mark := "○"
	title := t.Title
	if t.Completed {
		mark = "✓"
		title = theme.CompletedStyle.Render(title)
	}

	pri := theme.PriorityStyle(t.Priority).Render(t.Priority)

	dueStr := ""
	if t.DueDate != "" {
		dueStr = theme.HelpStyle.Render("  " + t.DueDate)
		if core.IsOverdue(t, m.now) {
			dueStr = theme.OverdueStyle.Render("  " + t.DueDate + " overdue")
		}
	}

	subtaskStr := ""
	if n := len(t.Subtasks); n > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.Completed {
				done++
			}
		}
		subtaskStr = theme.HelpStyle.Render(fmt.Sprintf("  [%d/%d]", done, n))
	}

	projectStr := ""
	if r.label != "" {
		projectStr = theme.HelpStyle.Render("  in " + r.label)
	}

	return fmt.Sprintf("%s %s %s%s%s%s", mark, pri, title, dueStr, subtaskStr, projectStr)
}

func (m Model) projectSummary(id string) string {
	for _, st := range core.AllProjectStats(m.doc, m.now) {
		if st.ProjectID == id {
			if st.Overdue > 0 {
				return fmt.Sprintf("%d open, %d overdue", st.Incomplete, st.Overdue)
			}
			return fmt.Sprintf("%d open", st.Incomplete)
		}
	}
	return ""
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CurrentProjectID returns the project the view is inside, or "" at the
// root level.
func (m Model) CurrentProjectID() string {
	if len(m.crumbs) == 0 {
		return ""
	}
	return m.crumbs[len(m.crumbs)-1]
}

// InProjectMode reports whether the tree view (rather than a date view)
// is active.
func (m Model) InProjectMode() bool { return m.mode == modeProjects }

// SelectedTask returns the task under the cursor along with its owning
// project id.
func (m Model) SelectedTask() (model.TodoItem, string, bool) {
	if r, ok := m.currentRow(); ok && !r.isProject {
		return r.task, r.projectID, true
	}
	return model.TodoItem{}, "", false
}

// SubtaskTarget returns the task a new subtask should attach to: the
// cursor is on a subtask row or on a task expanded to show its subtasks.
func (m Model) SubtaskTarget() (model.TodoItem, string, bool) {
	r, ok := m.currentRow()
	if !ok || r.isProject {
		return model.TodoItem{}, "", false
	}
	if r.isSubtask || m.expanded[r.task.ID] {
		return r.task, r.projectID, true
	}
	return model.TodoItem{}, "", false
}

// SelectedProjectID returns the project folder under the cursor, if any.
func (m Model) SelectedProjectID() string {
	if r, ok := m.currentRow(); ok && r.isProject {
		return r.project.ID
	}
	return ""
}

// SelectedProject returns the project folder under the cursor.
func (m Model) SelectedProject() (model.TodoList, bool) {
	if r, ok := m.currentRow(); ok && r.isProject {
		return r.project, true
	}
	return model.TodoList{}, false
}

// Projects returns all projects in the document, used to populate the
// move-task destination picker.
func (m Model) Projects() []model.TodoList {
	return m.doc.Todos
}

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) projectByID(id string) *model.TodoList {
	for i := range m.doc.Todos {
		if m.doc.Todos[i].ID == id {
			return &m.doc.Todos[i]
		}
	}
	return nil
}

func projectExists(doc model.AppData, id string) bool {
	for _, p := range doc.Todos {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *Model) rebuildRows() {
	var rows []row

	switch m.mode {
	case modeProjects:
		parentID := m.CurrentProjectID()
		for _, p := range core.ChildProjects(m.doc, parentID) {
			rows = append(rows, row{isProject: true, project: p})
		}
		if parentID != "" {
			for _, t := range core.ProjectTasks(m.doc, parentID) {
				rows = append(rows, row{task: t, projectID: parentID})
				if m.expanded[t.ID] {
					for _, st := range t.Subtasks {
						rows = append(rows, row{
							isSubtask: true,
							task:      t,
							subtask:   st,
							projectID: parentID,
						})
					}
				}
			}
		}

	case modeToday:
		for _, ref := range core.TodayTasks(m.doc, m.now) {
			rows = append(rows, row{task: ref.Task, projectID: ref.ProjectID, label: ref.ProjectName})
		}

	case modeUpcoming:
		for _, ref := range core.UpcomingTasks(m.doc, m.now) {
			rows = append(rows, row{task: ref.Task, projectID: ref.ProjectID, label: ref.ProjectName})
		}

	case modeCompleted:
		for _, ref := range core.CompletedTasks(m.doc) {
			rows = append(rows, row{task: ref.Task, projectID: ref.ProjectID, label: ref.ProjectName})
		}
	}

	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
