package settingsview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/keys"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/theme"
	"github.com/chiru-app/chiru/internal/ui"
)

// Mode represents the current state of the settings view.
type Mode int

const (
	ModeMenu       Mode = iota // Settings menu
	ModeForm                   // An edit form is open
	ModeBulkDelete             // Multi-select deletion form
)

// APIKeyChangedMsg signals the parent that the Gemini key changed and the
// gateway and keyring should be updated.
type APIKeyChangedMsg struct {
	Key string
}

// menu entries, in display order.
var menuEntries = []string{
	"Profile name",
	"Gemini API key",
	"Theme",
	"Bulk delete",
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	text     string
	themeID  string
	subjects []string
	habits   []string
	videos   []string
	projects []string
}

// Model is the settings view: profile, API key, theme, and bulk deletion.
type Model struct {
	mode      Mode
	doc       model.AppData
	now       time.Time
	keys      *keys.KeyMap
	cursor    int
	form      *huh.Form
	fb        *formBindings
	submit    func(fb *formBindings) tea.Cmd
	statusMsg string
	width     int
	height    int
}

// New creates a new settings view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   k,
		fb:     &formBindings{},
		now:    time.Now(),
		width:  width,
		height: height,
	}
}

// SetDocument refreshes the view from the current document.
func (m *Model) SetDocument(doc model.AppData, now time.Time) {
	m.doc = doc
	m.now = now
}

// Update handles messages for the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode != ModeMenu {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
		m.statusMsg = ""
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.statusMsg = ""
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		return m.openEntry()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeMenu
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		submit := m.submit
		fb := m.fb
		m.form = nil
		m.mode = ModeMenu
		return m, submit(fb)
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		m.mode = ModeMenu
		return m, nil
	}

	return m, cmd
}

func (m Model) openEntry() (Model, tea.Cmd) {
	switch menuEntries[m.cursor] {
	case "Profile name":
		return m.openForm(ModeForm,
			func(fb *formBindings) tea.Cmd {
				profile := m.doc.Profile
				profile.Name = strings.TrimSpace(fb.text)
				return ui.Dispatch(core.SetProfile{Profile: profile})
			},
			func(fb *formBindings) []huh.Field {
				fb.text = m.doc.Profile.Name
				return []huh.Field{
					huh.NewInput().
						Title("Profile name").
						Value(&fb.text),
				}
			})

	case "Gemini API key":
		return m.openForm(ModeForm,
			func(fb *formBindings) tea.Cmd {
				apiKey := strings.TrimSpace(fb.text)
				return tea.Batch(
					ui.Dispatch(core.SetAPIKey{Key: apiKey}),
					func() tea.Msg { return APIKeyChangedMsg{Key: apiKey} },
				)
			},
			func(fb *formBindings) []huh.Field {
				return []huh.Field{
					huh.NewInput().
						Title("Gemini API key").
						Placeholder("Leave empty to go offline").
						EchoMode(huh.EchoModePassword).
						Value(&fb.text),
				}
			})

	case "Theme":
		return m.openForm(ModeForm,
			func(fb *formBindings) tea.Cmd {
				return ui.Dispatch(core.SetTheme{Theme: fb.themeID})
			},
			func(fb *formBindings) []huh.Field {
				opts := make([]huh.Option[string], len(theme.Catalog))
				for i, t := range theme.Catalog {
					opts[i] = huh.NewOption(t.Name, t.ID)
				}
				fb.themeID = m.doc.Theme
				return []huh.Field{
					huh.NewSelect[string]().
						Title("Theme").
						Options(opts...).
						Value(&fb.themeID),
				}
			})

	case "Bulk delete":
		return m.openForm(ModeBulkDelete,
			func(fb *formBindings) tea.Cmd {
				var cmds []tea.Cmd
				if len(fb.subjects) > 0 {
					cmds = append(cmds, ui.Dispatch(core.DeleteSubjects{IDs: fb.subjects}))
				}
				if len(fb.habits) > 0 {
					cmds = append(cmds, ui.Dispatch(core.DeleteHabits{IDs: fb.habits}))
				}
				if len(fb.videos) > 0 {
					cmds = append(cmds, ui.Dispatch(core.DeleteVideos{IDs: fb.videos}))
				}
				if len(fb.projects) > 0 {
					cmds = append(cmds, ui.Dispatch(core.DeleteProjects{IDs: fb.projects}))
				}
				return tea.Batch(cmds...)
			},
			func(fb *formBindings) []huh.Field {
				return []huh.Field{
					multiSelect("Subjects", subjectOptions(m.doc), &fb.subjects),
					multiSelect("Habits", habitOptions(m.doc), &fb.habits),
					multiSelect("Videos", videoOptions(m.doc), &fb.videos),
					multiSelect("Projects", projectOptions(m.doc), &fb.projects),
				}
			})
	}

	return m, nil
}

func (m Model) openForm(
	mode Mode,
	submit func(fb *formBindings) tea.Cmd,
	build func(fb *formBindings) []huh.Field,
) (Model, tea.Cmd) {
	*m.fb = formBindings{}
	m.submit = submit
	m.form = huh.NewForm(huh.NewGroup(build(m.fb)...)).
		WithWidth(min(m.width-4, 80))
	m.mode = mode
	m.statusMsg = ""
	return m, m.form.Init()
}

func multiSelect(title string, opts []huh.Option[string], value *[]string) huh.Field {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}

func subjectOptions(doc model.AppData) []huh.Option[string] {
	opts := make([]huh.Option[string], len(doc.Subjects))
	for i, s := range doc.Subjects {
		opts[i] = huh.NewOption(s.Name, s.ID)
	}
	return opts
}

func habitOptions(doc model.AppData) []huh.Option[string] {
	opts := make([]huh.Option[string], len(doc.Habits))
	for i, h := range doc.Habits {
		opts[i] = huh.NewOption(h.Name, h.ID)
	}
	return opts
}

func videoOptions(doc model.AppData) []huh.Option[string] {
	opts := make([]huh.Option[string], len(doc.Videos))
	for i, v := range doc.Videos {
		opts[i] = huh.NewOption(v.Name, v.ID)
	}
	return opts
}

func projectOptions(doc model.AppData) []huh.Option[string] {
	opts := make([]huh.Option[string], len(doc.Todos))
	for i, p := range doc.Todos {
		opts[i] = huh.NewOption(p.Name, p.ID)
	}
	return opts
}

// View renders the settings view.
func (m Model) View() string {
	if m.mode != ModeMenu && m.form != nil {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(m.form.View())
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)
	sections = append(sections, titleStyle.Render("Settings"))

	for i, entry := range menuEntries {
		line := entry + m.entryDetail(entry)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		sections = append(sections, line)
	}

	if m.statusMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.HelpStyle.Render(m.statusMsg))
	}

	sections = append(sections, "")
	sections = append(sections, m.renderStats())

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(strings.Join(sections, "\n"))
}

func (m Model) entryDetail(entry string) string {
	switch entry {
	case "Profile name":
		return theme.HelpStyle.Render("  " + m.doc.Profile.Name)
	case "Gemini API key":
		if m.doc.APIKey != "" {
			return theme.HelpStyle.Render("  configured")
		}
		return theme.HelpStyle.Render("  not set")
	case "Theme":
		return theme.HelpStyle.Render("  " + theme.ByID(m.doc.Theme).Name)
	}
	return ""
}

// renderStats summarizes the document for the stats panel at the bottom.
func (m Model) renderStats() string {
	var taskTotal, taskDone int
	for _, p := range m.doc.Todos {
		for _, t := range p.Items {
			taskTotal++
			if t.Completed {
				taskDone++
			}
		}
	}

	bestStreak := 0
	for _, h := range m.doc.Habits {
		if s := core.Streak(h.CompletedDates, m.now); s > bestStreak {
			bestStreak = s
		}
	}

	lines := []string{
		fmt.Sprintf("%d subjects · %d habits · %d videos · %d projects",
			len(m.doc.Subjects), len(m.doc.Habits), len(m.doc.Videos), len(m.doc.Todos)),
		fmt.Sprintf("%d of %d tasks completed", taskDone, taskTotal),
	}
	if bestStreak > 0 {
		lines = append(lines, fmt.Sprintf("best habit streak: %d days", bestStreak))
	}

	return theme.PanelStyle.Render(strings.Join(lines, "\n"))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InForm reports whether an edit form is currently open.
func (m Model) InForm() bool { return m.mode != ModeMenu }
