package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	aiservice "github.com/chiru-app/chiru/internal/ai"
	"github.com/chiru-app/chiru/internal/core"
	"github.com/chiru-app/chiru/internal/credential"
	"github.com/chiru-app/chiru/internal/keys"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/store"
	"github.com/chiru-app/chiru/internal/theme"
	"github.com/chiru-app/chiru/internal/ui"
	"github.com/chiru-app/chiru/internal/ui/assistant"
	"github.com/chiru-app/chiru/internal/ui/forms"
	"github.com/chiru-app/chiru/internal/ui/habitview"
	"github.com/chiru-app/chiru/internal/ui/help"
	"github.com/chiru-app/chiru/internal/ui/settingsview"
	"github.com/chiru-app/chiru/internal/ui/subjectview"
	"github.com/chiru-app/chiru/internal/ui/todoview"
	"github.com/chiru-app/chiru/internal/ui/videoview"
)

// ViewState identifies the active view.
type ViewState int

const (
	ViewSubjects ViewState = iota
	ViewHabits
	ViewVideos
	ViewTodos
	ViewAssistant
	ViewSettings
	ViewHelp
)

// modeTabs are the views reachable with tab / shift+tab, in order.
var modeTabs = []ViewState{ViewSubjects, ViewHabits, ViewVideos, ViewTodos}

var modeTitles = map[ViewState]string{
	ViewSubjects:  "Subjects",
	ViewHabits:    "Habits",
	ViewVideos:    "Videos",
	ViewTodos:     "Todos",
	ViewAssistant: "Assistant",
	ViewSettings:  "Settings",
	ViewHelp:      "Help",
}

// saveErrMsg reports a failed document write.
type saveErrMsg struct {
	err error
}

// Model is the root Bubble Tea model. It owns the document: every change
// flows through the reducer here and is then persisted whole.
type Model struct {
	doc     model.AppData
	store   store.Store
	gateway *aiservice.Gateway
	keys    *keys.KeyMap
	layout  ui.Layout

	state     ViewState
	prevState ViewState

	subjects  subjectview.Model
	habits    habitview.Model
	videos    videoview.Model
	todos     todoview.Model
	assistant assistant.Model
	settings  settingsview.Model
	helpView  help.Model
	form      forms.Model

	statusMsg string
	ready     bool
}

// New creates the root application model around a loaded document.
func New(doc model.AppData, s store.Store, gateway *aiservice.Gateway) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		doc:       doc,
		store:     s,
		gateway:   gateway,
		keys:      k,
		state:     ViewSubjects,
		subjects:  subjectview.New(k, 80, 24),
		habits:    habitview.New(k, 80, 24),
		videos:    videoview.New(k, 80, 24),
		todos:     todoview.New(k, 80, 24),
		assistant: assistant.New(gateway, k, 80, 24),
		settings:  settingsview.New(k, 80, 24),
		helpView:  help.New(k, 80, 24),
		form:      forms.New(80, 24),
	}
	m.refreshViews()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.subjects.SetSize(w, h)
		m.habits.SetSize(w, h)
		m.videos.SetSize(w, h)
		m.todos.SetSize(w, h)
		m.assistant.SetSize(w, h)
		m.settings.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.form.SetSize(w, h)
		m.ready = true
		return m, nil

	case ui.ApplyMsg:
		return m.applyCommand(msg.Cmd)

	case forms.SubmittedMsg:
		return m.applyCommand(msg.Cmd)

	case forms.SubmittedBatchMsg:
		for _, cmd := range msg.Cmds {
			m.doc = core.Apply(m.doc, cmd, time.Now())
		}
		m.statusMsg = ""
		m.refreshViews()
		return m, m.saveCmd()

	case forms.CancelMsg:
		return m, nil

	case forms.RewriteRequestMsg:
		if m.state != ViewAssistant {
			m.prevState = m.state
			m.state = ViewAssistant
		}
		return m, m.assistant.RequestRewrite(msg.Text, msg.Instruction)

	case assistant.CloseMsg:
		m.state = m.prevState
		return m, nil

	case assistant.ResponseMsg:
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.Update(msg)
		return m, cmd

	case settingsview.APIKeyChangedMsg:
		return m, m.storeAPIKey(msg.Key)

	case saveErrMsg:
		m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateActiveView(msg)
}

// handleKeyMsg routes keyboard input: open forms first, then global
// bindings, then the active view.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.form.Active() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if m.state == ViewSettings && m.settings.InForm() {
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.state == ViewHelp {
			m.state = m.prevState
		} else {
			m.prevState = m.state
			m.state = ViewHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.NextMode):
		m.state = m.cycleMode(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMode):
		m.state = m.cycleMode(-1)
		return m, nil

	case key.Matches(msg, m.keys.Assistant):
		if m.state != ViewAssistant {
			m.prevState = m.state
			m.state = ViewAssistant
		}
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		if m.state != ViewSettings {
			m.prevState = m.state
			m.state = ViewSettings
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.handleNew()

	case key.Matches(msg, m.keys.Edit):
		return m.handleEdit()

	case key.Matches(msg, m.keys.Move):
		return m.handleMove()

	case key.Matches(msg, m.keys.AddWatch):
		if m.state == ViewVideos {
			if id := m.videos.SelectedVideoID(); id != "" {
				return m, m.form.StartWatchTime(id)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Attach):
		if m.state == ViewSubjects && m.subjects.InDetail() {
			if topicID := m.subjects.SelectedTopicID(); topicID != "" {
				return m, m.form.StartAttachment(m.subjects.SelectedSubjectID(), topicID)
			}
		}
		return m, nil
	}

	if m.state == ViewHelp {
		if key.Matches(msg, m.keys.Back) {
			m.state = m.prevState
		}
		return m, nil
	}

	if m.state == ViewSettings && key.Matches(msg, m.keys.Back) {
		m.state = m.prevState
		return m, nil
	}

	return m.updateActiveView(msg)
}

// handleNew opens the create form matching the active view and its
// current drill-down position.
func (m Model) handleNew() (tea.Model, tea.Cmd) {
	switch m.state {
	case ViewSubjects:
		if m.subjects.InDetail() {
			subjectID := m.subjects.SelectedSubjectID()
			if topicID := m.subjects.SelectedTopicID(); topicID != "" {
				return m, m.form.StartSubTopic(subjectID, topicID)
			}
			return m, m.form.StartTopic(subjectID)
		}
		return m, m.form.StartSubject()

	case ViewHabits:
		return m, m.form.StartHabit()

	case ViewVideos:
		return m, m.form.StartVideo()

	case ViewTodos:
		if !m.todos.InProjectMode() {
			return m, nil
		}
		if task, projectID, ok := m.todos.SubtaskTarget(); ok {
			return m, m.form.StartSubtask(projectID, task.ID)
		}
		if m.todos.SelectedProjectID() != "" {
			// Cursor on a folder: create a sibling folder.
			return m, m.form.StartProject(m.todos.CurrentProjectID())
		}
		if projectID := m.todos.CurrentProjectID(); projectID != "" {
			return m, m.form.StartTask(projectID)
		}
		return m, m.form.StartProject("")
	}

	return m, nil
}

// handleEdit opens the edit form for the current selection.
func (m Model) handleEdit() (tea.Model, tea.Cmd) {
	switch m.state {
	case ViewSubjects:
		if m.subjects.InDetail() {
			if topic, ok := m.subjects.SelectedTopic(); ok {
				return m, m.form.StartTopicNotes(m.subjects.SelectedSubjectID(), topic)
			}
			return m, nil
		}
		if subject, ok := m.subjects.SelectedSubject(); ok {
			return m, m.form.StartEditSubject(subject)
		}

	case ViewHabits:
		if habit, ok := m.habits.SelectedHabit(); ok {
			return m, m.form.StartEditHabit(habit)
		}

	case ViewVideos:
		if video, ok := m.videos.SelectedVideo(); ok {
			return m, m.form.StartEditVideo(video)
		}

	case ViewTodos:
		if task, projectID, ok := m.todos.SelectedTask(); ok {
			return m, m.form.StartEditTask(projectID, task)
		}
		if project, ok := m.todos.SelectedProject(); ok {
			return m, m.form.StartEditProject(project)
		}

	case ViewAssistant:
		return m, m.form.StartRewrite("")
	}
	return m, nil
}

// handleMove opens the destination picker for the selected task.
func (m Model) handleMove() (tea.Model, tea.Cmd) {
	if m.state != ViewTodos {
		return m, nil
	}
	task, projectID, ok := m.todos.SelectedTask()
	if !ok {
		return m, nil
	}
	return m, m.form.StartMoveTask(task.ID, projectID, m.todos.Projects())
}

// updateActiveView forwards a message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewSubjects:
		m.subjects, cmd = m.subjects.Update(msg)
	case ViewHabits:
		m.habits, cmd = m.habits.Update(msg)
	case ViewVideos:
		m.videos, cmd = m.videos.Update(msg)
	case ViewTodos:
		m.todos, cmd = m.todos.Update(msg)
	case ViewAssistant:
		m.assistant, cmd = m.assistant.Update(msg)
	case ViewSettings:
		m.settings, cmd = m.settings.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// applyCommand runs a command through the reducer, refreshes every view,
// and persists the new document.
func (m Model) applyCommand(cmd core.Command) (tea.Model, tea.Cmd) {
	m.doc = core.Apply(m.doc, cmd, time.Now())
	m.statusMsg = ""
	m.refreshViews()
	return m, m.saveCmd()
}

// refreshViews pushes the current document into every subview.
func (m *Model) refreshViews() {
	now := time.Now()
	m.subjects.SetDocument(m.doc, now)
	m.habits.SetDocument(m.doc, now)
	m.videos.SetDocument(m.doc, now)
	m.todos.SetDocument(m.doc, now)
	m.assistant.SetDocument(m.doc, now)
	m.settings.SetDocument(m.doc, now)
}

// saveCmd persists the whole document in the background.
func (m Model) saveCmd() tea.Cmd {
	doc := m.doc
	s := m.store
	return func() tea.Msg {
		if err := s.Save(context.Background(), store.DefaultSlot, doc); err != nil {
			return saveErrMsg{err: err}
		}
		return nil
	}
}

// storeAPIKey updates the gateway and mirrors the key into the system
// keyring so it survives document resets.
func (m Model) storeAPIKey(apiKey string) tea.Cmd {
	m.gateway.SetAPIKey(apiKey)
	return func() tea.Msg {
		if apiKey == "" {
			if err := credential.Delete(credential.GeminiAPIKey); err != nil {
				return saveErrMsg{err: err}
			}
			return nil
		}
		if err := credential.Set(credential.GeminiAPIKey, apiKey); err != nil {
			return saveErrMsg{err: err}
		}
		return nil
	}
}

// cycleMode advances through the main mode tabs by delta.
func (m Model) cycleMode(delta int) ViewState {
	current := 0
	for i, s := range modeTabs {
		if s == m.state {
			current = i
			break
		}
	}
	next := (current + delta + len(modeTabs)) % len(modeTabs)
	return modeTabs[next]
}

// View renders the full terminal UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	th := theme.ByID(m.doc.Theme)
	header := m.layout.RenderHeader(th, "Chiru · "+m.doc.Profile.Name, m.renderModeTabs(th))

	var content string
	if m.form.Active() {
		content = m.form.View()
	} else {
		content = m.activeViewContent()
	}
	content = lipgloss.NewStyle().
		Width(m.layout.ContentWidth()).
		Height(m.layout.ContentHeight()).
		Render(content)

	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

func (m Model) activeViewContent() string {
	switch m.state {
	case ViewSubjects:
		return m.subjects.View()
	case ViewHabits:
		return m.habits.View()
	case ViewVideos:
		return m.videos.View()
	case ViewTodos:
		return m.todos.View()
	case ViewAssistant:
		return m.assistant.View()
	case ViewSettings:
		return m.settings.View()
	case ViewHelp:
		return m.helpView.View()
	}
	return ""
}

// renderModeTabs renders the mode names with the active one highlighted
// in the theme's accent.
func (m Model) renderModeTabs(th theme.Theme) string {
	active := th.AccentStyle().Underline(true)

	parts := make([]string, len(modeTabs))
	for i, s := range modeTabs {
		name := modeTitles[s]
		if s == m.state {
			name = active.Render(name)
		}
		parts[i] = name
	}
	return strings.Join(parts, "  ")
}

// statusLine builds the per-view key hints for the status bar.
func (m Model) statusLine() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.form.Active() {
		return "enter: next · esc: cancel"
	}

	common := "tab: mode · a: assistant · s: settings · ?: help · q: quit"

	switch m.state {
	case ViewSubjects:
		if m.subjects.InDetail() {
			return "x: toggle · n: new · e: notes · o: attach · l: log session · esc: back · " + common
		}
		return "enter: open · n: new · e: edit · l: log session · d: delete · " + common
	case ViewHabits:
		return "x: toggle today · n: new · d: delete · " + common
	case ViewVideos:
		return "w: watch time · x: complete · n: new · d: delete · " + common
	case ViewTodos:
		return "v: view · x: toggle · n: new · e: edit · m: move · p: pomodoro · " + common
	case ViewAssistant:
		return "enter: summary · e: rewrite · esc: back · q: quit"
	case ViewSettings:
		return "enter: open · esc: back · " + common
	case ViewHelp:
		return "esc: back · q: quit"
	}
	return common
}
