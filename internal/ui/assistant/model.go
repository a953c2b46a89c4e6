package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	aiservice "github.com/chiru-app/chiru/internal/ai"
	"github.com/chiru-app/chiru/internal/keys"
	"github.com/chiru-app/chiru/internal/model"
	"github.com/chiru-app/chiru/internal/theme"
)

// CloseMsg signals the parent to close the assistant panel.
type CloseMsg struct{}

// ResponseMsg carries a completed assistant reply.
type ResponseMsg struct {
	Request string
	Text    string
}

// Model is the assistant panel: a read-only conversation log fed by the
// progress coach and the rewrite helper.
type Model struct {
	gateway    *aiservice.Gateway
	transcript *aiservice.Transcript
	viewport   viewport.Model
	keys       *keys.KeyMap
	doc        model.AppData
	now        time.Time
	pending    bool
	width      int
	height     int
}

// New creates a new assistant panel model.
func New(gateway *aiservice.Gateway, k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width-4, panelHeight(height))
	vp.Style = lipgloss.NewStyle()

	return Model{
		gateway:    gateway,
		transcript: aiservice.NewTranscript(),
		viewport:   vp,
		keys:       k,
		now:        time.Now(),
		width:      width,
		height:     height,
	}
}

func panelHeight(height int) int {
	h := height - 6
	if h < 4 {
		h = 4
	}
	return h
}

// SetDocument refreshes the snapshot the coach summarizes.
func (m *Model) SetDocument(doc model.AppData, now time.Time) {
	m.doc = doc
	m.now = now
}

// RequestSummary asks the coach for a progress summary.
func (m *Model) RequestSummary() tea.Cmd {
	if m.pending {
		return nil
	}
	m.pending = true
	m.refreshViewport()

	gateway := m.gateway
	doc := m.doc
	now := m.now
	return func() tea.Msg {
		text := gateway.SummarizeProgress(context.Background(), doc, now)
		return ResponseMsg{Request: "Progress summary", Text: text}
	}
}

// RequestRewrite asks the writing helper to rewrite text.
func (m *Model) RequestRewrite(text, instruction string) tea.Cmd {
	if m.pending {
		return nil
	}
	m.pending = true
	m.refreshViewport()

	gateway := m.gateway
	return func() tea.Msg {
		result := gateway.RewriteText(context.Background(), text, instruction)
		return ResponseMsg{Request: "Rewrite: " + instruction, Text: result}
	}
}

// Update handles messages for the assistant panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResponseMsg:
		m.pending = false
		m.transcript.Add(aiservice.RoleUser, msg.Request)
		m.transcript.Add(aiservice.RoleAssistant, msg.Text)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.pending {
				return m, nil
			}
			return m, func() tea.Msg { return CloseMsg{} }

		case "enter":
			return m, m.RequestSummary()

		case "r":
			m.transcript.Reset()
			m.refreshViewport()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the assistant panel.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Chiru Assistant")

	hint := theme.HelpStyle.Render("enter: summary · e: rewrite · r: clear · esc: close")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.viewport.View(),
		hint,
	)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(content)
}

// refreshViewport re-renders the conversation and scrolls to the bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

// renderConversation builds the conversation display string.
func (m Model) renderConversation() string {
	entries := m.transcript.Entries()

	if len(entries) == 0 && !m.pending {
		if !m.gateway.Online() {
			return lipgloss.NewStyle().
				Foreground(theme.ColorGray).
				Render(aiservice.OfflineMessage)
		}
		return lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("Press enter for a progress summary, or e to rewrite some text.")
	}

	roleStyle := lipgloss.NewStyle().Bold(true)
	userStyle := roleStyle.Foreground(theme.ColorBlue)
	coachStyle := roleStyle.Foreground(theme.ColorGreen)
	contentStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	var sections []string
	for _, e := range entries {
		label := userStyle.Render("You:")
		if e.Role == aiservice.RoleAssistant {
			label = coachStyle.Render("Chiru:")
		}
		sections = append(sections, label)
		sections = append(sections, contentStyle.Render(e.Content))
		sections = append(sections, "")
	}

	if m.pending {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("..."))
	}

	return strings.Join(sections, "\n")
}

// SetSize updates the assistant panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = panelHeight(height)
}
