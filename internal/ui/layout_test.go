package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/chiru-app/chiru/internal/theme"
)

func TestContentHeight(t *testing.T) {
	l := NewLayout(80, 24)
	if got := l.ContentHeight(); got != 22 {
		t.Errorf("ContentHeight() = %d, want 22", got)
	}
	if got := l.ContentWidth(); got != 80 {
		t.Errorf("ContentWidth() = %d, want 80", got)
	}
}

func TestRenderHeader(t *testing.T) {
	l := NewLayout(80, 24)
	th := theme.ByID("hacker-terminal")

	header := l.RenderHeader(th, "Chiru · User", "Subjects  Habits")

	if !strings.Contains(header, "Chiru · User") {
		t.Error("header is missing the title")
	}
	if !strings.Contains(header, "Subjects  Habits") {
		t.Error("header is missing the mode tabs")
	}
	if got := lipgloss.Width(header); got != 80 {
		t.Errorf("header width = %d, want 80", got)
	}
}

func TestRenderHeaderNarrowTerminal(t *testing.T) {
	l := NewLayout(10, 24)
	th := theme.ByID(theme.DefaultThemeID)

	// Title plus tabs exceed the width; the gap clamps to zero instead
	// of panicking on a negative style width.
	header := l.RenderHeader(th, "A very long application title", "Tabs")
	if header == "" {
		t.Error("header rendered empty")
	}
}

func TestRenderStatusBar(t *testing.T) {
	l := NewLayout(60, 24)
	bar := l.RenderStatusBar("q: quit")
	if !strings.Contains(bar, "q: quit") {
		t.Error("status bar is missing the hints")
	}
	if got := lipgloss.Width(bar); got != 60 {
		t.Errorf("status bar width = %d, want 60", got)
	}
}
