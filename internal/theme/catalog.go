package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a selectable color scheme. The accent drives highlights,
// headers, and progress bars; the remaining colors tint text and chrome.
type Theme struct {
	ID     string
	Name   string
	Dark   bool
	Accent lipgloss.Color
	Text   lipgloss.Color
	Subtle lipgloss.Color
	Border lipgloss.Color
}

// DefaultThemeID is used when the document names no theme or an unknown one.
const DefaultThemeID = "midnight-pulse"

// Catalog lists the selectable themes, in settings-picker order.
var Catalog = []Theme{
	{ID: "light", Name: "Default Light", Dark: false,
		Accent: "#3b82f6", Text: "#1f2937", Subtle: "#4b5563", Border: "#e5e7eb"},
	{ID: "midnight-pulse", Name: "Midnight Pulse", Dark: true,
		Accent: "#3688ff", Text: "#c9d1d9", Subtle: "#8b949e", Border: "#30363d"},
	{ID: "hacker-terminal", Name: "Hacker Terminal", Dark: true,
		Accent: "#22c55e", Text: "#00ff00", Subtle: "#00cc00", Border: "#003300"},
	{ID: "cyber-neon", Name: "Cyber Neon", Dark: true,
		Accent: "#8b5cf6", Text: "#e0e0e0", Subtle: "#a0a0c0", Border: "#3a1f7a"},
	{ID: "solar-void", Name: "Solar Void", Dark: true,
		Accent: "#f97316", Text: "#e2e2e2", Subtle: "#a0a0a0", Border: "#2a2a2a"},
	{ID: "twilight-forest", Name: "Twilight Forest", Dark: true,
		Accent: "#22c55e", Text: "#d1d5db", Subtle: "#9ca3af", Border: "#374151"},
	{ID: "nightfall-blue", Name: "Nightfall Blue", Dark: true,
		Accent: "#0ea5e9", Text: "#e2e8f0", Subtle: "#94a3b8", Border: "#475569"},
	{ID: "dracula-inspired", Name: "Dracula Inspired", Dark: true,
		Accent: "#ff79c6", Text: "#f8f8f2", Subtle: "#bd93f9", Border: "#6272a4"},
	{ID: "obsidian-black", Name: "Obsidian Black", Dark: true,
		Accent: "#718096", Text: "#d0d0d0", Subtle: "#888888", Border: "#1a1a1a"},
	{ID: "grayscale-pro", Name: "Grayscale Pro", Dark: true,
		Accent: "#737373", Text: "#ffffff", Subtle: "#bbbbbb", Border: "#333333"},
	{ID: "aurora-mist", Name: "Aurora Mist", Dark: true,
		Accent: "#10b981", Text: "#e2e8f0", Subtle: "#94a3b8", Border: "#334155"},
	{ID: "quantum-glass", Name: "Quantum Glass", Dark: true,
		Accent: "#0284c7", Text: "#E0E6F1", Subtle: "#94A3B8", Border: "#334155"},
}

// ByID returns the theme with the given ID, falling back to the default
// theme for unknown IDs.
func ByID(id string) Theme {
	for _, t := range Catalog {
		if t.ID == id {
			return t
		}
	}
	return ByID(DefaultThemeID)
}

// AccentStyle returns a bold style in the theme's accent color.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

// TitleStyle renders panel titles on the theme's accent.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).
		Background(t.Accent).Padding(0, 1)
}

// FolderColors is the color palette offered when creating projects,
// subjects, and trackers.
var FolderColors = []string{
	"bg-gray-400", "bg-red-400", "bg-orange-400", "bg-amber-400",
	"bg-yellow-400", "bg-lime-400", "bg-green-400", "bg-emerald-400",
	"bg-teal-400", "bg-cyan-400", "bg-sky-400", "bg-blue-400",
	"bg-indigo-400", "bg-violet-400", "bg-purple-400", "bg-fuchsia-400",
	"bg-pink-400", "bg-rose-400",
}

// paletteHex maps palette names to terminal colors.
var paletteHex = map[string]string{
	"bg-gray-400": "#9ca3af", "bg-red-400": "#f87171", "bg-orange-400": "#fb923c",
	"bg-amber-400": "#fbbf24", "bg-yellow-400": "#facc15", "bg-lime-400": "#a3e635",
	"bg-green-400": "#4ade80", "bg-emerald-400": "#34d399", "bg-teal-400": "#2dd4bf",
	"bg-cyan-400": "#22d3ee", "bg-sky-400": "#38bdf8", "bg-blue-400": "#60a5fa",
	"bg-indigo-400": "#818cf8", "bg-violet-400": "#a78bfa", "bg-purple-400": "#c084fc",
	"bg-fuchsia-400": "#e879f9", "bg-pink-400": "#f472b6", "bg-rose-400": "#fb7185",
	"bg-blue-500": "#3b82f6", "bg-green-500": "#22c55e", "bg-purple-500": "#a855f7",
	"bg-red-500": "#ef4444", "bg-yellow-500": "#eab308", "bg-pink-500": "#ec4899",
	"bg-indigo-500": "#6366f1", "bg-teal-500": "#14b8a6",
}

// PaletteColor resolves a stored palette name to a lipgloss color. Names
// outside the palette fall back to gray.
func PaletteColor(name string) lipgloss.Color {
	if hex, ok := paletteHex[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color("#9ca3af")
}
