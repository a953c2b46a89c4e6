package theme

import "testing"

func TestByID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID string
	}{
		{name: "known theme", id: "hacker-terminal", wantID: "hacker-terminal"},
		{name: "unknown falls back", id: "does-not-exist", wantID: DefaultThemeID},
		{name: "empty falls back", id: "", wantID: DefaultThemeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByID(tt.id); got.ID != tt.wantID {
				t.Errorf("ByID(%q).ID = %q, want %q", tt.id, got.ID, tt.wantID)
			}
		})
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range Catalog {
		if seen[th.ID] {
			t.Errorf("duplicate theme ID %q", th.ID)
		}
		seen[th.ID] = true
		if th.Name == "" || th.Accent == "" {
			t.Errorf("theme %q missing name or accent", th.ID)
		}
	}
}

func TestThemeStylesCarryAccent(t *testing.T) {
	for _, th := range Catalog {
		if got := th.AccentStyle().GetForeground(); got != th.Accent {
			t.Errorf("theme %q AccentStyle foreground = %v, want %v", th.ID, got, th.Accent)
		}
		if got := th.TitleStyle().GetBackground(); got != th.Accent {
			t.Errorf("theme %q TitleStyle background = %v, want %v", th.ID, got, th.Accent)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	if got := PaletteColor("bg-blue-400"); got == "" || got == "#9ca3af" {
		t.Errorf("known palette name resolved to %q", got)
	}
	if got := PaletteColor("bg-unknown"); got != "#9ca3af" {
		t.Errorf("unknown palette name = %q, want gray fallback", got)
	}
}
