package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the diary views.
type Theme struct {
	Name string

	Text     string
	Muted    string
	Accent   string
	Marker   string
	Danger   string
	SelBg    string
	SelText  string
	BorderFg string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Marker)),
		Danger: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelBg)).
			Foreground(lipgloss.Color(t.SelText)),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFg)).
			Padding(0, 1),
	}
}

// Styles holds the rendered lipgloss styles.
type Styles struct {
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Marker   lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Pane     lipgloss.Style
}

var themes = map[string]Theme{
	"spring": {
		Name:     "spring",
		Text:     "#e8e8e8",
		Muted:    "#6c7086",
		Accent:   "#a6da95",
		Marker:   "#f5bde6",
		Danger:   "#ed8796",
		SelBg:    "#a6da95",
		SelText:  "#1e2030",
		BorderFg: "#494d64",
	},
	"ink": {
		Name:     "ink",
		Text:     "#d0d0d0",
		Muted:    "#585858",
		Accent:   "#87afd7",
		Marker:   "#d7af87",
		Danger:   "#d75f5f",
		SelBg:    "#87afd7",
		SelText:  "#121212",
		BorderFg: "#444444",
	},
}

// GetTheme resolves a theme by name, falling back to "spring".
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["spring"]
}
