// Package ui provides the interactive session view for guestgate.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by both themes.
var (
	LightForeground = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightMuted      = lipgloss.Color("#8a93a1")
	DarkForeground  = lipgloss.Color("#f2f2f2")
	DarkAccent      = lipgloss.Color("#8BC34A")
	DarkMuted       = lipgloss.Color("#5c6878")

	Warning = lipgloss.Color("#FFC107")
	Success = lipgloss.Color("#8BC34A")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Accent:     LightAccent,
		Muted:      LightMuted,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// ThemeByName resolves "light"/"dark", defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles bundles the lipgloss styles used by the pages.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	Prompt   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles derives the page styles from a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning),
		Prompt: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 2),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}
