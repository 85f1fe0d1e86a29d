package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Jithendhar18/recipe-ideas/internal/prefs"
	"github.com/Jithendhar18/recipe-ideas/internal/recipe"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Glamour style used for the recipe detail.
	Glamour string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	// List selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Brand   string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Brand)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),
		Header:      s.Header.Background(bg),
		Logo:        s.Logo.Background(bg),
		Selected:    s.Selected,
	}
}

var themes = map[string]Theme{
	prefs.ThemeLight: lightTheme(),
	prefs.ThemeDark:  darkTheme(),
}

// GetTheme returns a theme by name, falling back to the light theme.
func GetTheme(name string) Theme {
	if t, ok := themes[prefs.NormalizeTheme(name)]; ok {
		return t
	}
	return lightTheme()
}

// NextTheme returns the theme the toggle switches to.
func NextTheme(current string) string {
	return prefs.ToggleTheme(current)
}

func lightTheme() Theme {
	// Warm paper tones with the brand's tomato red.
	return Theme{
		Name:    prefs.ThemeLight,
		Glamour: recipe.StyleLight,

		Background: "#fffaf5",
		Surface:    "#fdeee4",
		SurfaceAlt: "#fff5ee",
		FocusBg:    "#fbe3d4",

		SelectionBg:   "#e85d4a",
		SelectionText: "#ffffff",

		Border:      "#e3c7b6",
		BorderFocus: "#e85d4a",

		Text:    "#2d2420",
		Muted:   "#7a6a62",
		Faint:   "#a89890",
		Accent:  "#c2410c",
		Brand:   "#e85d4a",
		Success: "#15803d",
		Warning: "#b45309",
		Danger:  "#b91c1c",
		Info:    "#0e7490",
	}
}

func darkTheme() Theme {
	// Tailwind CSS stone palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:    prefs.ThemeDark,
		Glamour: recipe.StyleDark,

		Background: "#0c0a09", // stone-950
		Surface:    "#1c1917", // stone-900
		SurfaceAlt: "#292524", // stone-800
		FocusBg:    "#322d2b",

		SelectionBg:   "#dc2626", // red-600
		SelectionText: "#fafaf9", // stone-50

		Border:      "#44403c", // stone-700
		BorderFocus: "#f87171", // red-400

		Text:    "#f5f5f4", // stone-100
		Muted:   "#a8a29e", // stone-400
		Faint:   "#78716c", // stone-500
		Accent:  "#fb923c", // orange-400
		Brand:   "#ffe2e2",
		Success: "#4ade80", // green-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400
		Info:    "#22d3ee", // cyan-400
	}
}
