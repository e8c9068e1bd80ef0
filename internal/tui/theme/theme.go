// Package theme defines the color palettes for the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette.
type Theme struct {
	Name   string
	IsDark bool

	// Accent colors.
	Red    lipgloss.Color
	Peach  lipgloss.Color
	Yellow lipgloss.Color
	Green  lipgloss.Color
	Blue   lipgloss.Color
	Mauve  lipgloss.Color

	// Text colors.
	Text    lipgloss.Color
	Subtext lipgloss.Color

	// Surface colors.
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
}

// Dark returns the default dark palette (Catppuccin Mocha values).
func Dark() *Theme {
	return &Theme{
		Name:    "dark",
		IsDark:  true,
		Red:     lipgloss.Color("#f38ba8"),
		Peach:   lipgloss.Color("#fab387"),
		Yellow:  lipgloss.Color("#f9e2af"),
		Green:   lipgloss.Color("#a6e3a1"),
		Blue:    lipgloss.Color("#89b4fa"),
		Mauve:   lipgloss.Color("#cba6f7"),
		Text:    lipgloss.Color("#cdd6f4"),
		Subtext: lipgloss.Color("#a6adc8"),
		Base:    lipgloss.Color("#1e1e2e"),
		Surface: lipgloss.Color("#313244"),
		Overlay: lipgloss.Color("#6c7086"),
	}
}

// Light returns the light palette (Catppuccin Latte values).
func Light() *Theme {
	return &Theme{
		Name:    "light",
		IsDark:  false,
		Red:     lipgloss.Color("#d20f39"),
		Peach:   lipgloss.Color("#fe640b"),
		Yellow:  lipgloss.Color("#df8e1d"),
		Green:   lipgloss.Color("#40a02b"),
		Blue:    lipgloss.Color("#1e66f5"),
		Mauve:   lipgloss.Color("#8839ef"),
		Text:    lipgloss.Color("#4c4f69"),
		Subtext: lipgloss.Color("#6c6f85"),
		Base:    lipgloss.Color("#eff1f5"),
		Surface: lipgloss.Color("#ccd0da"),
		Overlay: lipgloss.Color("#9ca0b0"),
	}
}

// ByName resolves a theme name, falling back to dark.
func ByName(name string) *Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Current is the process-wide active theme.
var Current = Dark()

// Set replaces the active theme.
func Set(t *Theme) {
	if t != nil {
		Current = t
	}
}
