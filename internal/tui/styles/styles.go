// Package styles builds the lipgloss styles used across the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aam-007/syswiz/internal/risk"
	"github.com/aam-007/syswiz/internal/tui/theme"
)

// Styles holds all pre-built lipgloss styles for the current theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style

	Selected lipgloss.Style
	Cursor   lipgloss.Style

	CodeBlock lipgloss.Style
	Panel     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
}

// New builds styles from the active theme.
func New() *Styles {
	return FromTheme(theme.Current)
}

// FromTheme builds styles from an explicit theme.
func FromTheme(t *theme.Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Mauve).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.Subtext),
		Normal: lipgloss.NewStyle().
			Foreground(t.Text),
		Dim: lipgloss.NewStyle().
			Foreground(t.Overlay),
		Help: lipgloss.NewStyle().
			Foreground(t.Overlay),

		Selected: lipgloss.NewStyle().
			Foreground(t.Blue).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(t.Mauve).
			Bold(true),

		CodeBlock: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Overlay).
			Padding(1, 2),

		Success: lipgloss.NewStyle().
			Foreground(t.Green).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(t.Red).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(t.Yellow).
			Bold(true),

		ButtonActive: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Blue).
			Bold(true).
			Padding(0, 3),
		ButtonInactive: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Surface).
			Padding(0, 3),
	}
}

// TierColor returns the accent color for a risk tier.
func TierColor(t *theme.Theme, tier risk.Tier) lipgloss.Color {
	switch tier {
	case risk.TierInfo:
		return t.Blue
	case risk.TierNormal:
		return t.Green
	case risk.TierHigh:
		return t.Peach
	case risk.TierCritical:
		return t.Red
	default:
		return t.Text
	}
}

// TierBanner renders the tier-appropriate banner style.
func TierBanner(t *theme.Theme, tier risk.Tier) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Base).
		Background(TierColor(t, tier)).
		Bold(true).
		Padding(0, 1)
}
