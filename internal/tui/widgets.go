package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aam-007/syswiz/internal/tui/theme"
)

// inputModel wraps the text input used for package names and repo ids.
type inputModel struct {
	ti     textinput.Model
	prompt string
}

func newInputModel() inputModel {
	ti := textinput.New()
	ti.Placeholder = "package-name"
	ti.CharLimit = 128
	ti.Width = 40
	return inputModel{ti: ti}
}

func (m *inputModel) reset(prompt string) {
	m.prompt = prompt
	m.ti.SetValue("")
}

func (m *inputModel) focus() tea.Cmd {
	return m.ti.Focus()
}

func (m inputModel) value() string {
	return m.ti.Value()
}

func (m inputModel) update(msg tea.Msg) (inputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m inputModel) view() string {
	return m.ti.View()
}

// spinnerTickMsg aliases the bubbles spinner tick for the root Update switch.
type spinnerTickMsg = spinner.TickMsg

// spinnerModel wraps the execution spinner.
type spinnerModel struct {
	s spinner.Model
}

func newSpinnerModel() spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Current.Mauve)
	return spinnerModel{s: s}
}

func (m spinnerModel) tick() tea.Cmd {
	return m.s.Tick
}

func (m spinnerModel) update(msg tea.Msg) (spinnerModel, tea.Cmd) {
	var cmd tea.Cmd
	m.s, cmd = m.s.Update(msg)
	return m, cmd
}

func (m spinnerModel) view() string {
	return m.s.View()
}
