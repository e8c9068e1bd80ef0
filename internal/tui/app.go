// Package tui implements the guided menu interface.
package tui

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/aam-007/syswiz/internal/catalog"
	"github.com/aam-007/syswiz/internal/command"
	"github.com/aam-007/syswiz/internal/history"
	"github.com/aam-007/syswiz/internal/runner"
	"github.com/aam-007/syswiz/internal/system"
	"github.com/aam-007/syswiz/internal/tui/styles"
)

// Executor runs a confirmed intent. It is an interface so tests can
// observe that declined intents never reach execution.
type Executor interface {
	Run(ctx context.Context, in *command.Intent, sink io.Writer) (*runner.Result, error)
}

// Recorder journals completed executions. Append failures are logged,
// never surfaced to the user.
type Recorder interface {
	Append(rec *history.Record) error
}

// Options configures the TUI.
type Options struct {
	Catalog  []catalog.Category
	Info     *system.Info
	Resolve  command.ResolveOptions
	Executor Executor
	Journal  Recorder
	Logger   *log.Logger
	Version  string
}

// screen identifies the active TUI state.
type screen int

const (
	screenSplash screen = iota
	screenMenu
	screenInput
	screenConfirm
	screenRunning
	screenDone
)

// maxVisibleOutput bounds the streamed-output window on the running screen.
const maxVisibleOutput = 18

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	styles *styles.Styles
	keys   KeyMap

	screen screen
	width  int
	height int

	// Menu state. catIndex == -1 means the root category list.
	catIndex  int
	rootCur   int
	actionCur int

	// Input state.
	input    inputModel
	pending  catalog.Action
	inputErr string

	// Confirmation state. The intent has exactly one owner; it is handed
	// from the menu to the confirm screen to the runner, synchronously.
	intent     *command.Intent
	confirmYes bool

	// Execution state.
	events  chan tea.Msg
	lines   []string
	spin    spinnerModel
	result  *runner.Result
	execErr error

	quitting bool
}

// New builds the root model.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Model{
		opts:     opts,
		styles:   styles.New(),
		keys:     DefaultKeyMap(),
		screen:   screenSplash,
		catIndex: -1,
		input:    newInputModel(),
		spin:     newSpinnerModel(),
	}
}

// Run starts the program on the alternate screen and blocks until exit.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case outputLineMsg:
		m.lines = append(m.lines, string(msg))
		return m, waitEvent(m.events)

	case execDoneMsg:
		return m.finishExecution(msg)

	case spinnerTickMsg:
		if m.screen == screenRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Once a privileged run has started there is no cancelling it; keys
	// are inert until the process exits.
	if m.screen == screenRunning {
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC && m.screen != screenRunning {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenSplash:
		return m.updateSplash(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenInput:
		return m.updateInput(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenDone:
		return m.updateDone(msg)
	}
	return m, nil
}

// Splash ----------------------------------------------------------------------

func (m *Model) updateSplash(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Select):
		m.screen = screenMenu
		return m, nil
	case keyMatches(msg, m.keys.Back), keyMatches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Menu ------------------------------------------------------------------------

func (m *Model) atRoot() bool {
	return m.catIndex < 0
}

func (m *Model) currentCategory() catalog.Category {
	return m.opts.Catalog[m.catIndex]
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Up):
		m.moveCursor(-1)
	case keyMatches(msg, m.keys.Down):
		m.moveCursor(1)
	case keyMatches(msg, m.keys.Select):
		return m.selectMenuItem()
	case keyMatches(msg, m.keys.Back), keyMatches(msg, m.keys.Quit):
		// Root cancel means exit; a nested back pops exactly one level.
		// The asymmetry is deliberate.
		if m.atRoot() {
			m.quitting = true
			return m, tea.Quit
		}
		m.catIndex = -1
		m.actionCur = 0
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.atRoot() {
		m.rootCur = clamp(m.rootCur+delta, 0, len(m.opts.Catalog)-1)
		return
	}
	m.actionCur = clamp(m.actionCur+delta, 0, len(m.currentCategory().Actions)-1)
}

func (m *Model) selectMenuItem() (tea.Model, tea.Cmd) {
	if m.atRoot() {
		m.catIndex = m.rootCur
		m.actionCur = 0
		return m, nil
	}

	action := m.currentCategory().Actions[m.actionCur]
	if action.NeedsInput() {
		m.pending = action
		m.inputErr = ""
		m.input.reset(action.Prompt)
		m.screen = screenInput
		return m, m.input.focus()
	}
	return m.resolveAndPreview(action, "")
}

func (m *Model) resolveAndPreview(action catalog.Action, input string) (tea.Model, tea.Cmd) {
	m.inputErr = ""
	in, err := command.Resolve(action, input, m.opts.Resolve)
	if err != nil {
		// Reported on the input screen; actions without input cannot
		// fail resolution.
		m.inputErr = err.Error()
		return m, nil
	}
	m.intent = in
	m.confirmYes = !in.Tier.DefaultDecline()
	m.screen = screenConfirm
	return m, nil
}

// Input -----------------------------------------------------------------------

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Select):
		value := strings.TrimSpace(m.input.value())
		model, cmd := m.resolveAndPreview(m.pending, value)
		if m.inputErr != "" {
			// Validation rejection: re-prompt rather than dropping back
			// to the menu.
			return m, nil
		}
		return model, cmd
	case keyMatches(msg, m.keys.Back):
		m.screen = screenMenu
		m.inputErr = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.update(msg)
	return m, cmd
}

// Confirm ---------------------------------------------------------------------

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Left), keyMatches(msg, m.keys.Right), keyMatches(msg, m.keys.Tab):
		m.confirmYes = !m.confirmYes
		return m, nil
	case keyMatches(msg, m.keys.Yes):
		return m.startExecution()
	case keyMatches(msg, m.keys.No), keyMatches(msg, m.keys.Back):
		return m.declineConfirm()
	case keyMatches(msg, m.keys.Select):
		if m.confirmYes {
			return m.startExecution()
		}
		return m.declineConfirm()
	}
	// Anything that is not an explicit affirmative is a decline only on
	// activation; stray keys are ignored.
	return m, nil
}

func (m *Model) declineConfirm() (tea.Model, tea.Cmd) {
	m.intent = nil
	m.screen = screenMenu
	return m, nil
}

// Execution -------------------------------------------------------------------

type outputLineMsg string

type execDoneMsg struct {
	res *runner.Result
	err error
}

func (m *Model) startExecution() (tea.Model, tea.Cmd) {
	in := m.intent
	m.screen = screenRunning
	m.lines = nil
	m.result = nil
	m.execErr = nil
	m.events = make(chan tea.Msg, 64)

	events := m.events
	executor := m.opts.Executor
	go func() {
		res, err := executor.Run(context.Background(), in, newLineWriter(events))
		events <- execDoneMsg{res: res, err: err}
	}()

	return m, tea.Batch(m.spin.tick(), waitEvent(events))
}

func waitEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func (m *Model) finishExecution(msg execDoneMsg) (tea.Model, tea.Cmd) {
	m.result = msg.res
	m.execErr = msg.err
	m.screen = screenDone

	if msg.err != nil {
		m.opts.Logger.Error("execution failed to start", "err", msg.err)
	} else if msg.res != nil {
		m.opts.Logger.Info("execution finished",
			"action", m.intent.Action.ID,
			"exit_code", msg.res.ExitCode,
			"outcome", string(msg.res.Outcome))
	}

	if m.opts.Journal != nil && msg.res != nil {
		rec := &history.Record{
			ActionID: m.intent.Action.ID,
			Command:  m.intent.Preview(),
			Tier:     m.intent.Tier.String(),
			ExitCode: msg.res.ExitCode,
			Outcome:  string(msg.res.Outcome),
			Duration: msg.res.Duration,
		}
		if err := m.opts.Journal.Append(rec); err != nil {
			m.opts.Logger.Warn("journal append failed", "err", err)
		}
	}
	return m, nil
}

// Done ------------------------------------------------------------------------

func (m *Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Select), keyMatches(msg, m.keys.Back):
		// Return to the category the action came from, not the root.
		m.intent = nil
		m.result = nil
		m.execErr = nil
		m.lines = nil
		m.screen = screenMenu
	}
	return m, nil
}

// View ------------------------------------------------------------------------

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenSplash:
		return m.viewSplash()
	case screenMenu:
		return m.viewMenu()
	case screenInput:
		return m.viewInput()
	case screenConfirm:
		return m.viewConfirm()
	case screenRunning:
		return m.viewRunning()
	case screenDone:
		return m.viewDone()
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lineWriter adapts the runner's streaming sink to Bubble Tea messages.
type lineWriter struct {
	events chan tea.Msg
	buf    strings.Builder
}

func newLineWriter(events chan tea.Msg) *lineWriter {
	return &lineWriter{events: events}
}

// Write splits incoming bytes into lines and forwards each complete line.
func (w *lineWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			w.events <- outputLineMsg(w.buf.String())
			w.buf.Reset()
			continue
		}
		w.buf.WriteByte(b)
	}
	return len(p), nil
}

// breadcrumb renders the menu location header.
func (m *Model) breadcrumb() string {
	parts := []string{"Home"}
	if !m.atRoot() {
		parts = append(parts, m.currentCategory().Title)
	}
	return m.styles.Title.Render(strings.Join(parts, " > "))
}
