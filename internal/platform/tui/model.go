package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// It bridges the gap before the terminal's key auto-repeat kicks in.
const DefaultHoldTicks = 18

// Options configures a Model.
type Options struct {
	Config    config.Config
	Seed      int64 // 0 means seed from the clock
	TickRate  int   // Simulation ticks per second (default 60)
	HoldTicks int   // See DefaultHoldTicks
	Width     int   // Initial screen size, updated on resize
	Height    int
}

// Model is the Bubble Tea model running one runner session.
type Model struct {
	session  *runner.Session
	cfg      config.Config
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     heldKeys
	tickRate int
	tick     int
	paused   bool
	quitting bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// NewModel creates a model with a fresh session.
func NewModel(opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	session, err := runner.NewSession(opts.Config, opts.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return Model{
		session:  session,
		cfg:      opts.Config,
		screen:   core.NewScreen(opts.Width, opts.Height-1),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     heldKeys{holdTicks: opts.HoldTicks},
		tickRate: opts.TickRate,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	gameOver := m.session.World().Phase == runner.PhaseGameOver

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !gameOver {
			m.paused = !m.paused
		}

	case core.ActionRestart:
		m.restart()

	case core.ActionJump:
		if gameOver {
			m.restart()
			break
		}
		m.held.pressJump(m.tick)

	case core.ActionDuck:
		m.held.pressDuck(m.tick)
	}

	return m, nil
}

func (m *Model) restart() {
	if m.session.Restart() {
		m.held.clear()
		m.paused = false
	}
}

// handleTick runs one simulation step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.session.Step(m.held.intents(m.tick))
		m.tick++
	}
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSnapshot(m.screen, m.cfg, m.session.Snapshot(), m.paused)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session exposes the running session, mainly for tests.
func (m Model) Session() *runner.Session {
	return m.session
}

// Run starts a Bubble Tea program in the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
