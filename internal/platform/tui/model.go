package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catball/internal/core"
	"github.com/vovakirdan/catball/internal/games/catball"
)

// Model is the Bubble Tea model running one game session.
// Every tick runs exactly one frame unless the session is paused.
type Model struct {
	frame    catball.FrameFunc
	screen   *core.Screen
	canvas   *Canvas
	config   core.RuntimeConfig
	input    core.InputFrame
	pointer  pointer
	keys     KeyMap
	help     help.Model
	paused   bool
	quitting bool
}

// NewModel creates a model that calls frame once per tick.
func NewModel(frame catball.FrameFunc, skins Skins, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	return Model{
		frame:  frame,
		screen: screen,
		canvas: NewCanvas(screen, skins),
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.update(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The game keeps its state; the next frame recomputes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
		// A drag in progress when pausing must not steer after resuming.
		m.pointer = pointer{}
	}
	if m.input.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
	}
	m.input.Clear()

	if !m.paused {
		in := catball.FrameInput{
			Screen:   ScreenUnits(m.config.ScreenW, m.config.ScreenH),
			Pointers: m.pointer.positions(),
		}
		m.frame(in, m.canvas)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.paused {
		return renderOverlay(m.config.ScreenW, m.config.ScreenH, "PAUSED", m.help.View(m.keys))
	}
	return RenderScreen(m.screen)
}

// Paused reports whether frames are currently suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Screen returns the screen buffer the last frame was drawn into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

var _ catball.FrameDriver = (*Driver)(nil)

// Driver is a catball.FrameDriver presenting frames in a terminal.
type Driver struct {
	Config  core.RuntimeConfig
	Skins   Skins
	Options []tea.ProgramOption
}

// Run runs the Bubble Tea program until the user quits or ctx is done.
func (d *Driver) Run(ctx context.Context, frame catball.FrameFunc) error {
	model := NewModel(frame, d.Skins, d.Config)

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag reports motion while a button is held
	}
	opts = append(opts, d.Options...)

	_, err := tea.NewProgram(model, opts...).Run()
	return err
}
