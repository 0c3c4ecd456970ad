package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pitcourse/internal/config"
	"github.com/vovakirdan/pitcourse/internal/core"
)

// Game is what the terminal host drives: a frame-stepped simulation that
// draws itself into a screen buffer.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen, cam core.Camera)
	State() core.GameState
}

// endHoldSeconds is how long the final frame stays up before the program exits.
const endHoldSeconds = 2

// Options configures a Model.
type Options struct {
	Config core.RuntimeConfig
	Camera core.Camera
	Keys   KeyMap
}

// Model is the Bubble Tea model for running the course.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	camera     core.Camera
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	endHold    int // ticks left before quitting after game over
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:     cfg,
		camera:     opts.Camera,
		keys:       opts.Keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Every key message, including
// auto-repeat, queues exactly one action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == config.ScreenshotKey {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case m.gameState.GameOver:
		// Any key skips the final frame.
		return m, tea.Quit
	case action.IsCamera():
		m.camera = m.camera.Apply(action)
	default:
		m.inputFrame.Push(action)
	}

	return m, nil
}

// handleResize processes window resize events. The last row is reserved
// for the help line. Game rules do not depend on the screen size, so the
// game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		m.endHold--
		if m.endHold <= 0 {
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver {
		m.endHold = endHoldSeconds * m.config.TickRate
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen, m.camera)

	dir := filepath.Join(os.Getenv("HOME"), ".pitcourse", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// Camera returns the current view settings.
func (m Model) Camera() core.Camera {
	return m.camera
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.camera)
	return RenderScreen(m.screen) + "\n" + RenderHelp(m.help, m.keys)
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.GameState(), nil
	}
	return game.State(), nil
}
