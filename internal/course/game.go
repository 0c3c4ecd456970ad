package course

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/pitcourse/internal/board"
	"github.com/vovakirdan/pitcourse/internal/core"
)

// Session phases tracked by the game's state machine.
const (
	PhasePlaying = "playing"
	PhasePaused  = "paused"
	PhaseWon     = "won"
	PhaseLost    = "lost"
)

const (
	eventPause  = "pause"
	eventResume = "resume"
	eventWin    = "win"
	eventLose   = "lose"
)

// fallCueTicks is how long the player stays lowered after a pit fall.
const fallCueTicks = 12

// Game is a playable session: it owns one State, applies queued actions
// once per tick and draws itself into a screen buffer.
type Game struct {
	state    State
	phase    *fsm.FSM
	logger   *log.Logger
	theme    Theme
	tick     uint64
	fallCue  int
	hint     []Command
	hintPath []board.Coord
	message  string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTheme sets the glyphs and colors used by Render.
func WithTheme(t Theme) Option {
	return func(g *Game) {
		g.theme = t
	}
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
		theme:  DefaultTheme(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = NewState()
	g.phase = newPhaseMachine(g)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pitcourse"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pit Course"
}

func newPhaseMachine(g *Game) *fsm.FSM {
	return fsm.NewFSM(
		PhasePlaying,
		fsm.Events{
			{Name: eventPause, Src: []string{PhasePlaying}, Dst: PhasePaused},
			{Name: eventResume, Src: []string{PhasePaused}, Dst: PhasePlaying},
			{Name: eventWin, Src: []string{PhasePlaying}, Dst: PhaseWon},
			{Name: eventLose, Src: []string{PhasePlaying}, Dst: PhaseLost},
		},
		fsm.Callbacks{
			"enter_" + PhaseWon: func(_ context.Context, _ *fsm.Event) {
				g.message = "YOU WON THE GAME"
				g.logger.Info("game won", "lives", g.state.Lives, "tick", g.tick)
			},
			"enter_" + PhaseLost: func(_ context.Context, _ *fsm.Event) {
				g.message = "LOST THE GAME"
				g.logger.Info("game lost", "block", g.state.Index, "tick", g.tick)
			},
			"enter_state": func(_ context.Context, e *fsm.Event) {
				g.logger.Debug("phase change", "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// Reset starts a new game.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.state = NewState()
	g.phase = newPhaseMachine(g)
	g.tick = 0
	g.fallCue = 0
	g.clearHint()
	g.message = ""
	g.logger.Info("game started", "block", g.state.Index, "lives", g.state.Lives)
}

// Step advances the game by one tick. Actions are applied in arrival order,
// then the per-frame checks run.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions {
		g.handle(a)
	}
	g.settle()

	return core.StepResult{State: g.State()}
}

func (g *Game) handle(a core.Action) {
	switch a {
	case core.ActionPause:
		g.togglePause()
	case core.ActionHint:
		g.showHint()
	default:
		if cmd, ok := CommandFor(a); ok {
			g.Apply(cmd)
			g.syncPhase()
		}
	}
}

// Apply runs one command through the movement rules. Commands are ignored
// unless the session is playing.
func (g *Game) Apply(cmd Command) Event {
	if g.Phase() != PhasePlaying {
		return EventIgnored
	}

	next, ev := Step(g.state, cmd)
	g.state = next

	switch ev {
	case EventArmed:
		g.message = "Jump armed"
		g.logger.Debug("jump armed")
		return ev
	case EventMoved:
		g.message = ""
		g.logger.Info("moved", "command", cmd, "block", next.Index)
	case EventClamped:
		g.message = "Edge of the board"
		g.logger.Debug("move clamped at edge", "command", cmd, "block", next.Index)
	case EventBlocked:
		g.message = "Blocked by an obstacle"
		g.logger.Info("blocked by obstacle", "command", cmd, "block", next.Index)
	case EventFell:
		g.fallCue = fallCueTicks
		g.message = "Fell into a pit! Lost a life"
		g.logger.Warn("fallen into pit", "command", cmd, "lives", next.Lives)
	default:
		return ev
	}

	g.clearHint()
	return ev
}

// settle runs the per-frame checks: the pit-fall cue wears off and the
// outcome drives the phase machine.
func (g *Game) settle() {
	if g.fallCue > 0 {
		g.fallCue--
		if g.fallCue == 0 && g.state.Height == Fallen {
			g.state.Height = Grounded
		}
	}
	g.syncPhase()
}

// syncPhase moves the phase machine to won or lost once the outcome is
// terminal. Called after every command and once per frame.
func (g *Game) syncPhase() {
	var err error
	switch g.state.Outcome {
	case Won:
		if g.phase.Can(eventWin) {
			err = g.phase.Event(context.Background(), eventWin)
		}
	case Lost:
		if g.phase.Can(eventLose) {
			err = g.phase.Event(context.Background(), eventLose)
		}
	}
	if err != nil {
		g.logger.Error("phase transition failed", "error", err)
	}
}

func (g *Game) togglePause() {
	if g.state.Terminal() {
		return
	}
	var err error
	switch {
	case g.phase.Can(eventPause):
		err = g.phase.Event(context.Background(), eventPause)
	case g.phase.Can(eventResume):
		err = g.phase.Event(context.Background(), eventResume)
	}
	if err != nil {
		g.logger.Error("pause toggle failed", "error", err)
	}
}

func (g *Game) showHint() {
	if g.Phase() != PhasePlaying {
		return
	}
	route, ok := Route(g.state)
	if !ok {
		g.message = "No safe route from here"
		g.clearHint()
		return
	}
	g.hint = route
	g.hintPath = Trail(g.state, route)
	g.message = fmt.Sprintf("Route: %s", FormatScript(route))
	g.logger.Debug("hint", "route", FormatScript(route), "length", len(route))
}

func (g *Game) clearHint() {
	g.hint = nil
	g.hintPath = nil
}

// Phase returns the current session phase.
func (g *Game) Phase() string {
	return g.phase.Current()
}

// Rules returns a copy of the rule state.
func (g *Game) Rules() State {
	return g.state
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	phase := g.Phase()
	return core.GameState{
		Lives:    g.state.Lives,
		GameOver: phase == PhaseWon || phase == PhaseLost,
		Won:      phase == PhaseWon,
		Paused:   phase == PhasePaused,
	}
}

// Scene is the read-only view handed to the renderer each frame.
type Scene struct {
	Player    board.World
	Coord     board.Coord
	Index     int
	Height    Height
	Lives     int
	JumpArmed bool
	Outcome   Outcome
	Phase     string
	Hint      []board.Coord
	Message   string
}

// Scene returns the current render view.
func (g *Game) Scene() Scene {
	hint := make([]board.Coord, len(g.hintPath))
	copy(hint, g.hintPath)
	return Scene{
		Player:    g.state.World(),
		Coord:     g.state.Pos,
		Index:     g.state.Index,
		Height:    g.state.Height,
		Lives:     g.state.Lives,
		JumpArmed: g.state.JumpArmed,
		Outcome:   g.state.Outcome,
		Phase:     g.Phase(),
		Hint:      hint,
		Message:   g.message,
	}
}
