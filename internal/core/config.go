package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by reaching the goal
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Zoom limits for the camera, in screen columns per board cell.
const (
	MinZoom = 1
	MaxZoom = 4
)

// Camera is render configuration owned by the platform layer.
// It never influences game rules.
type Camera struct {
	Zoom     int  // Screen columns per board cell
	Overhead bool // Show cell indices instead of plain tiles
}

// DefaultCamera returns the camera used at startup.
func DefaultCamera() Camera {
	return Camera{Zoom: 2}
}

// Apply returns the camera after a camera action. Other actions are ignored.
func (c Camera) Apply(a Action) Camera {
	switch a {
	case ActionZoomIn:
		c.Zoom = clampZoom(c.Zoom + 1)
	case ActionZoomOut:
		c.Zoom = clampZoom(c.Zoom - 1)
	case ActionViewOverhead:
		c.Overhead = true
	case ActionViewDefault:
		c.Overhead = false
	}
	return c
}

// CellWidth returns the number of columns a board cell occupies.
// Overhead view needs at least two columns for the index label.
func (c Camera) CellWidth() int {
	w := clampZoom(c.Zoom)
	if c.Overhead && w < 2 {
		w = 2
	}
	return w
}

func clampZoom(z int) int {
	return min(max(z, MinZoom), MaxZoom)
}
