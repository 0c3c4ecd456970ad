package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pitcourse/internal/config"
	"github.com/vovakirdan/pitcourse/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from configuration so they can be remapped.
type KeyMap struct {
	North        key.Binding
	South        key.Binding
	East         key.Binding
	West         key.Binding
	Jump         key.Binding
	Pause        key.Binding
	Hint         key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ViewOverhead key.Binding
	ViewDefault  key.Binding
	Quit         key.Binding
}

var actionHelp = map[core.Action]string{
	core.ActionUp:           "north",
	core.ActionDown:         "south",
	core.ActionRight:        "east",
	core.ActionLeft:         "west",
	core.ActionJump:         "jump",
	core.ActionPause:        "pause",
	core.ActionHint:         "hint",
	core.ActionZoomIn:       "zoom in",
	core.ActionZoomOut:      "zoom out",
	core.ActionViewOverhead: "overhead",
	core.ActionViewDefault:  "default view",
	core.ActionQuit:         "quit",
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	var km KeyMap
	for _, b := range keys.Bindings() {
		if slot := km.slot(b.Action); slot != nil {
			*slot = newBinding(b.Keys, actionHelp[b.Action])
		}
	}
	return km
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultCourseConfig().Keys)
}

// newBinding accepts "space" as a name for the space bar, which Bubble Tea
// reports as " ".
func newBinding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names)+1)
	for _, n := range names {
		keys = append(keys, n)
		if n == "space" {
			keys = append(keys, " ")
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

func (km *KeyMap) slot(a core.Action) *key.Binding {
	switch a {
	case core.ActionUp:
		return &km.North
	case core.ActionDown:
		return &km.South
	case core.ActionRight:
		return &km.East
	case core.ActionLeft:
		return &km.West
	case core.ActionJump:
		return &km.Jump
	case core.ActionPause:
		return &km.Pause
	case core.ActionHint:
		return &km.Hint
	case core.ActionZoomIn:
		return &km.ZoomIn
	case core.ActionZoomOut:
		return &km.ZoomOut
	case core.ActionViewOverhead:
		return &km.ViewOverhead
	case core.ActionViewDefault:
		return &km.ViewDefault
	case core.ActionQuit:
		return &km.Quit
	}
	return nil
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	for _, a := range []core.Action{
		core.ActionQuit,
		core.ActionUp, core.ActionDown, core.ActionRight, core.ActionLeft, core.ActionJump,
		core.ActionPause, core.ActionHint,
		core.ActionZoomIn, core.ActionZoomOut, core.ActionViewOverhead, core.ActionViewDefault,
	} {
		if key.Matches(msg, *km.slot(a)) {
			return a
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.North, km.South, km.East, km.West, km.Jump, km.Hint, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.North, km.South, km.East, km.West, km.Jump},
		{km.Pause, km.Hint, km.Quit},
		{km.ZoomIn, km.ZoomOut, km.ViewOverhead, km.ViewDefault},
	}
}
