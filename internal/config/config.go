// Package config provides YAML-based host configuration for the course:
// tick rate, key bindings, camera and theme.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/pitcourse/internal/core"
	"github.com/vovakirdan/pitcourse/internal/course"
)

// Tick rate limits accepted by Validate.
const (
	MinTickRate = 1
	MaxTickRate = 120
)

// CourseConfig contains all host configuration for the course.
// Game rules are not configurable.
type CourseConfig struct {
	TickRate int          `yaml:"tick_rate"`
	Camera   CameraConfig `yaml:"camera"`
	Keys     KeysConfig   `yaml:"keys"`
	Theme    ThemeConfig  `yaml:"theme"`
}

// CameraConfig is the camera used when a game starts.
type CameraConfig struct {
	Zoom     int  `yaml:"zoom"`
	Overhead bool `yaml:"overhead"`
}

// KeysConfig lists the terminal keys bound to each action.
// Key names follow Bubble Tea, e.g. "up", "ctrl+c", "space".
type KeysConfig struct {
	North        []string `yaml:"north"`
	South        []string `yaml:"south"`
	East         []string `yaml:"east"`
	West         []string `yaml:"west"`
	Jump         []string `yaml:"jump"`
	Pause        []string `yaml:"pause"`
	Hint         []string `yaml:"hint"`
	ZoomIn       []string `yaml:"zoom_in"`
	ZoomOut      []string `yaml:"zoom_out"`
	ViewOverhead []string `yaml:"view_overhead"`
	ViewDefault  []string `yaml:"view_default"`
	Quit         []string `yaml:"quit"`
}

// Bindings returns the key lists by action, in a fixed order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{core.ActionUp, k.North},
		{core.ActionDown, k.South},
		{core.ActionRight, k.East},
		{core.ActionLeft, k.West},
		{core.ActionJump, k.Jump},
		{core.ActionPause, k.Pause},
		{core.ActionHint, k.Hint},
		{core.ActionZoomIn, k.ZoomIn},
		{core.ActionZoomOut, k.ZoomOut},
		{core.ActionViewOverhead, k.ViewOverhead},
		{core.ActionViewDefault, k.ViewDefault},
		{core.ActionQuit, k.Quit},
	}
}

// Binding pairs an action with the keys that trigger it.
type Binding struct {
	Action core.Action
	Keys   []string
}

// TileConfig is one themed glyph.
type TileConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// ThemeConfig defines glyphs and colors for every board element.
type ThemeConfig struct {
	Safe     TileConfig `yaml:"safe"`
	Pit      TileConfig `yaml:"pit"`
	Obstacle TileConfig `yaml:"obstacle"`
	Goal     TileConfig `yaml:"goal"`
	Hint     TileConfig `yaml:"hint"`
	Player   TileConfig `yaml:"player"`
	Fallen   TileConfig `yaml:"fallen"`
	Life     TileConfig `yaml:"life"`
	LifeLost TileConfig `yaml:"life_lost"`
	Label    string     `yaml:"label"`
	HUD      string     `yaml:"hud"`
}

// ScreenshotKey saves the screen in the TUI and cannot be bound to an action.
const ScreenshotKey = "ctrl+s"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks ranges, key bindings and theme values.
func (c CourseConfig) Validate() error {
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d out of range [%d, %d]", ErrInvalid, c.TickRate, MinTickRate, MaxTickRate)
	}
	if c.Camera.Zoom < core.MinZoom || c.Camera.Zoom > core.MaxZoom {
		return fmt.Errorf("%w: camera.zoom %d out of range [%d, %d]", ErrInvalid, c.Camera.Zoom, core.MinZoom, core.MaxZoom)
	}

	owner := make(map[string]core.Action)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, b.Action)
		}
		for _, k := range b.Keys {
			if k == "" {
				return fmt.Errorf("%w: empty key bound to %s", ErrInvalid, b.Action)
			}
			if k == ScreenshotKey {
				return fmt.Errorf("%w: key %q is reserved for screenshots", ErrInvalid, k)
			}
			if prev, ok := owner[k]; ok && prev != b.Action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.Action)
			}
			owner[k] = b.Action
		}
	}

	if _, err := c.Theme.Resolve(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// RuntimeConfig returns the platform settings derived from this config.
func (c CourseConfig) RuntimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.TickRate
	return rc
}

// CameraSettings returns the initial camera.
func (c CourseConfig) CameraSettings() core.Camera {
	return core.Camera{Zoom: c.Camera.Zoom, Overhead: c.Camera.Overhead}
}

// Resolve converts the theme into the renderer's form.
func (t ThemeConfig) Resolve() (course.Theme, error) {
	var out course.Theme
	tiles := []struct {
		name string
		cfg  TileConfig
		dst  *course.Tile
	}{
		{"safe", t.Safe, &out.Safe},
		{"pit", t.Pit, &out.Pit},
		{"obstacle", t.Obstacle, &out.Obstacle},
		{"goal", t.Goal, &out.Goal},
		{"hint", t.Hint, &out.Hint},
		{"player", t.Player, &out.Player},
		{"fallen", t.Fallen, &out.Fallen},
		{"life", t.Life, &out.Life},
		{"life_lost", t.LifeLost, &out.LifeLost},
	}
	for _, tile := range tiles {
		r, err := parseGlyph(tile.cfg.Glyph)
		if err != nil {
			return out, fmt.Errorf("theme.%s: %w", tile.name, err)
		}
		c, err := core.ParseColor(tile.cfg.Color)
		if err != nil {
			return out, fmt.Errorf("theme.%s: %w", tile.name, err)
		}
		*tile.dst = course.Tile{Glyph: r, Color: c}
	}

	var err error
	if out.Label, err = core.ParseColor(t.Label); err != nil {
		return out, fmt.Errorf("theme.label: %w", err)
	}
	if out.HUD, err = core.ParseColor(t.HUD); err != nil {
		return out, fmt.Errorf("theme.hud: %w", err)
	}
	return out, nil
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
