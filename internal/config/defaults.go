package config

import (
	_ "embed"
)

//go:embed defaults/course.yaml
var defaultCourseYAML []byte

// DefaultCourseConfig returns the built-in configuration. It matches
// defaults/course.yaml.
func DefaultCourseConfig() CourseConfig {
	return CourseConfig{
		TickRate: 30,
		Camera: CameraConfig{
			Zoom:     2,
			Overhead: false,
		},
		Keys: KeysConfig{
			North:        []string{"up"},
			South:        []string{"down"},
			East:         []string{"right"},
			West:         []string{"left"},
			Jump:         []string{"space"},
			Pause:        []string{"p"},
			Hint:         []string{"h"},
			ZoomIn:       []string{"o"},
			ZoomOut:      []string{"z"},
			ViewOverhead: []string{"a"},
			ViewDefault:  []string{"s"},
			Quit:         []string{"q", "esc", "ctrl+c"},
		},
		Theme: ThemeConfig{
			Safe:     TileConfig{Glyph: "·", Color: "gray"},
			Pit:      TileConfig{Glyph: "○", Color: "red"},
			Obstacle: TileConfig{Glyph: "█", Color: "orange"},
			Goal:     TileConfig{Glyph: "★", Color: "bright_green"},
			Hint:     TileConfig{Glyph: "•", Color: "yellow"},
			Player:   TileConfig{Glyph: "@", Color: "bright_yellow"},
			Fallen:   TileConfig{Glyph: "_", Color: "bright_red"},
			Life:     TileConfig{Glyph: "♥", Color: "bright_red"},
			LifeLost: TileConfig{Glyph: "♡", Color: "gray"},
			Label:    "gray",
			HUD:      "cyan",
		},
	}
}
