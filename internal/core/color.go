package core

import "fmt"

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorCyan:         "cyan",
	ColorBrightRed:    "bright_red",
	ColorBrightGreen:  "bright_green",
	ColorBrightYellow: "bright_yellow",
	ColorOrange:       "orange",
	ColorGray:         "gray",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a color name as written in config files.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
