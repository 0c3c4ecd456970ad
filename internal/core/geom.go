// Package core provides fundamental types shared by the game and the terminal
// platform: actions, input frames, the camera and the screen buffer.
// It contains no Bubble Tea imports so game logic stays pure and testable.
package core

// Rect is a screen area: top-left corner plus size.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Centered places a w×h area in the middle of r. The result may extend
// past r when it is larger; drawing clips it.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}
