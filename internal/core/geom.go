// Package core provides fundamental types and utilities for the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport is the window of a larger world that fits on screen. X and Y
// are the world coordinates of the top-left visible cell.
type Viewport struct {
	X, Y int
	W, H int
}

// NewViewport creates a w×h viewport at the world origin.
func NewViewport(w, h int) Viewport {
	return Viewport{W: w, H: h}
}

// Follow scrolls the viewport so that (tx, ty) stays at least margin
// cells away from each edge, then clamps it to the worldW×worldH world.
// A world smaller than the viewport is pinned at the origin.
func (v *Viewport) Follow(tx, ty, worldW, worldH, margin int) {
	mx := min(margin, (v.W-1)/2)
	my := min(margin, (v.H-1)/2)

	if tx < v.X+mx {
		v.X = tx - mx
	}
	if tx > v.X+v.W-1-mx {
		v.X = tx - v.W + 1 + mx
	}
	if ty < v.Y+my {
		v.Y = ty - my
	}
	if ty > v.Y+v.H-1-my {
		v.Y = ty - v.H + 1 + my
	}

	v.X = Clamp(v.X, 0, max(0, worldW-v.W))
	v.Y = Clamp(v.Y, 0, max(0, worldH-v.H))
}

// Visible reports whether world cell (x, y) is inside the viewport.
func (v Viewport) Visible(x, y int) bool {
	return Rect{X: v.X, Y: v.Y, W: v.W, H: v.H}.Contains(x, y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
