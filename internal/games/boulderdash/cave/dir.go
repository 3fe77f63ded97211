package cave

import "fmt"

// Dir is one of the four cardinal directions, ordered clockwise.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) step for this direction. Y grows downward.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		panic(fmt.Sprintf("cave: invalid direction %d", d))
	}
}

// TurnLeft returns the direction 90 degrees counter-clockwise.
func (d Dir) TurnLeft() Dir {
	return (d + 3) % 4
}

// TurnRight returns the direction 90 degrees clockwise.
func (d Dir) TurnRight() Dir {
	return (d + 1) % 4
}

// Horizontal reports whether the direction is left or right.
func (d Dir) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// lineDirs is the 8-way table used by Line instructions in cave data,
// starting at "up" and going clockwise.
var lineDirs = [8]Pos{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}
