package cave

import "fmt"

// Standard cave dimensions.
const (
	Width  = 40
	Height = 22
)

// Pos is a cell coordinate. X increases to the right, Y increases downward.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the position one cell in direction d.
func (p Pos) Step(d Dir) Pos {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Offset names a relative neighbour used by the turn rules.
type Offset uint8

const (
	Up Offset = iota
	Down
	Down2
	Left
	Right
	DownLeft
	DownRight
	UpLeft
	UpRight
)

var offsets = [...]Pos{
	Up:        {0, -1},
	Down:      {0, 1},
	Down2:     {0, 2},
	Left:      {-1, 0},
	Right:     {1, 0},
	DownLeft:  {-1, 1},
	DownRight: {1, 1},
	UpLeft:    {-1, -1},
	UpRight:   {1, -1},
}

// Grid is a rectangular cave stored in row-major order: index = y*W + x.
// Every access is bounds-checked; touching a cell outside the grid is a
// programming error and panics.
type Grid struct {
	W     int
	H     int
	Cells []Object
}

// NewGrid creates a w×h grid filled with fill.
func NewGrid(w, h int, fill Object) *Grid {
	if w < 3 || h < 3 {
		panic(fmt.Sprintf("cave: grid %dx%d too small", w, h))
	}
	g := &Grid{W: w, H: h, Cells: make([]Object, w*h)}
	for i := range g.Cells {
		g.Cells[i] = fill
	}
	return g
}

// NewBordered creates a w×h grid with a steel border and the interior
// filled with fill.
func NewBordered(w, h int, fill Object) *Grid {
	g := NewGrid(w, h, fill)
	g.Rect(P(0, 0), w, h, Obj(SteelWall))
	return g
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// OnBorder reports whether p is one of the outermost cells.
func (g *Grid) OnBorder(p Pos) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.W-1 || p.Y == g.H-1
}

func (g *Grid) index(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("cave: position %v outside %dx%d grid", p, g.W, g.H))
	}
	return p.Y*g.W + p.X
}

// Get returns the object at p.
func (g *Grid) Get(p Pos) Object {
	return g.Cells[g.index(p)]
}

// Set stores o at p.
func (g *Grid) Set(p Pos, o Object) {
	g.Cells[g.index(p)] = o
}

// Neighbor returns the position at the given offset from p. It does not
// check bounds; the steel border keeps rule lookups inside the grid.
func (g *Grid) Neighbor(p Pos, off Offset) Pos {
	d := offsets[off]
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// At returns the object at the given offset from p.
func (g *Grid) At(p Pos, off Offset) Object {
	return g.Get(g.Neighbor(p, off))
}

// Rect draws the outline of a w×h rectangle with its top-left corner at p.
func (g *Grid) Rect(p Pos, w, h int, o Object) {
	for x := p.X; x < p.X+w; x++ {
		g.Set(P(x, p.Y), o)
		g.Set(P(x, p.Y+h-1), o)
	}
	for y := p.Y; y < p.Y+h; y++ {
		g.Set(P(p.X, y), o)
		g.Set(P(p.X+w-1, y), o)
	}
}

// Fill sets every cell of the w×h rectangle at p to o.
func (g *Grid) Fill(p Pos, w, h int, o Object) {
	for y := p.Y; y < p.Y+h; y++ {
		for x := p.X; x < p.X+w; x++ {
			g.Set(P(x, y), o)
		}
	}
}

// Count returns how many cells hold an object of one of the given kinds,
// in any scan state.
func (g *Grid) Count(kinds ...Kind) int {
	n := 0
	for _, o := range g.Cells {
		for _, k := range kinds {
			if o.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

// Find returns the first position, in scan order, holding kind k.
func (g *Grid) Find(k Kind) (Pos, bool) {
	for i, o := range g.Cells {
		if o.Kind == k {
			return P(i%g.W, i/g.W), true
		}
	}
	return Pos{}, false
}

// BorderIntact reports whether every border cell is steel wall.
func (g *Grid) BorderIntact() bool {
	for i, o := range g.Cells {
		if o.Kind != SteelWall && g.OnBorder(P(i%g.W, i/g.W)) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Object, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// Rows renders the grid as one string per row using Glyph, for tests
// and the caves show command.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	line := make([]rune, g.W)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			line[x] = Glyph(g.Get(P(x, y)))
		}
		rows[y] = string(line)
	}
	return rows
}
