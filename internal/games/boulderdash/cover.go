package boulderdash

import (
	"math/rand"

	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
)

// Cover hides the cave while it starts and uncovers it in random order
// over a fixed number of turns. It is cosmetic: the world runs underneath.
type Cover struct {
	w, h    int
	hidden  []bool
	order   []int
	next    int
	perTurn int
}

// NewCover covers a w×h cave that is fully shown after turns calls to
// Step. A non-positive turn count gives an already uncovered cave.
func NewCover(w, h, turns int, rng *rand.Rand) *Cover {
	n := w * h
	c := &Cover{
		w:      w,
		h:      h,
		hidden: make([]bool, n),
	}
	if turns <= 0 {
		return c
	}
	for i := range c.hidden {
		c.hidden[i] = true
	}
	c.order = rng.Perm(n)
	c.perTurn = (n + turns - 1) / turns
	return c
}

// Step uncovers the next batch of cells.
func (c *Cover) Step() {
	end := min(c.next+c.perTurn, len(c.order))
	for _, i := range c.order[c.next:end] {
		c.hidden[i] = false
	}
	c.next = end
}

// Done reports whether every cell is visible.
func (c *Cover) Done() bool {
	return c.next >= len(c.order)
}

// Hidden reports whether the cell at p is still covered.
func (c *Cover) Hidden(p cave.Pos) bool {
	if p.X < 0 || p.X >= c.w || p.Y < 0 || p.Y >= c.h {
		return false
	}
	return c.hidden[p.Y*c.w+p.X]
}

// Remaining returns how many cells are still covered.
func (c *Cover) Remaining() int {
	return len(c.order) - c.next
}
