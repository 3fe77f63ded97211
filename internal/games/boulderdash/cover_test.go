package boulderdash

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
)

func TestCoverUncovers(t *testing.T) {
	c := NewCover(4, 3, 4, rand.New(rand.NewSource(3)))

	hidden := func() int {
		n := 0
		for y := range 3 {
			for x := range 4 {
				if c.Hidden(cave.P(x, y)) {
					n++
				}
			}
		}
		return n
	}

	if hidden() != 12 || c.Done() {
		t.Fatalf("new cover hides %d cells", hidden())
	}
	for _, want := range []int{9, 6, 3, 0} {
		c.Step()
		if c.Remaining() != want || hidden() != want {
			t.Errorf("remaining = %d hidden = %d, expected %d", c.Remaining(), hidden(), want)
		}
	}
	if !c.Done() {
		t.Error("cover should be done")
	}
	c.Step()
	if c.Remaining() != 0 {
		t.Error("Step after done should be a no-op")
	}
}

func TestCoverEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	none := NewCover(5, 5, 0, rng)
	if !none.Done() || none.Hidden(cave.P(2, 2)) {
		t.Error("zero reveal turns should give an uncovered cave")
	}

	slow := NewCover(2, 2, 10, rng)
	for range 3 {
		slow.Step()
	}
	if slow.Remaining() != 1 {
		t.Errorf("remaining = %d, expected one cell per turn", slow.Remaining())
	}
	if slow.Hidden(cave.P(-1, 0)) || slow.Hidden(cave.P(2, 0)) {
		t.Error("cells outside the cover are never hidden")
	}
}
