package cave

import "fmt"

// glyphs maps each kind to a single ASCII character. Used by Rows, by
// ParseGrid in tests and by the caves show command.
var glyphs = [kindCount]rune{
	Space:            ' ',
	Dirt:             '.',
	BrickWall:        '=',
	MagicWall:        'M',
	PreOutbox:        'P',
	FlashingOutbox:   'X',
	SteelWall:        '#',
	Firefly:          'F',
	Boulder:          'O',
	BoulderFalling:   'o',
	Diamond:          '*',
	DiamondFalling:   '+',
	ExplodeToSpace:   '%',
	ExplodeToDiamond: '&',
	PreRockford:      'r',
	Butterfly:        'B',
	Rockford:         'R',
	Amoeba:           'a',
}

// Glyph returns the ASCII character for o.
func Glyph(o Object) rune {
	if o.Kind >= kindCount {
		return '?'
	}
	return glyphs[o.Kind]
}

// ParseGrid builds a grid from rows of glyphs. All rows must have the same
// length. Fireflies face left, butterflies face down and pre-Rockford
// starts at stage 1, matching the plain legacy codes.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) < 3 {
		return nil, fmt.Errorf("cave: need at least 3 rows, got %d", len(rows))
	}
	w := len([]rune(rows[0]))
	g := &Grid{W: w, H: len(rows), Cells: make([]Object, w*len(rows))}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("cave: row %d has width %d, want %d", y, len(runes), w)
		}
		for x, r := range runes {
			o, ok := fromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("cave: unknown glyph %q at (%d,%d)", r, x, y)
			}
			g.Set(P(x, y), o)
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid for literal test fixtures.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func fromGlyph(r rune) (Object, bool) {
	for k, gr := range glyphs {
		if gr != r {
			continue
		}
		o := Obj(Kind(k))
		switch o.Kind {
		case Firefly:
			o.Dir = DirLeft
		case Butterfly:
			o.Dir = DirDown
		case PreRockford:
			o.Stage = 1
		}
		return o, true
	}
	return Object{}, false
}
