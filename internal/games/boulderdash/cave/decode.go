package cave

import "fmt"

// Decode materialises the starting grid of def for the given difficulty
// level (0-4). The steps run in a fixed order:
//
//  1. fill the whole grid with steel wall
//  2. seed the cave generator with (0, seed[level])
//  3. random-fill rows 1..H-2, one roll per cell, last matching pair wins
//  4. replay the placement stream
//  5. redraw the steel border
//
// An instruction that reaches outside the grid panics; compiled-in caves
// never do that.
func Decode(def *Definition, level int) *Grid {
	g := NewGrid(Width, Height, Obj(SteelWall))

	rng := NewCaveRand(0, def.Seed(level))
	for y := 1; y < Height-1; y++ {
		for x := 0; x < Width; x++ {
			roll := rng.Next()
			code := byte(0x01)
			for _, r := range def.Random {
				if roll < r.Threshold {
					code = r.Code
				}
			}
			g.Set(P(x, y), FromCode(code))
		}
	}

	for _, in := range def.Program {
		draw(g, in)
	}

	g.Rect(P(0, 0), Width, Height, Obj(SteelWall))
	return g
}

func draw(g *Grid, in Instruction) {
	o := FromCode(in.Code)
	at := P(in.X, in.Y-yOffset)
	put := func(p Pos, o Object) {
		if !g.InBounds(p) {
			panic(fmt.Sprintf("cave: %s operand %v outside grid", in.Op, p))
		}
		g.Set(p, o)
	}

	switch in.Op {
	case OpPlot:
		put(at, o)
	case OpLine:
		d := lineDirs[in.Dir]
		for i := 0; i < in.Length; i++ {
			put(at.Add(i*d.X, i*d.Y), o)
		}
	case OpFilledRect:
		if in.Length > 0 && in.Height > 0 {
			g.Fill(at, in.Length, in.Height, FromCode(in.Fill))
			g.Rect(at, in.Length, in.Height, o)
		}
	case OpOpenRect:
		if in.Length > 0 && in.Height > 0 {
			g.Rect(at, in.Length, in.Height, o)
		}
	default:
		panic(fmt.Sprintf("cave: unknown opcode %d", in.Op))
	}
}
