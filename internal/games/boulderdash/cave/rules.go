package cave

// falls maps a resting boulder or diamond to its falling form.
func falls(k Kind) Kind {
	switch k {
	case Boulder:
		return BoulderFalling
	case Diamond:
		return DiamondFalling
	}
	return k
}

// rests is the inverse of falls.
func rests(k Kind) Kind {
	switch k {
	case BoulderFalling:
		return Boulder
	case DiamondFalling:
		return Diamond
	}
	return k
}

func (w *World) stationary(p Pos, o Object) {
	g := w.Grid
	below := g.At(p, Down)
	if below.Kind == Space {
		w.move(p, g.Neighbor(p, Down), Obj(falls(o.Kind)))
		w.sound(SoundFall, p)
		return
	}
	if below.IsRounded() {
		w.roll(p, Obj(falls(o.Kind)))
	}
}

// roll moves o one cell sideways, preferring left, when both the side
// cell and the cell below it are empty.
func (w *World) roll(p Pos, o Object) bool {
	g := w.Grid
	switch {
	case g.At(p, Left).Kind == Space && g.At(p, DownLeft).Kind == Space:
		w.move(p, g.Neighbor(p, Left), o)
	case g.At(p, Right).Kind == Space && g.At(p, DownRight).Kind == Space:
		w.move(p, g.Neighbor(p, Right), o)
	default:
		return false
	}
	return true
}

func (w *World) falling(p Pos, o Object) {
	g := w.Grid
	below := g.At(p, Down)
	switch {
	case below.Kind == Space:
		w.move(p, g.Neighbor(p, Down), o)
		return
	case below.Kind == MagicWall && w.magic != MagicExpired:
		w.magicWall(p, o)
		return
	}

	if o.Kind == BoulderFalling {
		w.sound(SoundBoulderImpact, p)
	} else {
		w.sound(SoundDiamondImpact, p)
	}
	if below.IsRounded() && w.roll(p, o) {
		return
	}
	if below.IsImpactExplosive() {
		w.Explode(g.Neighbor(p, Down), below.Kind == Butterfly)
		return
	}
	g.Set(p, Obj(rests(o.Kind)))
}

// magicWall passes a falling object through the wall below it. The first
// object to hit a dormant wall starts it milling.
func (w *World) magicWall(p Pos, o Object) {
	g := w.Grid
	if w.magic == MagicDormant {
		w.magic = MagicMilling
		w.magicLeft = w.magicTurns
	}
	g.Set(p, Obj(Space))
	out := g.Neighbor(p, Down2)
	if g.Get(out).Kind == Space {
		next := DiamondFalling
		if o.Kind == DiamondFalling {
			next = BoulderFalling
		}
		g.Set(out, Obj(next).Marked())
	}
	w.sound(SoundMagicWall, p)
}

var fan = [...]Offset{UpLeft, Up, UpRight, Left, Right, DownLeft, Down, DownRight}

// Explode sets off a 3×3 explosion centred on c. Cells the running pass has
// already reached start at stage 1, cells ahead of it at stage 0 so the
// pass brings them level. Between turns every cell starts at stage 0.
// Steel wall is left untouched.
func (w *World) Explode(c Pos, toDiamond bool) {
	g := w.Grid
	w.blast(c, Explosion(toDiamond, w.blastStage(c)))
	for _, off := range fan {
		n := g.Neighbor(c, off)
		w.blast(n, Explosion(toDiamond, w.blastStage(n)))
	}
	w.sound(SoundExplosion, c)
}

// blastStage is the starting stage of an explosion cell at p.
func (w *World) blastStage(p Pos) uint8 {
	if w.scanning && w.Grid.index(p) <= w.cursor {
		return 1
	}
	return 0
}

func (w *World) blast(p Pos, o Object) {
	g := w.Grid
	switch g.Get(p).Kind {
	case SteelWall:
		return
	case Rockford, PreRockford:
		w.killed(p)
	}
	g.Set(p, o)
}

func (w *World) killed(p Pos) {
	if w.Player.Dead || w.Player.Exited {
		return
	}
	w.Player.Alive = false
	w.Player.Dead = true
	w.emit(Event{Type: EventPlayerDied, Pos: p})
}

// KillPlayer blows Rockford up where he stands. It is a no-op when he is
// not on the grid. The resulting events are returned by the next Turn.
func (w *World) KillPlayer() {
	if w.Player.Dead || w.Player.Exited {
		return
	}
	k := w.Grid.Get(w.Player.Pos).Kind
	if k != Rockford && k != PreRockford {
		return
	}
	w.Explode(w.Player.Pos, false)
}

func (w *World) explosionStage(p Pos, o Object) {
	if o.Stage < 4 {
		o.Stage++
		w.Grid.Set(p, o)
		return
	}
	if o.Kind == ExplodeToDiamond {
		w.Grid.Set(p, Obj(Diamond))
	} else {
		w.Grid.Set(p, Obj(Space))
	}
}

// insect moves a firefly or butterfly. Fireflies follow the wall on their
// left, butterflies the wall on their right.
func (w *World) insect(p Pos, o Object) {
	g := w.Grid
	for d := DirUp; d <= DirLeft; d++ {
		k := g.Get(p.Step(d)).Kind
		if k == Rockford || k == Amoeba {
			w.Explode(p, o.Kind == Butterfly)
			return
		}
	}

	turn, other := o.Dir.TurnLeft(), o.Dir.TurnRight()
	if o.Kind == Butterfly {
		turn, other = other, turn
	}
	if next := p.Step(turn); g.Get(next).Kind == Space {
		w.move(p, next, Insect(o.Kind, turn))
		return
	}
	if next := p.Step(o.Dir); g.Get(next).Kind == Space {
		w.move(p, next, o)
		return
	}
	g.Set(p, Insect(o.Kind, other))
}

// birth runs the entrance: a countdown that only starts once the cave is
// uncovered, then four stages, then Rockford himself.
func (w *World) birth(p Pos, o Object) {
	g := w.Grid
	if o.Stage <= 1 && w.Player.BirthCountdown > 0 {
		if !w.covered {
			w.Player.BirthCountdown--
		}
		return
	}
	if o.Stage < 4 {
		if o.Stage <= 1 {
			w.sound(SoundCrack, p)
		}
		o.Stage++
		g.Set(p, o)
		return
	}
	g.Set(p, Obj(Rockford).Marked())
	w.Player.Pos = p
	w.Player.Alive = true
}

func (w *World) amoeba(p Pos) {
	g := w.Grid
	switch {
	case w.amoebaTooBig:
		g.Set(p, Obj(Boulder))
		return
	case w.amoebaStarved:
		g.Set(p, Obj(Diamond))
		return
	}
	factor := w.rules.AmoebaSlowFactor
	if w.fastAmoeba {
		factor = w.rules.AmoebaFastFactor
	}
	if factor < 1 || w.rng.Intn(factor) >= 4 {
		return
	}
	next := p.Step(Dir(w.rng.Intn(4)))
	if k := g.Get(next).Kind; k == Space || k == Dirt {
		g.Set(next, Obj(Amoeba).Marked())
	}
}
