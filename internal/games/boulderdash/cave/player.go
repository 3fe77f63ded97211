package cave

// Input is the joystick state sampled once per turn.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// Direction resolves the pressed directions to one. Horizontal input wins
// over vertical.
func (in Input) Direction() (Dir, bool) {
	switch {
	case in.Left && !in.Right:
		return DirLeft, true
	case in.Right && !in.Left:
		return DirRight, true
	case in.Up && !in.Down:
		return DirUp, true
	case in.Down && !in.Up:
		return DirDown, true
	}
	return 0, false
}

// Toward returns an input pressing only direction d.
func Toward(d Dir) Input {
	switch d {
	case DirUp:
		return Input{Up: true}
	case DirDown:
		return Input{Down: true}
	case DirLeft:
		return Input{Left: true}
	default:
		return Input{Right: true}
	}
}

// MoveResult is the outcome of Rockford's move attempt this turn.
type MoveResult uint8

const (
	MoveNone MoveResult = iota
	MoveBlocked
	MoveMoved
	MovePushed
	MoveSnapped
)

// String returns the result name.
func (r MoveResult) String() string {
	switch r {
	case MoveNone:
		return "none"
	case MoveBlocked:
		return "blocked"
	case MoveMoved:
		return "moved"
	case MovePushed:
		return "pushed"
	case MoveSnapped:
		return "snapped"
	default:
		return "unknown"
	}
}

func (w *World) player(p Pos) {
	if w.Player.Exited {
		return
	}
	w.Player.Pos = p
	w.Player.Alive = true

	d, ok := w.input.Direction()
	if !ok {
		return
	}
	if d.Horizontal() {
		w.Player.Facing = d
	}
	res := w.tryMove(p, d)
	w.Player.LastMove = res
	w.Player.Moving = res == MoveMoved || res == MovePushed
}

func (w *World) tryMove(p Pos, d Dir) MoveResult {
	g := w.Grid
	dest := p.Step(d)
	target := g.Get(dest)

	pushed := false
	switch target.Kind {
	case Space:
		w.sound(SoundMoveSpace, dest)
	case Dirt:
		w.sound(SoundMoveDirt, dest)
	case Diamond:
		w.pickup(dest)
	case FlashingOutbox:
		w.move(p, dest, Obj(Rockford))
		w.Player.Pos = dest
		w.Player.Exited = true
		w.sound(SoundExit, dest)
		w.emit(Event{Type: EventCaveExited, Pos: dest})
		return MoveMoved
	case Boulder:
		far := dest.Step(d)
		if !d.Horizontal() || g.Get(far).Kind != Space {
			return MoveBlocked
		}
		if w.rng.Intn(w.rules.PushChance) != 0 {
			return MoveBlocked
		}
		g.Set(far, Obj(Boulder).Marked())
		w.sound(SoundPush, far)
		pushed = true
	default:
		return MoveBlocked
	}

	if w.input.Fire {
		g.Set(dest, Obj(Space))
		return MoveSnapped
	}
	w.move(p, dest, Obj(Rockford))
	w.Player.Pos = dest
	if pushed {
		return MovePushed
	}
	return MoveMoved
}

func (w *World) pickup(p Pos) {
	value := w.DiamondValue()
	w.collected++
	w.sound(SoundPickup, p)
	w.emit(Event{Type: EventDiamondPickedUp, Pos: p, Amount: 1})
	w.emit(Event{Type: EventScoreDelta, Pos: p, Amount: value})
	if !w.enough && w.collected >= w.needed {
		w.enough = true
		w.emit(Event{Type: EventEnoughDiamonds, Pos: p})
	}
}
