package cave

import (
	"fmt"
	"math/rand"
)

// Rules holds the tunable constants of the turn engine.
type Rules struct {
	PushChance       int // a push succeeds with probability 1/PushChance
	AmoebaMaxSize    int // colony size that turns every amoeba into boulders
	AmoebaSlowFactor int
	AmoebaFastFactor int
	BirthDelay       int // turns between uncovering and the entrance opening
}

// DefaultRules returns the classic rule constants.
func DefaultRules() Rules {
	return Rules{
		PushChance:       8,
		AmoebaMaxSize:    200,
		AmoebaSlowFactor: 127,
		AmoebaFastFactor: 15,
		BirthDelay:       12,
	}
}

// MagicWallState tracks the cave-wide magic wall.
type MagicWallState uint8

const (
	MagicDormant MagicWallState = iota
	MagicMilling
	MagicExpired
)

// String returns the state name.
func (s MagicWallState) String() string {
	switch s {
	case MagicDormant:
		return "dormant"
	case MagicMilling:
		return "milling"
	case MagicExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Params configures a World for one cave.
type Params struct {
	Rules          Rules
	Needed         int
	DiamondValue   int
	ExtraValue     int
	MagicWallTurns int
	Seed           int64 // gameplay randomness, independent of CaveRand
}

// PlayerState is Rockford's bookkeeping.
type PlayerState struct {
	Pos            Pos
	Facing         Dir
	Moving         bool
	LastMove       MoveResult
	BirthCountdown int
	Alive          bool
	Dead           bool
	Exited         bool
}

// World is one running cave: the grid plus every piece of state the turn
// rules read or write. It is not safe for concurrent use.
type World struct {
	Grid   *Grid
	Player PlayerState

	rules         Rules
	rng           *rand.Rand
	turns         int
	input         Input
	events        []Event
	scanning      bool
	cursor        int // index of the cell being scanned
	covered       bool
	fastAmoeba    bool
	collected     int
	needed        int
	value         int
	extraValue    int
	enough        bool
	magic         MagicWallState
	magicTurns    int
	magicLeft     int
	amoebaCount   int
	amoebaTooBig  bool
	amoebaStarved bool
}

// NewWorld wraps a decoded grid. The grid is used in place.
func NewWorld(g *Grid, p Params) *World {
	if p.Rules.PushChance < 1 {
		p.Rules.PushChance = 1
	}
	w := &World{
		Grid:       g,
		rules:      p.Rules,
		rng:        rand.New(rand.NewSource(p.Seed)),
		needed:     p.Needed,
		value:      p.DiamondValue,
		extraValue: p.ExtraValue,
		magicTurns: p.MagicWallTurns,
	}
	w.Player.Facing = DirRight
	w.Player.BirthCountdown = p.Rules.BirthDelay
	if pos, ok := g.Find(Rockford); ok {
		w.Player.Pos = pos
		w.Player.Alive = true
	} else if pos, ok := g.Find(PreRockford); ok {
		w.Player.Pos = pos
	}
	return w
}

// Load decodes def at the given level and wraps it in a World.
func Load(def *Definition, level int, rules Rules, magicWallTurns int, seed int64) *World {
	return NewWorld(Decode(def, level), Params{
		Rules:          rules,
		Needed:         def.Needed(level),
		DiamondValue:   int(def.DiamondValue),
		ExtraValue:     int(def.ExtraDiamondValue),
		MagicWallTurns: magicWallTurns,
		Seed:           seed,
	})
}

// Turns returns how many turns have run.
func (w *World) Turns() int { return w.turns }

// Collected returns the number of diamonds picked up.
func (w *World) Collected() int { return w.collected }

// Needed returns the diamond quota.
func (w *World) Needed() int { return w.needed }

// Enough reports whether the quota has been met.
func (w *World) Enough() bool { return w.enough }

// DiamondValue returns the score for the next diamond.
func (w *World) DiamondValue() int {
	if w.enough {
		return w.extraValue
	}
	return w.value
}

// MagicWall returns the magic wall state.
func (w *World) MagicWall() MagicWallState { return w.magic }

// AmoebaCount returns the colony size seen by the last pre-pass.
func (w *World) AmoebaCount() int { return w.amoebaCount }

// SetCovered holds the entrance countdown while the cave is still being
// uncovered.
func (w *World) SetCovered(covered bool) { w.covered = covered }

// SetFastAmoeba switches the amoeba to its fast growth factor.
func (w *World) SetFastAmoeba(fast bool) { w.fastAmoeba = fast }

// FastAmoeba reports whether the amoeba grows at its fast rate.
func (w *World) FastAmoeba() bool { return w.fastAmoeba }

// Turn runs one full pass over the grid with the given input and returns
// the events it produced, preceded by any raised since the last turn by
// KillPlayer or Explode. Input is held constant for the whole pass.
func (w *World) Turn(in Input) []Event {
	w.input = in
	w.Player.Moving = false
	w.Player.LastMove = MoveNone

	w.foldScanned()
	w.tickMagicWall()

	g := w.Grid
	w.scanning = true
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := P(x, y)
			o := g.Get(p)
			if o.Scanned {
				continue
			}
			w.cursor = g.index(p)
			w.dispatch(p, o)
		}
	}
	w.scanning = false

	w.turns++
	events := w.events
	w.events = nil
	return events
}

// foldScanned is the pre-pass run at the start of every turn. It clears
// every scan marker left by the previous pass and measures the amoeba
// colony as that pass left it.
func (w *World) foldScanned() {
	g := w.Grid
	count := 0
	growable := false
	for i := range g.Cells {
		g.Cells[i].Scanned = false
		if g.Cells[i].Kind != Amoeba {
			continue
		}
		count++
		if growable {
			continue
		}
		p := P(i%g.W, i/g.W)
		for d := DirUp; d <= DirLeft; d++ {
			k := g.Get(p.Step(d)).Kind
			if k == Space || k == Dirt {
				growable = true
				break
			}
		}
	}
	w.amoebaCount = count
	w.amoebaTooBig = count >= w.rules.AmoebaMaxSize
	w.amoebaStarved = count > 0 && !growable
	if count > 0 {
		w.sound(SoundAmoeba, Pos{})
	}
}

func (w *World) tickMagicWall() {
	if w.magic != MagicMilling {
		return
	}
	w.magicLeft--
	if w.magicLeft <= 0 {
		w.magic = MagicExpired
	}
}

func (w *World) dispatch(p Pos, o Object) {
	switch o.Kind {
	case Space, Dirt, BrickWall, MagicWall, SteelWall, FlashingOutbox:
	case PreOutbox:
		if w.enough {
			w.Grid.Set(p, Obj(FlashingOutbox))
		}
	case Boulder, Diamond:
		w.stationary(p, o)
	case BoulderFalling, DiamondFalling:
		w.falling(p, o)
	case ExplodeToSpace, ExplodeToDiamond:
		w.explosionStage(p, o)
	case Firefly, Butterfly:
		w.insect(p, o)
	case PreRockford:
		w.birth(p, o)
	case Rockford:
		w.player(p)
	case Amoeba:
		w.amoeba(p)
	default:
		panic(fmt.Sprintf("cave: no rule for %v at %v", o, p))
	}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) sound(s Sound, p Pos) {
	w.emit(Event{Type: EventSound, Sound: s, Pos: p})
}

// move relocates the object at from to to, leaving Space behind. The
// moved object is marked so the pass does not visit it again.
func (w *World) move(from, to Pos, o Object) {
	w.Grid.Set(from, Obj(Space))
	w.Grid.Set(to, o.Marked())
}
