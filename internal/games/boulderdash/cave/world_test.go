package cave

import (
	"math/rand"
	"testing"
)

func testWorld(p Params, rows ...string) *World {
	if p.Rules == (Rules{}) {
		p.Rules = DefaultRules()
		p.Rules.BirthDelay = 0
	}
	return NewWorld(MustParseGrid(rows...), p)
}

func fallables(g *Grid) int {
	return g.Count(Boulder, BoulderFalling, Diamond, DiamondFalling)
}

func expectAt(t *testing.T, g *Grid, p Pos, k Kind) {
	t.Helper()
	if got := g.Get(p).Kind; got != k {
		t.Errorf("at %v: got %s, want %s\n%s", p, got, k, dump(g))
	}
}

// explosionStages counts explosion cells per stage.
func explosionStages(g *Grid) map[uint8]int {
	stages := make(map[uint8]int)
	for _, o := range g.Cells {
		if o.IsExplosion() {
			stages[o.Stage]++
		}
	}
	return stages
}

func dump(g *Grid) string {
	s := ""
	for _, r := range g.Rows() {
		s += r + "\n"
	}
	return s
}

func TestBoulderFallsThreeCells(t *testing.T) {
	w := testWorld(Params{},
		"#######",
		"#     #",
		"# O   #",
		"#     #",
		"#     #",
		"#     #",
		"#######",
	)

	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 3), BoulderFalling)
	expectAt(t, w.Grid, P(2, 2), Space)

	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 4), BoulderFalling)

	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 5), BoulderFalling)
	if n := w.Grid.Count(Boulder, BoulderFalling); n != 1 {
		t.Errorf("boulder count: got %d, want 1", n)
	}

	// Steel below: comes to rest.
	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 5), Boulder)
}

func TestBoulderRollsOffRoundedObject(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"#   #",
		"# O #",
		"# * #",
		"#####",
	)

	events := w.Turn(Input{})
	expectAt(t, w.Grid, P(1, 2), BoulderFalling)
	expectAt(t, w.Grid, P(2, 3), Diamond)
	if len(Filter(events, EventSound)) != 0 {
		t.Errorf("rolling from rest should be silent, got %v", events)
	}

	w.Turn(Input{})
	expectAt(t, w.Grid, P(1, 3), BoulderFalling)

	w.Turn(Input{})
	expectAt(t, w.Grid, P(1, 3), Boulder)
}

func TestBoulderRollsRightWhenLeftBlocked(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"#   #",
		"#.O #",
		"# = #",
		"#####",
	)

	w.Turn(Input{})
	// Moved right and marked; the same pass must not move it again.
	expectAt(t, w.Grid, P(3, 2), BoulderFalling)
	expectAt(t, w.Grid, P(2, 2), Space)
}

func TestNoRollOffFallingObject(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"#   #",
		"# O #",
		"# o #",
		"# . #",
		"#####",
	)

	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 2), Boulder)
	expectAt(t, w.Grid, P(2, 3), Boulder)
}

func TestExplosionShape(t *testing.T) {
	w := testWorld(Params{},
		"#######",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#######",
	)
	c := P(3, 3)
	w.Explode(c, false)

	// Between turns no cell has been reached yet.
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			if got := w.Grid.Get(c.Add(x, y)); got != Explosion(false, 0) {
				t.Errorf("at %v: got %v, want stage 0", c.Add(x, y), got)
			}
		}
	}
	if n := w.Grid.Count(ExplodeToSpace); n != 9 {
		t.Errorf("explosion cells: got %d, want 9", n)
	}

	w.Turn(Input{})
	if got := explosionStages(w.Grid); len(got) != 1 || got[1] != 9 {
		t.Errorf("after one pass: got stages %v, want all 9 at stage 1", got)
	}
}

func TestExplosionSparesSteel(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"# ==#",
		"# ==#",
		"#   #",
		"#####",
	)
	w.Explode(P(1, 1), true)

	if !w.Grid.BorderIntact() {
		t.Fatalf("border damaged:\n%s", dump(w.Grid))
	}
	if n := w.Grid.Count(ExplodeToDiamond); n != 4 {
		t.Errorf("explosion cells: got %d, want 4", n)
	}
	if got := w.Grid.Get(P(1, 1)); got != Explosion(true, 0) {
		t.Errorf("centre: got %v", got)
	}
	if got := w.Grid.Get(P(2, 2)); got != Explosion(true, 0) {
		t.Errorf("down-right: got %v", got)
	}
	// Brick walls outside the fan survive.
	expectAt(t, w.Grid, P(3, 1), BrickWall)
}

func TestButterflyExplosionLeavesDiamonds(t *testing.T) {
	w := testWorld(Params{},
		"#######",
		"#     #",
		"#  BR #",
		"#     #",
		"#######",
	)

	events := w.Turn(Input{})
	if len(Filter(events, EventPlayerDied)) != 1 {
		t.Fatalf("expected one death event, got %v", events)
	}
	if !w.Player.Dead || w.Player.Alive {
		t.Error("player should be dead")
	}
	// The scan brings the stage-0 cells up to stage 1 in the same pass.
	for _, o := range w.Grid.Cells {
		if o.Kind == ExplodeToDiamond && o.Stage != 1 {
			t.Errorf("after first pass: got stage %d", o.Stage)
		}
	}

	for i := 0; i < 4; i++ {
		w.Turn(Input{})
	}
	if n := w.Grid.Count(Diamond); n != 9 {
		t.Errorf("diamonds: got %d, want 9\n%s", n, dump(w.Grid))
	}
	if n := w.Grid.Count(ExplodeToDiamond); n != 0 {
		t.Errorf("explosion cells left: %d", n)
	}
}

func TestFallingBoulderKillsRockford(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"#   #",
		"# o #",
		"# R #",
		"#   #",
		"#   #",
		"#####",
	)

	events := w.Turn(Input{})
	if len(Filter(events, EventPlayerDied)) != 1 {
		t.Fatalf("expected death, got %v", events)
	}
	if fallables(w.Grid) != 0 {
		t.Errorf("boulder should be consumed by the blast")
	}
	expectAt(t, w.Grid, P(2, 3), ExplodeToSpace)
}

func TestFallingBoulderOnFireflyExplodes(t *testing.T) {
	w := testWorld(Params{},
		"#######",
		"#     #",
		"#  o  #",
		"#  F  #",
		"#=====#",
		"#######",
	)
	// The firefly is boxed in so it cannot move before the boulder lands.
	w.Grid.Set(P(2, 3), Obj(BrickWall))
	w.Grid.Set(P(4, 3), Obj(BrickWall))

	w.Turn(Input{})
	if n := w.Grid.Count(Firefly); n != 0 {
		t.Errorf("firefly survived:\n%s", dump(w.Grid))
	}
	if n := w.Grid.Count(ExplodeToSpace); n != 9 {
		t.Errorf("explosion cells: got %d, want 9", n)
	}
}

func TestExplosionsClearTogether(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		setup func(w *World)
	}{
		{
			name: "boulder lands on firefly",
			rows: []string{
				"#######",
				"#     #",
				"#  o  #",
				"# =F= #",
				"#=====#",
				"#######",
			},
		},
		{
			name: "firefly meets rockford",
			rows: []string{
				"#######",
				"#     #",
				"#  FR #",
				"#     #",
				"#######",
			},
		},
		{
			name: "rockford killed between turns",
			rows: []string{
				"#####",
				"#   #",
				"# R #",
				"#   #",
				"#####",
			},
			setup: func(w *World) { w.KillPlayer() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(Params{}, tt.rows...)
			if tt.setup != nil {
				tt.setup(w)
			}

			cleared := 0
			for turn := 1; turn <= 10; turn++ {
				w.Turn(Input{})
				stages := explosionStages(w.Grid)
				if len(stages) > 1 {
					t.Fatalf("turn %d: explosion split over stages %v\n%s", turn, stages, dump(w.Grid))
				}
				if len(stages) == 0 {
					cleared = turn
					break
				}
			}
			// One turn to set off and reach stage 1, four more to clear.
			if cleared != 5 {
				t.Errorf("explosion cleared on turn %d, want 5", cleared)
			}
		})
	}
}

func TestInsectMovement(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		from    Pos
		dir     Dir
		to      Pos
		wantDir Dir
	}{
		{
			name: "firefly turns left",
			rows: []string{"#######", "#     #", "#  F  #", "#     #", "#######"},
			from: P(3, 2), dir: DirLeft, to: P(3, 3), wantDir: DirDown,
		},
		{
			name: "butterfly turns right",
			rows: []string{"#######", "#     #", "#  B  #", "#     #", "#######"},
			from: P(3, 2), dir: DirDown, to: P(2, 2), wantDir: DirLeft,
		},
		{
			name: "firefly goes straight when turn blocked",
			rows: []string{"#######", "#     #", "#  F  #", "#==.==#", "#######"},
			from: P(3, 2), dir: DirLeft, to: P(2, 2), wantDir: DirLeft,
		},
		{
			name: "firefly boxed in turns right in place",
			rows: []string{"#####", "#===#", "#=F=#", "#===#", "#####"},
			from: P(2, 2), dir: DirLeft, to: P(2, 2), wantDir: DirUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(Params{}, tt.rows...)
			o := w.Grid.Get(tt.from)
			o.Dir = tt.dir
			w.Grid.Set(tt.from, o)

			w.Turn(Input{})
			got := w.Grid.Get(tt.to)
			if got.Kind != o.Kind || got.Dir != tt.wantDir {
				t.Errorf("at %v: got %v, want %s facing %s\n%s", tt.to, got, o.Kind, tt.wantDir, dump(w.Grid))
			}
			if tt.to != tt.from {
				expectAt(t, w.Grid, tt.from, Space)
			}
		})
	}
}

func TestInsectExplodesNextToAmoeba(t *testing.T) {
	w := testWorld(Params{},
		"#######",
		"#.....#",
		"#..Fa.#",
		"#.....#",
		"#######",
	)
	w.Turn(Input{})
	if n := w.Grid.Count(Firefly, Amoeba); n != 0 {
		t.Errorf("firefly and amoeba should be gone:\n%s", dump(w.Grid))
	}
}

func TestPickupAndEnoughDiamonds(t *testing.T) {
	w := testWorld(Params{Needed: 2, DiamondValue: 10, ExtraValue: 15},
		"#########",
		"#R***P  #",
		"#########",
	)

	enough := 0
	for i, want := range []int{10, 10, 15} {
		events := w.Turn(Toward(DirRight))
		if got := Sum(events, EventDiamondPickedUp); got != 1 {
			t.Errorf("turn %d: picked up %d, want 1", i, got)
		}
		if got := Sum(events, EventScoreDelta); got != want {
			t.Errorf("turn %d: score delta %d, want %d", i, got, want)
		}
		enough += len(Filter(events, EventEnoughDiamonds))
		if w.Collected() != i+1 {
			t.Errorf("turn %d: collected %d", i, w.Collected())
		}
	}
	if enough != 1 {
		t.Errorf("enough-diamonds fired %d times, want 1", enough)
	}
	if !w.Enough() {
		t.Error("quota should be met")
	}
	expectAt(t, w.Grid, P(5, 1), FlashingOutbox)

	events := w.Turn(Toward(DirRight))
	if len(Filter(events, EventCaveExited)) != 1 || !w.Player.Exited {
		t.Errorf("expected cave exit, got %v", events)
	}
}

func TestPreOutboxWaitsForQuota(t *testing.T) {
	w := testWorld(Params{Needed: 5},
		"######",
		"#R P #",
		"######",
	)
	for i := 0; i < 3; i++ {
		w.Turn(Input{})
	}
	expectAt(t, w.Grid, P(3, 1), PreOutbox)
}

func TestPlayerMoves(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		input  Input
		want   MoveResult
		player Pos
		sound  Sound
	}{
		{"into space", "#R   #", Toward(DirRight), MoveMoved, P(2, 1), SoundMoveSpace},
		{"through dirt", "#R.  #", Toward(DirRight), MoveMoved, P(2, 1), SoundMoveDirt},
		{"into wall", "#R=  #", Toward(DirRight), MoveBlocked, P(1, 1), SoundNone},
		{"left", "# R  #", Toward(DirLeft), MoveMoved, P(1, 1), SoundMoveSpace},
		{"horizontal wins", "#R   #", Input{Right: true, Down: true}, MoveMoved, P(2, 1), SoundMoveSpace},
		{"push", "#RO  #", Toward(DirRight), MovePushed, P(2, 1), SoundPush},
		{"push blocked", "#RO= #", Toward(DirRight), MoveBlocked, P(1, 1), SoundNone},
		{"snap dirt", "#R.  #", Input{Right: true, Fire: true}, MoveSnapped, P(1, 1), SoundMoveDirt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			rules.PushChance = 1
			rules.BirthDelay = 0
			w := testWorld(Params{Rules: rules}, "######", tt.row, "######")

			events := w.Turn(tt.input)
			if w.Player.LastMove != tt.want {
				t.Errorf("result: got %s, want %s", w.Player.LastMove, tt.want)
			}
			if w.Player.Pos != tt.player {
				t.Errorf("player at %v, want %v", w.Player.Pos, tt.player)
			}
			expectAt(t, w.Grid, tt.player, Rockford)
			if tt.sound != SoundNone {
				found := false
				for _, e := range Filter(events, EventSound) {
					found = found || e.Sound == tt.sound
				}
				if !found {
					t.Errorf("missing %s sound in %v", tt.sound, events)
				}
			}
		})
	}
}

func TestPushMovesBoulder(t *testing.T) {
	rules := DefaultRules()
	rules.PushChance = 1
	w := testWorld(Params{Rules: rules},
		"#######",
		"# RO  #",
		"#######",
	)
	w.Turn(Toward(DirRight))
	expectAt(t, w.Grid, P(3, 1), Rockford)
	expectAt(t, w.Grid, P(4, 1), Boulder)
	expectAt(t, w.Grid, P(2, 1), Space)
}

func TestPushIsProbabilistic(t *testing.T) {
	rules := DefaultRules()
	rules.PushChance = 8
	w := testWorld(Params{Rules: rules, Seed: 7},
		"##########",
		"#RO      #",
		"##########",
	)
	for i := 0; i < 200 && w.Grid.Get(P(8, 1)).Kind != Boulder; i++ {
		w.Turn(Toward(DirRight))
	}
	expectAt(t, w.Grid, P(8, 1), Boulder)
	if w.Turns() <= 6 {
		t.Errorf("six pushes at 1/8 took only %d turns", w.Turns())
	}
}

func TestNoVerticalPush(t *testing.T) {
	rules := DefaultRules()
	rules.PushChance = 1
	w := testWorld(Params{Rules: rules},
		"#####",
		"# R #",
		"# O #",
		"#   #",
		"#####",
	)
	w.Turn(Toward(DirDown))
	if w.Player.LastMove != MoveBlocked {
		t.Errorf("got %s, want blocked", w.Player.LastMove)
	}
	expectAt(t, w.Grid, P(2, 1), Rockford)
}

func TestSnapDiamond(t *testing.T) {
	w := testWorld(Params{Needed: 1, DiamondValue: 5},
		"#####",
		"#R* #",
		"#####",
	)
	events := w.Turn(Input{Right: true, Fire: true})
	if w.Collected() != 1 || Sum(events, EventScoreDelta) != 5 {
		t.Errorf("collected %d, events %v", w.Collected(), events)
	}
	expectAt(t, w.Grid, P(1, 1), Rockford)
	expectAt(t, w.Grid, P(2, 1), Space)
}

func TestSnapPush(t *testing.T) {
	rules := DefaultRules()
	rules.PushChance = 1
	w := testWorld(Params{Rules: rules},
		"#######",
		"# RO  #",
		"#######",
	)
	w.Turn(Input{Right: true, Fire: true})
	if w.Player.LastMove != MoveSnapped {
		t.Errorf("got %s, want snapped", w.Player.LastMove)
	}
	expectAt(t, w.Grid, P(2, 1), Rockford)
	expectAt(t, w.Grid, P(3, 1), Space)
	expectAt(t, w.Grid, P(4, 1), Boulder)
	if w.Player.Pos != P(2, 1) {
		t.Errorf("player at %v, want %v", w.Player.Pos, P(2, 1))
	}
}

func TestRockfordMovesOncePerPass(t *testing.T) {
	w := testWorld(Params{},
		"#######",
		"#R    #",
		"#     #",
		"#######",
	)
	w.Turn(Toward(DirRight))
	expectAt(t, w.Grid, P(2, 1), Rockford)
	w.Turn(Toward(DirDown))
	expectAt(t, w.Grid, P(2, 2), Rockford)
	if n := w.Grid.Count(Rockford); n != 1 {
		t.Errorf("rockford count: %d", n)
	}
}

func TestMagicWallTransmutes(t *testing.T) {
	w := testWorld(Params{MagicWallTurns: 100},
		"#######",
		"#     #",
		"#  o  #",
		"#==M==#",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#######",
	)

	if w.MagicWall() != MagicDormant {
		t.Fatalf("initial state: %s", w.MagicWall())
	}
	w.Turn(Input{})
	if w.MagicWall() != MagicMilling {
		t.Errorf("after first boulder: %s, want milling", w.MagicWall())
	}
	expectAt(t, w.Grid, P(3, 2), Space)
	expectAt(t, w.Grid, P(3, 3), MagicWall)
	expectAt(t, w.Grid, P(3, 4), DiamondFalling)
	if w.Grid.Count(Boulder, BoulderFalling) != 0 || w.Grid.Count(DiamondFalling) != 1 {
		t.Errorf("boulder should become exactly one diamond:\n%s", dump(w.Grid))
	}

	// Let the diamond fall clear, then send a second boulder through.
	w.Turn(Input{})
	w.Turn(Input{})
	w.Grid.Set(P(3, 2), Obj(BoulderFalling))
	w.Turn(Input{})
	expectAt(t, w.Grid, P(3, 4), DiamondFalling)
	if n := w.Grid.Count(Diamond, DiamondFalling); n != 2 {
		t.Errorf("diamonds: got %d, want 2", n)
	}
}

func TestMagicWallDiamondBecomesBoulder(t *testing.T) {
	w := testWorld(Params{MagicWallTurns: 10},
		"#####",
		"# + #",
		"#=M=#",
		"#   #",
		"#####",
	)
	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 3), BoulderFalling)
}

func TestMagicWallConsumesWhenOutletBlocked(t *testing.T) {
	w := testWorld(Params{MagicWallTurns: 10},
		"#####",
		"# o #",
		"#=M=#",
		"# . #",
		"#####",
	)
	before := fallables(w.Grid)
	w.Turn(Input{})
	if got := fallables(w.Grid); got != before-1 {
		t.Errorf("fallables: got %d, want %d", got, before-1)
	}
	if w.MagicWall() != MagicMilling {
		t.Errorf("state: %s", w.MagicWall())
	}
}

func TestMagicWallExpires(t *testing.T) {
	w := testWorld(Params{MagicWallTurns: 1},
		"#####",
		"# o #",
		"#=M=#",
		"#   #",
		"#   #",
		"#####",
	)
	w.Turn(Input{})
	w.Turn(Input{})
	if w.MagicWall() != MagicExpired {
		t.Fatalf("state: %s, want expired", w.MagicWall())
	}
	w.Grid.Set(P(2, 1), Obj(BoulderFalling))
	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 1), Boulder)
}

func TestAmoebaSuffocates(t *testing.T) {
	w := testWorld(Params{},
		"###",
		"#a#",
		"###",
	)
	w.Turn(Input{})
	expectAt(t, w.Grid, P(1, 1), Diamond)
}

func TestAmoebaWithRoomDoesNotSuffocate(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"#a..#",
		"#####",
	)
	w.Turn(Input{})
	if w.Grid.Count(Diamond) != 0 || w.Grid.Count(Amoeba) == 0 {
		t.Errorf("amoeba should still be alive:\n%s", dump(w.Grid))
	}
	// The pre-pass measured the colony before it could grow.
	if w.AmoebaCount() != 1 {
		t.Errorf("AmoebaCount = %d, want 1", w.AmoebaCount())
	}
}

func TestAmoebaTooBigBecomesBoulders(t *testing.T) {
	rules := DefaultRules()
	rules.AmoebaMaxSize = 3
	w := testWorld(Params{Rules: rules},
		"#######",
		"#aaa..#",
		"#######",
	)
	w.Turn(Input{})
	if n := w.Grid.Count(Boulder); n != 3 {
		t.Errorf("boulders: got %d, want 3\n%s", n, dump(w.Grid))
	}
}

func TestAmoebaGrowsFaster(t *testing.T) {
	grow := func(fast bool) int {
		total := 0
		for seed := int64(1); seed <= 10; seed++ {
			rules := DefaultRules()
			rules.AmoebaMaxSize = 10000
			g := NewBordered(31, 15, Obj(Dirt))
			g.Set(P(15, 7), Obj(Amoeba))
			w := NewWorld(g, Params{Rules: rules, Seed: seed})
			w.SetFastAmoeba(fast)
			for i := 0; i < 15; i++ {
				w.Turn(Input{})
			}
			total += g.Count(Amoeba)
		}
		return total
	}
	slow, fast := grow(false), grow(true)
	if fast <= slow {
		t.Errorf("fast growth %d should beat slow growth %d", fast, slow)
	}
}

func TestBirthSequence(t *testing.T) {
	rules := DefaultRules()
	rules.BirthDelay = 2
	w := testWorld(Params{Rules: rules},
		"#####",
		"# r #",
		"#####",
	)
	w.SetCovered(true)
	w.Turn(Input{})
	if w.Player.BirthCountdown != 2 {
		t.Errorf("countdown ran while covered: %d", w.Player.BirthCountdown)
	}
	w.SetCovered(false)

	w.Turn(Input{})
	w.Turn(Input{})
	if w.Player.BirthCountdown != 0 {
		t.Fatalf("countdown: %d", w.Player.BirthCountdown)
	}

	events := w.Turn(Input{})
	if len(Filter(events, EventSound)) != 1 || events[0].Sound != SoundCrack {
		t.Errorf("expected crack, got %v", events)
	}
	for _, stage := range []uint8{3, 4} {
		w.Turn(Input{})
		if got := w.Grid.Get(P(2, 1)); got.Kind != PreRockford || got.Stage != stage {
			t.Errorf("got %v, want stage %d", got, stage)
		}
	}
	w.Turn(Input{})
	expectAt(t, w.Grid, P(2, 1), Rockford)
	if !w.Player.Alive {
		t.Error("player should be alive")
	}
}

func TestKillPlayer(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"#   #",
		"# R #",
		"#   #",
		"#####",
	)
	w.KillPlayer()
	events := w.Turn(Input{})
	if len(Filter(events, EventPlayerDied)) != 1 {
		t.Errorf("expected death event, got %v", events)
	}
	w.KillPlayer()
	if events := w.Turn(Input{}); len(Filter(events, EventPlayerDied)) != 0 {
		t.Errorf("second kill should be a no-op, got %v", events)
	}
}

func TestScannedMarkersClearedEachTurn(t *testing.T) {
	w := testWorld(Params{},
		"#####",
		"# O #",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	)
	w.Turn(Input{})
	if !w.Grid.Get(P(2, 2)).Scanned {
		t.Error("moved boulder should carry the scan marker after the pass")
	}
	w.foldScanned()
	for i, o := range w.Grid.Cells {
		if o.Scanned {
			t.Errorf("cell %d still scanned", i)
		}
	}
}

func TestFallableConservation(t *testing.T) {
	kinds := []Kind{Space, Space, Dirt, BrickWall, Boulder, Diamond}
	for seed := int64(1); seed <= 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		g := NewBordered(20, 14, Obj(Space))
		for y := 1; y < g.H-1; y++ {
			for x := 1; x < g.W-1; x++ {
				g.Set(P(x, y), Obj(kinds[r.Intn(len(kinds))]))
			}
		}
		w := NewWorld(g, Params{Rules: DefaultRules(), Seed: seed})

		want := fallables(g)
		for turn := 0; turn < 40; turn++ {
			w.Turn(Input{})
			if got := fallables(g); got != want {
				t.Fatalf("seed %d turn %d: fallables %d, want %d\n%s", seed, turn, got, want, dump(g))
			}
			if !g.BorderIntact() {
				t.Fatalf("seed %d turn %d: border damaged", seed, turn)
			}
		}
	}
}

func TestWorldDeterministic(t *testing.T) {
	run := func() *Grid {
		rules := DefaultRules()
		rules.BirthDelay = 0
		w := NewWorld(Decode(mustTestDef(t), 1), Params{Rules: rules, Seed: 99, Needed: 5})
		dirs := []Dir{DirRight, DirDown, DirLeft, DirUp}
		for i := 0; i < 60; i++ {
			w.Turn(Toward(dirs[(i/5)%4]))
		}
		return w.Grid
	}
	if !run().Equal(run()) {
		t.Error("same seed and input produced different grids")
	}
}

func TestDispatchPanicsOnUnknownKind(t *testing.T) {
	w := testWorld(Params{}, "###", "# #", "###")
	w.Grid.Set(P(1, 1), Object{Kind: kindCount})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	w.Turn(Input{})
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewBordered(5, 5, Obj(Space))
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	g.Get(P(5, 0))
}
