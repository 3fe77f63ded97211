// Package boulderdash runs a cave pack as a game: turn timing, lives,
// score, time limits and the sequence of caves, on top of the cave engine.
package boulderdash

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
)

// Phase is the session's position in the life of a cave.
type Phase uint8

const (
	PhaseReveal   Phase = iota // cover lifting, entrance held shut
	PhasePlaying               // clock running
	PhaseDying                 // Rockford is gone, the cave runs on for a while
	PhaseExiting               // remaining time converted to score
	PhaseGameOver              // no lives left
)

var phaseNames = [...]string{
	PhaseReveal:   "reveal",
	PhasePlaying:  "playing",
	PhaseDying:    "dying",
	PhaseExiting:  "exiting",
	PhaseGameOver: "game_over",
}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Options configures a Session.
type Options struct {
	Pack   *caves.Pack
	Config config.BoulderConfig
	Cave   int   // 0-based index of the first cave
	Level  int   // 1-based start level, 0 uses the difficulty config
	Seed   int64 // gameplay randomness
	Logger *log.Logger
}

// CaveResult is one cleared cave.
type CaveResult struct {
	Pack   string
	Letter string
	Level  int // 1-based
	Score  int // points earned in the cave, time bonus included
	Turns  int
}

// Session plays a cave pack from the first cave to game over. It owns the
// world of the current cave and every counter around it. It is not safe
// for concurrent use.
type Session struct {
	cfg  config.BoulderConfig
	pack *caves.Pack
	diff *config.DifficultyManager
	rng  *rand.Rand
	log  *log.Logger
	bus  *Bus

	world *cave.World
	cover *Cover
	phase Phase
	acc   time.Duration

	caveIndex int
	level     int // 0-based
	loops     int
	lives     int
	score     int
	nextBonus int
	caveScore int

	timeLeft   int // milliseconds
	aliveTurns int
	phaseTurns int
	turns      int

	results []CaveResult
}

// NewSession starts a run at the configured cave.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:   opts.Config,
		pack:  opts.Pack,
		diff:  config.NewDifficultyManager(opts.Config.Difficulty),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		log:   logger,
		bus:   NewBus(),
		lives: opts.Config.Session.Lives,
	}
	if opts.Level > 0 {
		s.diff.SetInitialLevel(opts.Level)
	}
	s.nextBonus = s.cfg.Session.BonusLifeEvery

	s.bus.Subscribe(cave.EventScoreDelta, func(e cave.Event) { s.addScore(e.Amount) })
	s.bus.Subscribe(cave.EventPlayerDied, func(cave.Event) { s.died() })
	s.bus.Subscribe(cave.EventCaveExited, func(cave.Event) { s.exited() })
	s.bus.SubscribeAll(func(e cave.Event) {
		if e.Type != cave.EventSound {
			s.log.Debug("event", "cave", s.Cave().Letter, "turn", s.world.Turns(), "event", e)
		}
	})

	s.pack.Cave(opts.Cave) // panics outside the pack
	s.caveIndex = opts.Cave
	s.level = s.diff.Level(0)
	s.loadCave()
	return s
}

// Bus returns the event bus. Subscribers see every engine event plus the
// session's own (bonus lives, time-out sound).
func (s *Session) Bus() *Bus { return s.bus }

// World returns the running cave.
func (s *Session) World() *cave.World { return s.world }

// Cover returns the cave cover.
func (s *Session) Cover() *Cover { return s.cover }

// Cave returns the current pack entry.
func (s *Session) Cave() caves.Cave { return s.pack.Cave(s.caveIndex) }

// CaveIndex returns the 0-based index of the current cave.
func (s *Session) CaveIndex() int { return s.caveIndex }

// Level returns the 1-based difficulty level.
func (s *Session) Level() int { return s.level + 1 }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Score returns the total score.
func (s *Session) Score() int { return s.score }

// Turns returns the number of turns run over the whole session.
func (s *Session) Turns() int { return s.turns }

// TimeLeft returns the cave time left in whole seconds, rounded up.
func (s *Session) TimeLeft() int {
	return (s.timeLeft + 999) / 1000
}

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

// TakeResults returns the caves cleared since the last call.
func (s *Session) TakeResults() []CaveResult {
	r := s.results
	s.results = nil
	return r
}

func (s *Session) turnDuration() time.Duration {
	return time.Duration(s.cfg.Timing.TurnMs) * time.Millisecond
}

// Advance feeds one frame of wall-clock time. A frame longer than
// max_frame_ms is clamped, and at most one turn runs per call. It reports
// whether a turn ran. At most one turn of lag is carried over.
func (s *Session) Advance(dt time.Duration, in cave.Input) bool {
	if s.phase == PhaseGameOver {
		return false
	}
	if limit := time.Duration(s.cfg.Timing.MaxFrameMs) * time.Millisecond; dt > limit {
		dt = limit
	}
	if dt > 0 {
		s.acc += dt
	}
	turn := s.turnDuration()
	if s.acc < turn {
		return false
	}
	s.acc = min(s.acc-turn, turn)
	s.Turn(in)
	return true
}

// Turn runs exactly one turn with the given input and the session
// bookkeeping that follows it.
func (s *Session) Turn(in cave.Input) {
	if s.phase == PhaseGameOver {
		return
	}
	s.turns++
	s.bus.EmitAll(s.world.Turn(in))

	switch s.phase {
	case PhaseReveal:
		s.cover.Step()
		if s.cover.Done() {
			s.setPhase(PhasePlaying)
		}
		s.tickClock()
	case PhasePlaying:
		s.tickClock()
	case PhaseDying:
		s.phaseTurns++
		if s.phaseTurns >= s.cfg.Session.DeathDelayTurns {
			s.afterDeath()
		}
	case PhaseExiting:
		s.timeBonus()
	}
}

// Suicide blows Rockford up, as when the time runs out.
func (s *Session) Suicide() {
	if s.phase == PhasePlaying || s.phase == PhaseReveal {
		s.world.KillPlayer()
	}
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.phaseTurns = 0
	s.world.SetCovered(p == PhaseReveal)
}

// tickClock runs the cave clock and the amoeba timer. Both only run while
// Rockford is alive.
func (s *Session) tickClock() {
	p := s.world.Player
	if !p.Alive || p.Dead || p.Exited {
		return
	}
	s.aliveTurns++
	def := s.Cave().Def
	if s.aliveTurns*s.cfg.Timing.TurnMs >= int(def.MagicWallTime)*1000 {
		s.world.SetFastAmoeba(true)
	}

	s.timeLeft -= s.cfg.Timing.TurnMs
	if s.timeLeft > 0 {
		return
	}
	s.timeLeft = 0
	s.log.Info("out of time", "cave", s.Cave().Letter)
	s.bus.Emit(cave.Event{Type: cave.EventSound, Sound: cave.SoundTimeout, Pos: p.Pos})
	s.world.KillPlayer()
}

func (s *Session) addScore(n int) {
	s.score += n
	s.caveScore += n
	every := s.cfg.Session.BonusLifeEvery
	if every <= 0 {
		return
	}
	for s.score >= s.nextBonus {
		s.nextBonus += every
		s.lives++
		s.log.Info("bonus life", "score", s.score, "lives", s.lives)
		s.bus.Emit(cave.Event{Type: cave.EventBonusLife, Amount: 1})
	}
}

func (s *Session) died() {
	if s.phase != PhasePlaying && s.phase != PhaseReveal {
		return
	}
	s.log.Info("rockford died", "cave", s.Cave().Letter, "level", s.Level(), "lives", s.lives)
	s.setPhase(PhaseDying)
}

func (s *Session) exited() {
	if s.phase != PhasePlaying && s.phase != PhaseReveal {
		return
	}
	s.log.Info("cave exited", "cave", s.Cave().Letter, "level", s.Level(), "time_left", s.TimeLeft())
	s.setPhase(PhaseExiting)
}

// timeBonus converts up to exit_bonus_per_turn seconds into score, each
// second worth the 1-based level.
func (s *Session) timeBonus() {
	secs := min(s.TimeLeft(), s.cfg.Session.ExitBonusPerTurn)
	if secs > 0 {
		s.timeLeft = max(0, s.timeLeft-secs*1000)
		s.addScore(secs * s.Level())
		return
	}
	s.results = append(s.results, CaveResult{
		Pack:   s.pack.ID,
		Letter: s.Cave().Letter,
		Level:  s.Level(),
		Score:  s.caveScore,
		Turns:  s.world.Turns(),
	})
	s.nextCave()
}

// afterDeath ends the death delay. Dying in an intermission costs no life
// and moves on.
func (s *Session) afterDeath() {
	if s.Cave().Intermission {
		s.nextCave()
		return
	}
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.phase = PhaseGameOver
		s.log.Info("game over", "score", s.score, "cave", s.Cave().Letter, "level", s.Level())
		return
	}
	s.loadCave()
}

func (s *Session) nextCave() {
	s.caveIndex++
	if s.caveIndex >= s.pack.Len() {
		s.caveIndex = 0
		s.loops++
		s.level = s.diff.Level(s.loops)
	}
	s.loadCave()
}

func (s *Session) loadCave() {
	c := s.Cave()
	magicTurns := int(c.Def.MagicWallTime) * 1000 / s.cfg.Timing.TurnMs
	rules := cave.Rules{
		PushChance:       s.cfg.Rules.PushChance,
		AmoebaMaxSize:    s.cfg.Rules.AmoebaMaxSize,
		AmoebaSlowFactor: s.cfg.Rules.AmoebaSlowFactor,
		AmoebaFastFactor: s.cfg.Rules.AmoebaFastFactor,
		BirthDelay:       s.cfg.Rules.BirthDelayTurns,
	}
	s.world = cave.Load(c.Def, s.level, rules, magicTurns, s.rng.Int63())
	s.cover = NewCover(s.world.Grid.W, s.world.Grid.H, s.cfg.Cover.RevealTurns, s.rng)
	s.timeLeft = c.Def.Time(s.level) * 1000
	s.aliveTurns = 0
	s.caveScore = 0
	s.acc = 0
	if s.cover.Done() {
		s.setPhase(PhasePlaying)
	} else {
		s.setPhase(PhaseReveal)
	}
	s.log.Info("cave loaded", "cave", c.Letter, "name", c.Name, "level", s.Level(),
		"needed", s.world.Needed(), "time", s.TimeLeft())
}
