package boulderdash

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
	"github.com/vovakirdan/tui-boulder/internal/registry"
)

// GameID is the identifier scores are stored under.
const GameID = "boulderdash"

// hudHeight is the number of status lines above the cave.
const hudHeight = 1

// Game adapts a Session to the platform's tick-driven Game interface.
// Direction keys pressed between turns are latched so a tap shorter than a
// turn still moves Rockford.
type Game struct {
	opts    Options
	cfg     core.RuntimeConfig
	session *Session
	frame   time.Duration
	latch   cave.Input
	paused  bool
	tick    uint64
	view    core.Viewport
	flash   int // turns left of the bonus-life flash
}

var _ registry.Game = (*Game)(nil)

// New creates a game over the given pack. The session is built by Reset.
func New(pack *caves.Pack, cfg config.BoulderConfig, logger *log.Logger) *Game {
	return &Game{
		opts: Options{
			Pack:   pack,
			Config: cfg,
			Logger: logger,
		},
	}
}

// SetStart selects the first cave (0-based) and the 1-based level; a
// level of 0 uses the difficulty config. It takes effect on the next Reset.
func (g *Game) SetStart(caveIndex, level int) {
	g.opts.Cave = caveIndex
	g.opts.Level = level
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Boulder Dash: " + g.opts.Pack.Title }

// Session returns the running session.
func (g *Game) Session() *Session { return g.session }

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.opts.Seed = cfg.Seed
	g.session = NewSession(g.opts)
	g.session.Bus().Subscribe(cave.EventBonusLife, func(cave.Event) { g.flash = 6 })
	g.frame = time.Duration(cfg.FrameMillis()) * time.Millisecond
	g.latch = cave.Input{}
	g.paused = false
	g.tick = 0
	g.flash = 0
	g.view = core.NewViewport(cfg.ScreenW, max(1, cfg.ScreenH-hudHeight))
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.session.GameOver() {
		cfg := g.cfg
		cfg.Seed = g.session.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionSuicide) {
		g.session.Suicide()
	}

	g.latch.Up = g.latch.Up || in.Has(core.ActionUp)
	g.latch.Down = g.latch.Down || in.Has(core.ActionDown)
	g.latch.Left = g.latch.Left || in.Has(core.ActionLeft)
	g.latch.Right = g.latch.Right || in.Has(core.ActionRight)
	g.latch.Fire = g.latch.Fire || in.Has(core.ActionFire)

	turned := g.session.Advance(g.frame, g.latch)
	if turned {
		g.latch = cave.Input{}
		if g.flash > 0 {
			g.flash--
		}
	}
	return core.StepResult{State: g.State(), Turned: turned}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// TakeResults returns the caves cleared since the last call.
func (g *Game) TakeResults() []CaveResult {
	return g.session.TakeResults()
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
