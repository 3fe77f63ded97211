package boulderdash

import (
	"fmt"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
)

// followMargin is how close Rockford may get to the viewport edge before
// it scrolls.
const followMargin = 4

// Render draws the HUD and the visible part of the cave.
func (g *Game) Render(dst *core.Screen) {
	s := g.session
	w := s.World()

	g.view.W = dst.Width()
	g.view.H = max(1, dst.Height()-hudHeight)
	g.view.Follow(w.Player.Pos.X, w.Player.Pos.Y, w.Grid.W, w.Grid.H, followMargin)

	g.renderHUD(dst)

	// Center caves narrower than the screen
	offX := max(0, (g.view.W-w.Grid.W)/2)
	cover := s.Cover()
	for sy := 0; sy < g.view.H; sy++ {
		for sx := 0; sx < g.view.W; sx++ {
			p := cave.P(g.view.X+sx, g.view.Y+sy)
			if !w.Grid.InBounds(p) {
				continue
			}
			r, c := '▒', core.ColorGray
			if !cover.Hidden(p) {
				r, c = tile(w.Grid.Get(p), w.Turns(), w.MagicWall())
			}
			dst.SetColor(offX+sx, hudHeight+sy, r, c)
		}
	}

	switch {
	case s.GameOver():
		g.banner(dst, fmt.Sprintf(" GAME OVER  score %d  [r] restart ", s.Score()))
	case g.paused:
		g.banner(dst, " PAUSED ")
	case s.Phase() == PhaseReveal && s.Cover().Remaining() > 0:
		g.banner(dst, fmt.Sprintf(" CAVE %s  %s  LEVEL %d ", s.Cave().Letter, s.Cave().Name, s.Level()))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	w := s.World()

	diamonds := fmt.Sprintf("%02d/%02d", w.Collected(), w.Needed())
	color := core.ColorBrightWhite
	if w.Enough() {
		color = core.ColorBrightYellow
	}
	x := 0
	x = hudField(dst, x, "◆", core.ColorBrightCyan)
	x = hudField(dst, x, diamonds, color)
	x = hudField(dst, x, fmt.Sprintf(" x%d", w.DiamondValue()), core.ColorCyan)
	x = hudField(dst, x, fmt.Sprintf(" %s/%d", s.Cave().Letter, s.Level()), core.ColorWhite)
	x = hudField(dst, x, fmt.Sprintf(" time %03d", s.TimeLeft()), timeColor(s.TimeLeft()))
	livesColor := core.ColorWhite
	if g.flash > 0 {
		livesColor = core.ColorBrightGreen
	}
	x = hudField(dst, x, fmt.Sprintf(" lives %d", s.Lives()), livesColor)
	hudField(dst, x, fmt.Sprintf(" %06d", s.Score()), core.ColorBrightWhite)
}

func hudField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColor(x, 0, text, c)
	return x + len([]rune(text))
}

func timeColor(secs int) core.Color {
	if secs <= 10 {
		return core.ColorBrightRed
	}
	return core.ColorWhite
}

func (g *Game) banner(dst *core.Screen, text string) {
	y := hudHeight + g.view.H/2
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColor(x, y, text, core.ColorBrightYellow)
}

// tile picks the rune and colour of one cave object. turn drives the
// flashing outbox and the milling magic wall.
func tile(o cave.Object, turn int, magic cave.MagicWallState) (rune, core.Color) {
	switch o.Kind {
	case cave.Space:
		return ' ', core.ColorDefault
	case cave.Dirt:
		return '░', core.ColorBrown
	case cave.BrickWall:
		return '▓', core.ColorRed
	case cave.MagicWall:
		if magic == cave.MagicMilling && turn%2 == 1 {
			return '▒', core.ColorBrightMagenta
		}
		return '▓', core.ColorRed
	case cave.SteelWall, cave.PreOutbox:
		return '█', core.ColorGray
	case cave.FlashingOutbox:
		if turn%2 == 0 {
			return '█', core.ColorBrightWhite
		}
		return '█', core.ColorGray
	case cave.Boulder, cave.BoulderFalling:
		return 'O', core.ColorWhite
	case cave.Diamond, cave.DiamondFalling:
		return '◆', core.ColorBrightCyan
	case cave.Firefly:
		return '■', core.ColorBrightYellow
	case cave.Butterfly:
		return 'X', core.ColorBrightBlue
	case cave.Amoeba:
		return '▒', core.ColorBrightGreen
	case cave.ExplodeToSpace, cave.ExplodeToDiamond:
		return '*', core.ColorBrightRed
	case cave.PreRockford:
		if o.Stage <= 1 && turn%2 == 0 {
			return '█', core.ColorGray
		}
		return '@', core.ColorYellow
	case cave.Rockford:
		return '@', core.ColorBrightYellow
	default:
		return cave.Glyph(o), core.ColorDefault
	}
}
