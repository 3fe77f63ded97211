package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// corridorPack holds one all-dirt cave with Rockford at (2,2), two
// diamonds to his right and the exit behind them.
func corridorPack(needed, seconds byte) *caves.Pack {
	blob := []byte{
		0x01, 0x02, 10, 20,
		0, 0, 0, 0, 0,
		needed, needed, needed, needed, needed,
		seconds, seconds, seconds, seconds, seconds,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x25, 2, 4,
		0x14, 3, 4,
		0x14, 4, 4,
		0x04, 5, 4,
		cave.EndOfProgram,
	}
	return &caves.Pack{
		ID:    "test",
		Title: "Test",
		Caves: []caves.Cave{{Letter: "A", Name: "Corridor", Def: cave.MustParse(blob)}},
	}
}

func newTestModel(t *testing.T, pack *caves.Pack, lives int, store *storage.Store) GameModel {
	t.Helper()
	cfg := config.DefaultBoulderConfig()
	cfg.Cover.RevealTurns = 0
	cfg.Rules.BirthDelayTurns = 0
	cfg.Session.DeathDelayTurns = 2
	cfg.Session.Lives = lives

	game := boulderdash.New(pack, cfg, nil)
	m := NewGameModel(game, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 23, TickRate: 60, Seed: 3})
	m.Init()
	return m
}

func send(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameModelSavesCaveRecord(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, corridorPack(2, 10), 3, store)

	for range 300 {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
		m, _ = send(m, TickMsg{})
	}

	rec, err := store.BestRecord("test", "A", 1)
	if err != nil {
		t.Fatalf("BestRecord() failed: %v", err)
	}
	// 20 for the diamonds and 10 for the remaining seconds
	if rec == nil || rec.Score != 30 {
		t.Fatalf("record = %+v, expected a 30 point clear of cave A", rec)
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	// Three diamonds needed but only two exist, so the clock runs out
	m := newTestModel(t, corridorPack(3, 1), 1, store)

	for i := 0; !m.State().GameOver; i++ {
		if i > 2000 {
			t.Fatal("game never ended")
		}
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
		m, _ = send(m, TickMsg{})
	}
	for range 20 {
		m, _ = send(m, TickMsg{})
	}

	scores, err := store.TopScores(boulderdash.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 20 {
		t.Errorf("scores = %+v, expected a single 20", scores)
	}
}

func TestGameModelBackPausesFirst(t *testing.T) {
	m := newTestModel(t, corridorPack(2, 10), 3, nil)
	m.embedded = true

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(m, TickMsg{})
	if !m.State().Paused || m.BackToMenu() {
		t.Fatalf("first esc should pause, state %+v back %v", m.State(), m.BackToMenu())
	}

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should go back to the menu")
	}
	if cmd != nil {
		t.Error("an embedded game must not quit the program")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, corridorPack(2, 10), 3, nil)

	m, cmd := send(m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, corridorPack(2, 10), 3, nil)
	for range 50 {
		m, _ = send(m, TickMsg{})
	}
	game := m.game.(*boulderdash.Game)
	turns := game.Session().Turns()

	m, _ = send(m, tea.WindowSizeMsg{Width: 30, Height: 12})
	if game.Session().Turns() != turns {
		t.Error("resize restarted the run")
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 12 {
		t.Errorf("view has %d lines, expected 12", len(lines))
	}
}
