package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

func menuKeys(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelectsCaveAndLevel(t *testing.T) {
	pack := caves.Dash()
	m := NewMenuModel(pack, nil, 2, core.DefaultConfig())

	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	// Cursor and level stop at their ends
	m = menuKeys(m, tea.KeyMsg{Type: tea.KeyUp}, down, down, right, right, right, right, left)
	m = menuKeys(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("no selection")
	}
	want := Selection{PackID: caves.PackID, Cave: 2, Level: 4}
	if *sel != want {
		t.Errorf("selection = %+v, expected %+v", *sel, want)
	}
}

func TestMenuShowsBestRecord(t *testing.T) {
	store := openStore(t)
	store.SaveCaveRecord(storage.CaveRecord{Pack: caves.PackID, Cave: "B", Level: 1, Score: 4321, Turns: 99})

	m := NewMenuModel(caves.Dash(), store, 1, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	if !strings.Contains(m.View(), "4321") {
		t.Error("best record of cave B missing from the menu")
	}

	m = menuKeys(m, tea.KeyMsg{Type: tea.KeyRight})
	if strings.Contains(m.View(), "4321") {
		t.Error("level 2 should not show the level 1 record")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKeys(NewMenuModel(caves.Dash(), nil, 1, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() || m.Selected() != nil {
		t.Error("tab should open the scoreboard")
	}

	m = menuKeys(NewMenuModel(caves.Dash(), nil, 1, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() {
		t.Error("esc should leave the selector")
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	store := openStore(t)
	store.SaveScore("boulderdash", 700)
	store.SaveCaveRecord(storage.CaveRecord{Pack: caves.PackID, Cave: "A", Level: 1, Score: 55, Turns: 80})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.rows) != 1 || m.rows[0][1] != "700" {
		t.Fatalf("runs board rows = %v", m.rows)
	}

	for i := range len(m.boards) {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
		if m.boards[m.cursor].packID == caves.PackID {
			if len(m.rows) != 1 || m.rows[0][0] != "A" || m.rows[0][2] != "55" {
				t.Errorf("cave board rows = %v", m.rows)
			}
		}
		if m.View() == "" {
			t.Errorf("board %d rendered nothing", i)
		}
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to wrap to 0", m.cursor)
	}
}
