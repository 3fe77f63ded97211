package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash"
	"github.com/vovakirdan/tui-boulder/internal/registry"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// caveResults is implemented by games that report cleared caves.
type caveResults interface {
	TakeResults() []boulderdash.CaveResult
}

// GameModel is the Bubble Tea model that runs one game. It is used on its
// own by Run and embedded in the SSH SessionModel.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	embedded   bool // owned by a SessionModel; never sends tea.Quit on back
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game. A nil store disables
// score keeping and a nil logger discards.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game re-fits its viewport on every Render, so a resize
		// never restarts the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.inputFrame.Set(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.saveCaveResults()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.scoreSaved = true
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
		if m.store != nil && m.gameState.Score > 0 {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.logger.Warn("could not save score", "error", err)
			}
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveCaveResults() {
	rt, ok := m.game.(caveResults)
	if !ok {
		return
	}
	for _, r := range rt.TakeResults() {
		m.logger.Info("cave cleared", "pack", r.Pack, "cave", r.Letter, "level", r.Level, "score", r.Score, "turns", r.Turns)
		if m.store == nil {
			continue
		}
		_, err := m.store.SaveCaveRecord(storage.CaveRecord{
			Pack:  r.Pack,
			Cave:  r.Letter,
			Level: r.Level,
			Score: r.Score,
			Turns: r.Turns,
		})
		if err != nil {
			m.logger.Warn("could not save cave record", "error", err)
		}
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m GameModel) render() {
	m.screen.Clear()
	m.game.Render(m.screen)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// State returns the state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game in the alternate screen until the user quits or
// goes back. back reports the latter.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewGameModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
