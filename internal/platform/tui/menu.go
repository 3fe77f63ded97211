package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Selection is a cave and level picked in the selector.
type Selection struct {
	PackID string
	Cave   int // 0-based index into the pack
	Level  int // 1-based
}

type recordKey struct {
	cave  string
	level int
}

// MenuModel is the cave selector: up/down picks the starting cave,
// left/right the level.
type MenuModel struct {
	pack           *caves.Pack
	best           map[recordKey]int
	cursor         int
	level          int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates a selector over pack starting at level (1-based).
// Best cave results are read from store when it is not nil.
func NewMenuModel(pack *caves.Pack, store *storage.Store, level int, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		pack:      pack,
		best:      make(map[recordKey]int),
		level:     max(1, min(level, config.MaxLevel)),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	if store != nil {
		// Missing records only hide the "best" column.
		if recs, err := store.BestRecords(pack.ID); err == nil {
			for _, r := range recs {
				m.best[recordKey{r.Cave, r.Level}] = r.Score
			}
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.pack.Len()-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.level > 1 {
			m.level--
		}

	case MenuActionRight:
		if m.level < config.MaxLevel {
			m.level++
		}

	case MenuActionSelect:
		m.selected = &Selection{PackID: m.pack.ID, Cave: m.cursor, Level: m.level}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B O U L D E R   D A S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.pack.Title, m.width))
	b.WriteString("\n\n")

	for i, c := range m.pack.Caves {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuSelectedStyle
		}

		name := c.Name
		if c.Intermission {
			name += " (bonus)"
		}
		best := "     -"
		if score, ok := m.best[recordKey{c.Letter, m.level}]; ok {
			best = fmt.Sprintf("%6d", score)
		}
		line := fmt.Sprintf("%s%s  %-22s %s", cursor, c.Letter, name, best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("<  Level %d  >", m.level), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Cave  |  Left/Right: Level  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keyMapper.Keys()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Level           int // level shown when the menu closed
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the cave selector and returns what the user chose.
func RunMenu(pack *caves.Pack, store *storage.Store, level int, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(pack, store, level, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Selection:       m.Selected(),
		Level:           m.level,
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
	}
	result.Quit = m.IsQuitting() || (result.Selection == nil && !result.WantsScoreboard)
	return result, nil
}
