package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash"
	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var (
	flagCave  string
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the cave pack",
	Long: `Start playing the pack, from the first cave or the one given with --cave.
Clearing the last cave wraps to the first at a higher level.

Controls:
  Arrows/WASD/HJKL - Move
  Space+direction  - Snap: dig or collect without moving
  P                - Pause
  Esc              - Pause, then back
  X                - Give up the current life
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1, progresses after each pass through the pack
  normal - Start at level 2
  hard   - Start at level 4
  fixed  - No progression, stays at the config's initial level

Examples:
  boulder play
  boulder play --cave C
  boulder play --cave 3 --level 2
  boulder play --difficulty hard
  boulder play --config ./my-boulderdash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCave, "cave", "", "Starting cave, by letter or 1-based number")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level 1-5 (0 = from difficulty)")
}

// terminalConfig sizes the screen from the controlling terminal.
func terminalConfig(tick int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tick
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) {
	pack, caveIndex, err := lookupCave(flagCave)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'boulder caves list' to see available caves.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(flagLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := boulderdash.New(pack, gameCfg, logger)
	game.SetStart(caveIndex, flagLevel)

	logger.Info("starting", "pack", pack.ID, "cave", pack.Cave(caveIndex).Letter, "level", gameCfg.Difficulty.InitialLevel)
	if _, err := tui.Run(game, store, logger, terminalConfig(tickRate(gameCfg))); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
