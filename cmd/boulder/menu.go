package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash"
	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a cave and level, play, come back",
	Long: `Start in the cave selector.

Up/Down picks the starting cave, Left/Right the level, Enter plays and
Tab opens the scoreboard. Esc on a paused or finished game returns here.

Examples:
  boulder menu
  boulder menu --difficulty easy
  boulder menu --fps 30 --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	pack, _, err := lookupCave("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig(0)
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

	cfg := terminalConfig(tickRate(gameCfg))
	level := gameCfg.Difficulty.InitialLevel

	for {
		res, err := tui.RunMenu(pack, store, level, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config
		level = res.Level

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}
		if res.Quit {
			return
		}

		game := boulderdash.New(pack, gameCfg, logger)
		game.SetStart(res.Selection.Cave, res.Selection.Level)
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
