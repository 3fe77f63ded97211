// boulder is a terminal Boulder Dash: falling boulders, diamonds, fireflies
// and amoeba, one cave turn at a time.
//
// Usage:
//
//	boulder play             - Play from the first cave (or --cave)
//	boulder menu             - Pick a cave and level interactively
//	boulder caves list       - List the caves of every pack
//	boulder caves show <c>   - Print the decoded starting grid of a cave
//	boulder caves export <c> - Dump a decoded cave as YAML
//	boulder scores           - Show best runs and best cave clears
//	boulder serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Platform tick rate (default: from config)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Database path (default: ~/.arcade/scores.db)
//	--config <path>     - Custom boulderdash.yaml
//	--log-file <path>   - Log destination (default: ~/.arcade/boulder.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagPack       string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boulder",
	Short: "Boulder Dash in your terminal",
	Long: `Dig through caves, collect enough diamonds and reach the exit
before the time runs out. Boulders and diamonds fall and roll, fireflies
and butterflies explode, amoeba grows.

Available commands:
  play     - Play the pack from a cave
  menu     - Interactive cave and level picker
  caves    - List, show or export caves
  scores   - View best runs and cave records
  serve    - Start SSH server for remote play

Examples:
  boulder play
  boulder play --cave C --level 3
  boulder menu --difficulty hard
  boulder caves show A
  boulder serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config tick_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom boulderdash.yaml")
	pf.StringVar(&flagPack, "pack", caves.PackID, "Cave pack to play")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.arcade/boulder.log, serve logs to stderr)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(cavesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger opens the log destination. Interactive commands log to a file
// since stderr is hidden behind the alternate screen. The returned func
// closes the file.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	path := flagLogFile
	if path == "" && !toStderr {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "boulder.log")
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "boulder",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig reads boulderdash.yaml and applies --difficulty and a
// 1-based level override (0 keeps the config).
func loadGameConfig(level int) (config.BoulderConfig, error) {
	cfg, err := config.LoadBoulder(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyBoulderPreset(&cfg, preset)
	}

	if level != 0 {
		if level < 1 || level > config.MaxLevel {
			return cfg, fmt.Errorf("--level must be in 1..%d, got %d", config.MaxLevel, level)
		}
		cfg.Difficulty.InitialLevel = level
	}
	return cfg, nil
}

// tickRate prefers --fps over the config hint.
func tickRate(cfg config.BoulderConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if cfg.Timing.TickRate > 0 {
		return cfg.Timing.TickRate
	}
	return 60
}

// lookupCave resolves --pack and a cave reference (letter or 1-based
// number). An empty reference is the first cave.
func lookupCave(ref string) (*caves.Pack, int, error) {
	pack, err := caves.Get(flagPack)
	if err != nil {
		ids := make([]string, 0)
		for _, p := range caves.List() {
			ids = append(ids, p.ID)
		}
		return nil, 0, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
	}
	if ref == "" {
		return pack, 0, nil
	}
	idx, err := pack.Index(ref)
	if err != nil {
		return nil, 0, err
	}
	return pack, idx, nil
}
