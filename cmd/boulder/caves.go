package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"
	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash/caves"
)

var flagShowLevel int

var cavesCmd = &cobra.Command{
	Use:   "caves",
	Short: "List, show or export caves",
}

var cavesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the caves of every registered pack",
	Args:  cobra.NoArgs,
	Run:   runCavesList,
}

var cavesShowCmd = &cobra.Command{
	Use:   "show <cave>",
	Short: "Print the decoded starting grid of a cave",
	Long: `Decode a cave at a level and print its starting grid, one glyph per cell.

Examples:
  boulder caves show A
  boulder caves show 3 --level 5`,
	Args: cobra.ExactArgs(1),
	Run:  runCavesShow,
}

var cavesExportCmd = &cobra.Command{
	Use:   "export <cave>",
	Short: "Dump a decoded cave as YAML",
	Long: `Write the header values and decoded starting grid of a cave as YAML.

Examples:
  boulder caves export B > cave-b.yaml
  boulder caves export D --level 4`,
	Args: cobra.ExactArgs(1),
	Run:  runCavesExport,
}

func init() {
	for _, c := range []*cobra.Command{cavesShowCmd, cavesExportCmd} {
		c.Flags().IntVar(&flagShowLevel, "level", 1, "Level 1-5 to decode")
	}
	cavesCmd.AddCommand(cavesListCmd, cavesShowCmd, cavesExportCmd)
}

// caveDoc is the exported form of one decoded cave.
type caveDoc struct {
	Pack              string   `yaml:"pack"`
	Letter            string   `yaml:"letter"`
	Name              string   `yaml:"name"`
	Intermission      bool     `yaml:"intermission,omitempty"`
	Level             int      `yaml:"level"`
	ID                int      `yaml:"id"`
	MagicWallTime     int      `yaml:"magic_wall_time"`
	DiamondValue      int      `yaml:"diamond_value"`
	ExtraDiamondValue int      `yaml:"extra_diamond_value"`
	DiamondsNeeded    int      `yaml:"diamonds_needed"`
	Time              int      `yaml:"time"`
	Seed              int      `yaml:"seed"`
	Rows              []string `yaml:"rows"`
	Blob              string   `yaml:"blob"`
}

// newCaveDoc decodes c at the 1-based level.
func newCaveDoc(packID string, c caves.Cave, level int) caveDoc {
	l := level - 1
	def := c.Def
	return caveDoc{
		Pack:              packID,
		Letter:            c.Letter,
		Name:              c.Name,
		Intermission:      c.Intermission,
		Level:             level,
		ID:                int(def.ID),
		MagicWallTime:     int(def.MagicWallTime),
		DiamondValue:      int(def.DiamondValue),
		ExtraDiamondValue: int(def.ExtraDiamondValue),
		DiamondsNeeded:    def.Needed(l),
		Time:              def.Time(l),
		Seed:              int(def.Seed(l)),
		Rows:              cave.Decode(def, l).Rows(),
		Blob:              hex.EncodeToString(def.Bytes()),
	}
}

func writeCaveYAML(w io.Writer, doc caveDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode cave: %w", err)
	}
	return enc.Close()
}

func runCavesList(_ *cobra.Command, _ []string) {
	packs := caves.List()
	if len(packs) == 0 {
		fmt.Println("No cave packs available.")
		return
	}

	for _, info := range packs {
		pack, err := caves.Get(info.ID)
		if err != nil {
			continue
		}
		fmt.Printf("%s - %s\n\n", pack.ID, pack.Title)
		fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Cave", "Name", "Diamonds", "Time")
		fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "----", "----", "--------", "----")
		for _, c := range pack.Caves {
			name := c.Name
			if c.Intermission {
				name += " *"
			}
			fmt.Printf("  %-4s  %-20s  %-8d  %ds\n", c.Letter, name, c.Def.Needed(0), c.Def.Time(0))
		}
		fmt.Println()
	}
	fmt.Println("* intermission: dying there costs no life. Values are for level 1.")
	fmt.Println("Run 'boulder play --cave <letter>' to start from a cave.")
}

func resolveShow(ref string) (*caves.Pack, caves.Cave) {
	if flagShowLevel < 1 || flagShowLevel > cave.Levels {
		fmt.Fprintf(os.Stderr, "Error: --level must be in 1..%d\n", cave.Levels)
		os.Exit(1)
	}
	pack, idx, err := lookupCave(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return pack, pack.Cave(idx)
}

func runCavesShow(_ *cobra.Command, args []string) {
	pack, c := resolveShow(args[0])
	doc := newCaveDoc(pack.ID, c, flagShowLevel)

	fmt.Printf("Cave %s - %s (level %d)\n", doc.Letter, doc.Name, doc.Level)
	fmt.Printf("Diamonds: %d x %d (extra %d)  Time: %ds  Magic wall: %ds\n\n",
		doc.DiamondsNeeded, doc.DiamondValue, doc.ExtraDiamondValue, doc.Time, doc.MagicWallTime)
	fmt.Println(strings.Join(doc.Rows, "\n"))
}

func runCavesExport(_ *cobra.Command, args []string) {
	pack, c := resolveShow(args[0])
	if err := writeCaveYAML(os.Stdout, newCaveDoc(pack.ID, c, flagShowLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
