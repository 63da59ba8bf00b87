package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelsmith/internal/config"
	"github.com/vovakirdan/levelsmith/internal/gen"
	"github.com/vovakirdan/levelsmith/internal/grid"
	"github.com/vovakirdan/levelsmith/internal/levels"
	"github.com/vovakirdan/levelsmith/internal/storage"
)

var flagInspectRoot string

var inspectCmd = &cobra.Command{
	Use:   "inspect <index>",
	Short: "Show one level's map and stats",
	Long: `Print a level's map together with its tile counts, the movement
capability of its index, the reachability verdict and, when the catalog
knows the level, its generation record.

Examples:
  levelsmith inspect 7
  levelsmith inspect 7 --levels-root ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectRoot, "levels-root", "", "Directory holding the levels (default from config)")
}

func runInspect(cmd *cobra.Command, args []string) {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid level index %q\n", args[0])
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := flagInspectRoot
	if root == "" {
		root = cfg.Levels.Root
	}

	g, err := levels.Read(root, index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("level%d (%dx%d)\n", index, g.W, g.H)
	fmt.Println()
	fmt.Println(g.String())
	fmt.Println()

	orbs := 0
	for t := grid.OrbMin; t <= grid.OrbMax; t++ {
		orbs += g.Count(t)
	}
	fmt.Printf("Tiles: %d walls, %d platforms, %d hazards, %d stars, %d orbs\n",
		g.Count(grid.Wall), g.Count(grid.Platform), g.Count(grid.Hazard),
		g.Count(grid.Star), orbs)

	sx, sy, spawns := findTile(g, grid.Spawn)
	gx, gy, goals := findTile(g, grid.Goal)
	if spawns == 1 && goals == 1 {
		fmt.Printf("Anchors: spawn (%d,%d), goal (%d,%d)\n", sx, sy, gx, gy)
	} else {
		fmt.Printf("Anchors: %d spawns, %d goals\n", spawns, goals)
	}

	mc := gen.CapabilityFor(index)
	fmt.Printf("Capability: jump up %d, gap %d, drop %d (difficulty %.2f)\n",
		mc.MaxJumpUp, mc.MaxGap, mc.MaxDrop, gen.Difficulty(index))

	if verrs := gen.Check(g, mc); len(verrs) > 0 {
		fmt.Println("Validation: FAIL")
		for _, verr := range verrs {
			fmt.Printf("  %v\n", verr)
		}
	} else {
		fmt.Println("Validation: OK")
	}

	// Catalog record, when the database knows this level
	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return
	}
	defer store.Close()

	rec, err := store.Level(index)
	if err != nil || rec == nil {
		return
	}
	fmt.Println()
	fmt.Printf("Catalog: seed %d, %d attempts, generated in %dms on %s\n",
		rec.Seed, rec.Attempts, rec.GenMillis, rec.CreatedAt.Format("2006-01-02 15:04"))
}

// findTile scans for t, returning the first hit and the total count.
func findTile(g *grid.Grid, t grid.Tile) (x, y, count int) {
	for yy := 0; yy < g.H; yy++ {
		for xx := 0; xx < g.W; xx++ {
			if g.At(xx, yy) == t {
				if count == 0 {
					x, y = xx, yy
				}
				count++
			}
		}
	}
	return x, y, count
}
