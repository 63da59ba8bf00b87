package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelsmith/internal/config"
	"github.com/vovakirdan/levelsmith/internal/gen"
	"github.com/vovakirdan/levelsmith/internal/levels"
	"github.com/vovakirdan/levelsmith/internal/storage"
)

var flagListRoot string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels on disk",
	Long: `Shows all levels found under the levels root with their size and the
movement capability their index grants.

The table reflects the filesystem; the catalog database, when present,
contributes a summary footer.

Examples:
  levelsmith list
  levelsmith list --levels-root ./levels`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListRoot, "levels-root", "", "Directory holding the levels (default from config)")
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := flagListRoot
	if root == "" {
		root = cfg.Levels.Root
	}

	scanner := levels.NewScanner(root)
	last, err := scanner.LastIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if last == 0 {
		fmt.Printf("No levels found under %s.\n", root)
		fmt.Println()
		fmt.Println("Run 'levelsmith generate' to create some.")
		return
	}

	fmt.Printf("Levels under %s:\n", root)
	fmt.Println()

	// Calculate column widths
	nameWidth := len(fmt.Sprintf("level%d", last))
	if nameWidth < 5 {
		nameWidth = 5
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", nameWidth, "Level", "Size", "Diff", "Jump/Gap/Drop")
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", nameWidth, "-----", "----", "----", "-------------")

	// Print levels
	count := 0
	for idx := 1; idx <= last; idx++ {
		g, err := levels.Read(root, idx)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			fmt.Printf("  %-*s  unreadable: %v\n", nameWidth, fmt.Sprintf("level%d", idx), err)
			continue
		}
		count++
		mc := gen.CapabilityFor(idx)
		fmt.Printf("  %-*s  %-9s  %-5.2f  %d/%d/%d\n",
			nameWidth,
			fmt.Sprintf("level%d", idx),
			fmt.Sprintf("%dx%d", g.W, g.H),
			gen.Difficulty(idx),
			mc.MaxJumpUp, mc.MaxGap, mc.MaxDrop,
		)
	}

	fmt.Println()
	fmt.Printf("%d levels on disk.\n", count)

	// Catalog footer, best effort
	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return
	}
	defer store.Close()

	stats, err := store.Stats()
	if err == nil && stats.Count > 0 {
		fmt.Printf("Catalog: %d levels recorded up to level%d, largest %dx%d, avg %.1f attempts\n",
			stats.Count, stats.MaxIndex, stats.MaxWidth, stats.MaxHeight, stats.AvgAttempts)
	}
}
