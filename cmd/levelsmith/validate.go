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
)

var validateCmd = &cobra.Command{
	Use:   "validate [root]",
	Short: "Re-check reachability of levels on disk",
	Long: `Walk the levels root, rebuild each level's movement capability from
its index and re-run the reachability check against the map on disk.

Useful after hand-editing maps: a level that passed at generation time
can be broken by a stray wall or spike.

Exits non-zero when any level fails.

Examples:
  levelsmith validate
  levelsmith validate ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	root := ""
	if len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
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
		return
	}

	fmt.Printf("Checking levels under %s:\n", root)
	fmt.Println()

	nameWidth := len(fmt.Sprintf("level%d", last))
	total := 0
	failed := 0

	for idx := 1; idx <= last; idx++ {
		g, err := levels.Read(root, idx)
		if err != nil {
			// Numbering gaps are fine, the chain just skips them
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			total++
			failed++
			fmt.Printf("  %-*s  FAIL: %v\n", nameWidth, fmt.Sprintf("level%d", idx), err)
			continue
		}

		total++
		mc := gen.CapabilityFor(idx)
		verrs := gen.Check(g, mc)
		if len(verrs) == 0 {
			fmt.Printf("  %-*s  %dx%d  OK\n", nameWidth, fmt.Sprintf("level%d", idx), g.W, g.H)
			continue
		}

		failed++
		fmt.Printf("  %-*s  %dx%d  FAIL\n", nameWidth, fmt.Sprintf("level%d", idx), g.W, g.H)
		for _, verr := range verrs {
			fmt.Printf("  %-*s    %v\n", nameWidth, "", verr)
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d levels failed validation.\n", failed, total)
		os.Exit(1)
	}
	fmt.Printf("All %d levels passed.\n", total)
}
