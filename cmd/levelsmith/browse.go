package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/levelsmith/internal/config"
	"github.com/vovakirdan/levelsmith/internal/platform/tui"
	"github.com/vovakirdan/levelsmith/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the level catalog interactively",
	Long: `Open the catalog browser in the local terminal.

Use arrow keys or j/k to scroll, r to refresh, q to quit.

Examples:
  levelsmith browse
  levelsmith browse --db ./catalog.db`,
	Run: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open catalog database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	_, runErr := tui.RunCatalog(store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
