package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelsmith/internal/config"
	"github.com/vovakirdan/levelsmith/internal/forge"
	"github.com/vovakirdan/levelsmith/internal/levels"
	"github.com/vovakirdan/levelsmith/internal/storage"
)

var (
	flagLevelsRoot string
	flagParallel   int
	flagAttempts   int
	flagNoStore    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [count]",
	Short: "Generate new levels onto the levels root",
	Long: `Generate a batch of new levels, continuing after the highest level
already present in the levels root.

Each level is sized up from its predecessor, painted, carved and
decorated, then checked for reachability under the movement capability
of its index. Layouts that cannot be traversed are rejected and
retried; only validated levels reach the disk.

Examples:
  levelsmith generate                 # 10 more levels
  levelsmith generate 5
  levelsmith generate 20 --parallel 4
  levelsmith generate 5 --seed 12345  # Reproducible batch
  levelsmith generate 3 --no-store    # Skip the catalog database`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagLevelsRoot, "levels-root", "", "Directory to write levels into (default from config)")
	generateCmd.Flags().IntVar(&flagParallel, "parallel", 0, "Parallel generation workers (default from config)")
	generateCmd.Flags().IntVar(&flagAttempts, "attempts", 0, "Retry ceiling per level (default from config)")
	generateCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record the batch in the catalog database")
}

func runGenerate(cmd *cobra.Command, args []string) {
	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid count %q\n", args[0])
			os.Exit(1)
		}
		count = n
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := flagLevelsRoot
	if root == "" {
		root = cfg.Levels.Root
	}
	workers := flagParallel
	if workers == 0 {
		workers = cfg.Generator.Workers
	}
	attempts := flagAttempts
	if attempts == 0 {
		attempts = cfg.Generator.Attempts
	}
	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}

	// Open catalog storage unless disabled
	var saver forge.CatalogSaver
	var store *storage.Store
	if !flagNoStore {
		store, err = storage.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open catalog database: %v\n", err)
			// Continue without the catalog - levels still land on disk
			store = nil
		} else {
			saver = store
		}
	}

	f := forge.New(forge.Options{
		Count:      count,
		Root:       root,
		Seed:       flagSeed,
		Workers:    workers,
		Attempts:   attempts,
		BaseWidth:  cfg.Generator.BaseWidth,
		BaseHeight: cfg.Generator.BaseHeight,
		Music: levels.MusicMeta{
			Playlist: cfg.Music.Playlist,
			Bitcrusher: levels.BitcrusherMeta{
				Bits:       cfg.Music.Bitcrusher.Bits,
				SampleRate: cfg.Music.Bitcrusher.SampleRate,
			},
		},
		Saver: saver,
	})

	results, runErr := f.Run()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Generated %d levels into %s\n", len(results), root)
}
