// levelsmith generates playable platformer levels and validates them.
//
// Usage:
//
//	levelsmith generate [count]   - Generate new levels onto the levels root
//	levelsmith validate [root]    - Re-check reachability of levels on disk
//	levelsmith inspect <index>    - Show one level's map and stats
//	levelsmith list               - List levels on disk
//	levelsmith browse             - Browse the catalog in a TUI table
//	levelsmith serve              - Serve the catalog browser over SSH
//
// Global flags:
//
//	--seed <value>  - Master RNG seed (0 = random based on time)
//	--db <path>     - Set catalog database path
//	--config <path> - Path to a config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   uint64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelsmith",
	Short: "Levelsmith - Generate and validate platformer levels",
	Long: `Levelsmith is a procedural level generator for tile-based
platformers. It paints terrain, carves pits, weaves hazards and keeps
only layouts a player can actually traverse, checked against a
per-level movement capability.

Available commands:
  generate - Generate new levels onto the levels root
  validate - Re-check reachability of levels on disk
  inspect  - Show one level's map and stats
  list     - List levels on disk
  browse   - Interactive catalog browser
  serve    - Serve the catalog browser over SSH

Examples:
  levelsmith generate 10
  levelsmith generate 5 --seed 12345
  levelsmith validate ./levels
  levelsmith inspect 7
  levelsmith serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Master RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to catalog database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
}
