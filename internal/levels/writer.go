// Package levels persists accepted levels on disk and reads existing roots
// back: one directory per level holding the ASCII map and a JSON sidecar the
// game engine consumes.
package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/levelsmith/internal/gen"
)

// Meta is the sidecar payload written next to each map file. The engine
// reads it to pick music and to chain levels: touching the goal tile loads
// the level named under the legend entry.
type Meta struct {
	Music        MusicMeta              `json:"music"`
	CurrentLevel string                 `json:"currentLevel"`
	Legend       map[string]LegendEntry `json:"legend"`
}

// MusicMeta selects the soundtrack and its bitcrusher effect.
type MusicMeta struct {
	Playlist   []string       `json:"playlist"`
	Bitcrusher BitcrusherMeta `json:"bitcrusher"`
}

// BitcrusherMeta holds the lo-fi effect parameters.
type BitcrusherMeta struct {
	Bits       int `json:"bits"`
	SampleRate int `json:"sample_rate"`
}

// LegendEntry binds behavior to a map tile.
type LegendEntry struct {
	OnCollision CollisionMeta `json:"on_collision"`
}

// CollisionMeta names the level to load when the player touches the tile.
type CollisionMeta struct {
	CurrentLevel string `json:"currentLevel"`
}

// DefaultMusic is the soundtrack stamped into sidecars when no config
// overrides it.
func DefaultMusic() MusicMeta {
	return MusicMeta{
		Playlist:   []string{"cool-hiphop-rap-beat-20230307-191928.mp3"},
		Bitcrusher: BitcrusherMeta{Bits: 8, SampleRate: 8000},
	}
}

// Writer persists accepted levels under the levels root, one directory per
// level: <root>/level{k}/level{k}.map plus level{k}.json.
type Writer struct {
	Root  string
	Music MusicMeta
}

// NewWriter creates a writer rooted at root stamping the given music
// metadata into every sidecar.
func NewWriter(root string, music MusicMeta) *Writer {
	return &Writer{Root: root, Music: music}
}

// Paths returns the directory, map path and sidecar path for a level index.
func (w *Writer) Paths(index int) (dir, mapPath, jsonPath string) {
	dir = filepath.Join(w.Root, fmt.Sprintf("level%d", index))
	mapPath = filepath.Join(dir, fmt.Sprintf("level%d.map", index))
	jsonPath = filepath.Join(dir, fmt.Sprintf("level%d.json", index))
	return dir, mapPath, jsonPath
}

// Write creates the level directory and writes sidecar and map. The level
// directory must not already exist: a level is written once, never silently
// overwritten.
func (w *Writer) Write(level *gen.Result) error {
	dir, mapPath, jsonPath := w.Paths(level.Index)

	if err := os.MkdirAll(w.Root, 0o755); err != nil {
		return fmt.Errorf("levels: cannot create levels root: %w", err)
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("levels: cannot create %s: %w", dir, err)
	}

	meta := Meta{
		Music:        w.Music,
		CurrentLevel: fmt.Sprintf("Level%d", level.Index),
		Legend: map[string]LegendEntry{
			"G": {OnCollision: CollisionMeta{
				CurrentLevel: fmt.Sprintf("Level%d", level.Index+1),
			}},
		},
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("levels: cannot encode metadata: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("levels: cannot write %s: %w", jsonPath, err)
	}

	if err := os.WriteFile(mapPath, []byte(level.Grid.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("levels: cannot write %s: %w", mapPath, err)
	}
	return nil
}
