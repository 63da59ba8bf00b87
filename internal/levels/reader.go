package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/levelsmith/internal/grid"
)

// Read loads the grid of a level stored under root.
func Read(root string, index int) (*grid.Grid, error) {
	dir := filepath.Join(root, fmt.Sprintf("level%d", index))
	return ReadFile(filepath.Join(dir, fmt.Sprintf("level%d.map", index)))
}

// ReadFile loads a level grid from a map file. Blank lines are dropped and
// short rows padded, so ragged hand-edited maps still parse.
func ReadFile(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read map: %w", err)
	}

	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("levels: map %s is empty", path)
	}
	return grid.FromRows(rows), nil
}

// ReadMeta loads the sidecar metadata of a level stored under root.
func ReadMeta(root string, index int) (*Meta, error) {
	dir := filepath.Join(root, fmt.Sprintf("level%d", index))
	path := filepath.Join(dir, fmt.Sprintf("level%d.json", index))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot read metadata: %w", err)
	}
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("levels: cannot parse %s: %w", path, err)
	}
	return &m, nil
}
