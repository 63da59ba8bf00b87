package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/vovakirdan/levelsmith/internal/gen"
)

// levelDirPattern matches level directory names like "level12".
var levelDirPattern = regexp.MustCompile(`(?i)^level(\d+)$`)

// Scanner inspects an existing levels root so a new batch can resume
// numbering and sizing where the last one stopped.
type Scanner struct {
	Root string
}

// NewScanner creates a scanner over root.
func NewScanner(root string) *Scanner {
	return &Scanner{Root: root}
}

// LastIndex returns the highest existing level index, or 0 when the root is
// missing or holds no level directories.
func (s *Scanner) LastIndex() (int, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("levels: cannot scan %s: %w", s.Root, err)
	}

	last := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := levelDirPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if idx > last {
			last = idx
		}
	}
	return last, nil
}

// LastSize measures the map file of the given level and returns its
// dimensions. Anything missing or unreadable falls back to the virtual base
// size the first level grows from. Legacy roots that still carry .txt maps
// are measured the same way.
func (s *Scanner) LastSize(lastIndex int) (int, int) {
	if lastIndex <= 0 {
		return gen.DefaultWidth, gen.DefaultHeight
	}

	dir := filepath.Join(s.Root, fmt.Sprintf("level%d", lastIndex))
	path := filepath.Join(dir, fmt.Sprintf("level%d.map", lastIndex))
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, fmt.Sprintf("level%d.txt", lastIndex))
		if _, err := os.Stat(path); err != nil {
			return gen.DefaultWidth, gen.DefaultHeight
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return gen.DefaultWidth, gen.DefaultHeight
	}

	w, h := 0, 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if len(line) > w {
			w = len(line)
		}
		h++
	}
	if h == 0 {
		return gen.DefaultWidth, gen.DefaultHeight
	}
	return w, h
}
