package grid

import (
	"strings"

	"github.com/vovakirdan/levelsmith/internal/core"
)

// Grid represents the level board as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	cells []Tile
}

// New creates a grid with all cells empty.
func New(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		cells: make([]Tile, w*h),
	}
	for i := range g.cells {
		g.cells[i] = Empty
	}
	return g
}

// FromRows builds a grid from serialized rows. Shorter rows are padded with
// empty tiles to the widest row, matching how the validator treats ragged
// map files.
func FromRows(rows []string) *Grid {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}

	g := New(w, h)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			g.cells[y*w+x] = Tile(r[x])
		}
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the tile at the given coordinate. Out-of-bounds reads return
// Wall, so edge logic never needs separate boundary branches.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[g.index(x, y)]
}

// Set writes the tile at the given coordinate. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = t
	}
}

// AddCage stamps a one-tile-thick wall border around the grid.
func (g *Grid) AddCage() {
	for x := 0; x < g.W; x++ {
		g.cells[g.index(x, 0)] = Wall
		g.cells[g.index(x, g.H-1)] = Wall
	}
	for y := 0; y < g.H; y++ {
		g.cells[g.index(0, y)] = Wall
		g.cells[g.index(g.W-1, y)] = Wall
	}
}

// FillRect sets every cell in the rectangle (x0,y0)-(x1,y1), inclusive of
// both corners, clamped to the interior so the border cage is never touched.
func (g *Grid) FillRect(x0, y0, x1, y1 int, t Tile) {
	yLo := core.Max(1, y0)
	yHi := core.Min(g.H-2, y1)
	xLo := core.Max(1, x0)
	xHi := core.Min(g.W-2, x1)
	for y := yLo; y <= yHi; y++ {
		for x := xLo; x <= xHi; x++ {
			g.cells[g.index(x, y)] = t
		}
	}
}

// ClearRect resets every cell in the rectangle to empty, with the same
// inclusive interior clamping as FillRect.
func (g *Grid) ClearRect(x0, y0, x1, y1 int) {
	g.FillRect(x0, y0, x1, y1, Empty)
}

// Rows exports the grid as an ordered slice of fixed-width strings.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	buf := make([]byte, g.W)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			buf[x] = byte(g.cells[g.index(x, y)])
		}
		rows[y] = string(buf)
	}
	return rows
}

// String renders the grid with newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		cells: cells,
	}
}

// Count returns the number of cells holding the given tile.
func (g *Grid) Count(t Tile) int {
	count := 0
	for _, c := range g.cells {
		if c == t {
			count++
		}
	}
	return count
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
