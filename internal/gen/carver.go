package gen

import (
	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// Carver punches pit voids down through the painted terrain above the floor
// band. Pits grow more frequent, wider and deeper as difficulty rises,
// leaving late levels riddled with drops the main path has to bridge.
type Carver struct {
	rng *SimpleRNG
}

// NewCarver creates a carver drawing randomness from rng.
func NewCarver(rng *SimpleRNG) *Carver {
	return &Carver{rng: rng}
}

// Carve removes pit rectangles from the grid. The border cage is never
// touched; pits bottom out on the floor row.
func (c *Carver) Carve(g *grid.Grid, index int) {
	diff := Difficulty(index)
	floorY := g.H - 2

	pits := core.Clamp(int(float64(g.W)*(0.04+diff*0.10)), 1, 30)
	for i := 0; i < pits; i++ {
		pitW := c.rng.Range(2, 4+int(diff*10))
		pitH := c.rng.Range(3, 6+int(diff*18))

		x0 := c.rng.Range(2, g.W-3-pitW)
		y0 := core.Clamp(floorY-pitH, 2, floorY-1)
		g.ClearRect(x0, y0, x0+pitW, floorY-1)
	}
}
