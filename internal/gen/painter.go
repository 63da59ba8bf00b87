package gen

import (
	"sort"

	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// Painter lays down the decorative terrain field: a floor band, layered
// platforms, floating islands, ruined structures, connector staircases and
// dead-end ledges. Stages only add solid tiles over empty cells; nothing a
// stage paints is erased by a later stage. Density falls as difficulty
// rises, so early levels read dense and late levels void-heavy.
type Painter struct {
	rng *SimpleRNG
}

// NewPainter creates a painter drawing randomness from rng.
func NewPainter(rng *SimpleRNG) *Painter {
	return &Painter{rng: rng}
}

// Paint runs all terrain stages in fixed order.
func (p *Painter) Paint(g *grid.Grid, index int) {
	diff := Difficulty(index)
	p.paintFloorBand(g, diff)
	p.paintPlatformLayers(g, diff)
	p.paintIslands(g, diff)
	p.paintStructures(g, diff)
	p.paintConnectors(g, diff)
	p.paintDeadEnds(g, diff)
}

// paintFloorBand lays an interrupted floor along the second-to-last row.
// Coverage starts near-full and erodes with difficulty; the gaps between
// segments widen on the back half of the curve.
func (p *Painter) paintFloorBand(g *grid.Grid, diff float64) {
	floorY := g.H - 2
	coverage := 0.92 - diff*0.55

	x := 1
	for x < g.W-1 {
		if p.rng.Chance(coverage) {
			seg := p.rng.Range(5, 14)
			for xx := x; xx < core.Min(g.W-1, x+seg); xx++ {
				g.Set(xx, floorY, grid.Platform)
			}
			x += seg
		} else {
			gapMax := 5
			if diff > 0.5 {
				gapMax = 10
			}
			x += p.rng.Range(2, gapMax)
		}
	}
}

// paintPlatformLayers scatters horizontal platform runs across a handful of
// distinct rows. Taller grids get more layers; harder levels get shorter
// runs separated by wider gaps.
func (p *Painter) paintPlatformLayers(g *grid.Grid, diff float64) {
	layers := 3 + g.H/18 + int(diff*4)

	var ys []int
	for i := 0; i < layers*2; i++ {
		y := p.rng.Range(2, g.H-5)
		if !containsInt(ys, y) {
			ys = append(ys, y)
		}
		if len(ys) >= layers {
			break
		}
	}
	sort.Ints(ys)

	coverage := 0.65 - diff*0.35
	for _, y := range ys {
		x := 1
		for x < g.W-1 {
			if p.rng.Chance(coverage) {
				segMin, segMax := 4, 14
				if diff >= 0.5 {
					segMin = 2
				}
				if diff >= 0.4 {
					segMax = 9
				}
				seg := p.rng.Range(segMin, segMax)
				for xx := x; xx < core.Min(g.W-1, x+seg); xx++ {
					if g.At(xx, y) == grid.Empty {
						g.Set(xx, y, grid.Platform)
					}
				}
				x += seg
			} else {
				gapMin, gapMax := 1, 5
				if diff >= 0.4 {
					gapMin, gapMax = 3, 14
				}
				x += p.rng.Range(gapMin, gapMax)
			}
		}
	}
}

// paintIslands drops small free-floating platforms anywhere in the interior.
// The count scales with grid area and thins out on harder levels.
func (p *Painter) paintIslands(g *grid.Grid, diff float64) {
	count := core.Clamp(int(float64(g.W*g.H)*(0.0025-diff*0.0015)), 4, 30)

	for i := 0; i < count; i++ {
		w := p.rng.Range(2, 6)
		x := p.rng.Range(2, g.W-3-w)
		y := p.rng.Range(2, g.H-6)
		for xx := x; xx < x+w; xx++ {
			if g.At(xx, y) == grid.Empty {
				g.Set(xx, y, grid.Platform)
			}
		}
	}
}

// paintStructures places larger compound shapes: mostly staircases, with the
// occasional ruined pillar.
func (p *Painter) paintStructures(g *grid.Grid, diff float64) {
	count := core.Clamp(int(float64(g.W)*(0.10-diff*0.04))+g.H/18, 4, 24)

	for i := 0; i < count; i++ {
		if p.rng.Chance(0.70) {
			p.paintStaircase(g, diff)
		} else {
			p.paintRuinPillar(g, diff)
		}
	}
}

// paintStaircase walks a diagonal run of platform tiles with a short landing
// at each end. The walk stops early at the interior margin, leaving a
// truncated stair rather than clipping through the border.
func (p *Painter) paintStaircase(g *grid.Grid, diff float64) {
	steps := p.rng.Range(5, 10+int(diff*10))

	rise := 1
	if p.rng.Chance(0.5) {
		rise = -1
	}
	runDir := 1
	if p.rng.Chance(0.5) {
		runDir = -1
	}

	var x0 int
	if runDir == 1 {
		x0 = p.rng.Range(2, g.W-3-steps)
	} else {
		x0 = p.rng.Range(2+steps, g.W-3)
	}
	y0 := p.rng.Range(3, g.H-6)

	landing := p.rng.Range(2, 4)
	for lx := 0; lx < landing; lx++ {
		xx := x0 + lx*runDir
		if xx >= 1 && xx <= g.W-2 {
			g.Set(xx, y0, grid.Platform)
		}
	}

	x, y := x0, y0
	for i := 0; i < steps; i++ {
		if x < 2 || x > g.W-3 || y < 2 || y > g.H-4 {
			break
		}
		g.Set(x, y, grid.Platform)
		x += runDir
		y += rise
	}

	landing = p.rng.Range(2, 4)
	for lx := 0; lx < landing; lx++ {
		xx := x + lx*runDir
		if xx >= 1 && xx <= g.W-2 && y >= 1 && y <= g.H-2 {
			g.Set(xx, y, grid.Platform)
		}
	}
}

// paintRuinPillar raises a vertical wall column with window holes punched at
// random heights. Windows skip the cell entirely: whatever stood there stays,
// the pillar never erases earlier work.
func (p *Painter) paintRuinPillar(g *grid.Grid, diff float64) {
	x := p.rng.Range(2, g.W-3)
	top := p.rng.Range(2, g.H/2)
	bottom := p.rng.Range(g.H/2, g.H-3)
	if bottom-top < 4 {
		return
	}

	windowRate := 0.45 + diff*0.25
	for y := top; y < bottom; y++ {
		if p.rng.Chance(windowRate) {
			continue
		}
		if g.At(x, y) == grid.Empty {
			g.Set(x, y, grid.Wall)
		}
	}
}

// paintConnectors adds extra staircases to tie the platform layers together.
func (p *Painter) paintConnectors(g *grid.Grid, diff float64) {
	count := core.Clamp(int(float64(g.W)*(0.10-diff*0.05))+g.H/20, 3, 22)
	for i := 0; i < count; i++ {
		p.paintStaircase(g, diff)
	}
}

// paintDeadEnds pushes short ledges inward from either half of the grid.
// They lead nowhere on purpose.
func (p *Painter) paintDeadEnds(g *grid.Grid, diff float64) {
	count := core.Clamp(int(float64(g.W)*(0.18-diff*0.06)), 3, 20)

	for i := 0; i < count; i++ {
		y := p.rng.Range(2, g.H-6)

		maxLen := 10
		if diff >= 0.5 {
			maxLen = 7
		}
		length := p.rng.Range(3, maxLen)

		if p.rng.Chance(0.5) {
			x0 := p.rng.Range(2, g.W/2)
			for x := x0; x < core.Min(g.W-2, x0+length); x++ {
				if g.At(x, y) == grid.Empty {
					g.Set(x, y, grid.Platform)
				}
			}
		} else {
			x0 := p.rng.Range(g.W/2, g.W-3)
			for x := x0; x > core.Max(1, x0-length); x-- {
				if g.At(x, y) == grid.Empty {
					g.Set(x, y, grid.Platform)
				}
			}
		}
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
