package gen

import (
	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// NoHeight marks a column the main path never touched.
const NoHeight = -1

// HeightMap records the main-path ground row for each column, or NoHeight
// where the path placed nothing. Hazard and extras placement anchor on it.
type HeightMap []int

func newHeightMap(w int) HeightMap {
	hm := make(HeightMap, w)
	for i := range hm {
		hm[i] = NoHeight
	}
	return hm
}

// pickPathColumn picks a random path column between spawn and goal, keeping
// the given margin clear of both. Returns false when no column qualifies.
func pickPathColumn(rng *SimpleRNG, heights HeightMap, spawnX, goalX, margin int) (int, bool) {
	lo := spawnX + margin
	hi := goalX - margin
	if hi <= lo {
		return 0, false
	}

	var candidates []int
	for x := lo; x < hi; x++ {
		if heights[x] != NoHeight {
			candidates = append(candidates, x)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return rng.Pick(candidates), true
}

// PathPlanner overlays the guaranteed route: a chain of platform segments
// from the spawn toward the goal column, with gaps and elevation steps that
// stay within the level's movement capability.
type PathPlanner struct {
	rng *SimpleRNG
}

// NewPathPlanner creates a planner drawing randomness from rng.
func NewPathPlanner(rng *SimpleRNG) *PathPlanner {
	return &PathPlanner{rng: rng}
}

// Build lays the path tiles and returns the ground row the path ended on
// plus the per-column height map. Segments shrink and gap/step chances climb
// with difficulty, but every gap fits MaxGap and every elevation step stays
// within the jump and drop limits, so the route itself stays clearable.
func (p *PathPlanner) Build(g *grid.Grid, spawnX, spawnY, goalX int, mc Capability, index int) (int, HeightMap) {
	diff := Difficulty(index)
	heights := newHeightMap(g.W)

	groundY := core.Clamp(spawnY+1, 2, g.H-3)

	segMax := core.Clamp(8-int(diff*4), 2, 8)
	gapChance := 0.18 + diff*0.45
	stepChance := 0.30 + diff*0.55

	// stable platform under and ahead of the spawn
	for xx := core.Max(1, spawnX-1); xx < core.Min(g.W-1, spawnX+6); xx++ {
		g.Set(xx, groundY, grid.Platform)
		heights[xx] = groundY
	}

	x := core.Min(g.W-3, spawnX+5)
	targetEnd := core.Max(spawnX+12, goalX-2)

	for x < targetEnd {
		segLen := p.rng.Range(2, segMax)
		for i := 0; i < segLen && x < targetEnd; i++ {
			g.Set(x, groundY, grid.Platform)
			heights[x] = groundY
			x++
		}
		if x >= targetEnd {
			break
		}

		if p.rng.Chance(gapChance) {
			x = core.Min(targetEnd, x+p.rng.Range(0, mc.MaxGap))
		}
		if p.rng.Chance(stepChance) {
			groundY = core.Clamp(groundY+p.rng.Range(-mc.MaxJumpUp, mc.MaxDrop), 2, g.H-3)
		}
	}

	// reinforced approach in front of the goal
	for xx := core.Max(1, goalX-8); xx < goalX; xx++ {
		g.Set(xx, groundY, grid.Platform)
		heights[xx] = groundY
	}

	return groundY, heights
}

// CarveCorridor punches headroom openings through wall cells hanging over
// the route, so painted terrain cannot brick the path. Only walls are
// cleared; platforms and everything else stay.
func (p *PathPlanner) CarveCorridor(g *grid.Grid, heights HeightMap) {
	for x, groundY := range heights {
		if groundY == NoHeight {
			continue
		}
		if !p.rng.Chance(0.35) {
			continue
		}

		halfSpan := p.rng.Range(0, 1)
		x0 := core.Clamp(x-halfSpan, 1, g.W-2)
		x1 := core.Clamp(x+halfSpan, 1, g.W-2)

		for xx := x0; xx <= x1; xx++ {
			headroom := p.rng.Range(2, 3)
			for dy := 1; dy <= headroom; dy++ {
				y := groundY - dy
				if y >= 1 && y <= g.H-2 && g.At(xx, y) == grid.Wall {
					g.Set(xx, y, grid.Empty)
				}
			}
		}
	}
}
