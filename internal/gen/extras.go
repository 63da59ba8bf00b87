package gen

import (
	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// ExtrasPlacer drops optional pickups on small side platforms branching off
// the main route: star collectibles, and the rarer numbered orbs that grant
// upgrades or downgrades. Extras are decoration as far as reachability goes;
// only their platforms change the terrain.
type ExtrasPlacer struct {
	rng *SimpleRNG
}

// NewExtrasPlacer creates a placer drawing randomness from rng.
func NewExtrasPlacer(rng *SimpleRNG) *ExtrasPlacer {
	return &ExtrasPlacer{rng: rng}
}

// Place adds stars and orbs near random path columns, keeping a 10-column
// margin clear of the spawn and the goal. Every level gets at least one orb
// attempt; stars may be skipped entirely.
func (ep *ExtrasPlacer) Place(g *grid.Grid, heights HeightMap, spawnX, goalX, index int) {
	diff := Difficulty(index)

	stars := 1
	if diff >= 0.35 {
		stars = 1 + ep.rng.Intn(2)
	}
	if ep.rng.Chance(0.35) {
		stars = 0
	}

	for i := 0; i < stars; i++ {
		x, ok := pickPathColumn(ep.rng, heights, spawnX, goalX, 10)
		if !ok {
			return
		}
		groundY := heights[x]

		platY := core.Clamp(groundY-ep.rng.Range(2, 4), 2, g.H-4)
		run := ep.rng.Range(2, 4)
		for xx := x; xx < core.Min(g.W-2, x+run); xx++ {
			g.Set(xx, platY, grid.Platform)
		}

		starX := x + ep.rng.Range(0, 2)
		starY := platY - 1
		if g.At(starX, starY) == grid.Empty {
			g.Set(starX, starY, grid.Star)
		}
	}

	// at least one orb per level, up to one per 30 columns
	orbCount := ep.rng.Range(1, core.Max(1, g.W/30))

	placed := 0
	attempts := orbCount * 30
	for placed < orbCount && attempts > 0 {
		attempts--

		x, ok := pickPathColumn(ep.rng, heights, spawnX, goalX, 10)
		if !ok {
			break
		}
		groundY := heights[x]

		platY := core.Clamp(groundY-ep.rng.Range(1, 3), 2, g.H-4)
		run := ep.rng.Range(1, 3)
		for xx := x; xx < core.Min(g.W-2, x+run); xx++ {
			g.Set(xx, platY, grid.Platform)
		}

		orbX := x + ep.rng.Range(0, 1)
		orbY := platY - 1
		if g.At(orbX, orbY) == grid.Empty {
			g.Set(orbX, orbY, grid.OrbMin+grid.Tile(ep.rng.Intn(8)))
			placed++
		}
	}
}
