// Package gen implements the procedural level pipeline: difficulty-scaled
// terrain painting, void carving, main-path planning, hazard weaving, extras
// placement and the reachability search that accepts or rejects each
// candidate. Generation is a filter, not a proof: candidates are built
// loose, then validated, and rejected wholes are thrown away.
package gen

import (
	"fmt"

	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// DefaultAttempts is the retry ceiling for one level.
const DefaultAttempts = 120

// Params configures generation of a single level.
type Params struct {
	Index    int // 1-based level index
	Width    int
	Height   int
	Attempts int // retry ceiling, DefaultAttempts when <= 0
}

// Result is an accepted level.
type Result struct {
	Index      int
	Grid       *grid.Grid
	SpawnX     int
	SpawnY     int
	GoalX      int
	GoalY      int
	Capability Capability
	Attempts   int // attempts consumed, including the successful one
}

// Generator builds levels by running the full pipeline against fresh grids
// until a candidate validates. All randomness flows from the one stream the
// generator was created with, so a level is a pure function of its seed.
type Generator struct {
	rng     *SimpleRNG
	painter *Painter
	carver  *Carver
	path    *PathPlanner
	hazards *HazardWeaver
	extras  *ExtrasPlacer
}

// NewGenerator creates a generator over the given random stream.
func NewGenerator(rng *SimpleRNG) *Generator {
	return &Generator{
		rng:     rng,
		painter: NewPainter(rng),
		carver:  NewCarver(rng),
		path:    NewPathPlanner(rng),
		hazards: NewHazardWeaver(rng),
		extras:  NewExtrasPlacer(rng),
	}
}

// Generate produces one validated level. Every attempt starts from a fresh
// caged grid; a candidate that fails validation is discarded whole and never
// repaired. Exhausting the ceiling is a hard error, an unreachable level
// must never ship.
func (lg *Generator) Generate(p Params) (*Result, error) {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	mc := CapabilityFor(p.Index)

	for attempt := 1; attempt <= attempts; attempt++ {
		g := grid.New(p.Width, p.Height)
		g.AddCage()

		// rich world first, route and anchors on top of it
		lg.painter.Paint(g, p.Index)
		lg.carver.Carve(g, p.Index)

		// spawn in the left sixth, lower half
		spawnX := lg.rng.Range(2, core.Max(2, p.Width/6))
		spawnY := lg.rng.Range(p.Height/2, core.Max(p.Height/2, p.Height-6))
		g.Set(spawnX, spawnY, grid.Spawn)

		goalX := p.Width - 2

		finalGroundY, heights := lg.path.Build(g, spawnX, spawnY, goalX, mc, p.Index)
		lg.path.CarveCorridor(g, heights)

		// goal near the right border at a height taken from the path end,
		// with support ensured beneath it
		goalY := core.Clamp(finalGroundY-1, 1, p.Height-3)
		if g.At(goalX, goalY+1) == grid.Empty {
			g.Set(goalX, goalY+1, grid.Platform)
		}
		g.Set(goalX, goalY, grid.Goal)

		lg.hazards.Weave(g, heights, spawnX, goalX, p.Index)
		lg.extras.Place(g, heights, spawnX, goalX, p.Index)

		if Reachable(g, mc) {
			return &Result{
				Index:      p.Index,
				Grid:       g,
				SpawnX:     spawnX,
				SpawnY:     spawnY,
				GoalX:      goalX,
				GoalY:      goalY,
				Capability: mc,
				Attempts:   attempt,
			}, nil
		}
	}

	return nil, fmt.Errorf("gen: no reachable layout for level%d after %d attempts", p.Index, attempts)
}
