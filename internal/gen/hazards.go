package gen

import (
	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// HazardWeaver lays spike clusters along the main route in two patterns.
// An "over" group puts spikes on the walking row and a bridge two tiles up,
// so crossing means climbing onto the bridge. An "under" group hangs spikes
// at head height, so crossing means staying low. Group count and length
// scale with width and difficulty.
type HazardWeaver struct {
	rng *SimpleRNG
}

// NewHazardWeaver creates a weaver drawing randomness from rng.
func NewHazardWeaver(rng *SimpleRNG) *HazardWeaver {
	return &HazardWeaver{rng: rng}
}

// Weave places hazard groups on path columns, keeping a 10-column margin
// clear of both the spawn and the goal. Placement stops for the whole level
// as soon as no candidate column remains.
func (hw *HazardWeaver) Weave(g *grid.Grid, heights HeightMap, spawnX, goalX, index int) {
	diff := Difficulty(index)
	groups := core.Clamp(int(float64(g.W)/18.0*(0.8+diff*2.8)), 2, 28)

	for i := 0; i < groups; i++ {
		x0, ok := pickPathColumn(hw.rng, heights, spawnX, goalX, 10)
		if !ok {
			return
		}
		groundY := heights[x0]

		length := hw.rng.Range(3, 5+int(diff*8))
		x1 := core.Min(goalX-2, x0+length-1)
		if x1 <= x0 {
			continue
		}

		if hw.rng.Chance(0.45 + diff*0.25) {
			hw.placeOverGroup(g, x0, x1, groundY)
		} else {
			hw.placeUnderGroup(g, x0, x1, groundY)
		}
	}
}

// placeOverGroup covers the run with spikes one row above the ground and
// spans a bridge platform above them. When the bridge row would touch the
// border the bridge is dropped but the spikes stay; the validator decides
// whether the level survives that.
func (hw *HazardWeaver) placeOverGroup(g *grid.Grid, x0, x1, groundY int) {
	spikeY := groundY - 1

	for x := x0; x <= x1; x++ {
		if g.At(x, groundY) != grid.Platform {
			g.Set(x, groundY, grid.Platform)
		}
		if spikeY >= 1 && spikeY <= g.H-2 {
			g.Set(x, spikeY, grid.Hazard)
		}
	}

	bridgeY := spikeY - 1
	if bridgeY <= 1 {
		return
	}
	for x := x0 - 1; x <= x1+1; x++ {
		if x >= 1 && x <= g.W-2 {
			g.Set(x, bridgeY, grid.Platform)
		}
	}
}

// placeUnderGroup hangs spikes two rows above a solid ground run. When the
// ceiling row would touch the border the group is skipped whole.
func (hw *HazardWeaver) placeUnderGroup(g *grid.Grid, x0, x1, groundY int) {
	ceilingY := groundY - 2
	if ceilingY <= 1 {
		return
	}

	for x := x0; x <= x1; x++ {
		if g.At(x, groundY) != grid.Platform {
			g.Set(x, groundY, grid.Platform)
		}
	}
	for x := x0; x <= x1; x++ {
		g.Set(x, ceilingY, grid.Hazard)
	}
}
