package gen

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

// ValidationError describes a single problem found in a level grid.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Check validates a level grid against the given movement capability and
// returns all problems found. An empty result means the level is accepted:
// it has exactly one spawn and one goal, both settle on solid ground, and
// the goal is reachable from the spawn.
func Check(g *grid.Grid, mc Capability) []ValidationError {
	var errs []ValidationError

	if g.W == 0 || g.H == 0 {
		return append(errs, ValidationError{
			Code:    "EMPTY_GRID",
			Message: "grid has no cells",
		})
	}

	// Hand-edited maps can carry glyphs outside the alphabet. They parse as
	// air, so refuse them instead of validating a level that will not load.
	if bad := unknownGlyphs(g); bad != "" {
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_TILE",
			Message: fmt.Sprintf("glyphs outside the tile alphabet: %s", bad),
		})
	}

	sx, sy, n := locate(g, grid.Spawn)
	if n != 1 {
		errs = append(errs, ValidationError{
			Code:    "SPAWN_COUNT",
			Message: fmt.Sprintf("want exactly one spawn, found %d", n),
		})
	}
	gx, gy, n := locate(g, grid.Goal)
	if n != 1 {
		errs = append(errs, ValidationError{
			Code:    "GOAL_COUNT",
			Message: fmt.Sprintf("want exactly one goal, found %d", n),
		})
	}
	if len(errs) > 0 {
		return errs
	}

	start, ok := fallToStandable(g, sx, sy)
	if !ok {
		errs = append(errs, ValidationError{
			Code:    "SPAWN_VOID",
			Message: "spawn cannot settle on solid ground",
		})
	}
	target, ok2 := fallToStandable(g, gx, gy)
	if !ok2 {
		errs = append(errs, ValidationError{
			Code:    "GOAL_VOID",
			Message: "goal cannot settle on solid ground",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	if !searchRoute(g, start, target, mc) {
		errs = append(errs, ValidationError{
			Code:    "UNREACHABLE",
			Message: "no route from spawn to goal within movement capability",
		})
	}
	return errs
}

// Reachable reports whether the grid passes validation. This is the gate the
// generator retry loop runs on.
func Reachable(g *grid.Grid, mc Capability) bool {
	return len(Check(g, mc)) == 0
}

// state is a standable position: the player occupies (x, y) with a solid
// tile directly below.
type state struct {
	x, y int
}

// searchRoute runs a breadth-first search over standable states, expanding
// walk steps and jump arcs, until it dequeues the target or exhausts the
// level.
func searchRoute(g *grid.Grid, start, target state, mc Capability) bool {
	queue := []state{start}
	visited := map[state]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return true
		}
		for _, next := range neighbors(g, cur, mc) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// neighbors yields every standable state reachable from cur with one walk
// step or one jump arc under mc.
func neighbors(g *grid.Grid, cur state, mc Capability) []state {
	var out []state

	// walk/step moves: one column over, at most one row up or down before
	// the fall reduction kicks in
	for _, dx := range []int{-1, 1} {
		for dy := -1; dy <= 1; dy++ {
			if next, ok := tryLand(g, cur.x+dx, cur.y+dy); ok {
				out = append(out, next)
			}
		}
	}

	// jump arcs: horizontal reach MaxGap+1, rise up to MaxJumpUp
	maxDX := mc.MaxGap + 1
	for dx := -maxDX; dx <= maxDX; dx++ {
		if dx == 0 {
			continue
		}
		for dy := -mc.MaxJumpUp; dy <= 0; dy++ {
			tx, ty := cur.x+dx, cur.y+dy
			if tx < 1 || tx > g.W-2 || ty < 1 || ty > g.H-2 {
				continue
			}

			// corridor check at the apex approximation: the higher of the
			// start and destination rows, so low obstacles can be cleared
			corridorY := core.Min(cur.y, ty)
			step := 1
			if dx < 0 {
				step = -1
			}
			blocked := false
			for xx := cur.x + step; xx != tx+step; xx += step {
				if !g.At(xx, corridorY).Passable() {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}

			next, ok := tryLand(g, tx, ty)
			if !ok {
				continue
			}
			// reject jumps whose landing credits an oversized drop
			if next.y-cur.y > mc.MaxDrop {
				continue
			}
			out = append(out, next)
		}
	}

	return out
}

// tryLand checks a move destination: it must be interior and passable, then
// it reduces to its standable state via free fall.
func tryLand(g *grid.Grid, x, y int) (state, bool) {
	if x < 1 || x > g.W-2 || y < 1 || y > g.H-2 {
		return state{}, false
	}
	if !g.At(x, y).Passable() {
		return state{}, false
	}
	return fallToStandable(g, x, y)
}

// fallToStandable drops from (x, y) until the cell below is no longer
// passable, then accepts the position only when it is interior and the
// support below is solid. Hazard support is not solid, so a fall that ends
// on spikes fails.
func fallToStandable(g *grid.Grid, x, y int) (state, bool) {
	if !g.At(x, y).Passable() {
		return state{}, false
	}

	yy := y
	for yy+1 < g.H && g.At(x, yy+1).Passable() {
		yy++
	}

	if x >= 1 && x <= g.W-2 && yy >= 1 && yy <= g.H-2 && g.At(x, yy+1).Solid() {
		return state{x: x, y: yy}, true
	}
	return state{}, false
}

// unknownGlyphs lists the distinct tiles outside the alphabet, in scan order.
func unknownGlyphs(g *grid.Grid) string {
	seen := map[grid.Tile]bool{}
	var list []string
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := g.At(x, y)
			if !t.Known() && !seen[t] {
				seen[t] = true
				list = append(list, fmt.Sprintf("%q", string(rune(t))))
			}
		}
	}
	return strings.Join(list, ", ")
}

// locate scans for t, returning the first hit and the total count.
func locate(g *grid.Grid, t grid.Tile) (x, y, count int) {
	for yy := 0; yy < g.H; yy++ {
		for xx := 0; xx < g.W; xx++ {
			if g.At(xx, yy) == t {
				if count == 0 {
					x, y = xx, yy
				}
				count++
			}
		}
	}
	return x, y, count
}
