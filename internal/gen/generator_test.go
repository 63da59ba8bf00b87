package gen

import (
	"strings"
	"testing"

	"github.com/vovakirdan/levelsmith/internal/core"
	"github.com/vovakirdan/levelsmith/internal/grid"
)

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Index: 1, Width: 50, Height: 16}

	r1, err := NewGenerator(NewRNG(12345)).Generate(p)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	r2, err := NewGenerator(NewRNG(12345)).Generate(p)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !r1.Grid.Equal(r2.Grid) {
		t.Error("same seed produced different grids")
	}
	if r1.SpawnX != r2.SpawnX || r1.SpawnY != r2.SpawnY {
		t.Error("same seed produced different spawn anchors")
	}
	if r1.Attempts != r2.Attempts {
		t.Error("same seed consumed a different number of attempts")
	}
}

func TestGenerateDistinctSeeds(t *testing.T) {
	p := Params{Index: 1, Width: 50, Height: 16}

	r1, err := NewGenerator(NewRNG(1)).Generate(p)
	if err != nil {
		t.Fatalf("seed 1 failed: %v", err)
	}
	r2, err := NewGenerator(NewRNG(2)).Generate(p)
	if err != nil {
		t.Fatalf("seed 2 failed: %v", err)
	}

	if r1.Grid.Equal(r2.Grid) {
		t.Error("different seeds produced identical grids")
	}
}

func TestGenerateStructure(t *testing.T) {
	p := Params{Index: 3, Width: 64, Height: 20}
	r, err := NewGenerator(NewRNG(99)).Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	g := r.Grid

	// cage intact
	for x := 0; x < g.W; x++ {
		if g.At(x, 0) != grid.Wall || g.At(x, g.H-1) != grid.Wall {
			t.Fatalf("border broken at column %d", x)
		}
	}
	for y := 0; y < g.H; y++ {
		if g.At(0, y) != grid.Wall || g.At(g.W-1, y) != grid.Wall {
			t.Fatalf("border broken at row %d", y)
		}
	}

	// exactly one spawn and goal, at the advertised anchors
	if _, _, n := locate(g, grid.Spawn); n != 1 {
		t.Errorf("found %d spawn tiles, want 1", n)
	}
	if _, _, n := locate(g, grid.Goal); n != 1 {
		t.Errorf("found %d goal tiles, want 1", n)
	}
	if g.At(r.SpawnX, r.SpawnY) != grid.Spawn {
		t.Errorf("spawn anchor (%d,%d) does not hold the spawn tile", r.SpawnX, r.SpawnY)
	}
	if g.At(r.GoalX, r.GoalY) != grid.Goal {
		t.Errorf("goal anchor (%d,%d) does not hold the goal tile", r.GoalX, r.GoalY)
	}

	// spawn in the left sixth and lower half, goal on the right border column
	if r.SpawnX < 2 || r.SpawnX > core.Max(2, p.Width/6) {
		t.Errorf("spawn x = %d outside the left sixth", r.SpawnX)
	}
	if r.SpawnY < p.Height/2 {
		t.Errorf("spawn y = %d above the lower half", r.SpawnY)
	}
	if r.GoalX != p.Width-2 {
		t.Errorf("goal x = %d, want %d", r.GoalX, p.Width-2)
	}

	// the shipped grid passes validation under its own capability
	if errs := Check(g, r.Capability); len(errs) != 0 {
		t.Errorf("generated level fails its own validation: %v", errs)
	}

	if r.Attempts < 1 || r.Attempts > DefaultAttempts {
		t.Errorf("attempts = %d, want within [1, %d]", r.Attempts, DefaultAttempts)
	}

	// only known tiles anywhere
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.At(x, y).Known() {
				t.Fatalf("unknown tile %q at (%d,%d)", g.At(x, y), x, y)
			}
		}
	}
}

func TestGenerateAcrossIndices(t *testing.T) {
	sizes := []struct {
		index int
		w, h  int
	}{
		{1, 50, 16},
		{5, 80, 22},
		{12, 120, 30},
	}

	master := uint64(777)
	for _, tt := range sizes {
		r, err := NewGenerator(NewRNG(LevelSeed(master, tt.index))).Generate(Params{
			Index:  tt.index,
			Width:  tt.w,
			Height: tt.h,
		})
		if err != nil {
			t.Fatalf("level %d: %v", tt.index, err)
		}
		if errs := Check(r.Grid, CapabilityFor(tt.index)); len(errs) != 0 {
			t.Errorf("level %d fails validation: %v", tt.index, errs)
		}
	}
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	// a height of 6 folds the path's ground row onto the spawn row, so every
	// attempt paves over the spawn marker and no candidate can validate
	res, err := NewGenerator(NewRNG(424242)).Generate(Params{Index: 1, Width: 35, Height: 6, Attempts: 3})
	if err == nil {
		t.Fatalf("expected exhaustion error, got a level after %d attempts", res.Attempts)
	}
	if res != nil {
		t.Fatalf("failed generation should return a nil result, got %+v", res)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("error should name the attempt ceiling: %v", err)
	}
}
