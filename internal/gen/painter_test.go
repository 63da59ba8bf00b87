package gen

import (
	"testing"

	"github.com/vovakirdan/levelsmith/internal/grid"
)

func caged(w, h int) *grid.Grid {
	g := grid.New(w, h)
	g.AddCage()
	return g
}

func TestPainterOnlyAddsSolids(t *testing.T) {
	g := caged(60, 20)
	NewPainter(NewRNG(5)).Paint(g, 1)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			switch g.At(x, y) {
			case grid.Empty, grid.Wall, grid.Platform:
			default:
				t.Fatalf("painter wrote %q at (%d,%d)", g.At(x, y), x, y)
			}
		}
	}
	if g.Count(grid.Platform) == 0 {
		t.Error("painter placed no platforms at all")
	}
}

func TestPainterKeepsCage(t *testing.T) {
	g := caged(60, 20)
	NewPainter(NewRNG(5)).Paint(g, 10)

	for x := 0; x < g.W; x++ {
		if g.At(x, 0) != grid.Wall || g.At(x, g.H-1) != grid.Wall {
			t.Fatalf("painter broke the border at column %d", x)
		}
	}
	for y := 0; y < g.H; y++ {
		if g.At(0, y) != grid.Wall || g.At(g.W-1, y) != grid.Wall {
			t.Fatalf("painter broke the border at row %d", y)
		}
	}
}

func TestPainterDensityFallsWithDifficulty(t *testing.T) {
	// averaged over a few seeds, late levels carry noticeably fewer solids
	solidShare := func(index int) float64 {
		total := 0
		for seed := uint64(1); seed <= 5; seed++ {
			g := caged(120, 30)
			NewPainter(NewRNG(seed)).Paint(g, index)
			total += g.Count(grid.Platform) + g.Count(grid.Wall)
		}
		return float64(total) / 5
	}

	early := solidShare(1)
	late := solidShare(40)
	if late >= early {
		t.Errorf("solid density did not fall with difficulty: early %.0f, late %.0f", early, late)
	}
}

func TestPainterDeterministic(t *testing.T) {
	g1 := caged(60, 20)
	g2 := caged(60, 20)
	NewPainter(NewRNG(7)).Paint(g1, 4)
	NewPainter(NewRNG(7)).Paint(g2, 4)

	if !g1.Equal(g2) {
		t.Error("same seed painted different terrain")
	}
}

func TestCarverKeepsCageAndBounds(t *testing.T) {
	g := caged(60, 20)
	NewPainter(NewRNG(3)).Paint(g, 8)
	NewCarver(NewRNG(4)).Carve(g, 8)

	for x := 0; x < g.W; x++ {
		if g.At(x, 0) != grid.Wall || g.At(x, g.H-1) != grid.Wall {
			t.Fatalf("carver broke the border at column %d", x)
		}
	}
	for y := 0; y < g.H; y++ {
		if g.At(0, y) != grid.Wall || g.At(g.W-1, y) != grid.Wall {
			t.Fatalf("carver broke the border at row %d", y)
		}
	}
}

func TestCarverOnlyRemoves(t *testing.T) {
	g := caged(60, 20)
	NewPainter(NewRNG(3)).Paint(g, 8)
	before := g.Count(grid.Empty)

	NewCarver(NewRNG(4)).Carve(g, 8)
	after := g.Count(grid.Empty)

	if after < before {
		t.Errorf("carving reduced empty cells from %d to %d", before, after)
	}
}
