package gen

import (
	"strings"
	"testing"

	"github.com/vovakirdan/levelsmith/internal/grid"
)

func fixture(rows ...string) *grid.Grid {
	return grid.FromRows(rows)
}

func TestFlatWalkReachable(t *testing.T) {
	g := fixture(
		"######",
		"#S..G#",
		"#====#",
		"######",
	)
	mc := Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}

	if !Reachable(g, mc) {
		t.Error("flat corridor should be walkable with minimal capability")
	}
}

func TestGapNeedsCapability(t *testing.T) {
	// two-column pit, two tiles deep, between spawn and goal ledges
	g := fixture(
		"########",
		"#S....G#",
		"#==..==#",
		"#==..==#",
		"########",
	)

	if Reachable(g, Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}) {
		t.Error("two-column gap should not be clearable with MaxGap 1")
	}
	if !Reachable(g, Capability{MaxJumpUp: 1, MaxGap: 2, MaxDrop: 2}) {
		t.Error("two-column gap should be clearable with MaxGap 2")
	}
}

func TestHazardBlocksCorridor(t *testing.T) {
	spiked := fixture(
		"########",
		"#S.^..G#",
		"#======#",
		"########",
	)
	clear := fixture(
		"########",
		"#S....G#",
		"#======#",
		"########",
	)
	mc := Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}

	if Reachable(spiked, mc) {
		t.Error("spike on the only walking row should block the route")
	}
	if !Reachable(clear, mc) {
		t.Error("same layout without the spike should be walkable")
	}
}

func TestLowWallClearable(t *testing.T) {
	g := fixture(
		"########",
		"#......#",
		"#S.#..G#",
		"#======#",
		"########",
	)
	mc := Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}

	if !Reachable(g, mc) {
		t.Error("one-tile wall should be clearable with minimal capability")
	}
}

func TestTallWallBlocks(t *testing.T) {
	// the wall reaches the top border row, so no jump apex clears it
	g := fixture(
		"########",
		"#..#...#",
		"#S.#..G#",
		"#======#",
		"########",
	)

	if Reachable(g, Capability{MaxJumpUp: 8, MaxGap: 12, MaxDrop: 12}) {
		t.Error("wall touching the ceiling should block even maximal capability")
	}
}

func TestJumpDropCap(t *testing.T) {
	// crossing means one jump onto a platform three rows down; the pit floor
	// is spiked so walking off the ledge is lethal
	g := fixture(
		"########",
		"#S.....#",
		"#==....#",
		"#......#",
		"#.....G#",
		"#..^^==#",
		"########",
	)

	if Reachable(g, Capability{MaxJumpUp: 1, MaxGap: 2, MaxDrop: 2}) {
		t.Error("three-row jump landing should be rejected with MaxDrop 2")
	}
	if !Reachable(g, Capability{MaxJumpUp: 1, MaxGap: 2, MaxDrop: 3}) {
		t.Error("three-row jump landing should be accepted with MaxDrop 3")
	}
}

func TestWalkFallHasNoDropCap(t *testing.T) {
	// stepping off the ledge falls three rows; walk moves carry no drop
	// limit, only jump arcs do
	g := fixture(
		"######",
		"#S...#",
		"#=...#",
		"#....#",
		"#...G#",
		"#====#",
		"######",
	)
	mc := Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}

	if !Reachable(g, mc) {
		t.Error("walking off a ledge should fall any depth onto solid ground")
	}
}

func TestCheckAnchorCounts(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		code string
	}{
		{
			name: "no spawn",
			rows: []string{
				"######",
				"#...G#",
				"#====#",
				"######",
			},
			code: "SPAWN_COUNT",
		},
		{
			name: "two spawns",
			rows: []string{
				"######",
				"#S.SG#",
				"#====#",
				"######",
			},
			code: "SPAWN_COUNT",
		},
		{
			name: "no goal",
			rows: []string{
				"######",
				"#S...#",
				"#====#",
				"######",
			},
			code: "GOAL_COUNT",
		},
	}

	mc := Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Check(fixture(tt.rows...), mc)
			if len(errs) == 0 {
				t.Fatal("expected validation errors, got none")
			}
			found := false
			for _, e := range errs {
				if e.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error code %s, got %v", tt.code, errs)
			}
		})
	}
}

func TestCheckSpawnOverHazard(t *testing.T) {
	// spawn falls straight onto spikes and never settles
	g := fixture(
		"######",
		"#S..G#",
		"#^.==#",
		"######",
	)
	errs := Check(g, Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2})

	if len(errs) != 1 || errs[0].Code != "SPAWN_VOID" {
		t.Errorf("expected single SPAWN_VOID error, got %v", errs)
	}
}

func TestCheckRejectsUnknownGlyphs(t *testing.T) {
	// hand-edited map with a stray glyph; anchors are otherwise fine
	g := fixture(
		"######",
		"#S.xG#",
		"#====#",
		"######",
	)
	errs := Check(g, Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2})

	if len(errs) != 1 || errs[0].Code != "UNKNOWN_TILE" {
		t.Fatalf("expected single UNKNOWN_TILE error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, `"x"`) {
		t.Errorf("error message should name the glyph, got %q", errs[0].Message)
	}
}

func TestCheckAcceptsCleanLevel(t *testing.T) {
	g := fixture(
		"######",
		"#S..G#",
		"#====#",
		"######",
	)
	if errs := Check(g, Capability{MaxJumpUp: 1, MaxGap: 1, MaxDrop: 2}); len(errs) != 0 {
		t.Errorf("expected no validation errors, got %v", errs)
	}
}

func TestValidationErrorFormat(t *testing.T) {
	e := ValidationError{Code: "UNREACHABLE", Message: "no route"}
	if got := e.Error(); got != "[UNREACHABLE] no route" {
		t.Errorf("Error() = %q, want %q", got, "[UNREACHABLE] no route")
	}
}

func TestFallToStandable(t *testing.T) {
	g := fixture(
		"######",
		"#....#",
		"#....#",
		"#.^..#",
		"#==.=#",
		"######",
	)

	// clean fall onto a platform
	if s, ok := fallToStandable(g, 1, 1); !ok || s != (state{x: 1, y: 3}) {
		t.Errorf("fall at x=1 = %v, %v; want landing at (1,3)", s, ok)
	}
	// fall interrupted by a spike below: not standable
	if _, ok := fallToStandable(g, 2, 1); ok {
		t.Error("fall onto a hazard should not produce a standable state")
	}
	// fall into the open pit column bottoms out on the cage, which is solid
	if s, ok := fallToStandable(g, 3, 1); !ok || s != (state{x: 3, y: 4}) {
		t.Errorf("fall at x=3 = %v, %v; want landing at (3,4)", s, ok)
	}
	// starting inside a solid tile is not a position at all
	if _, ok := fallToStandable(g, 1, 4); ok {
		t.Error("solid start cell should not be standable")
	}
}
