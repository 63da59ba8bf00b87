package gen

import (
	"math"

	"github.com/vovakirdan/levelsmith/internal/core"
)

// Capability describes the movement the validator assumes for a level: how
// high the player can jump, how wide a gap they can clear, and how deep a
// drop can be before a landing stops counting as intentional.
type Capability struct {
	MaxJumpUp int
	MaxGap    int
	MaxDrop   int
}

// Difficulty maps a 1-based level index onto the [0, 1] progression value
// that drives every density and capability curve. Level 1 sits at 0 and the
// curve saturates at level 31.
func Difficulty(index int) float64 {
	return core.ClampF(float64(index-1)/30.0, 0, 1)
}

// CapabilityFor derives the movement capability assumed for a level index.
// Capability grows with the index, mirroring the upgrades a player collects
// across a run, so later levels may demand longer jumps than early ones.
// Uses round-half-to-even so the curve steps exactly where replays of old
// level sets expect it to.
func CapabilityFor(index int) Capability {
	diff := Difficulty(index)
	return Capability{
		MaxJumpUp: core.Clamp(1+int(math.RoundToEven(diff*5.0)), 1, 8),
		MaxGap:    core.Clamp(1+int(math.RoundToEven(diff*7.0)), 1, 12),
		MaxDrop:   core.Clamp(2+int(math.RoundToEven(diff*5.0)), 2, 12),
	}
}
