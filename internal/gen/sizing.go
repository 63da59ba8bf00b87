package gen

import "github.com/vovakirdan/levelsmith/internal/core"

// Dimension bounds for generated levels. The defaults are the virtual size
// of "level zero": the very first level grows from them.
const (
	DefaultWidth  = 42
	DefaultHeight = 14

	MinWidth  = 35
	MaxWidth  = 280
	MinHeight = 12
	MaxHeight = 80
)

// NextSize grows the previous level's dimensions for the given index. Width
// gains 5 to 20 columns. Height always grows too, by 1-3 rows early and up
// to 6 on the saturated end of the curve. Both are clamped to the supported
// range, so long runs converge on the maximum playfield.
func NextSize(prevW, prevH, index int, rng *SimpleRNG) (int, int) {
	w := prevW + rng.Range(5, 20)

	diff := Difficulty(index)
	baseDH := 1 + int(diff*3)
	h := prevH + rng.Range(baseDH, baseDH+2)

	return core.Clamp(w, MinWidth, MaxWidth), core.Clamp(h, MinHeight, MaxHeight)
}
