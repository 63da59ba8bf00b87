package gen

import "testing"

func TestNextSizeGrowth(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 100; i++ {
		w, h := NextSize(DefaultWidth, DefaultHeight, 1, rng)
		if w < DefaultWidth+5 || w > DefaultWidth+20 {
			t.Fatalf("width %d outside [%d, %d]", w, DefaultWidth+5, DefaultWidth+20)
		}
		// at index 1 the height delta is 1..3
		if h < DefaultHeight+1 || h > DefaultHeight+3 {
			t.Fatalf("height %d outside [%d, %d]", h, DefaultHeight+1, DefaultHeight+3)
		}
	}
}

func TestNextSizeLateHeightGrowth(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 100; i++ {
		_, h := NextSize(100, 40, 31, rng)
		// saturated difficulty: height delta is 4..6
		if h < 44 || h > 46 {
			t.Fatalf("height %d outside [44, 46] at saturated difficulty", h)
		}
	}
}

func TestNextSizeClamps(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 100; i++ {
		w, h := NextSize(MaxWidth, MaxHeight, 31, rng)
		if w != MaxWidth {
			t.Fatalf("width %d exceeded the maximum %d", w, MaxWidth)
		}
		if h != MaxHeight {
			t.Fatalf("height %d exceeded the maximum %d", h, MaxHeight)
		}
	}
}

func TestNextSizeDeterministic(t *testing.T) {
	w1, h1 := NextSize(DefaultWidth, DefaultHeight, 1, NewRNG(9))
	w2, h2 := NextSize(DefaultWidth, DefaultHeight, 1, NewRNG(9))
	if w1 != w2 || h1 != h2 {
		t.Errorf("same seed sized differently: %dx%d vs %dx%d", w1, h1, w2, h2)
	}
}
