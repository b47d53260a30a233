package testutil

import (
	"math"
	"testing"
)

func TestReferenceDCT2_Impulse(t *testing.T) {
	// DCT-II of an impulse at position 0 is cos(π·k·0.5/N).
	const n = 5

	got := ReferenceDCT2(Impulse(n, 0))
	for k, v := range got {
		want := math.Cos(math.Pi * float64(k) * 0.5 / n)
		if math.Abs(float64(v)-want) > 1e-6 {
			t.Errorf("k=%d: got %v, want %v", k, v, want)
		}
	}
}

func TestReferenceDCT2_DC(t *testing.T) {
	// A constant input concentrates all energy in coefficient 0.
	const n = 8

	got := ReferenceDCT2(DC(1, n))
	if math.Abs(float64(got[0])-n) > 1e-5 {
		t.Errorf("got[0] = %v, want %v", got[0], n)
	}
	for k := 1; k < n; k++ {
		if math.Abs(float64(got[k])) > 1e-5 {
			t.Errorf("got[%d] = %v, want 0", k, got[k])
		}
	}
}

func TestReferencePair_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 9} {
		x := DeterministicNoise(int64(n), 1.0, n)

		y := ReferenceDCT3(ReferenceDCT2(x))

		// The unscaled pair composes to a gain of N/2.
		scale := 2 / float32(n)
		for i := range y {
			y[i] *= scale
		}

		RequireSliceNearlyEqual(t, y, x, 1e-4)
	}
}

func TestReferenceDCT3_Empty(t *testing.T) {
	if out := ReferenceDCT3(nil); len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}
