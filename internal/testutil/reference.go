package testutil

import "math"

// ReferenceDCT2 computes the unscaled DCT-II of x by the direct O(N²) sum
// C[k] = Σ x[i]·cos(π/N·(i+0.5)·k). Accumulation is in float64.
func ReferenceDCT2(x []float32) []float32 {
	n := len(x)
	out := make([]float32, n)

	for k := range out {
		sum := 0.0
		for i, v := range x {
			sum += float64(v) * math.Cos(math.Pi/float64(n)*(float64(i)+0.5)*float64(k))
		}
		out[k] = float32(sum)
	}

	return out
}

// ReferenceDCT3 computes the unscaled DCT-III of x by the direct O(N²) sum
// y[i] = x[0]/2 + Σ_{k≥1} x[k]·cos(π/N·k·(i+0.5)). Accumulation is in
// float64. ReferenceDCT3(ReferenceDCT2(x)) equals x scaled by N/2.
func ReferenceDCT3(x []float32) []float32 {
	n := len(x)
	out := make([]float32, n)
	if n == 0 {
		return out
	}

	for i := range out {
		sum := float64(x[0]) / 2
		for k := 1; k < n; k++ {
			sum += float64(x[k]) * math.Cos(math.Pi/float64(n)*float64(k)*(float64(i)+0.5))
		}
		out[i] = float32(sum)
	}

	return out
}
