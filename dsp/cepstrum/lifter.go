package cepstrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// LifterWeights returns the sinusoidal liftering window of the given size,
// w[i] = 1 + (L/2)·sin(π·i/L).
func LifterWeights(size, l int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cepstrum: size must be > 0: %d", size)
	}
	if l <= 0 {
		return nil, fmt.Errorf("cepstrum: lifter parameter must be > 0: %d", l)
	}

	w := make([]float64, size)
	for i := range w {
		w[i] = 1 + float64(l)/2*math.Sin(math.Pi*float64(i)/float64(l))
	}

	return w, nil
}

// Lifter applies sinusoidal liftering to coeffs in place. A lifter
// parameter of 0 or less leaves the coefficients untouched.
func Lifter(coeffs []float64, l int) error {
	if l <= 0 || len(coeffs) == 0 {
		return nil
	}

	w, err := LifterWeights(len(coeffs), l)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(coeffs, w)

	return nil
}

// Lifter32 applies sinusoidal liftering to float32 coefficients, bridging
// the float32 DCT output to the float64 weighting.
func Lifter32(coeffs []float32, l int) error {
	if l <= 0 || len(coeffs) == 0 {
		return nil
	}

	wide := make([]float64, len(coeffs))
	for i, v := range coeffs {
		wide[i] = float64(v)
	}

	if err := Lifter(wide, l); err != nil {
		return err
	}

	for i, v := range wide {
		coeffs[i] = float32(v)
	}

	return nil
}

// MeanNormalize subtracts each dimension's mean across frames, in place.
// frames must share a common length.
func MeanNormalize(frames [][]float64) error {
	if len(frames) == 0 {
		return nil
	}

	dims := len(frames[0])
	for i, f := range frames {
		if len(f) != dims {
			return fmt.Errorf("cepstrum: frame %d length mismatch: %d != %d", i, len(f), dims)
		}
	}

	if dims == 0 {
		return nil
	}

	mean := make([]float64, dims)
	for _, f := range frames {
		vecmath.AddBlockInPlace(mean, f)
	}
	vecmath.ScaleBlockInPlace(mean, -1/float64(len(frames)))

	for _, f := range frames {
		vecmath.AddBlockInPlace(f, mean)
	}

	return nil
}
