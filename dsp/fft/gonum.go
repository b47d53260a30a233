package fft

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// complex128Size is the in-memory size of one complex128 value.
const complex128Size = 16

type gonumEngine struct{}

// NewGonumEngine returns an engine backed by gonum's FFTPACK-derived
// fourier package. It supports arbitrary transform lengths and serves as an
// independent cross-check for the default engine.
//
// gonum computes in float64; the adapter converts at the boundary.
func NewGonumEngine() Engine {
	return gonumEngine{}
}

func (gonumEngine) RealForward(dst []complex64, src []float32) error {
	n := len(src)
	if len(dst) < n/2+1 {
		return fmt.Errorf("%w: spectrum %d < %d", ErrShortBuffer, len(dst), n/2+1)
	}
	if n == 0 {
		return fmt.Errorf("fft: real forward transform of empty input")
	}

	in := make([]float64, n)
	for i, v := range src {
		in[i] = float64(v)
	}

	out := fourier.NewFFT(n).Coefficients(nil, in)
	for i, c := range out {
		dst[i] = complex64(c)
	}

	return nil
}

func (gonumEngine) ComplexPlan(n int) (Plan, error) {
	if n < 1 {
		return nil, fmt.Errorf("fft: complex plan length must be >= 1: %d", n)
	}

	return &gonumPlan{
		fft: fourier.NewCmplxFFT(n),
		in:  make([]complex128, n),
		out: make([]complex128, n),
		n:   n,
	}, nil
}

type gonumPlan struct {
	fft     *fourier.CmplxFFT
	in, out []complex128
	n       int
}

func (p *gonumPlan) Forward(dst, src []complex64) error {
	if err := checkPlanArgs(p.n, dst, src); err != nil {
		return err
	}

	for i := range p.in {
		p.in[i] = complex128(src[i])
	}

	p.fft.Coefficients(p.out, p.in)

	for i, c := range p.out {
		dst[i] = complex64(c)
	}

	return nil
}

func (p *gonumPlan) Len() int {
	return p.n
}

// Footprint covers the two conversion buffers plus the FFTPACK work table,
// each of n complex128 values.
func (p *gonumPlan) Footprint() int {
	return 3 * p.n * complex128Size
}
