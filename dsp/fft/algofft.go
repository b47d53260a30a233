package fft

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// complex64Size is the in-memory size of one complex64 bin.
const complex64Size = 8

type algoEngine struct{}

// DefaultEngine returns the algo-fft backed engine.
//
// Plans for arbitrary lengths are supported, including odd and prime sizes
// via algo-fft's mixed-radix and Bluestein paths.
func DefaultEngine() Engine {
	return algoEngine{}
}

func (algoEngine) RealForward(dst []complex64, src []float32) error {
	n := len(src)
	if len(dst) < n/2+1 {
		return fmt.Errorf("%w: spectrum %d < %d", ErrShortBuffer, len(dst), n/2+1)
	}

	// The length-1 DFT is the identity; algo-fft plans start at length 2.
	if n == 1 {
		dst[0] = complex(src[0], 0)
		return nil
	}

	plan, err := algofft.NewPlanT[complex64](n)
	if err != nil {
		return fmt.Errorf("fft: real forward plan: %w", err)
	}

	in := make([]complex64, n)
	for i, v := range src {
		in[i] = complex(v, 0)
	}

	out := make([]complex64, n)
	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("fft: real forward transform: %w", err)
	}

	copy(dst[:n/2+1], out[:n/2+1])

	return nil
}

func (algoEngine) ComplexPlan(n int) (Plan, error) {
	if n == 1 {
		return identityPlan{}, nil
	}

	plan, err := algofft.NewPlanT[complex64](n)
	if err != nil {
		return nil, fmt.Errorf("fft: complex plan: %w", err)
	}

	return &algoPlan{plan: plan, n: n}, nil
}

// identityPlan is the length-1 DFT.
type identityPlan struct{}

func (identityPlan) Forward(dst, src []complex64) error {
	if err := checkPlanArgs(1, dst, src); err != nil {
		return err
	}
	dst[0] = src[0]
	return nil
}

func (identityPlan) Len() int { return 1 }

func (identityPlan) Footprint() int { return complex64Size }

type algoPlan struct {
	plan *algofft.Plan[complex64]
	n    int
}

func (p *algoPlan) Forward(dst, src []complex64) error {
	if err := checkPlanArgs(p.n, dst, src); err != nil {
		return err
	}

	if err := p.plan.Forward(dst[:p.n], src[:p.n]); err != nil {
		return fmt.Errorf("fft: complex forward transform: %w", err)
	}

	return nil
}

func (p *algoPlan) Len() int {
	return p.n
}

// Footprint estimates the plan's working memory: the twiddle table and one
// scratch buffer, each of n complex64 values.
func (p *algoPlan) Footprint() int {
	return 2 * p.n * complex64Size
}
