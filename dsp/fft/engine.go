package fft

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a destination slice cannot hold the
// transform output.
var ErrShortBuffer = errors.New("fft: buffer too small")

// Engine provides the two transform primitives the DCT kernels consume.
//
// Implementations must be safe for concurrent use; the adapters in this
// package are stateless and create per-call or per-plan working memory.
type Engine interface {
	// RealForward computes the forward FFT of the real sequence src and
	// writes the non-redundant half spectrum, len(src)/2+1 bins, into dst.
	RealForward(dst []complex64, src []float32) error

	// ComplexPlan returns a forward complex FFT plan for length-n inputs.
	ComplexPlan(n int) (Plan, error)
}

// Plan is a length-bound forward complex FFT. A Plan may hold working
// buffers and is not safe for concurrent use; callers create one per
// transform invocation.
type Plan interface {
	// Forward computes the unnormalized forward FFT of src into dst.
	// Both slices must hold Len() values.
	Forward(dst, src []complex64) error

	// Len returns the transform length.
	Len() int

	// Footprint returns the plan's internal working memory in bytes, so
	// callers can report it to the same accounting ledger as their own
	// scratch buffers.
	Footprint() int
}

func checkPlanArgs(n int, dst, src []complex64) error {
	if len(src) < n {
		return fmt.Errorf("%w: input %d < %d", ErrShortBuffer, len(src), n)
	}
	if len(dst) < n {
		return fmt.Errorf("%w: output %d < %d", ErrShortBuffer, len(dst), n)
	}
	return nil
}
