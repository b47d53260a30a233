package dct

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dct/dsp/fft"
	"github.com/cwbudde/algo-dct/dsp/memory"
)

const (
	float32Size   = 4
	complex64Size = 8
)

// Transformer computes unscaled DCT-II and DCT-III transforms in place.
//
// Every call reserves its own scratch buffers through the configured
// allocator and releases them before returning, on success and on every
// error path. There is no state shared between calls, so a Transformer is
// safe for concurrent use on independent vectors.
type Transformer struct {
	engine fft.Engine
	mem    *memory.Tracker
}

// New returns a Transformer backed by the default FFT engine and an
// unbounded allocator.
func New(opts ...Option) *Transformer {
	t := &Transformer{
		engine: fft.DefaultEngine(),
		mem:    memory.NewTracker(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Allocator returns the scratch-memory ledger the Transformer accounts
// against.
func (t *Transformer) Allocator() *memory.Tracker {
	return t.mem
}

// Transform replaces vector with its unscaled DCT-II coefficients,
// C[k] = Σ x[i]·cos(π/N·(i+0.5)·k).
//
// A zero-length vector is a no-op. On error the vector is unchanged:
// ErrOutOfMemory when a scratch reservation exceeds the allocator budget,
// or the engine's failure wrapped for inspection with errors.Is.
func (t *Transformer) Transform(vector []float32) error {
	n := len(vector)
	if n == 0 {
		return nil
	}

	bins, releaseBins, err := t.reserveComplex(n/2 + 1)
	if err != nil {
		return err
	}
	defer releaseBins()

	scratch, releaseScratch, err := t.reserveFloat(n)
	if err != nil {
		return err
	}
	defer releaseScratch()

	// Even-symmetric reordering: even-index samples ascend from the front,
	// odd-index samples descend from the back. This is what lets a real
	// FFT of the same length produce the DCT-II.
	half := n / 2
	for i := range half {
		scratch[i] = vector[2*i]
		scratch[n-1-i] = vector[2*i+1]
	}
	if n%2 == 1 {
		scratch[half] = vector[n-1]
	}

	if err := t.engine.RealForward(bins, scratch); err != nil {
		return fmt.Errorf("dct: forward FFT: %w", err)
	}

	// Recombine each half-spectrum bin with its phase factor. The upper
	// coefficients follow from the conjugate symmetry bin[n-k] = conj(bin[k])
	// of a real input's spectrum.
	for i := 0; i <= half; i++ {
		c, s := phase(i, n)
		vector[i] = float32(float64(real(bins[i]))*c + float64(imag(bins[i]))*s)
	}
	for i := half + 1; i < n; i++ {
		c, s := phase(i, n)
		vector[i] = float32(float64(real(bins[n-i]))*c - float64(imag(bins[n-i]))*s)
	}

	return nil
}

// InverseTransform replaces vector with its unscaled DCT-III,
// y[i] = x[0]/2 + Σ_{k≥1} x[k]·cos(π/N·k·(i+0.5)).
//
// A zero-length vector is a no-op. Error behavior matches Transform; in
// particular the vector is only written once the FFT step has succeeded.
func (t *Transformer) InverseTransform(vector []float32) error {
	n := len(vector)
	if n == 0 {
		return nil
	}

	in, releaseIn, err := t.reserveComplex(n)
	if err != nil {
		return err
	}
	defer releaseIn()

	out, releaseOut, err := t.reserveComplex(n)
	if err != nil {
		return err
	}
	defer releaseOut()

	plan, err := t.engine.ComplexPlan(n)
	if err != nil {
		return fmt.Errorf("dct: inverse FFT plan: %w", err)
	}

	footprint := plan.Footprint()
	if err := t.mem.Reserve(footprint); err != nil {
		return fmt.Errorf("%w: FFT plan footprint %d bytes", ErrOutOfMemory, footprint)
	}
	defer t.mem.Release(footprint)

	// Phase pre-weighting in[i] = x[i]·e^(-iθ_i), with the DC term halved.
	for i := range vector {
		v := float64(vector[i])
		if i == 0 {
			v /= 2
		}
		c, s := phase(i, n)
		in[i] = complex(float32(v*c), float32(-v*s))
	}

	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("dct: inverse FFT: %w", err)
	}

	// De-interleave the real parts back into time-domain order, undoing
	// the forward reordering.
	half := n / 2
	for i := range half {
		vector[2*i] = real(out[i])
		vector[2*i+1] = real(out[n-1-i])
	}
	if n%2 == 1 {
		vector[n-1] = real(out[half])
	}

	return nil
}

// phase returns cos and sin of k·π/(2N), the DCT twiddle angle.
func phase(k, n int) (c, s float64) {
	s, c = math.Sincos(float64(k) * math.Pi / float64(2*n))
	return c, s
}

// reserveFloat acquires a zeroed real scratch buffer through the ledger.
// The release func must run on every exit path.
func (t *Transformer) reserveFloat(n int) ([]float32, func(), error) {
	bytes := n * float32Size
	if err := t.mem.Reserve(bytes); err != nil {
		return nil, nil, fmt.Errorf("%w: real scratch %d bytes", ErrOutOfMemory, bytes)
	}
	return make([]float32, n), func() { t.mem.Release(bytes) }, nil
}

// reserveComplex acquires a zeroed complex scratch buffer through the ledger.
func (t *Transformer) reserveComplex(n int) ([]complex64, func(), error) {
	bytes := n * complex64Size
	if err := t.mem.Reserve(bytes); err != nil {
		return nil, nil, fmt.Errorf("%w: complex scratch %d bytes", ErrOutOfMemory, bytes)
	}
	return make([]complex64, n), func() { t.mem.Release(bytes) }, nil
}

var defaultTransformer = New()

// Transform applies the unscaled DCT-II in place using the default engine
// and an unbounded allocator. See [Transformer.Transform].
func Transform(vector []float32) error {
	return defaultTransformer.Transform(vector)
}

// InverseTransform applies the unscaled DCT-III in place using the default
// engine and an unbounded allocator. See [Transformer.InverseTransform].
func InverseTransform(vector []float32) error {
	return defaultTransformer.InverseTransform(vector)
}
