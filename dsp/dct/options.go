package dct

import (
	"github.com/cwbudde/algo-dct/dsp/fft"
	"github.com/cwbudde/algo-dct/dsp/memory"
)

// Option mutates a Transformer during construction.
type Option func(*Transformer)

// WithEngine sets the FFT engine both transforms run against.
// Nil engines are ignored.
func WithEngine(engine fft.Engine) Option {
	return func(t *Transformer) {
		if engine != nil {
			t.engine = engine
		}
	}
}

// WithAllocator sets the scratch-memory ledger. Passing a Tracker with a
// byte limit bounds the transforms' working memory; a nil tracker is
// ignored.
func WithAllocator(tracker *memory.Tracker) Option {
	return func(t *Transformer) {
		if tracker != nil {
			t.mem = tracker
		}
	}
}
