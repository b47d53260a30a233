// Package dct implements the unscaled DCT-II and DCT-III transforms of
// 32-bit float vectors, in place, by mapping each length-N cosine transform
// onto a length-N Fourier transform.
//
// The forward transform reorders the input into an even/odd interleaved
// sequence, runs a real forward FFT, and recombines each half-spectrum bin
// with a phase factor. The inverse transform halves the DC term, applies a
// phase pre-weighting into a complex buffer, runs a full complex FFT, and
// de-interleaves the real parts. No normalization is applied in either
// direction; the unscaled pair composes to a gain of N/2.
//
// The package does not implement FFT itself. Both transforms run against a
// pluggable FFT engine (see dsp/fft) and account for all scratch memory
// through a dsp/memory ledger, which makes allocation failure injectable
// and leak-checkable in tests.
package dct
