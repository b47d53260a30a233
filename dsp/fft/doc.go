// Package fft defines the Fourier transform capability the DCT kernels are
// built on, together with adapters for external FFT backends.
//
// The package intentionally does not implement FFT itself. The default
// engine delegates to github.com/MeKo-Christian/algo-fft; a second engine
// backed by gonum's fourier package is provided so the transform layer can
// be exercised against an independently derived implementation.
package fft
