package dct

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-dct/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			tr := New()
			v := testutil.DeterministicNoise(1, 1.0, size)

			b.SetBytes(int64(size * float32Size))
			b.ResetTimer()

			for range b.N {
				if err := tr.Transform(v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInverseTransform(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			tr := New()
			v := testutil.DeterministicNoise(1, 1.0, size)

			b.SetBytes(int64(size * float32Size))
			b.ResetTimer()

			for range b.N {
				if err := tr.InverseTransform(v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	sizes := []int{256, 1024}
	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			tr := New()
			v := testutil.DeterministicNoise(1, 1.0, size)

			b.SetBytes(int64(size * float32Size))
			b.ResetTimer()

			scale := 2 / float32(size)

			for range b.N {
				if err := tr.Transform(v); err != nil {
					b.Fatal(err)
				}
				if err := tr.InverseTransform(v); err != nil {
					b.Fatal(err)
				}
				// Undo the N/2 round-trip gain to keep values bounded.
				for i := range v {
					v[i] *= scale
				}
			}
		})
	}
}
