package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// benchmarkAlign runs the dispatcher on fixed-seed random sequences of
// lengths n and m. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkAlign(b *testing.B, n, m int, mode align.Mode) {
	rng := rand.New(rand.NewSource(42))
	x := randomSeq(rng, "ACGT", n)
	y := randomSeq(rng, "ACGT", m)
	opts := align.DefaultOptions()
	opts.Mode = mode

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := align.Align(x, y, opts)
		if err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_FullMatrixSmall benchmarks the quadratic-space solver on 100×100 inputs.
func BenchmarkAlign_FullMatrixSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, align.FullMatrix)
}

// BenchmarkAlign_FullMatrixMedium benchmarks the quadratic-space solver on 500×500 inputs.
func BenchmarkAlign_FullMatrixMedium(b *testing.B) {
	benchmarkAlign(b, 500, 500, align.FullMatrix)
}

// BenchmarkAlign_LinearSpaceSmall benchmarks the Hirschberg solver on 100×100 inputs.
func BenchmarkAlign_LinearSpaceSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, align.LinearSpace)
}

// BenchmarkAlign_LinearSpaceMedium benchmarks the Hirschberg solver on 500×500 inputs.
func BenchmarkAlign_LinearSpaceMedium(b *testing.B) {
	benchmarkAlign(b, 500, 500, align.LinearSpace)
}

// BenchmarkAlign_LinearSpaceSkewed benchmarks a long-vs-short pairing where
// the profile passes dominate.
func BenchmarkAlign_LinearSpaceSkewed(b *testing.B) {
	benchmarkAlign(b, 2000, 50, align.LinearSpace)
}
