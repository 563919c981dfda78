// Package fft implements the in-place radix-2 decimation-in-time Fourier
// transform over sequences of field elements or curve points.
//
// The transform body is generic over the element type; [GroupOps] is the
// additive-group-with-scalar-action contract it requires, instantiated by
// [FrOps] for field elements and [G1JacOps] for curve points. Two parallel
// strategies are used: when the transform has at most as many butterfly
// layers as there are workers, blocks within each layer run in parallel;
// otherwise the array itself is split by recursive fork/join.
package fft

import (
	"math/bits"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ocelot-zk/garith/logger"
	"github.com/ocelot-zk/garith/parallel"
)

// GroupOps bounds the element type a transform runs over: an additive group
// acted on by field scalars. Implementations mutate their first argument.
type GroupOps[E any] interface {
	// AddAssign sets a to a+b
	AddAssign(a, b *E)
	// SubAssign sets a to a-b
	SubAssign(a, b *E)
	// ScalarMul sets a to s·a
	ScalarMul(a *E, s *fr.Element)
}

// FFT computes in place the radix-2 decimation-in-time transform of a at
// omega, which must have multiplicative order exactly n = len(a) = 1<<logN.
// FFT panics if len(a) != 1<<logN.
//
// The inverse transform is FFT at omega⁻¹; the 1/n scaling is the caller's
// responsibility and is not applied here.
func FFT[E any, O GroupOps[E]](ops O, a []E, omega fr.Element, logN uint, opts ...Option) {
	n := 1 << logN
	if len(a) != n {
		panic("fft: len(a) must be exactly 1 << logN")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}

	log := logger.Logger()
	start := time.Now()

	BitReverse(a)

	if n == 1 {
		return
	}

	twiddles := make([]fr.Element, n/2)
	twiddles[0].SetOne()
	for i := 1; i < len(twiddles); i++ {
		twiddles[i].Mul(&twiddles[i-1], &omega)
	}

	strategy := "recursive"
	if logN <= log2Floor(cfg.NbTasks) {
		strategy = "iterative"
	}

	if strategy == "iterative" {
		layerFFT(ops, a, twiddles, logN, cfg.NbTasks)
	} else {
		maxSplits := bits.TrailingZeros64(ecc.NextPowerOfTwo(uint64(cfg.NbTasks)))
		splitFFT(ops, a, twiddles, 1, 0, maxSplits)
	}

	log.Debug().Int("n", n).Str("strategy", strategy).Dur("took", time.Since(start)).Msg("fft")
}

// layerFFT runs the iterative transform, one butterfly layer at a time.
// Blocks within a layer touch disjoint ranges of a, so each layer fans out
// across workers and joins before the block width doubles.
func layerFFT[E any, O GroupOps[E]](ops O, a []E, twiddles []fr.Element, logN uint, nbTasks int) {
	n := len(a)
	chunk := 2
	twiddleChunk := n / 2
	for l := uint(0); l < logN; l++ {
		parallel.Execute(n/chunk, func(start, end int) {
			for b := start; b < end; b++ {
				butterflies(ops, a[b*chunk:(b+1)*chunk], twiddles, twiddleChunk)
			}
		}, nbTasks)
		chunk <<= 1
		twiddleChunk >>= 1
	}
}

// splitFFT runs the recursive transform: transform each half, then combine.
// The recursion forks for the first maxSplits levels and continues serially
// below, bounding the number of spawned goroutines near the worker count.
func splitFFT[E any, O GroupOps[E]](ops O, a []E, twiddles []fr.Element, twiddleChunk, splits, maxSplits int) {
	n := len(a)
	if n == 2 {
		t := a[1]
		a[1] = a[0]
		ops.AddAssign(&a[0], &t)
		ops.SubAssign(&a[1], &t)
		return
	}
	m := n / 2

	if splits < maxSplits {
		parallel.Join(
			func() { splitFFT(ops, a[:m], twiddles, twiddleChunk*2, splits+1, maxSplits) },
			func() { splitFFT(ops, a[m:], twiddles, twiddleChunk*2, splits+1, maxSplits) },
		)
	} else {
		splitFFT(ops, a[:m], twiddles, twiddleChunk*2, splits, maxSplits)
		splitFFT(ops, a[m:], twiddles, twiddleChunk*2, splits, maxSplits)
	}

	butterflies(ops, a, twiddles, twiddleChunk)
}

// butterflies combines the two transformed halves of block with paired
// butterfly steps, reading twiddles at stride twiddleChunk. The first pair
// uses twiddle 1, so its multiplication is skipped.
func butterflies[E any, O GroupOps[E]](ops O, block []E, twiddles []fr.Element, twiddleChunk int) {
	m := len(block) / 2
	left, right := block[:m], block[m:]

	t := right[0]
	right[0] = left[0]
	ops.AddAssign(&left[0], &t)
	ops.SubAssign(&right[0], &t)

	for i := 1; i < m; i++ {
		t = right[i]
		ops.ScalarMul(&t, &twiddles[i*twiddleChunk])
		right[i] = left[i]
		ops.AddAssign(&left[i], &t)
		ops.SubAssign(&right[i], &t)
	}
}

// BitReverse permutes a in place, swapping a[i] with a[j] where j is i with
// its log2(len(a)) low bits reversed. len(a) must be a power of two.
func BitReverse[E any](a []E) {
	n := uint64(len(a))
	nn := uint64(64 - bits.TrailingZeros64(n))

	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> nn
		if irev > i {
			a[i], a[irev] = a[irev], a[i]
		}
	}
}

func log2Floor(n int) uint {
	return uint(bits.Len(uint(n)) - 1)
}
