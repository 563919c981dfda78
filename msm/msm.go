// Package msm computes multi-scalar-multiplications Σ scalars[i]·points[i]
// over the bn254 curve with Pippenger's bucket method.
//
// Scalars are cut into fixed-width digit windows; within a window every
// point lands in the bucket of its digit, and buckets are folded with a
// running sum so that bucket j contributes j times at the cost of two
// additions. The window width grows with the input size, amortizing the
// bucket folding across more points.
package msm

import (
	"math"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ocelot-zk/garith/logger"
	"github.com/ocelot-zk/garith/parallel"
)

// MultiExp computes Σ scalars[i]·points[i]. It panics if the two slices
// differ in length. Inputs longer than the worker count are cut into one
// contiguous chunk per worker, each folded serially, and the partial sums
// combined at the end.
func MultiExp(scalars []fr.Element, points []bn254.G1Affine, opts ...Option) bn254.G1Jac {
	if len(scalars) != len(points) {
		panic("msm: len(scalars) != len(points)")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}

	log := logger.Logger()
	start := time.Now()

	var p bn254.G1Jac
	n := len(scalars)
	if n == 0 {
		return p
	}

	if n > cfg.NbTasks {
		nbChunks := cfg.NbTasks
		stride := n / nbChunks
		partial := make([]bn254.G1Jac, nbChunks)
		parallel.Execute(nbChunks, func(cstart, cend int) {
			for i := cstart; i < cend; i++ {
				lo := i * stride
				hi := lo + stride
				if i == nbChunks-1 {
					hi = n
				}
				multiExpSerial(scalars[lo:hi], points[lo:hi], &partial[i])
			}
		}, cfg.NbTasks)

		for i := range partial {
			p.AddAssign(&partial[i])
		}
	} else {
		multiExpSerial(scalars, points, &p)
	}

	log.Debug().Int("n", n).Int("nbTasks", cfg.NbTasks).Dur("took", time.Since(start)).Msg("msm")
	return p
}

// multiExpSerial folds scalars·points into acc with the bucket method,
// processing digit windows from the most significant down. Each window costs
// c doublings of acc plus one bucket pass.
func multiExpSerial(scalars []fr.Element, points []bn254.G1Affine, acc *bn254.G1Jac) {
	c := windowSize(len(points))

	segments := (fr.Bits + c - 1) / c

	// regular form once per scalar, digits are then plain bit slices
	repr := make([][fr.Limbs]uint64, len(scalars))
	for i := range scalars {
		repr[i] = scalars[i].Bits()
	}

	buckets := make([]bucket, (1<<c)-1)

	for seg := segments - 1; seg >= 0; seg-- {
		for i := 0; i < c; i++ {
			acc.DoubleAssign()
		}

		for i := range buckets {
			buckets[i] = bucket{}
		}

		lo := seg * c
		for i := range repr {
			d := digit(&repr[i], lo, c)
			if d != 0 {
				buckets[d-1].accumulate(&points[i])
			}
		}

		// summation by parts: acc += Σ (j+1)·buckets[j], folding a running
		// sum from the highest bucket down
		var runningSum bn254.G1Jac
		for j := len(buckets) - 1; j >= 0; j-- {
			buckets[j].addInto(&runningSum)
			acc.AddAssign(&runningSum)
		}
	}
}

// SmallMultiExp computes Σ scalars[i]·points[i] by bit-serial double and
// add over the full scalar width, sharing the doublings across all inputs.
// It panics if the two slices differ in length. Intended for tiny batches
// and as a cross-check for MultiExp, not for production-size inputs.
func SmallMultiExp(scalars []fr.Element, points []bn254.G1Affine) bn254.G1Jac {
	if len(scalars) != len(points) {
		panic("msm: len(scalars) != len(points)")
	}

	repr := make([][fr.Limbs]uint64, len(scalars))
	for i := range scalars {
		repr[i] = scalars[i].Bits()
	}

	var acc bn254.G1Jac
	for bit := fr.Bits - 1; bit >= 0; bit-- {
		acc.DoubleAssign()
		limb, shift := bit/64, uint(bit%64)
		for i := range repr {
			if (repr[i][limb]>>shift)&1 != 0 {
				acc.AddMixed(&points[i])
			}
		}
	}
	return acc
}

// windowSize picks the digit width c for n points. Tiny inputs take narrow
// windows, past 32 points the width grows with ln(n).
func windowSize(n int) int {
	switch {
	case n < 4:
		return 1
	case n < 32:
		return 3
	default:
		return int(math.Ceil(math.Log(float64(n))))
	}
}

// digit extracts the c-bit window starting at bit lo from the regular form
// limbs of a scalar. Windows may straddle a limb boundary; bits past the
// top limb read as zero.
func digit(limbs *[fr.Limbs]uint64, lo, c int) uint64 {
	limb, shift := lo/64, uint(lo%64)
	d := limbs[limb] >> shift
	if int(shift)+c > 64 && limb+1 < len(limbs) {
		d |= limbs[limb+1] << (64 - shift)
	}
	return d & (1<<c - 1)
}
