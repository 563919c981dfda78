package fft

import (
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ocelot-zk/garith/logger"
	"github.com/ocelot-zk/garith/parallel"
)

// ToLagrangeG1 converts points from coefficient form to Lagrange form: it
// runs the inverse transform at omega, scales every point by 1/n and batch
// normalizes the result back to affine coordinates, in parallel chunks.
// omega is the forward n-th root of unity; its inverse is derived here.
// ToLagrangeG1 panics if len(points) != 1<<logN. points is consumed.
func ToLagrangeG1(points []bn254.G1Jac, omega fr.Element, logN uint, opts ...Option) []bn254.G1Affine {
	n := 1 << logN
	if len(points) != n {
		panic("fft: len(points) must be exactly 1 << logN")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}

	log := logger.Logger()
	start := time.Now()

	var omegaInv, nInv fr.Element
	omegaInv.Inverse(&omega)
	nInv.SetUint64(uint64(n))
	nInv.Inverse(&nInv)

	FFT(G1JacOps{}, points, omegaInv, logN, WithNbTasks(cfg.NbTasks))

	var nInvBig big.Int
	nInv.BigInt(&nInvBig)
	parallel.Execute(n, func(start, end int) {
		for i := start; i < end; i++ {
			points[i].ScalarMultiplication(&points[i], &nInvBig)
		}
	}, cfg.NbTasks)

	res := make([]bn254.G1Affine, n)
	parallel.Execute(n, func(start, end int) {
		copy(res[start:end], bn254.BatchJacobianToAffineG1(points[start:end]))
	}, cfg.NbTasks)

	log.Debug().Int("n", n).Dur("took", time.Since(start)).Msg("toLagrangeG1")
	return res
}
