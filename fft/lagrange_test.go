package fft

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frfft "github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/stretchr/testify/require"

	"github.com/ocelot-zk/garith/internal/testutil"
)

// ToLagrangeG1 on multiples of the generator must agree with the inverse
// transform of the underlying scalars applied in the exponent.
func TestToLagrangeG1MatchesScalars(t *testing.T) {
	_, _, g, _ := bn254.Generators()

	for logN := uint(1); logN <= 6; logN++ {
		n := 1 << logN
		domain := frfft.NewDomain(uint64(n))

		scalars := testutil.Scalars(n, "fft/lagrange")
		aff := bn254.BatchScalarMultiplicationG1(&g, scalars)
		jac := make([]bn254.G1Jac, n)
		for i := range jac {
			jac[i].FromAffine(&aff[i])
		}

		got := ToLagrangeG1(jac, domain.Generator, logN)

		FFT(FrOps{}, scalars, domain.GeneratorInv, logN)
		for i := range scalars {
			scalars[i].Mul(&scalars[i], &domain.CardinalityInv)
		}
		expected := bn254.BatchScalarMultiplicationG1(&g, scalars)

		require.Len(t, got, n)
		for i := range got {
			require.True(t, got[i].Equal(&expected[i]), "logN=%d i=%d", logN, i)
		}
	}
}

func TestToLagrangeG1SizeMismatchPanics(t *testing.T) {
	points := make([]bn254.G1Jac, 3)
	require.Panics(t, func() {
		ToLagrangeG1(points, fr.One(), 2)
	})
}
