package msm

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/ocelot-zk/garith/internal/testutil"
)

func naiveMSM(scalars []fr.Element, points []bn254.G1Affine) bn254.G1Jac {
	var acc, tmp, pJac bn254.G1Jac
	var bi big.Int
	for i := range scalars {
		pJac.FromAffine(&points[i])
		tmp.ScalarMultiplication(&pJac, scalars[i].BigInt(&bi))
		acc.AddAssign(&tmp)
	}
	return acc
}

func TestMultiExpMatchesNaive(t *testing.T) {
	for n := 1; n <= 64; n++ {
		scalars := testutil.Scalars(n, "msm/naive")
		points := testutil.Points(n, "msm/naive")

		got := MultiExp(scalars, points)
		want := naiveMSM(scalars, points)
		require.True(t, got.Equal(&want), "n=%d", n)
	}
}

func TestMultiExpSpecialScalars(t *testing.T) {
	points := testutil.Points(4, "msm/special")
	scalars := make([]fr.Element, 4)
	scalars[0].SetZero()
	scalars[1].SetOne()
	scalars[2].SetInt64(-1)
	scalars[3].SetUint64(2)

	got := MultiExp(scalars, points)
	want := naiveMSM(scalars, points)
	require.True(t, got.Equal(&want))

	small := SmallMultiExp(scalars, points)
	require.True(t, small.Equal(&want))
}

func TestSmallMultiExpMatchesMultiExp(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 16, 31, 33, 64} {
		scalars := testutil.Scalars(n, "msm/small")
		points := testutil.Points(n, "msm/small")

		small := SmallMultiExp(scalars, points)
		bucketed := MultiExp(scalars, points)
		require.True(t, small.Equal(&bucketed), "n=%d", n)
	}
}

func TestMultiExpMatchesReference(t *testing.T) {
	for _, n := range []int{100, 1 << 10} {
		scalars := testutil.Scalars(n, "msm/reference")
		points := testutil.Points(n, "msm/reference")

		got := MultiExp(scalars, points)

		var ref bn254.G1Jac
		_, err := ref.MultiExp(points, scalars, ecc.MultiExpConfig{})
		require.NoError(t, err)
		require.True(t, got.Equal(&ref), "n=%d", n)
	}
}

func TestMultiExpChunked(t *testing.T) {
	scalars := testutil.Scalars(10, "msm/chunked")
	points := testutil.Points(10, "msm/chunked")

	got := MultiExp(scalars, points, WithNbTasks(2))
	want := naiveMSM(scalars, points)
	require.True(t, got.Equal(&want))
}

func TestMultiExpEmpty(t *testing.T) {
	var want bn254.G1Jac
	got := MultiExp(nil, nil)
	require.True(t, got.Equal(&want))
}

func TestMultiExpLengthMismatchPanics(t *testing.T) {
	scalars := make([]fr.Element, 3)
	points := make([]bn254.G1Affine, 4)
	require.Panics(t, func() { MultiExp(scalars, points) })
	require.Panics(t, func() { SmallMultiExp(scalars, points) })
}

func TestMultiExpInvalidOptionPanics(t *testing.T) {
	scalars := make([]fr.Element, 2)
	points := make([]bn254.G1Affine, 2)
	require.Panics(t, func() { MultiExp(scalars, points, WithNbTasks(-1)) })
}
