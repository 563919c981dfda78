// Package testutil derives deterministic field and curve inputs for tests
// and benchmarks, so a failing size reproduces with the same data.
package testutil

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// Scalars returns n field elements derived from seed.
func Scalars(n int, seed string) []fr.Element {
	res := make([]fr.Element, n)
	buf := make([]byte, len(seed)+8)
	copy(buf, seed)
	for i := range res {
		binary.BigEndian.PutUint64(buf[len(seed):], uint64(i))
		sum := blake2b.Sum256(buf)
		res[i].SetBytes(sum[:])
	}
	return res
}

// Points returns n affine points derived from seed, as multiples of the
// group generator.
func Points(n int, seed string) []bn254.G1Affine {
	if n == 0 {
		return nil
	}
	_, _, g, _ := bn254.Generators()
	return bn254.BatchScalarMultiplicationG1(&g, Scalars(n, seed+"/points"))
}

// JacPoints returns Points(n, seed) in Jacobian coordinates.
func JacPoints(n int, seed string) []bn254.G1Jac {
	aff := Points(n, seed)
	res := make([]bn254.G1Jac, n)
	for i := range res {
		res[i].FromAffine(&aff[i])
	}
	return res
}
