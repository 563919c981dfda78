package fft

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FrOps implements [GroupOps] over field elements. The scalar action is
// field multiplication.
type FrOps struct{}

func (FrOps) AddAssign(a, b *fr.Element) { a.Add(a, b) }
func (FrOps) SubAssign(a, b *fr.Element) { a.Sub(a, b) }
func (FrOps) ScalarMul(a, s *fr.Element) { a.Mul(a, s) }

// G1JacOps implements [GroupOps] over curve points in Jacobian coordinates.
// The scalar action is scalar multiplication.
type G1JacOps struct{}

func (G1JacOps) AddAssign(a, b *bn254.G1Jac) { a.AddAssign(b) }
func (G1JacOps) SubAssign(a, b *bn254.G1Jac) { a.SubAssign(b) }
func (G1JacOps) ScalarMul(a *bn254.G1Jac, s *fr.Element) {
	var bi big.Int
	a.ScalarMultiplication(a, s.BigInt(&bi))
}
