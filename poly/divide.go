package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ocelot-zk/garith/debug"
)

// DivideByXMinusA returns the quotient f / (X - a), assuming f(a) == 0.
// The caller is responsible for that assumption: the remainder is dropped
// without being checked in release builds, and builds with the debug tag
// panic if it is nonzero. The input is left untouched.
func DivideByXMinusA(f []fr.Element, a fr.Element) []fr.Element {
	if len(f) == 0 {
		return nil
	}

	// negate the divisor root once, the sweep then only multiplies
	var aNeg fr.Element
	aNeg.Neg(&a)

	q := make([]fr.Element, len(f)-1)

	var carry, lead fr.Element
	for i := len(q) - 1; i >= 0; i-- {
		lead.Sub(&f[i+1], &carry)
		q[i] = lead
		carry.Mul(&lead, &aNeg)
	}

	// the remainder is f[0] - carry; the division is exact iff it vanishes
	debug.Assert(carry.Equal(&f[0]), "poly: division by X-a leaves a nonzero remainder")

	return q
}
