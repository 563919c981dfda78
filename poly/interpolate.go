package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrDuplicatePoints is returned by Interpolate when two interpolation
// points coincide.
var ErrDuplicatePoints = errors.New("poly: duplicate interpolation points")

// Interpolate returns the coefficients of the unique polynomial of degree
// below len(points) passing through all (points[i], evals[i]) pairs. It
// panics if the slices differ in length and returns ErrDuplicatePoints if
// two points coincide.
//
// Each Lagrange basis polynomial is built by repeated multiplication with
// its scaled linear factors; the pairwise denominators are inverted upfront
// with a single batch inversion.
func Interpolate(points, evals []fr.Element) ([]fr.Element, error) {
	if len(points) != len(evals) {
		panic("poly: len(points) != len(evals)")
	}
	n := len(points)
	if n == 0 {
		return []fr.Element{}, nil
	}
	if n == 1 {
		return []fr.Element{evals[0]}, nil
	}

	// flat denominator table, row j holds points[j]-points[k] for k != j
	denoms := make([]fr.Element, 0, n*(n-1))
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			if k == j {
				continue
			}
			var d fr.Element
			d.Sub(&points[j], &points[k])
			if d.IsZero() {
				return nil, ErrDuplicatePoints
			}
			denoms = append(denoms, d)
		}
	}
	denoms = fr.BatchInvert(denoms)

	res := make([]fr.Element, n)
	tmp := make([]fr.Element, 0, n)
	next := make([]fr.Element, 0, n)
	idx := 0
	for j := 0; j < n; j++ {
		tmp = tmp[:1]
		tmp[0].SetOne()

		for k := 0; k < n; k++ {
			if k == j {
				continue
			}
			denom := denoms[idx]
			idx++

			// multiply tmp by denom·(X - points[k])
			var c, t fr.Element
			c.Mul(&denom, &points[k])
			c.Neg(&c)
			next = next[:len(tmp)+1]
			for i := range next {
				if i < len(tmp) {
					next[i].Mul(&tmp[i], &c)
				} else {
					next[i].SetZero()
				}
				if i > 0 {
					t.Mul(&tmp[i-1], &denom)
					next[i].Add(&next[i], &t)
				}
			}
			tmp, next = next, tmp
		}

		var e fr.Element
		for i := range tmp {
			e.Mul(&evals[j], &tmp[i])
			res[i].Add(&res[i], &e)
		}
	}
	return res, nil
}
