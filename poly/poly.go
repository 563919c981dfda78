// Package poly provides utilities over polynomials in coefficient form,
// represented as []fr.Element with index i holding the coefficient of X^i.
package poly

import (
	"iter"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ocelot-zk/garith/parallel"
)

// Eval evaluates p at x with Horner's rule. Past a size threshold the
// coefficients are cut into contiguous chunks evaluated independently;
// chunk i's partial sum is rescaled by x^start before folding, since a
// contiguous coefficient block is the block polynomial shifted by its start
// degree.
func Eval(p []fr.Element, x fr.Element) fr.Element {
	n := len(p)
	nbTasks := runtime.NumCPU()
	if n*2 < nbTasks {
		return evalSerial(p, x)
	}

	chunkSize := (n + nbTasks - 1) / nbTasks
	nbChunks := (n + chunkSize - 1) / chunkSize
	parts := make([]fr.Element, nbChunks)
	parallel.Execute(nbChunks, func(start, end int) {
		for ci := start; ci < end; ci++ {
			lo := ci * chunkSize
			hi := min(lo+chunkSize, n)
			part := evalSerial(p[lo:hi], x)
			var shift fr.Element
			shift.Exp(x, big.NewInt(int64(lo)))
			parts[ci].Mul(&part, &shift)
		}
	})

	var res fr.Element
	for i := range parts {
		res.Add(&res, &parts[i])
	}
	return res
}

func evalSerial(p []fr.Element, x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &p[i])
	}
	return res
}

// InnerProduct computes Σ a[i]·b[i]. It panics if the slices differ in
// length.
func InnerProduct(a, b []fr.Element) fr.Element {
	if len(a) != len(b) {
		panic("poly: len(a) != len(b)")
	}
	var acc, t fr.Element
	for i := range a {
		t.Mul(&a[i], &b[i])
		acc.Add(&acc, &t)
	}
	return acc
}

// EvalVanishing evaluates Π (z - root) over the given roots. The empty
// product is one. Chunks of the product fold independently and are
// multiplied together at the end.
func EvalVanishing(roots []fr.Element, z fr.Element) fr.Element {
	n := len(roots)
	nbTasks := runtime.NumCPU()
	if n*2 < nbTasks {
		return evalVanishingSerial(roots, z)
	}

	chunkSize := (n + nbTasks - 1) / nbTasks
	nbChunks := (n + chunkSize - 1) / chunkSize
	parts := make([]fr.Element, nbChunks)
	parallel.Execute(nbChunks, func(start, end int) {
		for ci := start; ci < end; ci++ {
			lo := ci * chunkSize
			hi := min(lo+chunkSize, n)
			parts[ci] = evalVanishingSerial(roots[lo:hi], z)
		}
	})

	res := fr.One()
	for i := range parts {
		res.Mul(&res, &parts[i])
	}
	return res
}

func evalVanishingSerial(roots []fr.Element, z fr.Element) fr.Element {
	acc := fr.One()
	var t fr.Element
	for i := range roots {
		t.Sub(&z, &roots[i])
		acc.Mul(&acc, &t)
	}
	return acc
}

// Powers returns the unbounded sequence 1, base, base², …. Every range over
// the result restarts it from 1.
func Powers(base fr.Element) iter.Seq[fr.Element] {
	return func(yield func(fr.Element) bool) {
		power := fr.One()
		for {
			if !yield(power) {
				return
			}
			power.Mul(&power, &base)
		}
	}
}
