//go:build !icicle

package icicle

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/ocelot-zk/garith/accel"
)

// HasIcicle reports whether the binary was built with ICICLE support.
const HasIcicle = false

// FFTFr computes an in-place radix-2 FFT of a on the device.
func FFTFr(a []fr.Element, omega fr.Element, logN uint, opts ...accel.Option) {
	panic("icicle backend requested but program compiled without 'icicle' build tag")
}

// MultiExpG1 computes the multi-scalar multiplication of points by scalars on
// the device.
func MultiExpG1(scalars []fr.Element, points []bn254.G1Affine, opts ...accel.Option) bn254.G1Jac {
	panic("icicle backend requested but program compiled without 'icicle' build tag")
}
