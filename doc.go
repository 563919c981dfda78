// Package garith provides the arithmetic kernels of a zero knowledge proof
// system over the BN254 scalar field: multi-scalar multiplication, radix-2
// FFTs over groups of roots of unity, and the polynomial operations built on
// top of them.
//
// The kernels live in subpackages:
//   - msm: bucketed multi-scalar multiplication over G1
//   - fft: in-place radix-2 FFT, generic over the coefficient group
//   - poly: evaluation, division and interpolation of dense polynomials
//   - parallel: the work distributor the kernels split their loops with
//   - accel: optional device-accelerated implementations
package garith

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
