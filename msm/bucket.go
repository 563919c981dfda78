package msm

import "github.com/consensys/gnark-crypto/ecc/bn254"

// bucket accumulates the points sharing one digit value within a window.
// It starts empty, holds a single affine point after the first hit and only
// switches to a projective sum on the second, so a bucket hit exactly once
// per window never pays for a projective addition.
type bucket struct {
	state uint8
	aff   bn254.G1Affine
	jac   bn254.G1Jac
}

const (
	bucketEmpty uint8 = iota
	bucketAffine
	bucketJac
)

func (b *bucket) accumulate(p *bn254.G1Affine) {
	switch b.state {
	case bucketEmpty:
		b.aff = *p
		b.state = bucketAffine
	case bucketAffine:
		b.jac.FromAffine(&b.aff)
		b.jac.AddMixed(p)
		b.state = bucketJac
	default:
		b.jac.AddMixed(p)
	}
}

// addInto adds the bucket contents into acc; empty buckets contribute
// nothing.
func (b *bucket) addInto(acc *bn254.G1Jac) {
	switch b.state {
	case bucketAffine:
		acc.AddMixed(&b.aff)
	case bucketJac:
		acc.AddAssign(&b.jac)
	}
}
