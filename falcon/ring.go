package falcon

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// BuildRing constructs the Lattigo ring Z_q[x]/(x^n+1) with the single
// limb q. It backs the Montgomery-form product and the uniform sampler;
// the transform-domain values exposed to the circuits come from the local
// tables instead, so the two code paths cross-check each other.
func BuildRing(n int) (*ring.Ring, error) {
	dbg("[Ring] BuildRing N=%d q=%d\n", n, Q)
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("falcon: dimension %d is not a power of two", n)
	}
	return ring.NewRing(n, []uint64{Q})
}

// ToRingPoly copies p into a fresh Lattigo polynomial.
func ToRingPoly(r *ring.Ring, p Polynomial) (*ring.Poly, error) {
	rp := r.NewPoly()
	if len(rp.Coeffs[0]) != len(p) {
		return nil, fmt.Errorf("falcon: ring dimension %d does not match polynomial %d", len(rp.Coeffs[0]), len(p))
	}
	copy(rp.Coeffs[0], p)
	return rp, nil
}

// FromRingPoly extracts the level-0 coefficients.
func FromRingPoly(rp *ring.Poly) Polynomial {
	return append(Polynomial(nil), rp.Coeffs[0]...)
}

// MulRing multiplies a and b through Lattigo's Montgomery NTT pipeline.
func MulRing(r *ring.Ring, a, b Polynomial) (Polynomial, error) {
	pa, err := ToRingPoly(r, a)
	if err != nil {
		return nil, err
	}
	pb, err := ToRingPoly(r, b)
	if err != nil {
		return nil, err
	}
	r.MForm(pa, pa)
	r.MForm(pb, pb)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pb, res)
	r.InvNTT(res, res)
	r.InvMForm(res, res)
	return FromRingPoly(res), nil
}

// UniformPolynomial samples a uniform ring element deterministically from
// seed via Lattigo's keyed PRNG.
func UniformPolynomial(r *ring.Ring, seed []byte) (Polynomial, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, err
	}
	us := ring.NewUniformSampler(prng, r)
	p := r.NewPoly()
	us.Read(p)
	return FromRingPoly(p), nil
}
