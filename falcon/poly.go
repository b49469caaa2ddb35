package falcon

import (
	"fmt"
	"math/big"

	"zk-falcon/internal/zq"
)

// Polynomial is an element of Z_q[x]/(x^N+1) stored as N coefficients in
// [0, q). The dimension is carried by the slice length.
type Polynomial []uint64

// NewPolynomial returns the zero polynomial of dimension n.
func NewPolynomial(n int) Polynomial {
	return make(Polynomial, n)
}

// Copy returns a fresh copy of p.
func (p Polynomial) Copy() Polynomial {
	return append(Polynomial(nil), p...)
}

// Equal reports whether p and o have identical dimension and coefficients.
func (p Polynomial) Equal(o Polynomial) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Add returns p+o mod q.
func (p Polynomial) Add(o Polynomial) (Polynomial, error) {
	if len(p) != len(o) {
		return nil, fmt.Errorf("falcon: dimension mismatch %d vs %d", len(p), len(o))
	}
	res := NewPolynomial(len(p))
	for i := range p {
		res[i] = zq.Add(p[i], o[i])
	}
	return res, nil
}

// Sub returns p-o mod q.
func (p Polynomial) Sub(o Polynomial) (Polynomial, error) {
	if len(p) != len(o) {
		return nil, fmt.Errorf("falcon: dimension mismatch %d vs %d", len(p), len(o))
	}
	res := NewPolynomial(len(p))
	for i := range p {
		res[i] = zq.Sub(p[i], o[i])
	}
	return res, nil
}

// Neg returns -p mod q.
func (p Polynomial) Neg() Polynomial {
	res := NewPolynomial(len(p))
	for i := range p {
		res[i] = zq.Neg(p[i])
	}
	return res
}

// Center returns the centered representatives: coefficients above 6144 map
// to c-q, so the result lies in [-6144, 6144].
func (p Polynomial) Center() []int64 {
	res := make([]int64, len(p))
	for i, c := range p {
		if c > 6144 {
			res[i] = int64(c) - int64(Q)
		} else {
			res[i] = int64(c)
		}
	}
	return res
}

// FromCentered lifts centered coefficients back into [0, q).
func FromCentered(c []int64) Polynomial {
	res := NewPolynomial(len(c))
	q := int64(Q)
	for i, v := range c {
		m := v % q
		if m < 0 {
			m += q
		}
		res[i] = uint64(m)
	}
	return res
}

// L2NormSquared returns the squared L2 norm over the centered
// representatives of every given polynomial.
func L2NormSquared(ps ...Polynomial) uint64 {
	var sum uint64
	for _, p := range ps {
		for _, c := range p.Center() {
			sum += uint64(c * c)
		}
	}
	return sum
}

// MulSchoolbook returns p*o mod (x^N+1, q) by exact big.Int convolution
// followed by the negacyclic fold. Quadratic; used as an independent check
// of the transform-based product.
func (p Polynomial) MulSchoolbook(o Polynomial) (Polynomial, error) {
	n := len(p)
	if n != len(o) {
		return nil, fmt.Errorf("falcon: dimension mismatch %d vs %d", n, len(o))
	}
	deg := 2*n - 1
	acc := make([]*big.Int, deg)
	for i := range acc {
		acc[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		bi := new(big.Int).SetUint64(pi)
		for j, oj := range o {
			if oj == 0 {
				continue
			}
			tmp.SetUint64(oj)
			tmp.Mul(tmp, bi)
			acc[i+j].Add(acc[i+j], tmp)
		}
	}
	for i := deg - 1; i >= n; i-- {
		acc[i-n].Sub(acc[i-n], acc[i])
	}
	q := new(big.Int).SetUint64(Q)
	res := NewPolynomial(n)
	for i := 0; i < n; i++ {
		acc[i].Mod(acc[i], q)
		res[i] = acc[i].Uint64()
	}
	return res, nil
}

// Mul returns p*o mod (x^N+1, q) via the local negacyclic transform.
func (p Polynomial) Mul(o Polynomial) (Polynomial, error) {
	pt, err := NTT(p)
	if err != nil {
		return nil, err
	}
	ot, err := NTT(o)
	if err != nil {
		return nil, err
	}
	prod, err := pt.MulPointwise(ot)
	if err != nil {
		return nil, err
	}
	return InvNTT(prod)
}
