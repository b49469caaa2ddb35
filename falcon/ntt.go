package falcon

import (
	"fmt"
	"math/bits"
	"sync"

	"zk-falcon/internal/zq"
)

// NTTPolynomial is a ring element in the transform domain: coefficient j
// holds the evaluation at the j-th root in bit-reversed order.
// Coordinatewise products here correspond to negacyclic products in the
// coefficient domain.
type NTTPolynomial []uint64

type nttTables struct {
	fwd  []uint64 // psi^brv(j)
	inv  []uint64 // psi^-brv(j)
	nInv uint64   // N^-1 mod q
}

var (
	tableMu  sync.Mutex
	tableMap = map[int]*nttTables{}
)

// tablesFor returns (building once per dimension) the twiddle tables for a
// power-of-two n with 2n | q-1.
func tablesFor(n int) (*nttTables, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("falcon: dimension %d is not a power of two", n)
	}
	tableMu.Lock()
	defer tableMu.Unlock()
	if tb, ok := tableMap[n]; ok {
		return tb, nil
	}
	psi, err := zq.FindPsi(n)
	if err != nil {
		return nil, err
	}
	ipsi, err := zq.Inv(psi)
	if err != nil {
		return nil, err
	}
	nInv, err := zq.Inv(uint64(n))
	if err != nil {
		return nil, err
	}
	logn := bits.Len(uint(n)) - 1
	tb := &nttTables{
		fwd:  make([]uint64, n),
		inv:  make([]uint64, n),
		nInv: nInv,
	}
	for j := 0; j < n; j++ {
		r := bits.Reverse32(uint32(j)) >> (32 - logn)
		tb.fwd[j] = zq.Pow(psi, uint64(r))
		tb.inv[j] = zq.Pow(ipsi, uint64(r))
	}
	tableMap[n] = tb
	return tb, nil
}

// NTTTable returns a copy of the forward twiddle table psi^brv(j) for the
// parameter set. The circuit-side transform uses the same table so the
// two domains agree index by index.
func (par Params) NTTTable() ([]uint64, error) {
	tb, err := tablesFor(par.N)
	if err != nil {
		return nil, err
	}
	return append([]uint64(nil), tb.fwd...), nil
}

// NTT applies the forward negacyclic transform, Cooley-Tukey order.
func NTT(p Polynomial) (NTTPolynomial, error) {
	tb, err := tablesFor(len(p))
	if err != nil {
		return nil, err
	}
	n := len(p)
	a := append([]uint64(nil), p...)
	t := n
	for m := 1; m < n; m <<= 1 {
		ht := t >> 1
		for i, j1 := 0, 0; i < m; i, j1 = i+1, j1+t {
			s := tb.fwd[m+i]
			for j := j1; j < j1+ht; j++ {
				u := a[j]
				v := zq.Mul(a[j+ht], s)
				a[j] = zq.Add(u, v)
				a[j+ht] = zq.Sub(u, v)
			}
		}
		t = ht
	}
	return NTTPolynomial(a), nil
}

// InvNTT applies the inverse transform, Gentleman-Sande order, including
// the final N^-1 scaling.
func InvNTT(tp NTTPolynomial) (Polynomial, error) {
	tb, err := tablesFor(len(tp))
	if err != nil {
		return nil, err
	}
	n := len(tp)
	a := append([]uint64(nil), tp...)
	t := 1
	for m := n; m > 1; m >>= 1 {
		hm := m >> 1
		dt := t << 1
		for i, j1 := 0, 0; i < hm; i, j1 = i+1, j1+dt {
			s := tb.inv[hm+i]
			for j := j1; j < j1+t; j++ {
				u, v := a[j], a[j+t]
				a[j] = zq.Add(u, v)
				a[j+t] = zq.Mul(zq.Sub(u, v), s)
			}
		}
		t = dt
	}
	for i := range a {
		a[i] = zq.Mul(a[i], tb.nInv)
	}
	return Polynomial(a), nil
}

// MulPointwise returns the coordinatewise product, i.e. the transform of
// the ring product of the underlying polynomials.
func (tp NTTPolynomial) MulPointwise(o NTTPolynomial) (NTTPolynomial, error) {
	if len(tp) != len(o) {
		return nil, fmt.Errorf("falcon: dimension mismatch %d vs %d", len(tp), len(o))
	}
	res := make(NTTPolynomial, len(tp))
	for i := range tp {
		res[i] = zq.Mul(tp[i], o[i])
	}
	return res, nil
}

// Inv returns the coordinatewise inverse. It fails when any slot is zero,
// i.e. when the underlying polynomial is not invertible in the ring.
func (tp NTTPolynomial) Inv() (NTTPolynomial, error) {
	res := make(NTTPolynomial, len(tp))
	for i, c := range tp {
		inv, err := zq.Inv(c)
		if err != nil {
			return nil, fmt.Errorf("falcon: transform slot %d is zero", i)
		}
		res[i] = inv
	}
	return res, nil
}

// Sub returns tp-o slotwise.
func (tp NTTPolynomial) Sub(o NTTPolynomial) (NTTPolynomial, error) {
	if len(tp) != len(o) {
		return nil, fmt.Errorf("falcon: dimension mismatch %d vs %d", len(tp), len(o))
	}
	res := make(NTTPolynomial, len(tp))
	for i := range tp {
		res[i] = zq.Sub(tp[i], o[i])
	}
	return res, nil
}
