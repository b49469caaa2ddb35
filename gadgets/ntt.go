package gadgets

import (
	"fmt"
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
)

var qM1Big = new(big.Int).SetUint64(falcon.Q - 1)

// NTTGadgetParams carries the in-circuit transform tables: the twiddle
// constants in bit-reversed order, shared with the cleartext transform,
// and the per-stage shift constants C_l = 2^l * q^(l+1) that keep
// butterfly outputs non-negative without per-stage reduction.
type NTTGadgetParams struct {
	par    falcon.Params
	table  []uint64
	consts []*big.Int
}

// NTTParams builds the transform tables for par and statically verifies
// the deferred-reduction invariant against fieldModulus: starting from
// inputs below 2q, stage l needs C_{l+1} >= B_l*(q-1) to keep the shifted
// butterfly non-negative, signals after the stage stay below
// B_{l+1} = B_l + C_{l+1}, and the final bound must fit the field.
// Construction fails fast when any of this does not hold.
func NTTParams(par falcon.Params, fieldModulus *big.Int) (*NTTGadgetParams, error) {
	table, err := par.NTTTable()
	if err != nil {
		return nil, err
	}
	consts := make([]*big.Int, par.LogN+1)
	for l := 0; l <= par.LogN; l++ {
		c := new(big.Int).Exp(qBig, big.NewInt(int64(l+1)), nil)
		consts[l] = c.Lsh(c, uint(l))
	}
	bound := new(big.Int).SetUint64(2 * falcon.Q)
	for l := 0; l < par.LogN; l++ {
		need := new(big.Int).Mul(bound, qM1Big)
		if need.Cmp(consts[l+1]) > 0 {
			return nil, fmt.Errorf("gadgets: transform stage %d shift constant below the signal bound", l)
		}
		bound.Add(bound, consts[l+1])
	}
	if bound.Cmp(fieldModulus) >= 0 {
		return nil, fmt.Errorf("gadgets: deferred transform bound needs %d bits, field has %d",
			bound.BitLen(), fieldModulus.BitLen())
	}
	return &NTTGadgetParams{par: par, table: table, consts: consts}, nil
}

// N returns the ring dimension of the parameter set.
func (gp *NTTGadgetParams) N() int { return gp.par.N }

// NTTCircuitDeferred runs the butterfly network on in without any modular
// reduction. Butterflies are pure linear combinations and cost no
// constraints; outputs are congruent to the cleartext transform mod q but
// only bounded by the statically-verified deferred bound.
func NTTCircuitDeferred(sys cs.System, in PolyVar, gp *NTTGadgetParams) ([]cs.Lin, error) {
	n := gp.par.N
	if len(in) != n {
		return nil, fmt.Errorf("gadgets: transform input has %d coefficients, want %d", len(in), n)
	}
	a := make([]cs.Lin, n)
	copy(a, in)
	t := n
	stage := 0
	for m := 1; m < n; m <<= 1 {
		ht := t >> 1
		shift := gp.consts[stage+1]
		for i, j1 := 0, 0; i < m; i, j1 = i+1, j1+t {
			s := new(big.Int).SetUint64(gp.table[m+i])
			for j := j1; j < j1+ht; j++ {
				u := a[j]
				vs := a[j+ht].Scale(s)
				a[j] = u.Add(vs)
				a[j+ht] = u.AddConst(shift).Sub(vs)
			}
		}
		t = ht
		stage++
	}
	return a, nil
}

// NTTCircuit transforms in into the transform domain, spending one
// reduction per output after the last stage.
func NTTCircuit(sys cs.System, in PolyVar, gp *NTTGadgetParams) (NTTPolyVar, error) {
	raw, err := NTTCircuitDeferred(sys, in, gp)
	if err != nil {
		return nil, err
	}
	out := make(NTTPolyVar, len(raw))
	for i := range raw {
		r, err := ModQ(sys, raw[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
