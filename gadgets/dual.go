package gadgets

import (
	"fmt"
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
)

// DualPolyVar is the sign-split form of a ring element in the circuit:
// Pos[i] - Neg[i] is the centered coefficient. Allocation asserts
// Pos[i]*Neg[i] = 0 per index, so the invariant is enforced, not assumed.
type DualPolyVar struct {
	Pos []cs.Lin
	Neg []cs.Lin
}

// AllocWitnessDual allocates both sign parts as witnesses with the
// mutual-exclusion constraint. The cleartext values are propagated as
// given; a pair violating the invariant allocates fine and leaves the
// system unsatisfiable.
func AllocWitnessDual(sys cs.System, d falcon.DualPolynomial) (DualPolyVar, error) {
	if len(d.Pos) != len(d.Neg) {
		return DualPolyVar{}, fmt.Errorf("gadgets: dual parts have dimensions %d vs %d", len(d.Pos), len(d.Neg))
	}
	out := DualPolyVar{
		Pos: make([]cs.Lin, len(d.Pos)),
		Neg: make([]cs.Lin, len(d.Neg)),
	}
	for i := range d.Pos {
		p := cs.FromVar(sys.AllocWitness(new(big.Int).SetUint64(d.Pos[i])))
		n := cs.FromVar(sys.AllocWitness(new(big.Int).SetUint64(d.Neg[i])))
		sys.AssertMul(p, n, cs.Zero())
		out.Pos[i] = p
		out.Neg[i] = n
	}
	return out, nil
}

// ToPolyVar returns the standard-form coefficients pos - neg + q. No
// constraints are added; the values stay below 2q whenever both parts are
// below q, which the transform's input bound accounts for.
func (d DualPolyVar) ToPolyVar() PolyVar {
	out := make(PolyVar, len(d.Pos))
	for i := range d.Pos {
		out[i] = d.Pos[i].Sub(d.Neg[i]).AddConst(qBig)
	}
	return out
}
