package gadgets

import (
	"zk-falcon/cs"
)

// L2NormVar returns the sum of squared centered coefficients across the
// given polynomials. Each coefficient is decomposed into 14 bits, the
// sign predicate picks c or q-c, and the centered value is squared into
// the accumulator. The result carries no bound of its own; callers apply
// EnforceLessThanNormBound.
func L2NormVar(sys cs.System, polys []PolyVar) (cs.Lin, error) {
	acc := cs.Zero()
	qc := cs.Const(qBig)
	for _, p := range polys {
		for _, c := range p {
			pos, err := IsLessThan6144(sys, c)
			if err != nil {
				return cs.Lin{}, err
			}
			centered := cs.Select(sys, pos, c, qc.Sub(c))
			acc = acc.Add(cs.Mul(sys, centered, centered))
		}
	}
	return acc, nil
}

// DualL2NormVar sums pos^2 + neg^2 across the given dual polynomials. At
// most one part of each pair is non-zero, so the term is exactly the
// centered square; no range checks are added.
func DualL2NormVar(sys cs.System, duals []DualPolyVar) cs.Lin {
	acc := cs.Zero()
	for _, d := range duals {
		for i := range d.Pos {
			acc = acc.Add(cs.Mul(sys, d.Pos[i], d.Pos[i]))
			acc = acc.Add(cs.Mul(sys, d.Neg[i], d.Neg[i]))
		}
	}
	return acc
}

// EnforceDualLinfBound bounds every sign part of every coefficient of the
// given dual polynomials by 765, the per-coefficient magnitude bound used
// in place of the aggregate norm.
func EnforceDualLinfBound(sys cs.System, duals []DualPolyVar) error {
	for _, d := range duals {
		for i := range d.Pos {
			if err := EnforceLeq765(sys, d.Pos[i]); err != nil {
				return err
			}
			if err := EnforceLeq765(sys, d.Neg[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
