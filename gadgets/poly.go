package gadgets

import (
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
)

// PolyVar is a ring element as circuit signals in the coefficient domain.
// Allocation implies no range constraint; callers must range-prove every
// coefficient they rely on.
type PolyVar []cs.Lin

// NTTPolyVar is a ring element as circuit signals in the transform domain.
type NTTPolyVar []cs.Lin

func allocPoly(alloc func(*big.Int) cs.Variable, coeffs []uint64) []cs.Lin {
	out := make([]cs.Lin, len(coeffs))
	for i, c := range coeffs {
		out[i] = cs.FromVar(alloc(new(big.Int).SetUint64(c)))
	}
	return out
}

// AllocWitnessPoly allocates p's coefficients as witnesses.
func AllocWitnessPoly(sys cs.System, p falcon.Polynomial) PolyVar {
	return allocPoly(sys.AllocWitness, p)
}

// AllocPublicPoly allocates p's coefficients as public inputs.
func AllocPublicPoly(sys cs.System, p falcon.Polynomial) PolyVar {
	return allocPoly(sys.AllocPublic, p)
}

// AllocPublicNTT allocates a transform-domain element as public inputs.
func AllocPublicNTT(sys cs.System, p falcon.NTTPolynomial) NTTPolyVar {
	return allocPoly(sys.AllocPublic, p)
}
