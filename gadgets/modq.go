package gadgets

import (
	"fmt"
	"math/big"

	"zk-falcon/cs"
)

// ModQ returns b with b = a mod q and 0 <= b < q. The prover supplies the
// quotient t and remainder b as witnesses, the gadget asserts a - t*q = b
// and range-proves b < q. The quotient is deliberately not range-limited:
// a must be a non-negative integer whose true value does not wrap the
// native field, and bounding it is the caller's obligation.
func ModQ(sys cs.System, a cs.Lin) (cs.Lin, error) {
	av := cs.Eval(sys, a)
	t := new(big.Int).Quo(av, qBig)
	b := new(big.Int).Rem(av, qBig)
	tl := cs.FromVar(sys.AllocWitness(t))
	bl := cs.FromVar(sys.AllocWitness(b))
	sys.AssertLin(a.Sub(tl.Scale(qBig)).Sub(bl))
	if err := EnforceLessThanQ(sys, bl); err != nil {
		return cs.Lin{}, err
	}
	return bl, nil
}

// AddMod returns (a + b) mod q for a, b below q.
func AddMod(sys cs.System, a, b cs.Lin) (cs.Lin, error) {
	return ModQ(sys, a.Add(b))
}

// SubMod returns (a - b) mod q for a, b below q, shifting by q so the
// intermediate value stays non-negative.
func SubMod(sys cs.System, a, b cs.Lin) (cs.Lin, error) {
	return ModQ(sys, a.Sub(b).AddConst(qBig))
}

// MulMod returns a*b mod q for a, b below q.
func MulMod(sys cs.System, a, b cs.Lin) (cs.Lin, error) {
	return ModQ(sys, cs.Mul(sys, a, b))
}

// InnerProductMod returns sum(a_i * b_i) mod q for factors below q,
// spending one multiplication per index and a single shared reduction.
func InnerProductMod(sys cs.System, a, b []cs.Lin) (cs.Lin, error) {
	if len(a) != len(b) {
		return cs.Lin{}, fmt.Errorf("gadgets: inner product over %d vs %d terms", len(a), len(b))
	}
	acc := cs.Zero()
	for i := range a {
		acc = acc.Add(cs.Mul(sys, a[i], b[i]))
	}
	return ModQ(sys, acc)
}
