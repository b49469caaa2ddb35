package circuits

import (
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
	"zk-falcon/gadgets"
)

// Schoolbook builds the verification circuit with direct inner products:
// for every output index the signature is multiplied against a rotated,
// sign-adjusted column of the public key and the result must equal
// hm[i] - v[i] up to one multiple of q. Public inputs are the key and the
// hashed message in the coefficient domain.
func Schoolbook(sys cs.System, pk *falcon.PublicKey, msg []byte, sig *falcon.Signature) ([]*big.Int, error) {
	par, hm, s2, v, err := prepare(pk, msg, sig)
	if err != nil {
		return nil, err
	}

	sigVar := gadgets.AllocWitnessPoly(sys, s2)
	pkVar := gadgets.AllocPublicPoly(sys, pk.H)
	hmVar := gadgets.AllocPublicPoly(sys, hm)
	vVar := gadgets.AllocWitnessPoly(sys, v)

	// buf holds reverse(concat(q-h, h)); the slice at N-1-i is the
	// negacyclic column whose inner product with s2 is (s2*h)[i].
	n := par.N
	qLin := cs.Const(qBig)
	buf := make([]cs.Lin, 2*n)
	for j := 0; j < n; j++ {
		buf[n-1-j] = pkVar[j]
		buf[2*n-1-j] = qLin.Sub(pkVar[j])
	}

	for i := 0; i < n; i++ {
		if err := gadgets.EnforceLessThanQ(sys, vVar[i]); err != nil {
			return nil, err
		}
		col := buf[n-1-i : 2*n-1-i]
		prod, err := gadgets.InnerProductMod(sys, sigVar, col)
		if err != nil {
			return nil, err
		}
		// rhs = hm[i] + q - (s2*h)[i] stays in (0, 2q), so exactly one
		// of v[i], v[i]+q can match it.
		rhs := qLin.Add(hmVar[i]).Sub(prod)
		direct := cs.IsEq(sys, rhs, vVar[i])
		shifted := cs.IsEq(sys, rhs, vVar[i].AddConst(qBig))
		cs.AssertTrue(sys, cs.Or(sys, direct, shifted))
	}

	norm, err := gadgets.L2NormVar(sys, []gadgets.PolyVar{sigVar, vVar})
	if err != nil {
		return nil, err
	}
	if err := gadgets.EnforceLessThanNormBound(sys, norm, par); err != nil {
		return nil, err
	}
	return publicVec(pk.H, hm), nil
}
