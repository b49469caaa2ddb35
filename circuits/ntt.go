package circuits

import (
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
	"zk-falcon/gadgets"
)

// NTT builds the verification circuit in the transform domain: signature
// and remainder are witnessed in the coefficient domain, transformed
// in-circuit, and for every slot hm[i] = v[i] + sig[i]*pk[i] mod q is
// asserted with one multiplication and one reduction. Public inputs are
// the key and the hashed message in the transform domain.
func NTT(sys cs.System, pk *falcon.PublicKey, msg []byte, sig *falcon.Signature) ([]*big.Int, error) {
	par, hm, s2, v, err := prepare(pk, msg, sig)
	if err != nil {
		return nil, err
	}
	pkNTT, err := falcon.NTT(pk.H)
	if err != nil {
		return nil, err
	}
	hmNTT, err := falcon.NTT(hm)
	if err != nil {
		return nil, err
	}

	sigVar := gadgets.AllocWitnessPoly(sys, s2)
	pkVar := gadgets.AllocPublicNTT(sys, pkNTT)
	hmVar := gadgets.AllocPublicNTT(sys, hmNTT)
	vVar := gadgets.AllocWitnessPoly(sys, v)

	for i := range vVar {
		if err := gadgets.EnforceLessThanQ(sys, vVar[i]); err != nil {
			return nil, err
		}
	}

	gp, err := gadgets.NTTParams(par, sys.FieldModulus())
	if err != nil {
		return nil, err
	}
	sigNTT, err := gadgets.NTTCircuit(sys, sigVar, gp)
	if err != nil {
		return nil, err
	}
	vNTT, err := gadgets.NTTCircuit(sys, vVar, gp)
	if err != nil {
		return nil, err
	}

	for i := 0; i < par.N; i++ {
		prod := cs.Mul(sys, sigNTT[i], pkVar[i])
		sum, err := gadgets.AddMod(sys, vNTT[i], prod)
		if err != nil {
			return nil, err
		}
		cs.AssertEq(sys, sum, hmVar[i])
	}

	norm, err := gadgets.L2NormVar(sys, []gadgets.PolyVar{sigVar, vVar})
	if err != nil {
		return nil, err
	}
	if err := gadgets.EnforceLessThanNormBound(sys, norm, par); err != nil {
		return nil, err
	}
	return publicVec(pkNTT, hmNTT), nil
}
