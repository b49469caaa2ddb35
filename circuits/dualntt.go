package circuits

import (
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
	"zk-falcon/gadgets"
)

// DualNTT builds the transform-domain verification circuit over sign-split
// witnesses: signature and remainder are allocated as (pos, neg) pairs,
// recombined into standard form before the in-circuit transform, and the
// norm bound is the per-coefficient magnitude check on every sign part
// instead of the aggregate sum of squares. Public inputs match the NTT
// variant.
func DualNTT(sys cs.System, pk *falcon.PublicKey, msg []byte, sig *falcon.Signature) ([]*big.Int, error) {
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

	sigDual, err := gadgets.AllocWitnessDual(sys, falcon.SplitCentered(s2))
	if err != nil {
		return nil, err
	}
	pkVar := gadgets.AllocPublicNTT(sys, pkNTT)
	hmVar := gadgets.AllocPublicNTT(sys, hmNTT)
	vDual, err := gadgets.AllocWitnessDual(sys, falcon.SplitCentered(v))
	if err != nil {
		return nil, err
	}

	gp, err := gadgets.NTTParams(par, sys.FieldModulus())
	if err != nil {
		return nil, err
	}
	sigNTT, err := gadgets.NTTCircuit(sys, sigDual.ToPolyVar(), gp)
	if err != nil {
		return nil, err
	}
	vNTT, err := gadgets.NTTCircuit(sys, vDual.ToPolyVar(), gp)
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

	if err := gadgets.EnforceDualLinfBound(sys, []gadgets.DualPolyVar{sigDual, vDual}); err != nil {
		return nil, err
	}
	return publicVec(pkNTT, hmNTT), nil
}
