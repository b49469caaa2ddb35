// Package circuits assembles the gadget layer into the full verification
// relation: hash(message) = v + signature*publicKey in the ring, plus a
// norm bound on (signature, v). Three builders share the relation and
// differ in the multiplication strategy: schoolbook inner products, the
// in-circuit transform, and the transform over sign-split witnesses. Each
// builder returns the ordered public-input values handed to a proving
// backend; identical cleartext inputs always produce identical vectors.
package circuits

import (
	"fmt"
	"math/big"

	"zk-falcon/falcon"
)

var qBig = new(big.Int).SetUint64(falcon.Q)

// prepare derives the cleartext values every variant allocates: the
// parameter set, the hashed message and the remainder v = hm - s2*h.
func prepare(pk *falcon.PublicKey, msg []byte, sig *falcon.Signature) (falcon.Params, falcon.Polynomial, falcon.Polynomial, falcon.Polynomial, error) {
	if pk.LogN != sig.LogN {
		return falcon.Params{}, nil, nil, nil, fmt.Errorf("circuits: key has logn %d, signature logn %d", pk.LogN, sig.LogN)
	}
	par, err := falcon.NewParams(1 << pk.LogN)
	if err != nil {
		return falcon.Params{}, nil, nil, nil, err
	}
	if len(pk.H) != par.N {
		return falcon.Params{}, nil, nil, nil, fmt.Errorf("circuits: public key has %d coefficients, want %d", len(pk.H), par.N)
	}
	s2 := sig.Poly()
	if len(s2) != par.N {
		return falcon.Params{}, nil, nil, nil, fmt.Errorf("circuits: signature has %d coefficients, want %d", len(s2), par.N)
	}
	hm, err := falcon.HashToPoint(msg, sig.Nonce[:], par)
	if err != nil {
		return falcon.Params{}, nil, nil, nil, err
	}
	s2h, err := s2.Mul(pk.H)
	if err != nil {
		return falcon.Params{}, nil, nil, nil, err
	}
	v, err := hm.Sub(s2h)
	if err != nil {
		return falcon.Params{}, nil, nil, nil, err
	}
	return par, hm, s2, v, nil
}

// publicVec flattens the public key and hashed message, in that order,
// into the public-input vector.
func publicVec(pk, hm []uint64) []*big.Int {
	out := make([]*big.Int, 0, len(pk)+len(hm))
	for _, c := range pk {
		out = append(out, new(big.Int).SetUint64(c))
	}
	for _, c := range hm {
		out = append(out, new(big.Int).SetUint64(c))
	}
	return out
}
