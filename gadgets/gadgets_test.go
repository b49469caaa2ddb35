package gadgets

import (
	"math/big"
	"testing"

	"zk-falcon/cs"
	"zk-falcon/cs/bn254"
	"zk-falcon/falcon"
)

func mustSat(t *testing.T, sys *bn254.System) {
	t.Helper()
	ok, err := sys.IsSatisfiable(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("system is unsatisfiable")
	}
}

func mustUnsat(t *testing.T, sys *bn254.System) {
	t.Helper()
	ok, err := sys.IsSatisfiable(nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("system is satisfiable")
	}
}

// witness allocates v as a witness and returns it as a combination.
func witness(sys cs.System, v uint64) cs.Lin {
	return cs.FromVar(sys.AllocWitness(new(big.Int).SetUint64(v)))
}

// fixture returns a deterministic valid key/signature pair plus the
// hashed message and remainder v = hm - s2*h.
func fixture(t *testing.T, n int) (falcon.Params, *falcon.PublicKey, *falcon.Signature, falcon.Polynomial, falcon.Polynomial) {
	t.Helper()
	par, err := falcon.NewParams(n)
	if err != nil {
		t.Fatal(err)
	}
	pk, sig, err := falcon.GenerateTestVector([]byte("test seed"), []byte("testing message"), par)
	if err != nil {
		t.Fatal(err)
	}
	hm, err := falcon.HashToPoint([]byte("testing message"), sig.Nonce[:], par)
	if err != nil {
		t.Fatal(err)
	}
	s2h, err := sig.Poly().Mul(pk.H)
	if err != nil {
		t.Fatal(err)
	}
	v, err := hm.Sub(s2h)
	if err != nil {
		t.Fatal(err)
	}
	return par, pk, sig, hm, v
}
