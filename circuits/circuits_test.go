package circuits

import (
	"math/big"
	"reflect"
	"testing"

	"zk-falcon/cs"
	"zk-falcon/cs/bn254"
	"zk-falcon/falcon"
)

type builder func(cs.System, *falcon.PublicKey, []byte, *falcon.Signature) ([]*big.Int, error)

var variants = []struct {
	name  string
	build builder
}{
	{"schoolbook", Schoolbook},
	{"ntt", NTT},
	{"dualntt", DualNTT},
}

var testMsg = []byte("testing message")

func testVector(t *testing.T, n int) (*falcon.PublicKey, *falcon.Signature) {
	t.Helper()
	par, err := falcon.NewParams(n)
	if err != nil {
		t.Fatal(err)
	}
	pk, sig, err := falcon.GenerateTestVector([]byte("test seed"), testMsg, par)
	if err != nil {
		t.Fatal(err)
	}
	return pk, sig
}

func copySig(sig *falcon.Signature) *falcon.Signature {
	out := *sig
	out.S2 = append([]int16(nil), sig.S2...)
	return &out
}

func TestVariantsSatisfiable(t *testing.T) {
	pk, sig := testVector(t, 512)
	for _, v := range variants {
		sys := bn254.NewSystem()
		public, err := v.build(sys, pk, testMsg, sig)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if len(public) != sys.NumPublic() {
			t.Fatalf("%s: vector has %d values, system has %d public inputs", v.name, len(public), sys.NumPublic())
		}
		if sys.NumConstraints() == 0 {
			t.Fatalf("%s: no constraints recorded", v.name)
		}
		ok, err := sys.IsSatisfiable(public)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if !ok {
			t.Fatalf("%s: valid signature rejected", v.name)
		}
	}
}

func TestVariantsSatisfiable1024(t *testing.T) {
	pk, sig := testVector(t, 1024)
	for _, v := range variants {
		if v.name == "schoolbook" && testing.Short() {
			continue
		}
		sys := bn254.NewSystem()
		public, err := v.build(sys, pk, testMsg, sig)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		ok, err := sys.IsSatisfiable(public)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if !ok {
			t.Fatalf("%s: valid signature rejected", v.name)
		}
	}
}

func TestPublicVectorIdempotent(t *testing.T) {
	pk, sig := testVector(t, 512)
	for _, v := range variants {
		first, err := v.build(bn254.NewSystem(), pk, testMsg, sig)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		second, err := v.build(bn254.NewSystem(), pk, testMsg, sig)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: identical inputs produced different public vectors", v.name)
		}
	}
}

func TestTamperedWitnessRejected(t *testing.T) {
	pk, sig := testVector(t, 512)
	for _, v := range variants {
		bad := copySig(sig)
		bad.S2[17]++
		sys := bn254.NewSystem()
		public, err := v.build(sys, pk, testMsg, bad)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		ok, err := sys.IsSatisfiable(public)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if ok {
			t.Fatalf("%s: tampered signature accepted", v.name)
		}
	}
}

func TestTamperedPublicRejected(t *testing.T) {
	pk, sig := testVector(t, 512)
	for _, v := range variants {
		sys := bn254.NewSystem()
		public, err := v.build(sys, pk, testMsg, sig)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		// One slot in the key region, one in the hashed-message region.
		for _, idx := range []int{3, 512 + 5} {
			bad := make([]*big.Int, len(public))
			copy(bad, public)
			bad[idx] = new(big.Int).Add(public[idx], big.NewInt(1))
			ok, err := sys.IsSatisfiable(bad)
			if err != nil {
				t.Fatalf("%s: %v", v.name, err)
			}
			if ok {
				t.Fatalf("%s: tampered public input %d accepted", v.name, idx)
			}
		}
	}
}

func TestWrongMessageRejected(t *testing.T) {
	pk, sig := testVector(t, 512)
	for _, v := range variants {
		sys := bn254.NewSystem()
		public, err := v.build(sys, pk, []byte("a different message"), sig)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		ok, err := sys.IsSatisfiable(public)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if ok {
			t.Fatalf("%s: signature accepted for the wrong message", v.name)
		}
	}
}

func TestPrepareErrors(t *testing.T) {
	pk, sig := testVector(t, 512)

	mismatch := copySig(sig)
	mismatch.LogN = 10
	if _, err := Schoolbook(bn254.NewSystem(), pk, testMsg, mismatch); err == nil {
		t.Fatal("logn mismatch accepted")
	}

	short := &falcon.PublicKey{LogN: pk.LogN, H: pk.H[:100]}
	if _, err := NTT(bn254.NewSystem(), short, testMsg, sig); err == nil {
		t.Fatal("truncated public key accepted")
	}

	tiny := &falcon.PublicKey{LogN: 3, H: falcon.NewPolynomial(8)}
	tinySig := copySig(sig)
	tinySig.LogN = 3
	if _, err := DualNTT(bn254.NewSystem(), tiny, testMsg, tinySig); err == nil {
		t.Fatal("unsupported ring dimension accepted")
	}
}
