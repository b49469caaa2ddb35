package falcon

import (
	"testing"

	"zk-falcon/internal/zq"
)

func TestTableConstants(t *testing.T) {
	cases := []struct {
		n    int
		nInv uint64
	}{
		{512, 12265},
		{1024, 12277},
	}
	for _, c := range cases {
		tb, err := tablesFor(c.n)
		if err != nil {
			t.Fatalf("tablesFor(%d): %v", c.n, err)
		}
		if tb.nInv != c.nInv {
			t.Fatalf("N^-1 for %d: got %d want %d", c.n, tb.nInv, c.nInv)
		}
		if zq.Mul(tb.nInv, uint64(c.n)) != 1 {
			t.Fatalf("N * N^-1 != 1 for %d", c.n)
		}
		for j := 0; j < c.n; j++ {
			if zq.Mul(tb.fwd[j], tb.inv[j]) != 1 {
				t.Fatalf("fwd[%d]*inv[%d] != 1", j, j)
			}
		}
		if tb.fwd[0] != 1 || tb.inv[0] != 1 {
			t.Fatalf("table index 0 must be 1, got %d/%d", tb.fwd[0], tb.inv[0])
		}
	}
	if _, err := tablesFor(100); err == nil {
		t.Fatal("expected error for non-power-of-two dimension")
	}
}

func TestNTTRoundTrip(t *testing.T) {
	for _, n := range []int{512, 1024} {
		r, err := BuildRing(n)
		if err != nil {
			t.Fatalf("ring: %v", err)
		}
		for trial := 0; trial < 4; trial++ {
			p, err := UniformPolynomial(r, []byte{byte(n >> 8), byte(n), byte(trial)})
			if err != nil {
				t.Fatalf("sample: %v", err)
			}
			tp, err := NTT(p)
			if err != nil {
				t.Fatalf("NTT: %v", err)
			}
			back, err := InvNTT(tp)
			if err != nil {
				t.Fatalf("InvNTT: %v", err)
			}
			if !p.Equal(back) {
				t.Fatalf("round trip mismatch for N=%d trial=%d", n, trial)
			}
		}
	}
}

func TestMulAgreement(t *testing.T) {
	for _, n := range []int{512, 1024} {
		r, err := BuildRing(n)
		if err != nil {
			t.Fatalf("ring: %v", err)
		}
		a, err := UniformPolynomial(r, []byte("mul-a"))
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		b, err := UniformPolynomial(r, []byte("mul-b"))
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		school, err := a.MulSchoolbook(b)
		if err != nil {
			t.Fatalf("schoolbook: %v", err)
		}
		local, err := a.Mul(b)
		if err != nil {
			t.Fatalf("transform mul: %v", err)
		}
		lat, err := MulRing(r, a, b)
		if err != nil {
			t.Fatalf("lattigo mul: %v", err)
		}
		if !school.Equal(local) {
			t.Fatalf("schoolbook vs transform mismatch for N=%d", n)
		}
		if !school.Equal(lat) {
			t.Fatalf("schoolbook vs lattigo mismatch for N=%d", n)
		}
	}
}

func TestNTTPointwiseMatchesRingProduct(t *testing.T) {
	r, err := BuildRing(512)
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	a, err := UniformPolynomial(r, []byte("pointwise-a"))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	b, err := UniformPolynomial(r, []byte("pointwise-b"))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	ta, _ := NTT(a)
	tb, _ := NTT(b)
	prod, err := ta.MulPointwise(tb)
	if err != nil {
		t.Fatalf("pointwise: %v", err)
	}
	back, err := InvNTT(prod)
	if err != nil {
		t.Fatalf("InvNTT: %v", err)
	}
	school, _ := a.MulSchoolbook(b)
	if !back.Equal(school) {
		t.Fatal("pointwise product does not match ring product")
	}
}

func TestNTTInvSlots(t *testing.T) {
	p := NewPolynomial(512)
	p[0] = 7 // constant polynomial: every slot equals 7
	tp, err := NTT(p)
	if err != nil {
		t.Fatalf("NTT: %v", err)
	}
	inv, err := tp.Inv()
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	for i := range inv {
		if zq.Mul(inv[i], tp[i]) != 1 {
			t.Fatalf("slot %d not inverted", i)
		}
	}
	zero := make(NTTPolynomial, 512)
	if _, err := zero.Inv(); err == nil {
		t.Fatal("expected error inverting zero slots")
	}
}

func TestUniformPolynomialDeterministic(t *testing.T) {
	r, err := BuildRing(512)
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	a, err := UniformPolynomial(r, []byte("seed"))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	b, err := UniformPolynomial(r, []byte("seed"))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed produced different polynomials")
	}
	c, err := UniformPolynomial(r, []byte("other"))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if a.Equal(c) {
		t.Fatal("different seeds produced identical polynomials")
	}
}
