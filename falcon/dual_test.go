package falcon

import "testing"

func TestSplitCenteredRoundTrip(t *testing.T) {
	for _, n := range []int{512, 1024} {
		r, err := BuildRing(n)
		if err != nil {
			t.Fatal(err)
		}
		p, err := UniformPolynomial(r, []byte("dual roundtrip"))
		if err != nil {
			t.Fatal(err)
		}
		d := SplitCentered(p)
		if err := d.Validate(); err != nil {
			t.Fatalf("n=%d: split of uniform polynomial is invalid: %v", n, err)
		}
		back, err := d.Recombine()
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(p) {
			t.Fatalf("n=%d: recombined polynomial differs from input", n)
		}
	}
}

func TestSplitCenteredSignature(t *testing.T) {
	par, err := NewParams(512)
	if err != nil {
		t.Fatal(err)
	}
	_, sig, err := GenerateTestVector([]byte("test seed"), []byte("testing message"), par)
	if err != nil {
		t.Fatal(err)
	}
	d := SplitCentered(sig.Poly())
	for i := range d.Pos {
		if d.Pos[i] > 250 || d.Neg[i] > 250 {
			t.Fatalf("coefficient %d: sign parts %d/%d exceed the sampler bound", i, d.Pos[i], d.Neg[i])
		}
	}
	back, err := d.Recombine()
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(sig.Poly()) {
		t.Fatal("recombined signature differs from the original")
	}
}

func TestSplitCenteredThreshold(t *testing.T) {
	p := Polynomial{0, 1, 6143, 6144, 6145, Q - 1}
	d := SplitCentered(p)
	wantPos := Polynomial{0, 1, 6143, 0, 0, 0}
	wantNeg := Polynomial{0, 0, 0, Q - 6144, Q - 6145, 1}
	if !d.Pos.Equal(wantPos) {
		t.Fatalf("positive part = %v, want %v", d.Pos, wantPos)
	}
	if !d.Neg.Equal(wantNeg) {
		t.Fatalf("negative part = %v, want %v", d.Neg, wantNeg)
	}
}

func TestDualValidateErrors(t *testing.T) {
	good := DualPolynomial{Pos: Polynomial{5, 0}, Neg: Polynomial{0, 7}}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid dual rejected: %v", err)
	}

	short := DualPolynomial{Pos: Polynomial{5, 0}, Neg: Polynomial{0}}
	if err := short.Validate(); err == nil {
		t.Fatal("length mismatch accepted")
	}
	if _, err := short.Recombine(); err == nil {
		t.Fatal("recombine accepted a length mismatch")
	}

	overlap := DualPolynomial{Pos: Polynomial{5, 3}, Neg: Polynomial{0, 7}}
	if err := overlap.Validate(); err == nil {
		t.Fatal("overlapping sign parts accepted")
	}

	huge := DualPolynomial{Pos: Polynomial{Q, 0}, Neg: Polynomial{0, 0}}
	if err := huge.Validate(); err == nil {
		t.Fatal("out-of-range coefficient accepted")
	}
}
