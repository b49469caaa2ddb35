package falcon

import "fmt"

// Verify checks that sig is a valid signature on msg under pk: with
// hm = HashToPoint(msg, nonce) and s1 = hm - s2*h, the centered pair
// (s1, s2) must satisfy the L2 bound. Returns nil when valid.
func Verify(pk *PublicKey, msg []byte, sig *Signature) error {
	if pk.LogN != sig.LogN {
		return fmt.Errorf("falcon: key/signature dimension mismatch %d vs %d", pk.LogN, sig.LogN)
	}
	par, err := NewParams(1 << pk.LogN)
	if err != nil {
		return err
	}
	if len(pk.H) != par.N {
		return fmt.Errorf("falcon: public key has %d coefficients, want %d", len(pk.H), par.N)
	}
	if len(sig.S2) != par.N {
		return fmt.Errorf("falcon: signature has %d coefficients, want %d", len(sig.S2), par.N)
	}
	hm, err := HashToPoint(msg, sig.Nonce[:], par)
	if err != nil {
		return err
	}
	s2 := sig.Poly()
	s2h, err := s2.Mul(pk.H)
	if err != nil {
		return err
	}
	s1, err := hm.Sub(s2h)
	if err != nil {
		return err
	}
	norm := L2NormSquared(s1, s2)
	dbg("[Verify] N=%d norm=%d bound=%d\n", par.N, norm, par.L2Bound)
	if norm > par.L2Bound {
		return fmt.Errorf("falcon: squared norm %d exceeds bound %d", norm, par.L2Bound)
	}
	return nil
}
