package falcon

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// fixtureCoeffBound bounds the sampled coefficients of s1 and s2. At 250
// the expected squared norm stays far below the L2 bound for both
// dimensions, and every coefficient fits the compressed codec and the
// per-coefficient L-infinity check.
const fixtureCoeffBound = 250

// sampleCentered draws n coefficients uniformly from
// [-fixtureCoeffBound, fixtureCoeffBound] by 16-bit rejection.
func sampleCentered(shake sha3.ShakeHash, n int) ([]int16, error) {
	span := uint64(2*fixtureCoeffBound + 1)
	limit := (1 << 16) - (1<<16)%span
	res := make([]int16, n)
	var buf [2]byte
	for i := 0; i < n; {
		if _, err := shake.Read(buf[:]); err != nil {
			return nil, fmt.Errorf("falcon: shake read: %w", err)
		}
		u := uint64(binary.BigEndian.Uint16(buf[:]))
		if u >= limit {
			continue
		}
		res[i] = int16(u%span) - fixtureCoeffBound
		i++
	}
	return res, nil
}

// GenerateTestVector derives a deterministic, valid (public key,
// signature) pair for msg from seed. It samples small s1, s2, retries s2
// until it is invertible in the transform domain, and solves
// h = (hm - s1) / s2 so that the verification equation holds exactly.
// The scheme's trapdoor key generation and Gaussian signing are not
// involved; the output is indistinguishable from a valid signature as far
// as Verify and the circuits are concerned.
func GenerateTestVector(seed, msg []byte, par Params) (*PublicKey, *Signature, error) {
	shake := sha3.NewShake256()
	shake.Write(seed)

	var nonce [NonceLen]byte
	if _, err := shake.Read(nonce[:]); err != nil {
		return nil, nil, fmt.Errorf("falcon: shake read: %w", err)
	}

	s1, err := sampleCentered(shake, par.N)
	if err != nil {
		return nil, nil, err
	}

	var s2 []int16
	var s2NTT NTTPolynomial
	for attempt := 0; ; attempt++ {
		if attempt >= 64 {
			return nil, nil, fmt.Errorf("falcon: no invertible s2 after %d attempts", attempt)
		}
		s2, err = sampleCentered(shake, par.N)
		if err != nil {
			return nil, nil, err
		}
		sig := Signature{S2: s2}
		s2NTT, err = NTT(sig.Poly())
		if err != nil {
			return nil, nil, err
		}
		if _, err := s2NTT.Inv(); err == nil {
			break
		}
		dbg("[Fixture] s2 not invertible, resampling (attempt %d)\n", attempt+1)
	}

	hm, err := HashToPoint(msg, nonce[:], par)
	if err != nil {
		return nil, nil, err
	}
	c1 := make([]int64, par.N)
	for i, v := range s1 {
		c1[i] = int64(v)
	}
	diff, err := hm.Sub(FromCentered(c1))
	if err != nil {
		return nil, nil, err
	}
	diffNTT, err := NTT(diff)
	if err != nil {
		return nil, nil, err
	}
	s2Inv, err := s2NTT.Inv()
	if err != nil {
		return nil, nil, err
	}
	hNTT, err := diffNTT.MulPointwise(s2Inv)
	if err != nil {
		return nil, nil, err
	}
	h, err := InvNTT(hNTT)
	if err != nil {
		return nil, nil, err
	}

	pk := &PublicKey{LogN: par.LogN, H: h}
	sig := &Signature{LogN: par.LogN, Nonce: nonce, S2: s2}
	if err := Verify(pk, msg, sig); err != nil {
		return nil, nil, fmt.Errorf("falcon: generated vector fails verification: %w", err)
	}
	return pk, sig, nil
}
