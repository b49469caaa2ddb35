package falcon

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// hash-to-point rejection bound: the largest multiple of q below 2^16,
// 5*q = 61445. Sampling 16-bit values below it and reducing keeps the
// output uniform over [0, q).
const hashRejectBound = 5 * Q

// acceptSample maps one 16-bit sample to a coefficient in [0, q), or
// rejects it when it sits at or above the rejection bound.
func acceptSample(u uint64) (uint64, bool) {
	if u >= hashRejectBound {
		return 0, false
	}
	for u >= Q {
		u -= Q
	}
	return u, true
}

// HashToPoint hashes nonce||msg with SHAKE-256 into a ring element: 16-bit
// big-endian samples are rejected at 5q and reduced by repeated
// subtraction, matching the reference signature scheme.
func HashToPoint(msg, nonce []byte, par Params) (Polynomial, error) {
	if len(nonce) != NonceLen {
		return nil, fmt.Errorf("falcon: nonce must be %d bytes, got %d", NonceLen, len(nonce))
	}
	shake := sha3.NewShake256()
	shake.Write(nonce)
	shake.Write(msg)
	res := NewPolynomial(par.N)
	var buf [2]byte
	for i := 0; i < par.N; {
		if _, err := shake.Read(buf[:]); err != nil {
			return nil, fmt.Errorf("falcon: shake read: %w", err)
		}
		c, ok := acceptSample(uint64(binary.BigEndian.Uint16(buf[:])))
		if !ok {
			continue
		}
		res[i] = c
		i++
	}
	dbg("[Hash] HashToPoint msg=%dB nonce=%dB N=%d\n", len(msg), len(nonce), par.N)
	return res, nil
}
