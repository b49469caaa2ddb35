// Package falcon implements the cleartext side of a Falcon-style lattice
// signature over Z_q[x]/(x^N+1) with q = 12289: parameters, polynomial and
// transform-domain arithmetic, hashing of messages to ring elements, byte
// codecs for keys and signatures, plain verification, and deterministic
// test-vector generation. The zero-knowledge circuits in circuits/ consume
// this package as their source of cleartext values and expected outputs.
package falcon

import (
	"fmt"

	"zk-falcon/internal/zq"
)

// Q is the signature ring modulus.
const Q uint64 = zq.Q

// NonceLen is the length in bytes of the salt hashed with the message.
const NonceLen = 40

const (
	pkHeaderBase  = 0x00 // public key header byte is 0x00 + logn
	sigHeaderBase = 0x30 // compressed signature header byte is 0x30 + logn
	sigCoeffBound = 2048 // |s2| coefficients must stay below 2^11
)

// Params fixes the ring dimension and every length and bound derived
// from it.
type Params struct {
	N       int    // ring dimension, 512 or 1024
	LogN    int    // log2(N)
	L2Bound uint64 // strict in-circuit bound on ||(s1, s2)||^2
	PKLen   int    // encoded public key length: 1 + 14*N/8
	SigLen  int    // padded signature length
}

// NewParams returns the parameter set for ring dimension n.
func NewParams(n int) (Params, error) {
	switch n {
	case 512:
		return Params{N: 512, LogN: 9, L2Bound: 34034726, PKLen: 897, SigLen: 666}, nil
	case 1024:
		return Params{N: 1024, LogN: 10, L2Bound: 70265242, PKLen: 1793, SigLen: 1280}, nil
	default:
		return Params{}, fmt.Errorf("falcon: unsupported ring dimension %d", n)
	}
}
