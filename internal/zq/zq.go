// Package zq implements scalar arithmetic modulo the signature ring
// modulus q = 12289, together with the deterministic root search used to
// derive number-theoretic-transform tables. All inputs are expected to be
// reduced; products fit in uint64 since q < 2^32.
package zq

import "fmt"

// Q is the signature ring modulus, a prime with q ≡ 1 (mod 2048) so that
// negacyclic transforms exist for every ring dimension up to 1024.
const Q uint64 = 12289

// Add returns a+b mod q.
func Add(a, b uint64) uint64 {
	s := a + b
	if s >= Q {
		s -= Q
	}
	return s
}

// Sub returns a-b mod q.
func Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + Q - b
}

// Neg returns -a mod q.
func Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return Q - a
}

// Mul returns a*b mod q.
func Mul(a, b uint64) uint64 {
	return (a * b) % Q
}

// Pow returns a^e mod q by square and multiply.
func Pow(a, e uint64) uint64 {
	res := uint64(1)
	base := a % Q
	for e > 0 {
		if e&1 == 1 {
			res = Mul(res, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return res
}

// Inv returns a^-1 mod q via Fermat's little theorem.
func Inv(a uint64) (uint64, error) {
	if a%Q == 0 {
		return 0, fmt.Errorf("zq: zero has no inverse")
	}
	return Pow(a, Q-2), nil
}

// FindPsi returns the smallest x > 1 with x^n ≡ -1 (mod q), i.e. a
// primitive 2n-th root of unity. Such a root exists whenever 2n divides
// q-1; n must be positive.
func FindPsi(n int) (uint64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("zq: non-positive dimension %d", n)
	}
	if (Q-1)%uint64(2*n) != 0 {
		return 0, fmt.Errorf("zq: no 2*%d-th root of unity modulo %d", n, Q)
	}
	for x := uint64(2); x < Q; x++ {
		if Pow(x, uint64(n)) == Q-1 {
			return x, nil
		}
	}
	return 0, fmt.Errorf("zq: root search exhausted for n=%d", n)
}
