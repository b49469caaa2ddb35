package cs

import "math/big"

// Bool is a linear combination whose value is known to be 0 or 1, either
// because it was bit-constrained or because it was derived from other
// Bools by operations that preserve the range.
type Bool struct {
	L Lin
}

// False returns the constant bit 0.
func False() Bool { return Bool{L: Zero()} }

// True returns the constant bit 1.
func True() Bool { return Bool{L: One()} }

// AssertBit constrains l to {0,1} via l*(1-l) = 0 and returns it as a Bool.
func AssertBit(sys System, l Lin) Bool {
	sys.AssertMul(l, One().Sub(l), Zero())
	return Bool{L: l}
}

// AllocBit allocates a bit-constrained witness holding v.
func AllocBit(sys System, v bool) Bool {
	x := new(big.Int)
	if v {
		x.SetInt64(1)
	}
	return AssertBit(sys, FromVar(sys.AllocWitness(x)))
}

// And returns a AND b.
func And(sys System, a, b Bool) Bool {
	return Bool{L: Mul(sys, a.L, b.L)}
}

// Or returns a OR b, as a+b-a*b.
func Or(sys System, a, b Bool) Bool {
	m := Mul(sys, a.L, b.L)
	return Bool{L: a.L.Add(b.L).Sub(m)}
}

// Not returns the complement of a. It adds no constraints.
func Not(a Bool) Bool {
	return Bool{L: One().Sub(a.L)}
}

// AssertTrue constrains b to 1.
func AssertTrue(sys System, b Bool) {
	sys.AssertLin(b.L.Sub(One()))
}

// AssertFalse constrains b to 0.
func AssertFalse(sys System, b Bool) {
	sys.AssertLin(b.L)
}
