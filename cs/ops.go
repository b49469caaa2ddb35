package cs

import "math/big"

// Mul returns a fresh witness constrained to a*b.
func Mul(sys System, a, b Lin) Lin {
	p := new(big.Int).Mul(Eval(sys, a), Eval(sys, b))
	p.Mod(p, sys.FieldModulus())
	out := FromVar(sys.AllocWitness(p))
	sys.AssertMul(a, b, out)
	return out
}

// AssertEq constrains a = b.
func AssertEq(sys System, a, b Lin) {
	sys.AssertLin(a.Sub(b))
}

// IsZero returns a bit that is 1 exactly when d evaluates to zero, using
// the inverse trick: with witnesses r and inv, d*inv = 1-r and d*r = 0.
func IsZero(sys System, d Lin) Bool {
	dv := Eval(sys, d)
	r := new(big.Int)
	inv := new(big.Int)
	if dv.Sign() == 0 {
		r.SetInt64(1)
	} else {
		inv.ModInverse(dv, sys.FieldModulus())
	}
	rl := FromVar(sys.AllocWitness(r))
	il := FromVar(sys.AllocWitness(inv))
	sys.AssertMul(d, il, One().Sub(rl))
	sys.AssertMul(d, rl, Zero())
	return Bool{L: rl}
}

// IsEq returns a bit that is 1 exactly when a and b evaluate to the same
// value.
func IsEq(sys System, a, b Lin) Bool {
	return IsZero(sys, a.Sub(b))
}

// Select returns x when b is 1 and y when b is 0.
func Select(sys System, b Bool, x, y Lin) Lin {
	d := Mul(sys, b.L, x.Sub(y))
	return y.Add(d)
}
