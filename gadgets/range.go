package gadgets

import (
	"fmt"
	"math/big"

	"zk-falcon/cs"
	"zk-falcon/falcon"
)

// lessThanBits synthesizes the comparator a < c over a's bit
// decomposition, walking c's bits from the least significant upward. A set
// bit of c contributes an OR branch, a clear bit an AND, so the resulting
// tree matches the hand-derived formulas for any bound: for q it collapses
// to not(a13) OR not(a12) OR none-of(a0..a11).
func lessThanBits(sys cs.System, bits []cs.Bool, c *big.Int) cs.Bool {
	j0 := int(c.TrailingZeroBits())
	res := cs.Not(bits[j0])
	for j := j0 + 1; j < len(bits); j++ {
		if c.Bit(j) == 1 {
			res = cs.Or(sys, cs.Not(bits[j]), res)
		} else {
			res = cs.And(sys, cs.Not(bits[j]), res)
		}
	}
	return res
}

// LessThanConst returns a bit that is 1 exactly when a < c. The width-bit
// decomposition doubles as a range check: values of a needing more than
// width bits are unsatisfiable outright.
func LessThanConst(sys cs.System, a cs.Lin, c *big.Int, width int) (cs.Bool, error) {
	if c.Sign() <= 0 {
		return cs.Bool{}, fmt.Errorf("gadgets: comparison bound %v", c)
	}
	if c.BitLen() > width {
		return cs.Bool{}, fmt.Errorf("gadgets: bound %v does not fit %d bits", c, width)
	}
	bits, err := Decompose(sys, a, width)
	if err != nil {
		return cs.Bool{}, err
	}
	return lessThanBits(sys, bits, c), nil
}

// EnforceLessThanConst asserts a < c over a width-bit decomposition. When
// c is exactly 2^width the decomposition alone is the proof and no
// comparator tree is built.
func EnforceLessThanConst(sys cs.System, a cs.Lin, c *big.Int, width int) error {
	if c.BitLen() == width+1 && int(c.TrailingZeroBits()) == width {
		_, err := Decompose(sys, a, width)
		return err
	}
	b, err := LessThanConst(sys, a, c, width)
	if err != nil {
		return err
	}
	cs.AssertTrue(sys, b)
	return nil
}

// EnforceLessThanQ asserts a < q over the 14-bit decomposition.
func EnforceLessThanQ(sys cs.System, a cs.Lin) error {
	return EnforceLessThanConst(sys, a, qBig, qBits)
}

// IsLessThan6144 returns the sign predicate used to centre coefficients:
// 1 when a < 6144, 0 otherwise. a is decomposed into 14 bits, so this also
// bounds a below 2^14.
func IsLessThan6144(sys cs.System, a cs.Lin) (cs.Bool, error) {
	return LessThanConst(sys, a, big.NewInt(6144), qBits)
}

// EnforceLessThan1024 asserts a < 1024; the 10-bit decomposition is the
// whole proof.
func EnforceLessThan1024(sys cs.System, a cs.Lin) error {
	return EnforceLessThanConst(sys, a, big.NewInt(1024), 10)
}

// EnforceLessThanNormBound asserts a < par.L2Bound, the squared-norm bound
// of the parameter set.
func EnforceLessThanNormBound(sys cs.System, a cs.Lin, par falcon.Params) error {
	c := new(big.Int).SetUint64(par.L2Bound)
	return EnforceLessThanConst(sys, a, c, c.BitLen())
}

// EnforceLeq765 asserts a <= 765 by splitting a into three limbs of at
// most 255 and putting each limb through the backend's 8-bit range gate.
// The bound is inclusive: 765 = 3*255.
func EnforceLeq765(sys cs.System, a cs.Lin) error {
	if sys.RangeBitLen() != 8 {
		return fmt.Errorf("gadgets: leq765 needs an 8-bit range gate, backend has %d bits", sys.RangeBitLen())
	}
	av := cs.Eval(sys, a)
	limbs := make([]*big.Int, 3)
	for i := range limbs {
		limbs[i] = new(big.Int)
	}
	b255 := big.NewInt(255)
	b510 := big.NewInt(510)
	switch {
	case av.Cmp(b510) > 0:
		limbs[0].Set(b255)
		limbs[1].Set(b255)
		limbs[2].Sub(av, b510)
	case av.Cmp(b255) > 0:
		limbs[0].Set(b255)
		limbs[1].Sub(av, b255)
	default:
		limbs[0].Set(av)
	}
	sum := cs.Zero()
	for _, limb := range limbs {
		v := sys.AllocWitness(limb)
		if err := sys.RangeCheck(v, 8); err != nil {
			return err
		}
		sum = sum.Add(cs.FromVar(v))
	}
	cs.AssertEq(sys, a, sum)
	return nil
}
