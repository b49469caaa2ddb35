// Package bn254 is an evaluating constraint-system backend over the BN254
// scalar field. It records linear, quadratic and range constraints next to
// a full witness assignment, so satisfiability can be checked directly
// without a proving stack. The 254-bit field leaves ample headroom for the
// deferred-reduction transform bound.
package bn254

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"zk-falcon/cs"
)

// nativeRangeWidth is the width of the dedicated range gate.
const nativeRangeWidth = 8

type term struct {
	v cs.Variable
	c fr.Element
}

// linExp is a compiled linear combination.
type linExp struct {
	terms []term
	k     fr.Element
}

type mulCons struct {
	a, b, c linExp
}

type rangeCons struct {
	v     cs.Variable
	width int
}

// System records constraints over BN254's scalar field.
type System struct {
	assign []fr.Element
	public []int
	lins   []linExp
	muls   []mulCons
	ranges []rangeCons
}

var _ cs.System = (*System)(nil)

// NewSystem returns an empty system.
func NewSystem() *System { return &System{} }

func (s *System) alloc(v *big.Int) cs.Variable {
	var e fr.Element
	e.SetBigInt(v)
	s.assign = append(s.assign, e)
	return cs.Variable(len(s.assign) - 1)
}

// AllocWitness binds a new witness signal to v.
func (s *System) AllocWitness(v *big.Int) cs.Variable { return s.alloc(v) }

// AllocPublic binds a new public-input signal to v.
func (s *System) AllocPublic(v *big.Int) cs.Variable {
	idx := s.alloc(v)
	s.public = append(s.public, int(idx))
	return idx
}

// Value returns the field value assigned to v.
func (s *System) Value(v cs.Variable) *big.Int {
	return s.assign[v].BigInt(new(big.Int))
}

func compile(l cs.Lin) linExp {
	e := linExp{terms: make([]term, 0, len(l.Terms))}
	if l.Const != nil {
		e.k.SetBigInt(l.Const)
	}
	for _, t := range l.Terms {
		var c fr.Element
		c.SetBigInt(t.Coeff)
		e.terms = append(e.terms, term{t.Var, c})
	}
	return e
}

// AssertLin records l = 0.
func (s *System) AssertLin(l cs.Lin) {
	s.lins = append(s.lins, compile(l))
}

// AssertMul records a*b = c.
func (s *System) AssertMul(a, b, c cs.Lin) {
	s.muls = append(s.muls, mulCons{compile(a), compile(b), compile(c)})
}

// RangeCheck records an 8-bit range gate on v.
func (s *System) RangeCheck(v cs.Variable, width int) error {
	if width != nativeRangeWidth {
		return fmt.Errorf("bn254: range gate is %d-bit, got width %d", nativeRangeWidth, width)
	}
	s.ranges = append(s.ranges, rangeCons{v, width})
	return nil
}

// RangeBitLen returns the native range-gate width.
func (s *System) RangeBitLen() int { return nativeRangeWidth }

// FieldModulus returns the order of the BN254 scalar field.
func (s *System) FieldModulus() *big.Int { return fr.Modulus() }

// NumConstraints returns the total number of recorded constraints.
func (s *System) NumConstraints() int { return len(s.lins) + len(s.muls) + len(s.ranges) }

// NumWitness returns the number of witness signals.
func (s *System) NumWitness() int { return len(s.assign) - len(s.public) }

// NumPublic returns the number of public-input signals.
func (s *System) NumPublic() int { return len(s.public) }

// Counts breaks the recorded constraints down by kind.
func (s *System) Counts() (lin, mul, rng int) {
	return len(s.lins), len(s.muls), len(s.ranges)
}

func evalIn(assign []fr.Element, e linExp) fr.Element {
	acc := e.k
	var t fr.Element
	for _, tm := range e.terms {
		t.Mul(&tm.c, &assign[tm.v])
		acc.Add(&acc, &t)
	}
	return acc
}

// IsSatisfiable substitutes public for the public inputs in allocation
// order, then re-evaluates every recorded constraint. The stored
// assignment is left untouched.
func (s *System) IsSatisfiable(public []*big.Int) (bool, error) {
	if len(public) != len(s.public) {
		return false, fmt.Errorf("bn254: got %d public inputs, system has %d", len(public), len(s.public))
	}
	assign := make([]fr.Element, len(s.assign))
	copy(assign, s.assign)
	for i, idx := range s.public {
		assign[idx].SetBigInt(public[i])
	}
	for _, e := range s.lins {
		if v := evalIn(assign, e); !v.IsZero() {
			return false, nil
		}
	}
	var ab fr.Element
	for _, m := range s.muls {
		a := evalIn(assign, m.a)
		b := evalIn(assign, m.b)
		c := evalIn(assign, m.c)
		ab.Mul(&a, &b)
		if !ab.Equal(&c) {
			return false, nil
		}
	}
	for _, r := range s.ranges {
		if assign[r.v].BigInt(new(big.Int)).BitLen() > r.width {
			return false, nil
		}
	}
	return true, nil
}
