// Package cs defines the constraint-system capability the circuit gadgets
// are written against: opaque signals, symbolic linear combinations that
// cost no constraints to build, and the primitive assertions a backend has
// to provide. Gadget logic is written once over the System interface;
// backends implement only the primitives.
package cs

import "math/big"

// Variable is an opaque handle to one allocated signal. Backends hand them
// out sequentially; a Variable is only meaningful to the System that
// created it.
type Variable int

// System is the primitive surface a constraint-system backend implements.
// Everything else in this package and in the gadget packages is derived
// from these operations.
type System interface {
	// AllocWitness binds a new prover-chosen signal to v.
	AllocWitness(v *big.Int) Variable
	// AllocPublic binds a new public-input signal to v. Public signals are
	// ordered by allocation; IsSatisfiable substitutes them in that order.
	AllocPublic(v *big.Int) Variable
	// Value returns the field value currently assigned to v.
	Value(v Variable) *big.Int

	// AssertLin constrains l to evaluate to zero.
	AssertLin(l Lin)
	// AssertMul constrains a*b = c.
	AssertMul(a, b, c Lin)
	// RangeCheck constrains v to width bits using the backend's native
	// range gate; it errors when width is not the native width.
	RangeCheck(v Variable, width int) error

	// RangeBitLen is the width of the native range gate.
	RangeBitLen() int
	// FieldModulus is the order of the backend's scalar field.
	FieldModulus() *big.Int

	NumConstraints() int
	NumWitness() int
	NumPublic() int

	// IsSatisfiable re-evaluates every recorded constraint with public
	// substituted for the public inputs, in allocation order. It is a
	// testing oracle, not a proof.
	IsSatisfiable(public []*big.Int) (bool, error)
}
