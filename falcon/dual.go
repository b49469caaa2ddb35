package falcon

import "fmt"

// dualSplitBound separates "positive" from "negative" coefficients when a
// ring element is split into its sign parts: c < 6144 stays positive,
// anything above is stored as q-c on the negative side.
const dualSplitBound = 6144

// DualPolynomial is the sign-split form of a ring element: for every
// index at most one of Pos[i], Neg[i] is non-zero and the coefficient is
// congruent to Pos[i]-Neg[i] mod q.
type DualPolynomial struct {
	Pos Polynomial
	Neg Polynomial
}

// SplitCentered builds the sign-split form of p.
func SplitCentered(p Polynomial) DualPolynomial {
	pos := NewPolynomial(len(p))
	neg := NewPolynomial(len(p))
	for i, c := range p {
		if c < dualSplitBound {
			pos[i] = c
		} else {
			neg[i] = Q - c
		}
	}
	return DualPolynomial{Pos: pos, Neg: neg}
}

// Recombine returns the plain ring element Pos-Neg mod q.
func (d DualPolynomial) Recombine() (Polynomial, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.Pos.Sub(d.Neg)
}

// Validate checks the mutual-exclusion invariant and coefficient ranges.
func (d DualPolynomial) Validate() error {
	if len(d.Pos) != len(d.Neg) {
		return fmt.Errorf("falcon: dual parts have dimensions %d vs %d", len(d.Pos), len(d.Neg))
	}
	for i := range d.Pos {
		if d.Pos[i] != 0 && d.Neg[i] != 0 {
			return fmt.Errorf("falcon: dual coefficient %d has both parts non-zero", i)
		}
		if d.Pos[i] >= Q || d.Neg[i] >= Q {
			return fmt.Errorf("falcon: dual coefficient %d out of range", i)
		}
	}
	return nil
}
