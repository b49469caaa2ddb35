package cs

import "math/big"

var (
	one    = big.NewInt(1)
	minOne = big.NewInt(-1)
)

// Term is one coefficient*variable product inside a linear combination.
type Term struct {
	Var   Variable
	Coeff *big.Int
}

// Lin is a symbolic linear combination sum(Coeff_i * Var_i) + Const.
// Combining Lins adds no constraints; a backend compiles the terms when an
// assertion referencing the Lin is recorded. Terms are kept sorted by
// variable, with no duplicates and no zero coefficients, so identical
// build sequences produce identical combinations.
type Lin struct {
	Terms []Term
	Const *big.Int
}

// Zero returns the empty combination.
func Zero() Lin { return Lin{Const: new(big.Int)} }

// One returns the constant combination 1.
func One() Lin { return Lin{Const: big.NewInt(1)} }

// Const returns the constant combination c.
func Const(c *big.Int) Lin { return Lin{Const: new(big.Int).Set(c)} }

// ConstUint64 returns the constant combination c.
func ConstUint64(c uint64) Lin { return Lin{Const: new(big.Int).SetUint64(c)} }

// FromVar returns the combination 1*v.
func FromVar(v Variable) Lin {
	return Lin{Terms: []Term{{Var: v, Coeff: big.NewInt(1)}}, Const: new(big.Int)}
}

func constOf(l Lin) *big.Int {
	if l.Const == nil {
		return new(big.Int)
	}
	return l.Const
}

// addTerms merges two sorted term lists, scaling b's coefficients by k and
// dropping exact cancellations.
func addTerms(a, b []Term, k *big.Int) []Term {
	out := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].Var < b[j].Var):
			out = append(out, Term{a[i].Var, new(big.Int).Set(a[i].Coeff)})
			i++
		case i == len(a) || b[j].Var < a[i].Var:
			c := new(big.Int).Mul(b[j].Coeff, k)
			if c.Sign() != 0 {
				out = append(out, Term{b[j].Var, c})
			}
			j++
		default:
			c := new(big.Int).Mul(b[j].Coeff, k)
			c.Add(c, a[i].Coeff)
			if c.Sign() != 0 {
				out = append(out, Term{a[i].Var, c})
			}
			i++
			j++
		}
	}
	return out
}

// Add returns l + o.
func (l Lin) Add(o Lin) Lin {
	return Lin{
		Terms: addTerms(l.Terms, o.Terms, one),
		Const: new(big.Int).Add(constOf(l), constOf(o)),
	}
}

// Sub returns l - o.
func (l Lin) Sub(o Lin) Lin {
	return Lin{
		Terms: addTerms(l.Terms, o.Terms, minOne),
		Const: new(big.Int).Sub(constOf(l), constOf(o)),
	}
}

// AddScaled returns l + k*o.
func (l Lin) AddScaled(o Lin, k *big.Int) Lin {
	c := new(big.Int).Mul(constOf(o), k)
	return Lin{
		Terms: addTerms(l.Terms, o.Terms, k),
		Const: c.Add(c, constOf(l)),
	}
}

// Scale returns k*l.
func (l Lin) Scale(k *big.Int) Lin {
	if k.Sign() == 0 {
		return Zero()
	}
	terms := make([]Term, 0, len(l.Terms))
	for _, t := range l.Terms {
		terms = append(terms, Term{t.Var, new(big.Int).Mul(t.Coeff, k)})
	}
	return Lin{Terms: terms, Const: new(big.Int).Mul(constOf(l), k)}
}

// Neg returns -l.
func (l Lin) Neg() Lin { return l.Scale(minOne) }

// AddConst returns l + c.
func (l Lin) AddConst(c *big.Int) Lin {
	return Lin{Terms: l.Terms, Const: new(big.Int).Add(constOf(l), c)}
}

// Eval returns l's value under sys's current assignment, reduced into the
// field.
func Eval(sys System, l Lin) *big.Int {
	acc := new(big.Int).Set(constOf(l))
	for _, t := range l.Terms {
		acc.Add(acc, new(big.Int).Mul(t.Coeff, sys.Value(t.Var)))
	}
	return acc.Mod(acc, sys.FieldModulus())
}
