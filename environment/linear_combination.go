package environment

import (
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Term is a coefficient applied to a variable.
type Term struct {
	Coefficient fr.Element
	Variable    *Variable
}

// LinearCombination is a constant term plus a sum of Terms, kept sorted by
// wire index with no duplicate wires and no zero coefficients. It is the
// circuit-side representation of every field element: constants are a bare
// constant term, freshly allocated variables are a single unit-coefficient
// term, and linear operators fold into the combination without touching the
// constraint system.
type LinearCombination struct {
	constant fr.Element
	terms    []Term
}

// NewConstantLC returns the combination holding only a constant term.
func NewConstantLC(value fr.Element) LinearCombination {
	return LinearCombination{constant: value}
}

// NewTermLC returns the combination 1·v.
func NewTermLC(v *Variable) LinearCombination {
	var one fr.Element
	one.SetOne()
	return LinearCombination{terms: []Term{{Coefficient: one, Variable: v}}}
}

// Clone returns a copy whose term slice does not alias the receiver's.
func (lc LinearCombination) Clone() LinearCombination {
	res := LinearCombination{constant: lc.constant}
	res.terms = make([]Term, len(lc.terms))
	copy(res.terms, lc.terms)
	return res
}

// IsConstant reports whether the combination references no wires. Its value
// is then known at constraint-authoring time via Constant.
func (lc LinearCombination) IsConstant() bool {
	return len(lc.terms) == 0
}

// Constant returns the constant term.
func (lc LinearCombination) Constant() fr.Element {
	return lc.constant
}

// Add returns lc + other, merging terms on common wires.
func (lc LinearCombination) Add(other LinearCombination) LinearCombination {
	var res LinearCombination
	res.constant.Add(&lc.constant, &other.constant)
	res.terms = mergeTerms(lc.terms, other.terms, false)
	return res
}

// Sub returns lc - other.
func (lc LinearCombination) Sub(other LinearCombination) LinearCombination {
	var res LinearCombination
	res.constant.Sub(&lc.constant, &other.constant)
	res.terms = mergeTerms(lc.terms, other.terms, true)
	return res
}

// Neg returns -lc.
func (lc LinearCombination) Neg() LinearCombination {
	var res LinearCombination
	res.constant.Neg(&lc.constant)
	res.terms = make([]Term, len(lc.terms))
	for i, t := range lc.terms {
		res.terms[i].Variable = t.Variable
		res.terms[i].Coefficient.Neg(&t.Coefficient)
	}
	return res
}

// Scale returns coeff·lc. Scaling by zero collapses the combination to the
// zero constant, dropping every wire reference.
func (lc LinearCombination) Scale(coeff fr.Element) LinearCombination {
	var res LinearCombination
	if coeff.IsZero() {
		return res
	}
	res.constant.Mul(&lc.constant, &coeff)
	res.terms = make([]Term, len(lc.terms))
	for i, t := range lc.terms {
		res.terms[i].Variable = t.Variable
		res.terms[i].Coefficient.Mul(&t.Coefficient, &coeff)
	}
	return res
}

// Evaluate materializes the native value of the combination, resolving any
// pending witnesses it references.
func (lc LinearCombination) Evaluate() fr.Element {
	res := lc.constant
	for _, t := range lc.terms {
		v := t.Variable.Value()
		v.Mul(&v, &t.Coefficient)
		res.Add(&res, &v)
	}
	return res
}

// mergeTerms merges two wire-sorted term slices, summing coefficients on
// common wires and dropping terms whose coefficient cancels to zero.
func mergeTerms(a, b []Term, negateB bool) []Term {
	res := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Variable.Index() < b[j].Variable.Index():
			res = append(res, a[i])
			i++
		case a[i].Variable.Index() > b[j].Variable.Index():
			res = appendTerm(res, b[j], negateB)
			j++
		default:
			var coeff fr.Element
			if negateB {
				coeff.Sub(&a[i].Coefficient, &b[j].Coefficient)
			} else {
				coeff.Add(&a[i].Coefficient, &b[j].Coefficient)
			}
			if !coeff.IsZero() {
				res = append(res, Term{Coefficient: coeff, Variable: a[i].Variable})
			}
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		res = append(res, a[i])
	}
	for ; j < len(b); j++ {
		res = appendTerm(res, b[j], negateB)
	}
	return res
}

func appendTerm(dst []Term, t Term, negate bool) []Term {
	if negate {
		t.Coefficient.Neg(&t.Coefficient)
	}
	return append(dst, t)
}

func (lc LinearCombination) String() string {
	var sbb strings.Builder
	sbb.WriteString(lc.constant.String())
	for _, t := range lc.terms {
		sbb.WriteString(" + ")
		sbb.WriteString(t.Coefficient.String())
		sbb.WriteString("·w")
		sbb.WriteString(strconv.FormatUint(t.Variable.Index(), 10))
	}
	return sbb.String()
}
