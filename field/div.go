package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/zksynth/zkfield/environment"
)

// Div returns self / other.
func (f *Field) Div(other *Field) *Field {
	res := f.Clone()
	res.DivAssign(other)
	return res
}

// DivAssign replaces self with self / other.
//
// A constant divisor is handled natively: dividing by a known zero halts
// immediately, otherwise the quotient is `self · other⁻¹`, costing one
// constant and nothing in the constraint system. A variable divisor first
// registers the non-zero assertion — a zero divisor then surfaces as an
// unsatisfiable system, never as a halt — and witnesses the quotient, bound
// by the single constraint `quotient · other == self`.
func (f *Field) DivAssign(other *Field) {
	if other.mode.IsConstant() {
		// If `other` is a constant and zero, halt since the inverse of zero
		// is undefined.
		if v := other.lc.Constant(); v.IsZero() {
			f.env.Halt("attempted to divide by zero")
		}
		f.MulAssign(other.Inverse())
		return
	}

	// Enforce that `other` is not zero.
	other.AssertNonZero()

	// Construct the quotient as a witness.
	dividend, divisor := f.lc, other.lc
	quotient := Witness(f.env, environment.Private, func() fr.Element {
		a, b := dividend.Evaluate(), divisor.Evaluate()
		if b.IsZero() {
			// Falling back to the dividend avoids inverting zero during
			// native evaluation; the assertion above already rejects any
			// witness assignment with a zero divisor.
			return a
		}
		var q fr.Element
		q.Div(&a, &b)
		return q
	})

	// Ensure the quotient is correct by enforcing:
	// `quotient * other == self`.
	f.env.Enforce(quotient.lc, divisor, dividend)

	*f = *quotient
}
