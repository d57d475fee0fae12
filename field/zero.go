package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/zksynth/zkfield/environment"
)

// IsZero returns the boolean indicator `self == 0`.
//
// For a constant element the indicator is itself a constant. For a variable
// element the decomposition witnesses the indicator b and a helper w (the
// inverse of the value when it is non-zero) and enforces
//
//	b · (1 - b) == 0
//	self · w   == 1 - b
//	self · b   == 0
//
// costing two private variables and three constraints.
func (f *Field) IsZero() *Boolean {
	if f.mode.IsConstant() {
		var bit fr.Element
		if v := f.lc.Constant(); v.IsZero() {
			bit.SetOne()
		}
		return &Boolean{
			env:  f.env,
			mode: environment.Constant,
			lc:   f.env.NewVariable(environment.Constant, bit),
		}
	}

	lc := f.lc
	indicator := f.env.NewWitness(environment.Private, func() fr.Element {
		var bit fr.Element
		if v := lc.Evaluate(); v.IsZero() {
			bit.SetOne()
		}
		return bit
	})
	helper := f.env.NewWitness(environment.Private, func() fr.Element {
		// Inverse yields 0 for a 0 input, which is exactly the value the
		// second constraint needs in the zero case.
		var inv fr.Element
		v := lc.Evaluate()
		inv.Inverse(&v)
		return inv
	})

	one := environment.NewConstantLC(frOne())
	zero := environment.LinearCombination{}
	notIndicator := one.Sub(indicator)

	f.env.Enforce(indicator, notIndicator, zero)
	f.env.Enforce(lc, helper, notIndicator)
	f.env.Enforce(lc, indicator, zero)

	return &Boolean{env: f.env, mode: environment.Private, lc: indicator}
}

// IsEqual returns the boolean indicator `self == other`, compiled as
// (self - other) == 0.
func (f *Field) IsEqual(other *Field) *Boolean {
	return f.Sub(other).IsZero()
}

// AssertNonZero registers the constraint that self is non-zero. A constant
// zero halts — it is a circuit-construction error; a variable zero leaves
// the system unsatisfiable, discoverable only by checking satisfiability
// after synthesis.
func (f *Field) AssertNonZero() {
	if f.mode.IsConstant() {
		if v := f.lc.Constant(); v.IsZero() {
			f.env.Halt("assertion failed: constant is zero")
		}
		return
	}
	f.IsZero().Not().Assert()
}
