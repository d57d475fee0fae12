package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/zksynth/zkfield/environment"
)

// Inverse returns self⁻¹.
//
// A constant element inverts natively; inverting a known zero halts, since
// the operation is meaningless at circuit-construction time. A variable
// element costs one private inverse witness and the single constraint
// `inverse · self == 1`, which no witness with a zero value can satisfy —
// the zero case needs no separate assertion here.
func (f *Field) Inverse() *Field {
	if f.mode.IsConstant() {
		v := f.lc.Constant()
		if v.IsZero() {
			f.env.Halt("attempted to invert zero")
		}
		var inv fr.Element
		inv.Inverse(&v)
		return New(f.env, environment.Constant, inv)
	}

	lc := f.lc
	inverse := Witness(f.env, environment.Private, func() fr.Element {
		// Inverse yields 0 for a 0 input; the binding constraint rejects
		// that witness.
		var inv fr.Element
		v := lc.Evaluate()
		inv.Inverse(&v)
		return inv
	})
	f.env.Enforce(inverse.lc, lc, environment.NewConstantLC(frOne()))
	return inverse
}

func frOne() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}
