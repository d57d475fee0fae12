package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/zksynth/zkfield/environment"
)

// Mul returns self · other.
func (f *Field) Mul(other *Field) *Field {
	res := f.Clone()
	res.MulAssign(other)
	return res
}

// MulAssign replaces self with self · other.
//
// Two constants fold natively. A constant operand scales the other operand's
// linear combination, which is free; the result keeps the variable operand's
// mode only when the constant is one, since multiplying by any other known
// scalar folds non-trivial information into the result. Two variable
// operands cost one private product witness and one constraint.
func (f *Field) MulAssign(other *Field) {
	switch {
	case f.mode.IsConstant() && other.mode.IsConstant():
		var product fr.Element
		a, b := f.lc.Constant(), other.lc.Constant()
		product.Mul(&a, &b)
		f.lc = environment.NewConstantLC(product)

	case other.mode.IsConstant():
		f.scaleAssign(other.lc.Constant())

	case f.mode.IsConstant():
		coeff := f.lc.Constant()
		f.lc = other.lc.Clone()
		f.mode = other.mode
		f.scaleAssign(coeff)

	default:
		// Construct the product as a witness, and ensure
		// `self * other == product`.
		a, b := f.lc, other.lc
		product := Witness(f.env, environment.Private, func() fr.Element {
			av, bv := a.Evaluate(), b.Evaluate()
			av.Mul(&av, &bv)
			return av
		})
		f.env.Enforce(a, b, product.lc)
		*f = *product
	}
}

func (f *Field) scaleAssign(coeff fr.Element) {
	f.lc = f.lc.Scale(coeff)
	if !coeff.IsOne() {
		f.mode = environment.Private
	}
}
