package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/zksynth/zkfield/environment"
)

// Square returns self².
func (f *Field) Square() *Field {
	res := f.Clone()
	res.SquareAssign()
	return res
}

// SquareAssign replaces self with self². Constants fold natively; variables
// cost one private square witness bound by `self · self == square`.
func (f *Field) SquareAssign() {
	if f.mode.IsConstant() {
		var sq fr.Element
		v := f.lc.Constant()
		sq.Square(&v)
		f.lc = environment.NewConstantLC(sq)
		return
	}

	lc := f.lc
	square := Witness(f.env, environment.Private, func() fr.Element {
		v := lc.Evaluate()
		v.Square(&v)
		return v
	})
	f.env.Enforce(lc, lc, square.lc)
	*f = *square
}
