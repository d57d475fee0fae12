package field

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// Double returns 2·self; a coefficient scaling, free.
func (f *Field) Double() *Field {
	res := f.Clone()
	res.DoubleAssign()
	return res
}

// DoubleAssign replaces self with 2·self.
func (f *Field) DoubleAssign() {
	two := fr.NewElement(2)
	f.lc = f.lc.Scale(two)
}
