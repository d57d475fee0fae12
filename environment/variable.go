package environment

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// Variable is an allocated circuit wire. Public and Private values occupy
// one wire each; Constant values never allocate a wire, they live in the
// constant term of a LinearCombination.
type Variable struct {
	index uint64
	mode  Mode
	value *lazyValue
}

// Index returns the wire index, unique within the owning circuit.
func (v *Variable) Index() uint64 {
	return v.index
}

func (v *Variable) Mode() Mode {
	return v.mode
}

// Value materializes and returns the native value bound to the wire.
func (v *Variable) Value() fr.Element {
	return v.value.get()
}
