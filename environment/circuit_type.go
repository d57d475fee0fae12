package environment

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// CircuitType is the value-carrying case type consumed by output-mode
// predicates: a Constant case additionally carries the concrete value, since
// some operators (division by a constant, multiplication by a constant)
// classify their output differently depending on that value.
type CircuitType struct {
	mode     Mode
	constant fr.Element
	known    bool
}

// ConstantType returns the case for a Constant operand with a known value.
func ConstantType(value fr.Element) CircuitType {
	return CircuitType{mode: Constant, constant: value, known: true}
}

// PublicType returns the case for a Public operand.
func PublicType() CircuitType {
	return CircuitType{mode: Public}
}

// PrivateType returns the case for a Private operand.
func PrivateType() CircuitType {
	return CircuitType{mode: Private}
}

// TypeOf returns the case for a given mode; constant cases carry the value.
func TypeOf(mode Mode, value fr.Element) CircuitType {
	if mode.IsConstant() {
		return ConstantType(value)
	}
	return CircuitType{mode: mode}
}

func (t CircuitType) Mode() Mode {
	return t.mode
}

// ConstantValue returns the concrete value of a Constant case. The boolean
// is false for Public and Private cases, whose values are not inspectable at
// constraint-authoring time, and for Constant cases built without a value —
// predicates that require the value treat the latter as a fatal invariant
// violation.
func (t CircuitType) ConstantValue() (fr.Element, bool) {
	return t.constant, t.mode.IsConstant() && t.known
}
