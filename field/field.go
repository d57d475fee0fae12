// Package field implements the constrained field element: a BLS12-377 scalar
// paired with a visibility mode and a lazily-materialized native value, plus
// the operator compilers that turn field arithmetic into rank-1 constraints.
//
// Linear operators (Add, Sub, Neg, Double) fold into the element's linear
// combination and cost nothing. Bilinear and rational operators (Mul, Square,
// Inverse, Div) witness auxiliary variables and bind them with enforced
// equalities whenever an operand is not constant.
package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/zksynth/zkfield/environment"
)

// Field is the unit of circuit data. Operators produce new elements; the
// *Assign forms replace the receiver wholesale. Cloning duplicates the mode
// and the linear combination — it never allocates new backend variables.
type Field struct {
	env  environment.Environment
	mode environment.Mode
	lc   environment.LinearCombination
}

// New allocates a field element of the given mode bound to a native value.
// Constant elements cost one constant tally and no wires; Public and Private
// elements each allocate one wire of the corresponding visibility.
func New(env environment.Environment, mode environment.Mode, value fr.Element) *Field {
	return &Field{env: env, mode: mode, lc: env.NewVariable(mode, value)}
}

// Witness allocates a field element whose native value is computed lazily by
// the given closure, deferred until the value is first needed.
func Witness(env environment.Environment, mode environment.Mode, compute func() fr.Element) *Field {
	return &Field{env: env, mode: mode, lc: env.NewWitness(mode, compute)}
}

// Zero returns the constant zero, free of any backend presence.
func Zero(env environment.Environment) *Field {
	return &Field{env: env, mode: environment.Constant, lc: environment.NewConstantLC(fr.Element{})}
}

// One returns the constant one, free of any backend presence.
func One(env environment.Environment) *Field {
	var one fr.Element
	one.SetOne()
	return &Field{env: env, mode: environment.Constant, lc: environment.NewConstantLC(one)}
}

// EjectMode returns the visibility mode.
func (f *Field) EjectMode() environment.Mode {
	return f.mode
}

// EjectValue materializes and returns the native value, resolving any
// pending witnesses the element depends on.
func (f *Field) EjectValue() fr.Element {
	return f.lc.Evaluate()
}

// IsConstant reports whether the element's mode is Constant.
func (f *Field) IsConstant() bool {
	return f.mode.IsConstant()
}

// Clone returns a copy sharing backend variables but no mutable state.
func (f *Field) Clone() *Field {
	return &Field{env: f.env, mode: f.mode, lc: f.lc.Clone()}
}

// Type returns the output-mode case for this element; Constant elements
// carry their concrete value so predicates can inspect it.
func (f *Field) Type() environment.CircuitType {
	if f.mode.IsConstant() {
		return environment.ConstantType(f.lc.Constant())
	}
	return environment.TypeOf(f.mode, fr.Element{})
}

func (f *Field) String() string {
	return f.mode.String() + " " + f.lc.String()
}
