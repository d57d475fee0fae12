package field

import (
	"github.com/zksynth/zkfield/environment"
)

// Boolean is a circuit value constrained to 0 or 1, the indicator form that
// assertions are expressed over.
type Boolean struct {
	env  environment.Environment
	mode environment.Mode
	lc   environment.LinearCombination
}

// Not returns ¬b as 1 - b; linear and free.
func (b *Boolean) Not() *Boolean {
	return &Boolean{
		env:  b.env,
		mode: b.mode,
		lc:   environment.NewConstantLC(frOne()).Sub(b.lc),
	}
}

// EjectMode returns the visibility mode.
func (b *Boolean) EjectMode() environment.Mode {
	return b.mode
}

// EjectValue materializes the indicator as a native bool.
func (b *Boolean) EjectValue() bool {
	v := b.lc.Evaluate()
	return v.IsOne()
}

// Assert registers the constraint b == 1. A violated assertion accumulates
// into the backend's satisfiability state; it never raises here.
func (b *Boolean) Assert() {
	b.env.Assert(b.lc)
}
