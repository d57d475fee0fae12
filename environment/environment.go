// Package environment implements the constraint backend: variable
// allocation, constraint registration, assertion, fatal halting, and scoped
// resource accounting. The field package is written against the Environment
// interface; Circuit is the concrete backend used in synthesis and tests.
package environment

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// Environment is the substrate every operator compiler targets.
//
// Two failure channels are kept strictly apart: Halt aborts synthesis for
// values known bad at circuit-construction time, while a violated Enforce or
// Assert never raises — it only flips the satisfiability of the accumulated
// system, observable through IsSatisfied after synthesis.
type Environment interface {
	// NewVariable allocates a variable of the given mode bound to an already
	// known value. Constant-mode allocations are bookkeeping only: they
	// increment the constant tally and return a wire-free combination.
	NewVariable(mode Mode, value fr.Element) LinearCombination

	// NewWitness allocates a variable whose value is computed by the given
	// closure, deferred until the first time the value is needed.
	NewWitness(mode Mode, compute func() fr.Element) LinearCombination

	// Enforce registers the rank-1 constraint a·b == c.
	Enforce(a, b, c LinearCombination)

	// Assert registers the constraint b == 1 over a boolean indicator.
	Assert(b LinearCombination)

	// Halt aborts the current synthesis. It never returns; the backend's
	// state is undefined for further use.
	Halt(format string, args ...any)

	// IsSatisfied reports whether every registered constraint holds under
	// the current witness assignment.
	IsSatisfied() bool

	// IsSatisfiedInScope restricts the check to constraints registered in
	// the innermost open scope.
	IsSatisfiedInScope() bool

	// Scope runs fn inside a named accounting region.
	Scope(name string, fn func())

	// CountInScope returns the resources consumed since the innermost open
	// scope was entered.
	CountInScope() Count

	// Reset tears the backend down for an independent synthesis run.
	Reset()
}
