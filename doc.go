// Package zkfield compiles field arithmetic into rank-1 constraints while
// statically metering the constraint-system resources each operation consumes.
//
// Every circuit value carries a visibility mode (Constant, Public or Private)
// and a lazily-materialized native value. Operator compilers in the field
// package decide, from operand modes, whether to synthesize constraints or
// fold natively, and the metrics tables predict the exact variable and
// constraint counts of each case so a test harness can diff predictions
// against the real synthesis trace.
//
// The layout follows the dependency order of the layers:
//   - environment: the constraint backend (variables, constraints, scopes)
//   - field: the constrained field element and its operator compilers
//   - execution: the transition container consuming finished circuit outputs
package zkfield

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

var Version = semver.MustParse("0.1.0")

// Curve returns the curve whose scalar field backs all circuit values.
func Curve() ecc.ID {
	return ecc.BLS12_377
}
