package environment

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/rs/zerolog"
	"github.com/zksynth/zkfield/debug"
	"github.com/zksynth/zkfield/logger"
)

// r1c is one rank-1 constraint a·b == c.
type r1c struct {
	a, b, c LinearCombination
}

// scopeFrame snapshots the tallies at scope entry so that in-scope deltas
// can be reported while the scope is open.
type scopeFrame struct {
	name        string
	constants   uint64
	public      uint64
	private     uint64
	constraints int
}

// Circuit is the concrete constraint backend: the accumulated constraint
// system of one synthesis run. A Circuit must not be mutated from more than
// one goroutine; independent instances share nothing and may run
// concurrently.
type Circuit struct {
	numConstants uint64
	numPublic    uint64
	numPrivate   uint64
	nextWire     uint64

	constraints []r1c
	scopes      []scopeFrame

	// cache of constraints already evaluated and found satisfied; witness
	// values are immutable once materialized, so a satisfied constraint
	// stays satisfied.
	verified *bitset.BitSet

	log zerolog.Logger
}

var _ Environment = (*Circuit)(nil)

// New returns an empty backend ready for one synthesis run.
func New() *Circuit {
	return &Circuit{
		verified: bitset.New(64),
		log:      logger.Logger(),
	}
}

// NewVariable allocates a variable bound to a known value.
func (ckt *Circuit) NewVariable(mode Mode, value fr.Element) LinearCombination {
	return ckt.allocate(mode, resolvedValue(value))
}

// NewWitness allocates a variable bound to a deferred computation. The
// closure runs once, the first time the value is materialized — at
// satisfiability-checking time in tests, or at witness-extraction time when
// proving.
func (ckt *Circuit) NewWitness(mode Mode, compute func() fr.Element) LinearCombination {
	if mode.IsConstant() {
		// a constant witness has all its inputs available now
		return ckt.allocate(mode, resolvedValue(compute()))
	}
	return ckt.allocate(mode, pendingValue(compute))
}

func (ckt *Circuit) allocate(mode Mode, value *lazyValue) LinearCombination {
	switch mode {
	case Constant:
		ckt.numConstants++
		return NewConstantLC(value.get())
	case Public:
		ckt.numPublic++
	default:
		ckt.numPrivate++
	}
	v := &Variable{index: ckt.nextWire, mode: mode, value: value}
	ckt.nextWire++
	return NewTermLC(v)
}

// Enforce registers a·b == c. A violated constraint does not raise here; it
// surfaces only through IsSatisfied.
func (ckt *Circuit) Enforce(a, b, c LinearCombination) {
	ckt.constraints = append(ckt.constraints, r1c{a: a, b: b, c: c})
}

// Assert registers b == 1 over a boolean indicator, compiled as b·1 == 1.
func (ckt *Circuit) Assert(b LinearCombination) {
	var one fr.Element
	one.SetOne()
	ckt.Enforce(b, NewConstantLC(one), NewConstantLC(one))
}

// Halt aborts the current synthesis: the condition is a circuit-construction
// error, not a data-dependent proof failure. The backend state is undefined
// afterwards.
func (ckt *Circuit) Halt(format string, args ...any) {
	err := &HaltError{
		Message: fmt.Sprintf(format, args...),
		Stack:   debug.Stack(),
	}
	ckt.log.Error().Str("scope", ckt.scopeName()).Msg(err.Message)
	panic(err)
}

// IsSatisfied evaluates every registered constraint under the current
// witness assignment, materializing pending witnesses as needed.
func (ckt *Circuit) IsSatisfied() bool {
	return ckt.isSatisfiedFrom(0)
}

// IsSatisfiedInScope checks only the constraints registered since the
// innermost open scope was entered.
func (ckt *Circuit) IsSatisfiedInScope() bool {
	if len(ckt.scopes) == 0 {
		return ckt.IsSatisfied()
	}
	return ckt.isSatisfiedFrom(ckt.scopes[len(ckt.scopes)-1].constraints)
}

func (ckt *Circuit) isSatisfiedFrom(start int) bool {
	satisfied := true
	for i := start; i < len(ckt.constraints); i++ {
		if ckt.verified.Test(uint(i)) {
			continue
		}
		c := ckt.constraints[i]
		a := c.a.Evaluate()
		b := c.b.Evaluate()
		out := c.c.Evaluate()
		a.Mul(&a, &b)
		if !a.Equal(&out) {
			ckt.log.Debug().Int("constraint", i).Str("scope", ckt.scopeName()).Msg("unsatisfied constraint")
			satisfied = false
			continue
		}
		ckt.verified.Set(uint(i))
	}
	return satisfied
}

// Scope runs fn inside a named accounting region. Scopes nest; the in-scope
// tallies and satisfiability checks refer to the innermost open region.
func (ckt *Circuit) Scope(name string, fn func()) {
	ckt.scopes = append(ckt.scopes, scopeFrame{
		name:        name,
		constants:   ckt.numConstants,
		public:      ckt.numPublic,
		private:     ckt.numPrivate,
		constraints: len(ckt.constraints),
	})
	ckt.log.Debug().Str("scope", name).Msg("enter scope")
	defer func() {
		ckt.scopes = ckt.scopes[:len(ckt.scopes)-1]
		ckt.log.Debug().Str("scope", name).Msg("exit scope")
	}()
	fn()
}

func (ckt *Circuit) scopeName() string {
	if len(ckt.scopes) == 0 {
		return ""
	}
	return ckt.scopes[len(ckt.scopes)-1].name
}

// CountInScope returns the resources consumed since the innermost open scope
// was entered, or since the start of the run when no scope is open.
func (ckt *Circuit) CountInScope() Count {
	var base scopeFrame
	if len(ckt.scopes) > 0 {
		base = ckt.scopes[len(ckt.scopes)-1]
	}
	return Count{
		Constants:   ckt.numConstants - base.constants,
		Public:      ckt.numPublic - base.public,
		Private:     ckt.numPrivate - base.private,
		Constraints: uint64(len(ckt.constraints) - base.constraints),
	}
}

// Global tallies for the whole run.
func (ckt *Circuit) NumConstants() uint64   { return ckt.numConstants }
func (ckt *Circuit) NumPublic() uint64      { return ckt.numPublic }
func (ckt *Circuit) NumPrivate() uint64     { return ckt.numPrivate }
func (ckt *Circuit) NumConstraints() uint64 { return uint64(len(ckt.constraints)) }

// Reset tears the backend down for reuse between independent runs.
func (ckt *Circuit) Reset() {
	ckt.numConstants = 0
	ckt.numPublic = 0
	ckt.numPrivate = 0
	ckt.nextWire = 0
	ckt.constraints = nil
	ckt.scopes = nil
	ckt.verified = bitset.New(64)
}
