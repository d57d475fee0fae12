package environment

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// lazyValue is the two-state native value behind a variable: either resolved
// to a concrete field element, or pending a closure over operand values that
// runs exactly once, at the first read. Pending values are how auxiliary
// witnesses (e.g. a division quotient) are introduced before the concrete
// values of their operands are available.
type lazyValue struct {
	resolved bool
	concrete fr.Element
	compute  func() fr.Element
}

func resolvedValue(v fr.Element) *lazyValue {
	return &lazyValue{resolved: true, concrete: v}
}

func pendingValue(compute func() fr.Element) *lazyValue {
	return &lazyValue{compute: compute}
}

// get materializes the value. Once materialized it is immutable.
func (v *lazyValue) get() fr.Element {
	if !v.resolved {
		v.concrete = v.compute()
		v.compute = nil
		v.resolved = true
	}
	return v.concrete
}
