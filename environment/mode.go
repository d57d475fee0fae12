package environment

import "fmt"

// Mode is the visibility classification of a circuit value.
//
// A value's mode never changes after construction, except through an
// operator's explicitly defined output-mode rule.
type Mode uint8

const (
	// Constant values are known to all parties and require no
	// constraint-system presence beyond bookkeeping.
	Constant Mode = iota
	// Public values are circuit variables visible to the verifier.
	Public
	// Private values are circuit variables known only to the prover.
	Private
)

// Modes lists all modes, in combination order.
func Modes() []Mode {
	return []Mode{Constant, Public, Private}
}

func (m Mode) IsConstant() bool { return m == Constant }
func (m Mode) IsPublic() bool   { return m == Public }
func (m Mode) IsPrivate() bool  { return m == Private }

// Combine returns the join of two modes: Constant only if both operands are
// Constant, Private as soon as either operand is Private. Linear operators
// use this rule directly; other operators define their own tables.
func (m Mode) Combine(other Mode) Mode {
	if other > m {
		return other
	}
	return m
}

func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}
