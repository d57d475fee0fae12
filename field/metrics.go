package field

import (
	"github.com/zksynth/zkfield/environment"
)

// Op tags an operator compiler for the metering tables.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpNeg
	OpDouble
	OpMul
	OpSquare
	OpInverse
	OpDiv
	OpIsZero
)

// UnaryOps lists the single-operand operators.
func UnaryOps() []Op {
	return []Op{OpNeg, OpDouble, OpSquare, OpInverse, OpIsZero}
}

// BinaryOps lists the two-operand operators.
func BinaryOps() []Op {
	return []Op{OpAdd, OpSub, OpMul, OpDiv}
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpNeg:
		return "neg"
	case OpDouble:
		return "double"
	case OpMul:
		return "mul"
	case OpSquare:
		return "square"
	case OpInverse:
		return "inverse"
	case OpDiv:
		return "div"
	case OpIsZero:
		return "is_zero"
	default:
		return "op(?)"
	}
}

// The tables below exist purely for verification: they predict, per operator
// and mode-combination case, the exact resources synthesis will consume and
// the mode it will produce. The conformance tests synthesize the real
// circuit and diff the backend's tallies and the produced mode against these
// predictions; any mismatch is a design defect.

// UnaryCost returns the resources a single-operand operator consumes.
func UnaryCost(op Op, operand environment.Mode) environment.Count {
	switch op {
	case OpNeg, OpDouble:
		return environment.CountIs(0, 0, 0, 0)
	case OpSquare:
		if operand.IsConstant() {
			return environment.CountIs(0, 0, 0, 0)
		}
		return environment.CountIs(0, 0, 1, 1)
	case OpInverse:
		if operand.IsConstant() {
			return environment.CountIs(1, 0, 0, 0)
		}
		return environment.CountIs(0, 0, 1, 1)
	case OpIsZero:
		if operand.IsConstant() {
			return environment.CountIs(1, 0, 0, 0)
		}
		return environment.CountIs(0, 0, 2, 3)
	default:
		panic(&environment.HaltError{Message: "no unary cost table for operator " + op.String()})
	}
}

// BinaryCost returns the resources a two-operand operator consumes.
//
// Division depends only on the divisor's mode: a constant divisor folds
// natively (one constant for its inverse), any other divisor pays three
// private variables and five constraints — the non-zero assertion's
// decomposition (2, 3), the assertion itself (0, 1) and the quotient witness
// with its binding constraint (1, 1).
func BinaryCost(op Op, a, b environment.Mode) environment.Count {
	switch op {
	case OpAdd, OpSub:
		return environment.CountIs(0, 0, 0, 0)
	case OpMul:
		if a.IsConstant() || b.IsConstant() {
			return environment.CountIs(0, 0, 0, 0)
		}
		return environment.CountIs(0, 0, 1, 1)
	case OpDiv:
		if b.IsConstant() {
			return environment.CountIs(1, 0, 0, 0)
		}
		return environment.CountIs(0, 0, 3, 5)
	default:
		panic(&environment.HaltError{Message: "no binary cost table for operator " + op.String()})
	}
}

// UnaryOutputMode returns the mode a single-operand operator produces.
func UnaryOutputMode(op Op, operand environment.CircuitType) environment.Mode {
	switch op {
	case OpNeg, OpDouble:
		return operand.Mode()
	case OpSquare, OpInverse, OpIsZero:
		if operand.Mode().IsConstant() {
			return environment.Constant
		}
		return environment.Private
	default:
		panic(&environment.HaltError{Message: "no unary output-mode table for operator " + op.String()})
	}
}

// BinaryOutputMode returns the mode a two-operand operator produces.
// Constant cases carry their concrete value; invoking a rule that needs the
// value on a case lacking it is a fatal invariant violation.
func BinaryOutputMode(op Op, a, b environment.CircuitType) environment.Mode {
	switch op {
	case OpAdd, OpSub:
		return a.Mode().Combine(b.Mode())
	case OpMul:
		return mulOutputMode(a, b)
	case OpDiv:
		return divOutputMode(a, b)
	default:
		panic(&environment.HaltError{Message: "no binary output-mode table for operator " + op.String()})
	}
}

func mulOutputMode(a, b environment.CircuitType) environment.Mode {
	switch {
	case a.Mode().IsConstant() && b.Mode().IsConstant():
		return environment.Constant
	case a.Mode().IsConstant():
		return scaledOutputMode(b.Mode(), a)
	case b.Mode().IsConstant():
		return scaledOutputMode(a.Mode(), b)
	default:
		return environment.Private
	}
}

// scaledOutputMode classifies variable · constant: scaling by one preserves
// the variable's mode, any other known scalar folds non-trivial information
// into the result and is conservatively private.
func scaledOutputMode(variable environment.Mode, constant environment.CircuitType) environment.Mode {
	v, ok := constant.ConstantValue()
	if !ok {
		panic(&environment.HaltError{
			Message: "the constant value is required to determine the output mode of a constant scaling",
		})
	}
	if v.IsOne() {
		return variable
	}
	return environment.Private
}

func divOutputMode(a, b environment.CircuitType) environment.Mode {
	switch {
	case a.Mode().IsConstant() && b.Mode().IsConstant():
		return environment.Constant
	case a.Mode().IsPublic() && b.Mode().IsConstant():
		// Dividing a public value by one is an identity and stays public;
		// any other constant divisor folds a non-trivial scalar into the
		// result, which is conservatively private.
		v, ok := b.ConstantValue()
		if !ok {
			panic(&environment.HaltError{
				Message: "the constant divisor is required to determine the output mode of public / constant",
			})
		}
		if v.IsOne() {
			return environment.Public
		}
		return environment.Private
	default:
		return environment.Private
	}
}
