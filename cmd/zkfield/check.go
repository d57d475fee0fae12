package main

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/spf13/cobra"

	"github.com/zksynth/zkfield/environment"
	"github.com/zksynth/zkfield/field"
	"github.com/zksynth/zkfield/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Synthesize every operator and diff the real trace against the cost tables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Logger()
		mismatches := 0

		for _, op := range field.UnaryOps() {
			for _, c := range unaryCases() {
				if ok := checkUnary(op, c); !ok {
					log.Error().Str("op", op.String()).Str("case", describe(c)).Msg("prediction mismatch")
					mismatches++
				}
			}
		}
		for _, op := range field.BinaryOps() {
			for _, a := range unaryCases() {
				for _, b := range unaryCases() {
					if ok := checkBinary(op, a, b); !ok {
						log.Error().Str("op", op.String()).
							Str("case", describe(a)+","+describe(b)).Msg("prediction mismatch")
						mismatches++
					}
				}
			}
		}

		if mismatches > 0 {
			return fmt.Errorf("%d case(s) diverge from the cost tables", mismatches)
		}
		fmt.Println("all operator cases match the cost and output-mode tables")
		return nil
	},
}

// materialize builds an operand for a display case: constants keep their
// case value, variables get a representative non-zero value.
func materialize(ckt *environment.Circuit, c environment.CircuitType) *field.Field {
	if v, ok := c.ConstantValue(); ok {
		return field.New(ckt, environment.Constant, v)
	}
	return field.New(ckt, c.Mode(), fr.NewElement(3))
}

func checkUnary(op field.Op, c environment.CircuitType) bool {
	ckt := environment.New()
	operand := materialize(ckt, c)

	ok := true
	ckt.Scope(op.String(), func() {
		var mode environment.Mode
		switch op {
		case field.OpNeg:
			mode = operand.Neg().EjectMode()
		case field.OpDouble:
			mode = operand.Double().EjectMode()
		case field.OpSquare:
			mode = operand.Square().EjectMode()
		case field.OpInverse:
			mode = operand.Inverse().EjectMode()
		case field.OpIsZero:
			mode = operand.IsZero().EjectMode()
		}
		ok = ckt.CountInScope().Matches(field.UnaryCost(op, c.Mode())) &&
			mode == field.UnaryOutputMode(op, c) &&
			ckt.IsSatisfiedInScope()
	})
	return ok
}

func checkBinary(op field.Op, a, b environment.CircuitType) bool {
	ckt := environment.New()
	first := materialize(ckt, a)
	second := materialize(ckt, b)

	ok := true
	ckt.Scope(op.String(), func() {
		var mode environment.Mode
		switch op {
		case field.OpAdd:
			mode = first.Add(second).EjectMode()
		case field.OpSub:
			mode = first.Sub(second).EjectMode()
		case field.OpMul:
			mode = first.Mul(second).EjectMode()
		case field.OpDiv:
			mode = first.Div(second).EjectMode()
		}
		ok = ckt.CountInScope().Matches(field.BinaryCost(op, a.Mode(), b.Mode())) &&
			mode == field.BinaryOutputMode(op, a, b) &&
			ckt.IsSatisfiedInScope()
	})
	return ok
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
