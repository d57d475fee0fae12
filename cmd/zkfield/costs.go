package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/spf13/cobra"

	"github.com/zksynth/zkfield/environment"
	"github.com/zksynth/zkfield/field"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Print the per-operator cost and output-mode tables.",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATOR\tCASE\tOUTPUT MODE\tCOST")

		for _, op := range field.UnaryOps() {
			for _, c := range unaryCases() {
				mode := field.UnaryOutputMode(op, c)
				cost := field.UnaryCost(op, c.Mode())
				fmt.Fprintf(w, "%s\t(%s)\t%s\t%s\n", op, describe(c), mode, cost)
			}
		}
		for _, op := range field.BinaryOps() {
			for _, a := range unaryCases() {
				for _, b := range unaryCases() {
					mode := field.BinaryOutputMode(op, a, b)
					cost := field.BinaryCost(op, a.Mode(), b.Mode())
					fmt.Fprintf(w, "%s\t(%s, %s)\t%s\t%s\n", op, describe(a), describe(b), mode, cost)
				}
			}
		}
		w.Flush()
	},
}

// unaryCases enumerates the display cases: constants split by the values the
// output-mode rules inspect (one vs any other scalar).
func unaryCases() []environment.CircuitType {
	var one fr.Element
	one.SetOne()
	return []environment.CircuitType{
		environment.ConstantType(one),
		environment.ConstantType(fr.NewElement(2)),
		environment.PublicType(),
		environment.PrivateType(),
	}
}

func describe(c environment.CircuitType) string {
	if v, ok := c.ConstantValue(); ok {
		if v.IsOne() {
			return "constant=1"
		}
		return "constant!=1"
	}
	return c.Mode().String()
}

func init() {
	rootCmd.AddCommand(costsCmd)
}
