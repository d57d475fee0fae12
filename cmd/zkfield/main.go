// zkfield is a toolbox around the constrained-field arithmetic layer: it
// prints the static cost tables and checks them against a live synthesis.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zkfield",
	Short: "Constrained field arithmetic with static cost metering.",
	Long: "A toolbox for the zkfield circuit layer: inspect the per-operator " +
		"cost and output-mode tables, or verify them against a real synthesis trace.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
