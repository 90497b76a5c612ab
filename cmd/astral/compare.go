// Compare command for the astral CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <value> <unit> <value> <unit>",
	Short: "Order two quantities of the same dimension",
	Long: `Compare prints "<", "=", or ">" for two quantities of the same
dimension, converting units internally. Quantities involving the black-hole
temperature category print "incomparable".`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		aVal, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compare: invalid value %q\n", args[0])
			os.Exit(exitUserError)
		}
		bVal, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compare: invalid value %q\n", args[2])
			os.Exit(exitUserError)
		}

		out, err := compareQuantities(aVal, args[1], bVal, args[3])
		if err != nil {
			fmt.Fprintln(os.Stderr, "compare:", err)
			os.Exit(exitUserError)
		}

		fmt.Println(out)
		return nil
	},
}
