// Convert command for the astral CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a quantity to another unit of the same dimension",
	Example: `  astral convert 1 ly au
  astral convert 500 g kg
  astral convert 0 c k`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "convert: invalid value %q\n", args[0])
			os.Exit(exitUserError)
		}

		out, err := convertQuantity(value, args[1], args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, "convert:", err)
			os.Exit(exitUserError)
		}

		fmt.Println(out)
		return nil
	},
}
