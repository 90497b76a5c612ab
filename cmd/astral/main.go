// Package main provides the astral CLI, a thin front end over pkg/units for
// converting and comparing astrometric quantities.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
