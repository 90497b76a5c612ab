// Units command for the astral CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the unit symbols the CLI accepts, grouped by dimension",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("distance:", sortedKeys(spatialSymbols))
		fmt.Println("mass:", sortedKeys(massSymbols))
		fmt.Println("temperature:", sortedKeys(temperatureSymbols))
	},
}

// sortedKeys returns the map keys in stable order for display.
func sortedKeys[U any](m map[string]U) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
