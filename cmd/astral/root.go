// Root command for the astral CLI.
package main

import (
	"github.com/mesh-intelligence/astral/internal/paths"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var flagConfigDir string

// outputPrecision holds the decimal places used when printing magnitudes.
// Set by PersistentPreRunE from config.yaml so all subcommands can use it.
var outputPrecision = defaultPrecision

var rootCmd = &cobra.Command{
	Use:     "astral",
	Short:   "Astral converts and compares astrometric quantities",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		outputPrecision = cfg.GetInt(cfgKeyPrecision)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(unitsCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ASTRAL_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
