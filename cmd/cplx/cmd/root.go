package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mathkit/core/config"
	"github.com/msto63/mathkit/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cplx",
	Short: "mathkit complex number calculator",
	Long: `cplx is a small calculator for complex numbers built on the
mathkit library.

Commands:
  calc     - arithmetic on two complex operands
  fn       - apply an elementary function to a complex number
  convert  - convert between rectangular and polar form
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// logger returns a console logger honoring the --verbose flag.
func logger() *log.Logger {
	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: log.FormatText,
		Name:   "cplx",
	})
}

// loadConfig loads the configuration file named by --config. Without the
// flag an empty in-memory configuration is returned so lookups fall back
// to their defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.LoadFromString("", config.FormatTOML)
	}
	return config.Load(cfgFile)
}
