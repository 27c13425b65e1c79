// Package cmd provides the CLI commands for watershed.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/watershed/internal/logging"
)

var verbose bool

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "watershed",
	Short: "Dual-boundary drainage analysis for elevation grids",
	Long: `watershed finds the cells of an elevation grid whose water can drain
to two configurable groups of grid boundaries at the same time.

Examples:
  watershed analyze grid.json
  watershed analyze --parallel --no-stats grid.json
  watershed batch items.json`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	logging.Initialize(cfg)
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("watershed version 0.1.0")
	},
}
