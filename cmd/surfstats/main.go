// Package main provides the CLI entry point for surfstats.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags holds command-line overrides of the loaded configuration.
type flags struct {
	configPath string
	outputDir  string
	sigFigs    int
	colWidth   float64
	plotDir    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "surfstats [file.csv | directory]...",
		Short: "Summarize surface-metrology CSV exports into xlsx reports",
		Long: `surfstats reads CSV exports from surface-analysis software, converts
length parameters to micrometers, computes the mean and standard deviation
of every parameter and writes one workbook per export with metric and
imperial tables.

Directory arguments are searched recursively for .csv files and each report
is written beside its source. File arguments write into --output-dir.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fl, args)
		},
	}

	rootCmd.Flags().StringVar(&fl.configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&fl.outputDir, "output-dir", "o", "", "Directory for reports of file arguments (default: working directory)")
	rootCmd.Flags().IntVar(&fl.sigFigs, "sig-figs", 3, "Significant figures of every statistic")
	rootCmd.Flags().Float64Var(&fl.colWidth, "col-width", 20, "Width of every report column")
	rootCmd.Flags().StringVar(&fl.plotDir, "plot-dir", "", "Directory for inspection plots (disabled when empty)")
	rootCmd.Flags().StringVar(&fl.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&fl.logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}
