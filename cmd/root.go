package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string // Log verbosity level

	// Reference source flags shared by run, compare and sweep
	refsFlag string // Inline reference string
	refsFile string // Path to a reference file

	// Output flags
	outputFormat string // table or json
	metricsOut   string // Path for Prometheus text exposition output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement simulator comparing FIFO, LRU and Optimal eviction",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addReferenceFlags registers the reference source flags on cmd.
func addReferenceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&refsFlag, "refs", "", "Reference string, e.g. \"7 0 1 2\" or \"7,0,1,2\"")
	cmd.Flags().StringVar(&refsFile, "refs-file", "", "Path to a file of page references ('#' starts a comment line)")
}

// addOutputFlags registers the result output flags on cmd. Only commands
// with per-run results accept --metrics-out.
func addOutputFlags(cmd *cobra.Command, withMetrics bool) {
	cmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table or json")
	if withMetrics {
		cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write results in Prometheus text format to this file")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addReferenceFlags(runCmd)
	addOutputFlags(runCmd, true)
	addReferenceFlags(compareCmd)
	addOutputFlags(compareCmd, true)
	addReferenceFlags(sweepCmd)
	addOutputFlags(sweepCmd, false)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scenarioCmd)
}
