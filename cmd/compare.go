package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
)

var comparePolicies []string // Policies to compare; empty means all

// compareCmd runs several policies over the same references and frames
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare eviction policies over the same reference sequence",
	Run: func(cmd *cobra.Command, args []string) {
		refs, err := loadReferences(refsFlag, refsFile)
		if err != nil {
			logrus.Fatalf("Invalid references: %v", err)
		}
		if err := validateOutputFormat(outputFormat); err != nil {
			logrus.Fatalf("%v", err)
		}
		policies, err := parsePolicies(comparePolicies)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Comparing %v with %d frames over %d references", policies, frames, len(refs))
		cmp, err := sim.ComparePolicies(policies, refs, frames)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		if err := printComparison(os.Stdout, cmp, outputFormat, chartWidth(os.Stdout)); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		if metricsOut != "" {
			if err := writeMetricsFile(metricsOut, func(w io.Writer) error {
				return sim.WriteComparisonMetrics(w, cmp)
			}); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
	},
}

// printComparison writes cmp as JSON or as a bar chart with insights.
func printComparison(w io.Writer, cmp *sim.ComparisonResult, format string, width int) error {
	if format == "json" {
		return writeJSON(w, cmp)
	}
	renderComparison(w, cmp, width)
	return nil
}

func init() {
	compareCmd.Flags().IntVar(&frames, "frames", 3, "Number of physical frames")
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policies to compare (default all)")
}
