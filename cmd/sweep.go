package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
)

var (
	minFrames int // Smallest capacity in the sweep
	maxFrames int // Largest capacity in the sweep
)

// sweepCmd reports fault curves over a range of frame counts
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep frame counts and detect Belady's anomaly",
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

		logrus.Infof("Sweeping frames %d..%d over %d references", minFrames, maxFrames, len(refs))
		res, err := sim.Sweep(policies, refs, minFrames, maxFrames)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		for _, a := range res.Anomalies {
			logrus.Warnf("Belady anomaly: %s faults rose from %d to %d at %d frames", a.Policy, a.PreviousFaults, a.Faults, a.Capacity)
		}
		if err := printSweep(os.Stdout, res, outputFormat); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
	},
}

// printSweep writes res as JSON or as a faults-by-capacity table.
func printSweep(w io.Writer, res *sim.SweepResult, format string) error {
	if format == "json" {
		return writeJSON(w, res)
	}
	return renderSweep(w, res)
}

func init() {
	sweepCmd.Flags().IntVar(&minFrames, "min-frames", 1, "Smallest number of frames")
	sweepCmd.Flags().IntVar(&maxFrames, "max-frames", 8, "Largest number of frames")
	sweepCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policies to sweep (default all)")
}
