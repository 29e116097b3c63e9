package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/trace"
)

var (
	policyName       string // Eviction policy for run
	frames           int    // Number of physical frames
	traceLevel       string // Trace verbosity: none, faults, steps
	traceHeader      string // Trace header output path (YAML)
	traceData        string // Trace data output path (CSV)
	traceCompression string // Trace data codec: none, snappy, lz4
	hideTable        bool   // Suppress the per-step frame table
)

// runCmd simulates a single policy and prints its frame table and totals
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one eviction policy over a reference sequence",
	Run: func(cmd *cobra.Command, args []string) {
		refs, err := loadReferences(refsFlag, refsFile)
		if err != nil {
			logrus.Fatalf("Invalid references: %v", err)
		}
		if err := validateOutputFormat(outputFormat); err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q; valid: none, faults, steps", traceLevel)
		}
		if !trace.IsValidCompression(traceCompression) {
			logrus.Fatalf("Unknown trace compression %q; valid: none, snappy, lz4", traceCompression)
		}
		if traceLevel != "" && traceLevel != string(trace.TraceLevelNone) && (traceHeader == "" || traceData == "") {
			logrus.Fatalf("--trace-level %s requires --trace-header and --trace-data", traceLevel)
		}

		logrus.Infof("Simulating %s with %d frames over %d references", policyName, frames, len(refs))
		result, err := sim.SimulateByName(policyName, refs, frames)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := printRunResult(os.Stdout, result, outputFormat, !hideTable, chartWidth(os.Stdout)); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}

		if metricsOut != "" {
			if err := writeMetricsFile(metricsOut, func(w io.Writer) error {
				return sim.WriteMetrics(w, result)
			}); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		if traceHeader != "" && traceData != "" {
			level := trace.TraceLevel(traceLevel)
			if level == "" || level == trace.TraceLevelNone {
				level = trace.TraceLevelSteps
			}
			st, err := exportResultTrace(result, level, trace.Compression(traceCompression), traceHeader, traceData)
			if err != nil {
				logrus.Fatalf("Exporting trace: %v", err)
			}
			summary := trace.Summarize(st)
			logrus.Infof("Trace summary: %d steps recorded, %d faults, longest fault run %d, most faulted pages %v",
				summary.RecordedSteps, summary.Faults, summary.LongestFaultRun, summary.MostFaulted)
		}
		logrus.Info("Simulation complete.")
	},
}

// printRunResult writes result as JSON or as a frame table plus summary.
func printRunResult(w io.Writer, result *sim.SimulationResult, format string, withTable bool, width int) error {
	if format == "json" {
		return writeJSON(w, result)
	}
	if withTable {
		if err := renderFrameTable(w, result); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	renderSummary(w, result, width)
	return nil
}

func init() {
	runCmd.Flags().StringVar(&policyName, "policy", "lru", "Eviction policy: fifo, lru, optimal (aliases: opt, belady, min)")
	runCmd.Flags().IntVar(&frames, "frames", 3, "Number of physical frames")
	runCmd.Flags().BoolVar(&hideTable, "no-table", false, "Print totals only, without the per-step frame table")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "", "Trace level: none, faults, steps (default steps when trace paths are set)")
	runCmd.Flags().StringVar(&traceHeader, "trace-header", "", "Write the trace header (YAML) to this path")
	runCmd.Flags().StringVar(&traceData, "trace-data", "", "Write trace step rows (CSV) to this path")
	runCmd.Flags().StringVar(&traceCompression, "trace-compression", "none", "Trace data codec: none, snappy, lz4")
}
