package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/workload"
)

var scenarioPath string // Path to a YAML scenario file

// scenarioReport holds one comparison per configured frame count.
type scenarioReport struct {
	Name        string                  `json:"name"`
	References  int                     `json:"references"`
	Comparisons []*sim.ComparisonResult `json:"comparisons"`
}

// scenarioCmd runs every experiment in a scenario file
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run the experiments described in a YAML scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("--spec is required")
		}
		if err := validateOutputFormat(outputFormat); err != nil {
			logrus.Fatalf("%v", err)
		}
		f, err := workload.LoadScenarioFile(scenarioPath)
		if err != nil {
			logrus.Fatalf("Failed to load scenario file: %v", err)
		}
		resolved, err := f.Resolve(filepath.Dir(scenarioPath))
		if err != nil {
			logrus.Fatalf("Invalid scenario file: %v", err)
		}
		logrus.Infof("Loaded %d scenarios from %s (seed %d)", len(resolved), scenarioPath, f.Seed)

		reports, err := runScenarios(resolved)
		if err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
		if err := printScenarios(os.Stdout, reports, outputFormat, chartWidth(os.Stdout)); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
	},
}

// runScenarios compares each scenario's policies at each of its frame counts.
func runScenarios(scenarios []workload.ResolvedScenario) ([]scenarioReport, error) {
	reports := make([]scenarioReport, 0, len(scenarios))
	for _, s := range scenarios {
		rep := scenarioReport{Name: s.Name, References: len(s.References)}
		for _, c := range s.Frames {
			cmp, err := sim.ComparePolicies(s.Policies, s.References, c)
			if err != nil {
				return nil, fmt.Errorf("scenario %q with %d frames: %w", s.Name, c, err)
			}
			rep.Comparisons = append(rep.Comparisons, cmp)
		}
		logrus.Debugf("Scenario %q done: %d comparisons", s.Name, len(rep.Comparisons))
		reports = append(reports, rep)
	}
	return reports, nil
}

// printScenarios writes reports as JSON or as one comparison chart per
// scenario and frame count.
func printScenarios(w io.Writer, reports []scenarioReport, format string, width int) error {
	if format == "json" {
		return writeJSON(w, reports)
	}
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %s ===\n", rep.Name)
		for j, cmp := range rep.Comparisons {
			if j > 0 {
				fmt.Fprintln(w)
			}
			renderComparison(w, cmp, width)
		}
	}
	return nil
}

func init() {
	scenarioCmd.Flags().StringVar(&scenarioPath, "spec", "", "Path to a YAML scenario file")
	scenarioCmd.Flags().StringVar(&outputFormat, "output", "table", "Output format: table or json")
}
