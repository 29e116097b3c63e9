package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/workload"
)

var (
	seed        int64   // Seed for reference generation
	genPattern  string  // uniform, zipf, locality, loop
	genLength   int     // Number of references to generate
	genPages    int     // Size of the page universe
	genZipfS    float64 // Zipf skew
	genWorking  int     // Locality window size
	genLocality float64 // Probability a reference falls in the window
	genPhase    int     // References before the locality window moves
	genSep      string  // Separator between generated page IDs
	genOut      string  // Output file; stdout when empty
)

// generateCmd writes a synthetic reference sequence
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic page reference sequence",
	Run: func(cmd *cobra.Command, args []string) {
		spec := workload.GeneratorSpec{
			Pattern:     genPattern,
			Length:      genLength,
			Pages:       genPages,
			ZipfS:       genZipfS,
			WorkingSet:  genWorking,
			PhaseLength: genPhase,
		}
		if cmd.Flags().Changed("locality") {
			spec.Locality = &genLocality
		}
		refs, err := generateReferences(spec, seed)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var w io.Writer = os.Stdout
		if genOut != "" {
			f, err := os.Create(genOut)
			if err != nil {
				logrus.Fatalf("Creating output file: %v", err)
			}
			defer f.Close()
			w = f
		}
		if _, err := fmt.Fprintln(w, workload.FormatReferences(refs, genSep)); err != nil {
			logrus.Fatalf("Writing references: %v", err)
		}
		logrus.Infof("Generated %d %s references over %d pages (seed %d)", len(refs), genPattern, genPages, seed)
	},
}

// generateReferences draws spec from the references partition of seed.
func generateReferences(spec workload.GeneratorSpec, seed int64) ([]sim.PageID, error) {
	rng := workload.NewPartitionedRNG(workload.NewSimulationKey(seed))
	return workload.Generate(spec, rng.ForSubsystem(workload.SubsystemReferences))
}

func init() {
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random reference generation")
	generateCmd.Flags().StringVar(&genPattern, "pattern", "locality", "Access pattern: uniform, zipf, locality, loop")
	generateCmd.Flags().IntVar(&genLength, "length", 100, "Number of references")
	generateCmd.Flags().IntVar(&genPages, "pages", 10, "Number of distinct pages")
	generateCmd.Flags().Float64Var(&genZipfS, "zipf-s", 0, "Zipf skew, > 1 (default 1.2)")
	generateCmd.Flags().IntVar(&genWorking, "working-set", 0, "Locality window size (default pages/5)")
	generateCmd.Flags().Float64Var(&genLocality, "locality", 0.9, "Probability a reference falls inside the locality window")
	generateCmd.Flags().IntVar(&genPhase, "phase-length", 0, "References before the locality window moves (default length/4)")
	generateCmd.Flags().StringVar(&genSep, "sep", " ", "Separator between page IDs")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write to this file instead of stdout")
}
