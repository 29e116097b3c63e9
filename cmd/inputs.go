package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/workload"
)

// loadReferences resolves the reference sequence from exactly one of an
// inline string or a file path.
func loadReferences(inline, path string) ([]sim.PageID, error) {
	switch {
	case inline != "" && path != "":
		return nil, fmt.Errorf("--refs and --refs-file are mutually exclusive")
	case path != "":
		refs, err := workload.LoadReferenceFile(path)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Loaded %d references from %s", len(refs), path)
		return refs, nil
	case inline != "":
		return workload.ParseReferenceString(inline)
	default:
		return nil, fmt.Errorf("no references given; use --refs or --refs-file")
	}
}

// parsePolicies resolves policy names, defaulting to every policy when
// names is empty.
func parsePolicies(names []string) ([]sim.Policy, error) {
	if len(names) == 0 {
		return sim.AllPolicies, nil
	}
	out := make([]sim.Policy, 0, len(names))
	for _, n := range names {
		p, err := sim.ParsePolicy(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// validateOutputFormat rejects anything but the table and json renderers.
func validateOutputFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown output format %q; valid: table, json", format)
	}
	return nil
}
