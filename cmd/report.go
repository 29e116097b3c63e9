package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/inference-sim/pagesim/sim"
)

const (
	defaultChartWidth = 40
	maxChartWidth     = 60
)

// chartWidth sizes bar charts to the terminal behind f, falling back to
// defaultChartWidth when f is not a terminal.
func chartWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultChartWidth
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return defaultChartWidth
	}
	// leave room for the label and value columns
	return max(10, min(maxChartWidth, cols-30))
}

// ratioBar renders frac in [0, 1] as a fixed-width bar.
func ratioBar(frac float64, width int) string {
	filled := int(math.Round(frac * float64(width)))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func pageLabel(p sim.PageID) string {
	return strconv.FormatInt(int64(p), 10)
}

// renderFrameTable writes one row per step: the requested page, every frame
// slot in admission order ("-" while empty), and whether the step faulted.
func renderFrameTable(w io.Writer, r *sim.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"Step", "Page"}
	for i := 1; i <= r.Capacity; i++ {
		header = append(header, fmt.Sprintf("Frame %d", i))
	}
	header = append(header, "Fault", "Evicted")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, s := range r.Steps {
		row := []string{strconv.Itoa(s.Step + 1), pageLabel(s.Page)}
		for i := 0; i < r.Capacity; i++ {
			if i < len(s.Frames) {
				row = append(row, pageLabel(s.Frames[i]))
			} else {
				row = append(row, "-")
			}
		}
		if s.Fault {
			row = append(row, "yes")
		} else {
			row = append(row, "no")
		}
		if s.Evicted != nil {
			row = append(row, pageLabel(*s.Evicted))
		} else {
			row = append(row, "-")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// renderSummary writes the fault and hit totals of r with ratio bars.
func renderSummary(w io.Writer, r *sim.SimulationResult, width int) {
	fmt.Fprintf(w, "%s with %d frames over %d references\n", r.Policy.DisplayName(), r.Capacity, r.Length())
	fmt.Fprintf(w, "  Page faults: %d\n", r.Faults)
	fmt.Fprintf(w, "  Page hits:   %d\n", r.Hits)
	fmt.Fprintf(w, "  Evictions:   %d\n", r.Evictions())
	fmt.Fprintf(w, "  Hit ratio  %s %5.1f%%\n", ratioBar(r.HitRate, width), r.HitRate*100)
	fmt.Fprintf(w, "  Miss ratio %s %5.1f%%\n", ratioBar(r.MissRate, width), r.MissRate*100)
}

// renderComparison writes a fault bar chart scaled to the worst policy,
// followed by the best performers and what each is suited to.
func renderComparison(w io.Writer, cmp *sim.ComparisonResult, width int) {
	fmt.Fprintf(w, "Page faults with %d frames over %d references\n", cmp.Capacity, cmp.Length)
	for _, p := range cmp.Policies() {
		r := cmp.Results[p]
		frac := 0.0
		if cmp.MaxFaults > 0 {
			frac = float64(r.Faults) / float64(cmp.MaxFaults)
		}
		bar := strings.Repeat("#", int(math.Round(frac*float64(width))))
		fmt.Fprintf(w, "  %-8s %-*s %d (hit ratio %.1f%%)\n", p.DisplayName(), width, bar, r.Faults, r.HitRate*100)
	}

	names := make([]string, len(cmp.Best))
	for i, p := range cmp.Best {
		names[i] = p.DisplayName()
	}
	fmt.Fprintf(w, "\nBest: %s (%d faults)\n", strings.Join(names, ", "), cmp.MinFaults)
	for _, p := range cmp.Best {
		fmt.Fprintf(w, "  %s: %s\n", p.DisplayName(), p.Insight())
	}
}

// renderSweep writes a faults-by-capacity table. Cells where faults rose
// over the previous capacity are marked with '*'.
func renderSweep(w io.Writer, s *sim.SweepResult) error {
	policies := make([]sim.Policy, 0, len(s.Curves))
	for _, p := range sim.AllPolicies {
		if _, ok := s.Curves[p]; ok {
			policies = append(policies, p)
		}
	}
	anomalous := make(map[sim.Policy]map[int]bool)
	for _, a := range s.Anomalies {
		if anomalous[a.Policy] == nil {
			anomalous[a.Policy] = make(map[int]bool)
		}
		anomalous[a.Policy][a.Capacity] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"Frames"}
	for _, p := range policies {
		header = append(header, p.DisplayName())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for k := 0; k <= s.MaxCapacity-s.MinCapacity; k++ {
		row := []string{strconv.Itoa(s.MinCapacity + k)}
		for _, p := range policies {
			pt := s.Curves[p][k]
			cell := strconv.Itoa(pt.Faults)
			if anomalous[p][pt.Capacity] {
				cell += "*"
			}
			row = append(row, cell)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Anomalies) == 0 {
		fmt.Fprintln(w, "\nNo Belady anomaly in this range.")
		return nil
	}
	fmt.Fprintln(w, "\nBelady anomalies:")
	for _, a := range s.Anomalies {
		fmt.Fprintf(w, "  %s: %d faults with %d frames, up from %d with %d\n",
			a.Policy.DisplayName(), a.Faults, a.Capacity, a.PreviousFaults, a.Capacity-1)
	}
	return nil
}
