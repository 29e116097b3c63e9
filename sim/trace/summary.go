package trace

import "sort"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	RecordedSteps   int
	Faults          int
	Hits            int
	Evictions       int
	LongestFaultRun int           // most consecutive recorded faulting steps
	DistinctPages   int           // distinct pages among recorded steps
	PageFaults      map[int64]int // page -> number of faults on that page
	MostFaulted     []int64       // pages with the highest fault count, ascending
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
// With TraceLevelFaults only faulting steps are recorded, so Hits is 0 and
// LongestFaultRun counts consecutive step indices.
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		PageFaults: make(map[int64]int),
	}
	if st == nil {
		return summary
	}

	summary.RecordedSteps = len(st.Steps)
	pages := make(map[int64]bool)
	run, prevStep := 0, -2
	for _, s := range st.Steps {
		pages[s.Page] = true
		if s.Evicted != nil {
			summary.Evictions++
		}
		if !s.Fault {
			summary.Hits++
			run = 0
			prevStep = s.Step
			continue
		}
		summary.Faults++
		summary.PageFaults[s.Page]++
		if s.Step == prevStep+1 {
			run++
		} else {
			run = 1
		}
		prevStep = s.Step
		if run > summary.LongestFaultRun {
			summary.LongestFaultRun = run
		}
	}
	summary.DistinctPages = len(pages)

	top := 0
	for _, n := range summary.PageFaults {
		if n > top {
			top = n
		}
	}
	for page, n := range summary.PageFaults {
		if n == top {
			summary.MostFaulted = append(summary.MostFaulted, page)
		}
	}
	sort.Slice(summary.MostFaulted, func(i, j int) bool { return summary.MostFaulted[i] < summary.MostFaulted[j] })

	return summary
}
