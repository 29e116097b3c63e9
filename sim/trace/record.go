// Package trace provides per-step trace recording and export for eviction
// simulations. This package has no dependencies on sim/; it stores pure data types.
package trace

// StepRecord captures the outcome of a single reference.
type StepRecord struct {
	Step    int
	Page    int64
	Fault   bool
	Evicted *int64  // nil when no page was displaced
	Frames  []int64 // residents after the step, in admission order
}

// EvictedPage returns a pointer to v, for building StepRecords.
func EvictedPage(v int64) *int64 {
	return &v
}
