// Per-step outcomes and aggregate fault/hit statistics of a simulation run.

package sim

// StepOutcome records one reference of the sequence.
type StepOutcome struct {
	Step    int      `json:"step"`              // 0-based index into the reference sequence
	Page    PageID   `json:"page"`              // page requested
	Fault   bool     `json:"fault"`             // page was not resident before the step
	Evicted *PageID  `json:"evicted,omitempty"` // victim removed to make room, if any
	Frames  []PageID `json:"frames"`            // residents after the step, admission order
}

// SimulationResult holds the trajectory and aggregate counts of one run.
type SimulationResult struct {
	Policy   Policy        `json:"policy"`
	Capacity int           `json:"capacity"`
	Steps    []StepOutcome `json:"steps"`

	Faults   int     `json:"faults"`
	Hits     int     `json:"hits"`
	HitRate  float64 `json:"hit_rate"`  // hits / len(steps), 0 for an empty sequence
	MissRate float64 `json:"miss_rate"` // faults / len(steps), 0 for an empty sequence
}

// Length returns the number of references simulated.
func (r *SimulationResult) Length() int {
	return len(r.Steps)
}

// Evictions returns how many faults displaced a resident page.
func (r *SimulationResult) Evictions() int {
	n := 0
	for _, s := range r.Steps {
		if s.Evicted != nil {
			n++
		}
	}
	return n
}

// finalize derives hits and rates from Faults and the step count.
func (r *SimulationResult) finalize() {
	n := len(r.Steps)
	r.Hits = n - r.Faults
	if n == 0 {
		r.HitRate, r.MissRate = 0, 0
		return
	}
	r.HitRate = float64(r.Hits) / float64(n)
	r.MissRate = float64(r.Faults) / float64(n)
}
