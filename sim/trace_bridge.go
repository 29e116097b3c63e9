package sim

import "github.com/inference-sim/pagesim/sim/trace"

// Trace converts r into a SimulationTrace at the given level. header supplies
// run metadata (run ID, creation time, compression); policy, capacity,
// reference and fault counts are filled in from r.
func (r *SimulationResult) Trace(level trace.TraceLevel, header trace.TraceHeader) *trace.SimulationTrace {
	header.Policy = string(r.Policy)
	header.Capacity = r.Capacity
	header.References = r.Length()
	header.Faults = r.Faults
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: level}, header)
	for _, s := range r.Steps {
		rec := trace.StepRecord{
			Step:   s.Step,
			Page:   int64(s.Page),
			Fault:  s.Fault,
			Frames: make([]int64, len(s.Frames)),
		}
		if s.Evicted != nil {
			rec.Evicted = trace.EvictedPage(int64(*s.Evicted))
		}
		for i, f := range s.Frames {
			rec.Frames[i] = int64(f)
		}
		st.RecordStep(rec)
	}
	return st
}
