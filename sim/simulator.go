// sim/simulator.go
package sim

import "fmt"

// Simulate runs one eviction policy over refs with the given number of frames.
//
// Each element of refs is one step: a resident page is a hit and only has its
// recency refreshed; a missing page is a fault and is admitted, evicting the
// victim chosen by policy when every frame is occupied.
//
// Simulate is a pure function. It never modifies refs, keeps no state between
// calls, and returns identical results for identical arguments.
// Returns ErrInvalidCapacity if capacity < 1 and ErrUnknownPolicy for an
// unrecognized policy. An empty refs yields an empty, fault-free result.
func Simulate(policy Policy, refs []PageID, capacity int) (*SimulationResult, error) {
	if !policy.valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, policy)
	}
	frames, err := NewFrameSet(capacity)
	if err != nil {
		return nil, err
	}

	var future *nextUseIndex
	if policy == PolicyOptimal {
		future = newNextUseIndex(refs)
	}

	result := &SimulationResult{
		Policy:   policy,
		Capacity: capacity,
		Steps:    make([]StepOutcome, 0, len(refs)),
	}
	for i, page := range refs {
		outcome := StepOutcome{Step: i, Page: page}
		if !frames.Contains(page) {
			outcome.Fault = true
			result.Faults++
			if frames.Full() {
				victim := selectVictim(policy, frames, future, i)
				frames.Evict(victim)
				outcome.Evicted = &victim
			}
			frames.Admit(page)
		}
		frames.Touch(page, i)
		outcome.Frames = frames.Snapshot()
		result.Steps = append(result.Steps, outcome)
	}
	result.finalize()
	return result, nil
}

// SimulateByName resolves name with ParsePolicy and runs Simulate.
func SimulateByName(name string, refs []PageID, capacity int) (*SimulationResult, error) {
	policy, err := ParsePolicy(name)
	if err != nil {
		return nil, err
	}
	return Simulate(policy, refs, capacity)
}
