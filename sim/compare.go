package sim

import (
	"golang.org/x/sync/errgroup"
)

// ComparisonResult holds one SimulationResult per policy, all computed over
// the same reference sequence and capacity.
type ComparisonResult struct {
	Capacity int                          `json:"capacity"`
	Length   int                          `json:"length"`
	Results  map[Policy]*SimulationResult `json:"results"`

	MinFaults int      `json:"min_faults"`
	MaxFaults int      `json:"max_faults"`
	Best      []Policy `json:"best"`  // every policy with MinFaults, canonical order
	Worst     []Policy `json:"worst"` // every policy with MaxFaults, canonical order
}

// Compare runs every policy in AllPolicies over refs with capacity frames.
// See ComparePolicies.
func Compare(refs []PageID, capacity int) (*ComparisonResult, error) {
	return ComparePolicies(AllPolicies, refs, capacity)
}

// ComparePolicies runs each of policies over the same refs and capacity and
// reports the best and worst performers. Ties are reported as sets.
//
// Runs execute concurrently: each owns its FrameSet and only reads refs.
func ComparePolicies(policies []Policy, refs []PageID, capacity int) (*ComparisonResult, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	policies = dedupePolicies(policies)

	results := make([]*SimulationResult, len(policies))
	var g errgroup.Group
	for i, p := range policies {
		i, p := i, p
		g.Go(func() error {
			r, err := Simulate(p, refs, capacity)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp := &ComparisonResult{
		Capacity: capacity,
		Length:   len(refs),
		Results:  make(map[Policy]*SimulationResult, len(policies)),
	}
	for i, p := range policies {
		cmp.Results[p] = results[i]
	}
	cmp.Best, cmp.MinFaults = extremes(policies, results, func(a, b int) bool { return a < b })
	cmp.Worst, cmp.MaxFaults = extremes(policies, results, func(a, b int) bool { return a > b })
	return cmp, nil
}

// Faults returns the fault count recorded for policy, or -1 if it was not run.
func (c *ComparisonResult) Faults(policy Policy) int {
	if r, ok := c.Results[policy]; ok {
		return r.Faults
	}
	return -1
}

// IsBest reports whether policy achieved the minimum fault count.
func (c *ComparisonResult) IsBest(policy Policy) bool {
	for _, p := range c.Best {
		if p == policy {
			return true
		}
	}
	return false
}

// Policies returns the compared policies in canonical order.
func (c *ComparisonResult) Policies() []Policy {
	out := make([]Policy, 0, len(c.Results))
	for _, p := range AllPolicies {
		if _, ok := c.Results[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// extremes returns the policies whose fault count is optimal under better,
// preserving input order, together with that fault count.
func extremes(policies []Policy, results []*SimulationResult, better func(a, b int) bool) ([]Policy, int) {
	if len(results) == 0 {
		return nil, 0
	}
	target := results[0].Faults
	for _, r := range results[1:] {
		if better(r.Faults, target) {
			target = r.Faults
		}
	}
	var out []Policy
	for i, r := range results {
		if r.Faults == target {
			out = append(out, policies[i])
		}
	}
	return out, target
}

// dedupePolicies drops repeated entries and sorts into canonical order,
// keeping unknown policies (rejected later by Simulate) at the end.
func dedupePolicies(policies []Policy) []Policy {
	seen := make(map[Policy]bool, len(policies))
	for _, p := range policies {
		seen[p] = true
	}
	out := make([]Policy, 0, len(seen))
	for _, p := range AllPolicies {
		if seen[p] {
			out = append(out, p)
			delete(seen, p)
		}
	}
	for _, p := range policies {
		if seen[p] {
			out = append(out, p)
			delete(seen, p)
		}
	}
	return out
}
