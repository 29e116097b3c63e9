package sim

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SweepPoint is the fault count of one policy at one capacity.
type SweepPoint struct {
	Capacity int `json:"capacity"`
	Faults   int `json:"faults"`
	Hits     int `json:"hits"`
}

// BeladyAnomaly marks a capacity at which a policy faulted more than it did
// with one frame fewer.
type BeladyAnomaly struct {
	Policy         Policy `json:"policy"`
	Capacity       int    `json:"capacity"`
	Faults         int    `json:"faults"`
	PreviousFaults int    `json:"previous_faults"`
}

// SweepResult holds fault curves over a capacity range.
type SweepResult struct {
	MinCapacity int                     `json:"min_capacity"`
	MaxCapacity int                     `json:"max_capacity"`
	Length      int                     `json:"length"`
	Curves      map[Policy][]SweepPoint `json:"curves"`       // ascending capacity
	Anomalies   []BeladyAnomaly         `json:"anomalies"`
}

// Sweep simulates each policy at every capacity in [minCapacity, maxCapacity]
// and reports Belady anomalies: capacities where faults rise although a frame
// was added. Stack policies (LRU, Optimal) never exhibit one; FIFO can.
func Sweep(policies []Policy, refs []PageID, minCapacity, maxCapacity int) (*SweepResult, error) {
	if err := validateCapacity(minCapacity); err != nil {
		return nil, err
	}
	if maxCapacity < minCapacity {
		return nil, fmt.Errorf("%w: max %d is below min %d", ErrInvalidCapacity, maxCapacity, minCapacity)
	}
	policies = dedupePolicies(policies)
	span := maxCapacity - minCapacity + 1

	curves := make([][]SweepPoint, len(policies))
	var g errgroup.Group
	for i, p := range policies {
		i, p := i, p
		curves[i] = make([]SweepPoint, span)
		g.Go(func() error {
			for k := 0; k < span; k++ {
				r, err := Simulate(p, refs, minCapacity+k)
				if err != nil {
					return err
				}
				curves[i][k] = SweepPoint{Capacity: r.Capacity, Faults: r.Faults, Hits: r.Hits}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &SweepResult{
		MinCapacity: minCapacity,
		MaxCapacity: maxCapacity,
		Length:      len(refs),
		Curves:      make(map[Policy][]SweepPoint, len(policies)),
	}
	for i, p := range policies {
		res.Curves[p] = curves[i]
		for k := 1; k < span; k++ {
			if prev, cur := curves[i][k-1], curves[i][k]; cur.Faults > prev.Faults {
				res.Anomalies = append(res.Anomalies, BeladyAnomaly{
					Policy:         p,
					Capacity:       cur.Capacity,
					Faults:         cur.Faults,
					PreviousFaults: prev.Faults,
				})
			}
		}
	}
	return res, nil
}

// HasAnomaly reports whether policy exhibited Belady's anomaly in the sweep.
func (s *SweepResult) HasAnomaly(policy Policy) bool {
	for _, a := range s.Anomalies {
		if a.Policy == policy {
			return true
		}
	}
	return false
}
