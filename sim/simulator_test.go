package sim

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/inference-sim/pagesim/sim/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refs(ids ...int64) []PageID {
	out := make([]PageID, len(ids))
	for i, id := range ids {
		out[i] = PageID(id)
	}
	return out
}

// TestSimulate_GoldenDataset tests all golden dataset cases against every policy.
func TestSimulate_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		for _, policy := range AllPolicies {
			t.Run(tc.Name+"/"+string(policy), func(t *testing.T) {
				want, ok := tc.Faults[string(policy)]
				require.True(t, ok, "golden case lacks %s faults", policy)

				result, err := Simulate(policy, refs(tc.References...), tc.Capacity)
				require.NoError(t, err)

				assert.Equal(t, want, result.Faults, "faults")
				assert.Equal(t, len(tc.References)-want, result.Hits, "hits")
				assert.Len(t, result.Steps, len(tc.References))
				if frames, ok := tc.FinalFrames[string(policy)]; ok {
					last := result.Steps[len(result.Steps)-1]
					assert.Equal(t, refs(frames...), last.Frames, "final frames")
				}
			})
		}
	}
}

func TestSimulate_FIFO_UIDefaultSequence_NineFaults(t *testing.T) {
	// GIVEN the reference string 6 7 8 9 6 7 1 6 7 8 9 1 with three frames
	seq := refs(6, 7, 8, 9, 6, 7, 1, 6, 7, 8, 9, 1)

	// WHEN simulated under FIFO
	result, err := Simulate(PolicyFIFO, seq, 3)
	require.NoError(t, err)

	// THEN nine references fault and three hit
	assert.Equal(t, 9, result.Faults)
	assert.Equal(t, 3, result.Hits)
	assert.InDelta(t, 0.25, result.HitRate, 1e-9)
	assert.InDelta(t, 0.75, result.MissRate, 1e-9)
}

func TestSimulate_TextbookPrefix_StepTrajectory(t *testing.T) {
	seq := refs(7, 0, 1, 2, 0, 3, 0, 4, 2, 3)

	tests := []struct {
		policy  Policy
		faults  []bool
		evicted []int64 // -1 = none
		frames  [][]int64
	}{
		{
			policy:  PolicyFIFO,
			faults:  []bool{true, true, true, true, false, true, true, true, true, true},
			evicted: []int64{-1, -1, -1, 7, -1, 0, 1, 2, 3, 0},
			frames:  [][]int64{{7}, {7, 0}, {7, 0, 1}, {0, 1, 2}, {0, 1, 2}, {1, 2, 3}, {2, 3, 0}, {3, 0, 4}, {0, 4, 2}, {4, 2, 3}},
		},
		{
			policy:  PolicyLRU,
			faults:  []bool{true, true, true, true, false, true, false, true, true, true},
			evicted: []int64{-1, -1, -1, 7, -1, 1, -1, 2, 3, 0},
			frames:  [][]int64{{7}, {7, 0}, {7, 0, 1}, {0, 1, 2}, {0, 1, 2}, {0, 2, 3}, {0, 2, 3}, {0, 3, 4}, {0, 4, 2}, {4, 2, 3}},
		},
		{
			policy:  PolicyOptimal,
			faults:  []bool{true, true, true, true, false, true, false, true, false, false},
			evicted: []int64{-1, -1, -1, 7, -1, 1, -1, 0, -1, -1},
			frames:  [][]int64{{7}, {7, 0}, {7, 0, 1}, {0, 1, 2}, {0, 1, 2}, {0, 2, 3}, {0, 2, 3}, {2, 3, 4}, {2, 3, 4}, {2, 3, 4}},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			result, err := Simulate(tt.policy, seq, 3)
			require.NoError(t, err)
			require.Len(t, result.Steps, len(seq))
			for i, step := range result.Steps {
				assert.Equal(t, i, step.Step)
				assert.Equal(t, seq[i], step.Page)
				assert.Equal(t, tt.faults[i], step.Fault, "fault at step %d", i)
				if tt.evicted[i] < 0 {
					assert.Nil(t, step.Evicted, "evicted at step %d", i)
				} else if assert.NotNil(t, step.Evicted, "evicted at step %d", i) {
					assert.Equal(t, PageID(tt.evicted[i]), *step.Evicted, "evicted at step %d", i)
				}
				assert.Equal(t, refs(tt.frames[i]...), step.Frames, "frames at step %d", i)
			}
		})
	}
}

func TestSimulate_EmptySequence_ZeroEverything(t *testing.T) {
	for _, policy := range AllPolicies {
		result, err := Simulate(policy, nil, 3)
		require.NoError(t, err, policy)
		assert.Equal(t, 0, result.Faults, policy)
		assert.Equal(t, 0, result.Hits, policy)
		assert.Empty(t, result.Steps, policy)
		assert.Equal(t, 0.0, result.HitRate, policy)
		assert.Equal(t, 0.0, result.MissRate, policy)
	}
}

func TestSimulate_NonPositiveCapacity_InvalidCapacity(t *testing.T) {
	for _, policy := range AllPolicies {
		for _, capacity := range []int{0, -1} {
			result, err := Simulate(policy, refs(1, 2, 3), capacity)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrInvalidCapacity), "%s capacity=%d: got %v", policy, capacity, err)
		}
	}
}

func TestSimulate_UnknownPolicy_ReturnsError(t *testing.T) {
	_, err := Simulate(Policy("clock"), refs(1), 1)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestSimulate_RepeatedReference_SingleFault(t *testing.T) {
	for _, policy := range AllPolicies {
		result, err := Simulate(policy, refs(1, 1, 1), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Faults, policy)
		assert.True(t, result.Steps[0].Fault)
		assert.False(t, result.Steps[1].Fault)
		assert.False(t, result.Steps[2].Fault)
	}
}

func TestSimulate_Invariants_FaultsPlusHitsEqualsLength(t *testing.T) {
	// GIVEN a mixed sequence with repeats and a small capacity
	seq := refs(3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6, 2, 6, 4, 3)

	for capacity := 1; capacity <= 6; capacity++ {
		optimal, err := Simulate(PolicyOptimal, seq, capacity)
		require.NoError(t, err)
		for _, policy := range AllPolicies {
			result, err := Simulate(policy, seq, capacity)
			require.NoError(t, err)

			// THEN faults + hits == length and faults is bounded
			assert.Equal(t, len(seq), result.Faults+result.Hits)
			assert.GreaterOrEqual(t, result.Faults, 0)
			assert.LessOrEqual(t, result.Faults, len(seq))

			// THEN Optimal never faults more than any other policy
			assert.LessOrEqual(t, optimal.Faults, result.Faults, "%s capacity=%d", policy, capacity)

			// THEN every snapshot respects capacity and has no duplicates
			for _, step := range result.Steps {
				assert.LessOrEqual(t, len(step.Frames), capacity)
				seen := map[PageID]bool{}
				for _, p := range step.Frames {
					assert.False(t, seen[p], "duplicate resident %d", p)
					seen[p] = true
				}
				assert.True(t, seen[step.Page], "requested page must be resident after its step")
			}
		}
	}
}

func TestSimulate_FIFO_SnapshotSizeTracksDistinctPages(t *testing.T) {
	seq := refs(1, 2, 1, 3, 4, 1, 5)
	result, err := Simulate(PolicyFIFO, seq, 3)
	require.NoError(t, err)

	distinct := map[PageID]bool{}
	for i, step := range result.Steps {
		distinct[seq[i]] = true
		assert.Equal(t, min(3, len(distinct)), len(step.Frames), "step %d", i)
	}
	// THEN page 1, evicted at step 4, faults again at step 5
	assert.Equal(t, PageID(1), *result.Steps[4].Evicted)
	assert.True(t, result.Steps[5].Fault)
}

func TestSimulate_LRU_ResidentHitsDoNotChangeFaults(t *testing.T) {
	// GIVEN two sequences differing only in repeated hits on resident pages
	base := refs(1, 2, 3, 4, 1, 2)
	padded := refs(1, 2, 2, 2, 3, 4, 4, 1, 2, 2)

	a, err := Simulate(PolicyLRU, base, 4)
	require.NoError(t, err)
	b, err := Simulate(PolicyLRU, padded, 4)
	require.NoError(t, err)

	// THEN the fault counts match; only hits grow
	assert.Equal(t, a.Faults, b.Faults)
	assert.Equal(t, a.Hits+4, b.Hits)
}

func TestSimulate_DoesNotMutateInput(t *testing.T) {
	seq := refs(1, 2, 3, 1, 4, 5)
	orig := append([]PageID(nil), seq...)
	for _, policy := range AllPolicies {
		_, err := Simulate(policy, seq, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, orig, seq)
}

func TestSimulate_Idempotent_ByteIdenticalJSON(t *testing.T) {
	seq := refs(7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2, 1, 2, 0, 1, 7, 0, 1)
	for _, policy := range AllPolicies {
		first, err := Simulate(policy, seq, 3)
		require.NoError(t, err)
		second, err := Simulate(policy, seq, 3)
		require.NoError(t, err)

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), policy)
	}
}

func TestSimulate_SnapshotsAreIndependentCopies(t *testing.T) {
	result, err := Simulate(PolicyFIFO, refs(1, 2, 3), 2)
	require.NoError(t, err)

	// WHEN a caller modifies an early snapshot
	result.Steps[1].Frames[0] = 99

	// THEN later snapshots are unaffected
	assert.Equal(t, refs(2, 3), result.Steps[2].Frames)
}

func TestSimulateByName(t *testing.T) {
	result, err := SimulateByName("Optimal", refs(1, 2, 3, 1), 2)
	require.NoError(t, err)
	assert.Equal(t, PolicyOptimal, result.Policy)
	assert.Equal(t, 3, result.Faults)

	_, err = SimulateByName("second-chance", refs(1), 1)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
