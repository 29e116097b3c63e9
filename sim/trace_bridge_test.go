package sim

import (
	"testing"

	"github.com/inference-sim/pagesim/sim/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationResult_Trace_StepsLevel(t *testing.T) {
	result, err := Simulate(PolicyLRU, refs(1, 2, 1, 3), 2)
	require.NoError(t, err)

	st := result.Trace(trace.TraceLevelSteps, trace.TraceHeader{RunID: "r"})

	// THEN the header describes the run
	assert.Equal(t, "lru", st.Header.Policy)
	assert.Equal(t, 2, st.Header.Capacity)
	assert.Equal(t, 4, st.Header.References)
	assert.Equal(t, 3, st.Header.Faults)
	assert.Equal(t, "r", st.Header.RunID)

	// THEN every step is recorded with its eviction
	require.Len(t, st.Steps, 4)
	assert.Nil(t, st.Steps[2].Evicted)
	require.NotNil(t, st.Steps[3].Evicted)
	assert.Equal(t, int64(2), *st.Steps[3].Evicted)
	assert.Equal(t, []int64{1, 3}, st.Steps[3].Frames)
}

func TestSimulationResult_Trace_FaultsLevelMatchesSummary(t *testing.T) {
	result, err := Simulate(PolicyFIFO, refs(6, 7, 8, 9, 6, 7, 1, 6, 7, 8, 9, 1), 3)
	require.NoError(t, err)

	summary := trace.Summarize(result.Trace(trace.TraceLevelFaults, trace.TraceHeader{}))

	assert.Equal(t, result.Faults, summary.Faults)
	assert.Equal(t, 0, summary.Hits)
	assert.Equal(t, result.Evictions(), summary.Evictions)
	assert.Equal(t, 7, summary.LongestFaultRun)
}
