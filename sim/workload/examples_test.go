package workload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pagesim/sim"
)

// TestExampleScenarios_Classic verifies that examples/classic.yaml loads,
// validates and resolves every scenario.
func TestExampleScenarios_Classic(t *testing.T) {
	// GIVEN the classic.yaml example
	path := filepath.Join("..", "..", "examples", "classic.yaml")
	f, err := LoadScenarioFile(path)
	require.NoError(t, err, "failed to load classic.yaml")

	// WHEN resolved
	resolved, err := f.Resolve(filepath.Dir(path))
	require.NoError(t, err)

	// THEN every scenario is present with its references materialized
	require.Len(t, resolved, 4)
	assert.Equal(t, "textbook", resolved[0].Name)
	assert.Len(t, resolved[0].References, 20)
	assert.Equal(t, []sim.Policy{sim.PolicyFIFO, sim.PolicyLRU}, resolved[1].Policies)
	assert.Len(t, resolved[2].References, 200)
	assert.Len(t, resolved[3].References, 400)
	assert.Equal(t, []int{4, 6, 8}, resolved[3].Frames)
}
