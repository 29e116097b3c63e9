package workload

import (
	"math"
	"math/rand"
	"testing"
)

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	a := rng1.ForSubsystem(SubsystemScenario("loop"))
	b := rng2.ForSubsystem(SubsystemScenario("loop"))
	for i := 0; i < 5; i++ {
		if va, vb := a.Int63(), b.Int63(); va != vb {
			t.Fatalf("draw %d: %d != %d", i, va, vb)
		}
	}
}

func TestPartitionedRNG_Caching(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(7))
	if p.ForSubsystem("x") != p.ForSubsystem("x") {
		t.Error("ForSubsystem must return the cached instance for the same name")
	}
}

func TestPartitionedRNG_SubsystemsAreIsolated(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	a := p.ForSubsystem(SubsystemScenario("a")).Int63()
	b := p.ForSubsystem(SubsystemScenario("b")).Int63()
	if a == b {
		t.Errorf("different scenarios produced the same first draw %d", a)
	}
}

func TestPartitionedRNG_ReferencesSubsystemUsesMasterSeed(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(99))
	got := p.ForSubsystem(SubsystemReferences).Int63()
	want := rand.New(rand.NewSource(99)).Int63()
	if got != want {
		t.Errorf("first draw = %d, want %d", got, want)
	}
	if p.Key() != NewSimulationKey(99) {
		t.Errorf("Key() = %d, want 99", p.Key())
	}
}
