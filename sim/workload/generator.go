package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/inference-sim/pagesim/sim"
)

// Default generator parameters, applied when a GeneratorSpec leaves them zero.
const (
	defaultZipfS    = 1.2
	defaultLocality = 0.9
)

// GeneratorSpec parameterizes a synthetic reference sequence over the page
// universe [0, Pages).
type GeneratorSpec struct {
	Pattern     string   `yaml:"pattern"`
	Length      int      `yaml:"length"`
	Pages       int      `yaml:"pages"`
	ZipfS       float64  `yaml:"zipf_s,omitempty"`       // zipf skew, > 1 (default 1.2)
	WorkingSet  int      `yaml:"working_set,omitempty"`  // locality window size (default pages/5, min 1)
	Locality    *float64 `yaml:"locality,omitempty"`     // P(reference falls in window) (default 0.9)
	PhaseLength int      `yaml:"phase_length,omitempty"` // refs before the window moves (default length/4, min 1)
}

// validPatterns is the registry of generator pattern names.
var validPatterns = map[string]bool{
	"uniform": true, "zipf": true, "locality": true, "loop": true,
}

// IsValidPattern reports whether name is a recognized generator pattern.
func IsValidPattern(name string) bool {
	return validPatterns[name]
}

// Validate checks pattern names and parameter ranges.
func (g *GeneratorSpec) Validate() error {
	if !validPatterns[g.Pattern] {
		return fmt.Errorf("unknown pattern %q; valid: uniform, zipf, locality, loop", g.Pattern)
	}
	if g.Length < 0 {
		return fmt.Errorf("length must be non-negative, got %d", g.Length)
	}
	if g.Pages < 1 {
		return fmt.Errorf("pages must be positive, got %d", g.Pages)
	}
	if g.ZipfS != 0 && (g.ZipfS <= 1 || math.IsNaN(g.ZipfS) || math.IsInf(g.ZipfS, 0)) {
		return fmt.Errorf("zipf_s must be a finite number > 1, got %f", g.ZipfS)
	}
	if g.WorkingSet < 0 || g.WorkingSet > g.Pages {
		return fmt.Errorf("working_set must be in [0, pages=%d], got %d", g.Pages, g.WorkingSet)
	}
	if g.Locality != nil && (*g.Locality < 0 || *g.Locality > 1 || math.IsNaN(*g.Locality)) {
		return fmt.Errorf("locality must be in [0, 1], got %f", *g.Locality)
	}
	if g.PhaseLength < 0 {
		return fmt.Errorf("phase_length must be non-negative, got %d", g.PhaseLength)
	}
	return nil
}

// Generate draws a reference sequence from spec using rng.
// Deterministic given the same spec and rng state.
func Generate(spec GeneratorSpec, rng *rand.Rand) ([]sim.PageID, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	next := newPageSampler(spec, rng)
	refs := make([]sim.PageID, spec.Length)
	for i := range refs {
		refs[i] = next(i)
	}
	return refs, nil
}

// newPageSampler returns a function yielding the page for position i.
// spec must be valid.
func newPageSampler(spec GeneratorSpec, rng *rand.Rand) func(i int) sim.PageID {
	switch spec.Pattern {
	case "uniform":
		return func(int) sim.PageID {
			return sim.PageID(rng.Intn(spec.Pages))
		}

	case "zipf":
		if spec.Pages == 1 {
			return func(int) sim.PageID { return 0 }
		}
		s := spec.ZipfS
		if s == 0 {
			s = defaultZipfS
		}
		z := rand.NewZipf(rng, s, 1, uint64(spec.Pages-1))
		return func(int) sim.PageID {
			return sim.PageID(z.Uint64())
		}

	case "locality":
		window := spec.WorkingSet
		if window == 0 {
			window = max(1, spec.Pages/5)
		}
		locality := defaultLocality
		if spec.Locality != nil {
			locality = *spec.Locality
		}
		phase := spec.PhaseLength
		if phase == 0 {
			phase = max(1, spec.Length/4)
		}
		base := rng.Intn(spec.Pages)
		return func(i int) sim.PageID {
			if i > 0 && i%phase == 0 {
				base = rng.Intn(spec.Pages)
			}
			if rng.Float64() < locality {
				return sim.PageID((base + rng.Intn(window)) % spec.Pages)
			}
			return sim.PageID(rng.Intn(spec.Pages))
		}

	case "loop":
		return func(i int) sim.PageID {
			return sim.PageID(i % spec.Pages)
		}

	default:
		panic(fmt.Sprintf("unhandled pattern %q", spec.Pattern))
	}
}
