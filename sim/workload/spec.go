package workload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pagesim/sim"
)

// ScenarioFile is the top-level scenario configuration.
// Loaded from YAML via LoadScenarioFile(path).
type ScenarioFile struct {
	Version   string     `yaml:"version"`
	Seed      int64      `yaml:"seed"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario names one reference source and the capacities and policies to
// run it under. Exactly one of References, ReferenceFile or Generator is set.
type Scenario struct {
	Name          string         `yaml:"name"`
	References    *ReferenceList `yaml:"references,omitempty"`
	ReferenceFile string         `yaml:"reference_file,omitempty"` // relative to the scenario file
	Generator     *GeneratorSpec `yaml:"generator,omitempty"`
	Frames        []int          `yaml:"frames"`
	Policies      []string       `yaml:"policies,omitempty"` // empty = all policies
}

// ReferenceList accepts either a YAML sequence of integers or a scalar
// reference string such as "7 0 1 2" or "7,0,1,2".
type ReferenceList []sim.PageID

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *ReferenceList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		refs, err := ParseReferenceString(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*l = refs
		return nil
	case yaml.SequenceNode:
		var ids []int64
		if err := value.Decode(&ids); err != nil {
			return err
		}
		refs := make([]sim.PageID, len(ids))
		for i, id := range ids {
			refs[i] = sim.PageID(id)
		}
		*l = refs
		return nil
	default:
		return fmt.Errorf("line %d: references must be a string or a list of integers", value.Line)
	}
}

// ResolvedScenario is a Scenario with its reference source materialized.
type ResolvedScenario struct {
	Name       string
	References []sim.PageID
	Frames     []int
	Policies   []sim.Policy
}

// LoadScenarioFile reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var f ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if f.Version == "" {
		f.Version = "1"
	}
	return &f, nil
}

// Validate checks that every scenario is well-formed.
func (f *ScenarioFile) Validate() error {
	if f.Version != "1" {
		return fmt.Errorf("unsupported scenario file version %q; expected \"1\"", f.Version)
	}
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario required")
	}
	names := make(map[string]bool, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if err := s.validate(i); err != nil {
			return err
		}
		if names[s.Name] {
			return fmt.Errorf("scenario[%d]: duplicate name %q", i, s.Name)
		}
		names[s.Name] = true
	}
	return nil
}

func (s *Scenario) validate(idx int) error {
	prefix := fmt.Sprintf("scenario[%d]", idx)
	if s.Name == "" {
		return fmt.Errorf("%s: name is required", prefix)
	}
	prefix = fmt.Sprintf("scenario %q", s.Name)
	sources := 0
	if s.References != nil {
		sources++
	}
	if s.ReferenceFile != "" {
		sources++
	}
	if s.Generator != nil {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("%s: exactly one of references, reference_file or generator required, got %d", prefix, sources)
	}
	if s.Generator != nil {
		if err := s.Generator.Validate(); err != nil {
			return fmt.Errorf("%s.generator: %w", prefix, err)
		}
	}
	if len(s.Frames) == 0 {
		return fmt.Errorf("%s: at least one frames value required", prefix)
	}
	for _, c := range s.Frames {
		if c < 1 {
			return fmt.Errorf("%s: %w: %d (must be >= 1)", prefix, sim.ErrInvalidCapacity, c)
		}
	}
	for _, name := range s.Policies {
		if !sim.IsValidPolicy(name) {
			return fmt.Errorf("%s: %w %q", prefix, sim.ErrUnknownPolicy, name)
		}
	}
	return nil
}

// Resolve validates f and materializes every scenario's reference sequence.
// Relative reference_file paths are resolved against baseDir. Generated
// scenarios draw from an RNG partition keyed by scenario name, so results
// do not depend on scenario order.
func (f *ScenarioFile) Resolve(baseDir string) ([]ResolvedScenario, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(f.Seed))
	out := make([]ResolvedScenario, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		var refs []sim.PageID
		switch {
		case s.References != nil:
			refs = []sim.PageID(*s.References)
		case s.ReferenceFile != "":
			path := s.ReferenceFile
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			loaded, err := LoadReferenceFile(path)
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			refs = loaded
		default:
			generated, err := Generate(*s.Generator, rng.ForSubsystem(SubsystemScenario(s.Name)))
			if err != nil {
				return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			refs = generated
		}

		policies := sim.AllPolicies
		if len(s.Policies) > 0 {
			policies = make([]sim.Policy, 0, len(s.Policies))
			for _, name := range s.Policies {
				p, err := sim.ParsePolicy(name)
				if err != nil {
					return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
				}
				policies = append(policies, p)
			}
		}
		logrus.Debugf("scenario %q: %d references, frames %v", s.Name, len(refs), s.Frames)
		out = append(out, ResolvedScenario{
			Name:       s.Name,
			References: refs,
			Frames:     s.Frames,
			Policies:   policies,
		})
	}
	return out, nil
}
