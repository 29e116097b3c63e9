package sim

import (
	"fmt"
	"strings"
)

// Policy names an eviction policy. The set is closed: every policy shares the
// stepping loop in Simulate and differs only in selectVictim.
type Policy string

const (
	// PolicyFIFO evicts the page that has been resident the longest.
	PolicyFIFO Policy = "fifo"
	// PolicyLRU evicts the page whose last access is the oldest.
	PolicyLRU Policy = "lru"
	// PolicyOptimal evicts the page whose next access is furthest in the future
	// (Belady's clairvoyant policy).
	PolicyOptimal Policy = "optimal"
)

// AllPolicies lists every policy in canonical reporting order.
var AllPolicies = []Policy{PolicyFIFO, PolicyLRU, PolicyOptimal}

// policyAliases maps accepted spellings to policies. Lookup is case-insensitive.
var policyAliases = map[string]Policy{
	"fifo":    PolicyFIFO,
	"lru":     PolicyLRU,
	"optimal": PolicyOptimal,
	"opt":     PolicyOptimal,
	"belady":  PolicyOptimal,
	"min":     PolicyOptimal,
}

// IsValidPolicy returns true if name is a recognized policy name or alias.
func IsValidPolicy(name string) bool {
	_, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ParsePolicy resolves a policy name or alias ("FIFO", "lru", "belady", ...).
func ParsePolicy(name string) (Policy, error) {
	p, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w %q; valid policies: fifo, lru, optimal", ErrUnknownPolicy, name)
	}
	return p, nil
}

// DisplayName returns the label used in reports: "FIFO", "LRU" or "Optimal".
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFIFO:
		return "FIFO"
	case PolicyLRU:
		return "LRU"
	case PolicyOptimal:
		return "Optimal"
	default:
		return string(p)
	}
}

// Insight describes the access patterns under which p performs well.
func (p Policy) Insight() string {
	switch p {
	case PolicyFIFO:
		return "FIFO works well when page references are evenly distributed without clustering. " +
			"It is simple but may suffer from Belady's anomaly, where adding frames increases faults."
	case PolicyLRU:
		return "LRU excels when recently used pages are likely to be used again soon. " +
			"It approximates optimal behavior but must track usage history."
	case PolicyOptimal:
		return "Optimal replaces the page that will not be used for the longest time. " +
			"It needs knowledge of future references, so it serves as a lower bound rather than a practical policy."
	default:
		return ""
	}
}

func (p Policy) valid() bool {
	switch p {
	case PolicyFIFO, PolicyLRU, PolicyOptimal:
		return true
	}
	return false
}

// selectVictim picks the resident page to evict on a miss at step.
// fs must be full (and therefore non-empty). All ties resolve to the page
// that appears first in admission order.
func selectVictim(policy Policy, fs *FrameSet, future *nextUseIndex, step int) PageID {
	residents := fs.residents()
	if len(residents) == 0 {
		panic("selectVictim: empty frame set")
	}
	switch policy {
	case PolicyFIFO:
		return residents[0]

	case PolicyLRU:
		victim := residents[0]
		oldest := fs.LastUsed(victim)
		for _, p := range residents[1:] {
			if last := fs.LastUsed(p); last < oldest {
				victim, oldest = p, last
			}
		}
		return victim

	case PolicyOptimal:
		victim := residents[0]
		furthest := future.after(victim, fs.LastUsed(victim), step)
		for _, p := range residents[1:] {
			if furthest == never {
				break
			}
			if next := future.after(p, fs.LastUsed(p), step); next > furthest {
				victim, furthest = p, next
			}
		}
		return victim

	default:
		panic(fmt.Sprintf("selectVictim: unhandled policy %q", policy))
	}
}
