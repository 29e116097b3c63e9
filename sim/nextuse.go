package sim

import "math"

// never is the next-use position of a page that is not referenced again.
const never = math.MaxInt

// nextUseIndex answers "when is page p referenced next?" for the Optimal policy
// in O(1) per query. It is built in a single backward pass over the sequence.
type nextUseIndex struct {
	refs []PageID
	next []int // next[i] = smallest j > i with refs[j] == refs[i], or never
}

func newNextUseIndex(refs []PageID) *nextUseIndex {
	next := make([]int, len(refs))
	seen := make(map[PageID]int)
	for i := len(refs) - 1; i >= 0; i-- {
		if j, ok := seen[refs[i]]; ok {
			next[i] = j
		} else {
			next[i] = never
		}
		seen[refs[i]] = i
	}
	return &nextUseIndex{refs: refs, next: next}
}

// after returns the smallest index j > step with refs[j] == page, or never.
//
// lastUsed is the page's most recent access index (<= step). No access to page
// happens strictly between lastUsed and step, so next[lastUsed] is the answer
// whenever it lies beyond step. A page with no recorded access falls back to
// a forward scan.
func (n *nextUseIndex) after(page PageID, lastUsed, step int) int {
	if lastUsed >= 0 && lastUsed < len(n.next) && n.refs[lastUsed] == page {
		if j := n.next[lastUsed]; j > step {
			return j
		}
	}
	for j := step + 1; j < len(n.refs); j++ {
		if n.refs[j] == page {
			return j
		}
	}
	return never
}
