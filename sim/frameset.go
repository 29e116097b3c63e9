package sim

import "fmt"

// PageID identifies a page in a reference sequence. Any value is valid.
type PageID int64

// neverUsed is the recency sentinel for a page with no recorded access.
const neverUsed = -1

// FrameSet is the fixed-capacity resident set shared by every eviction policy.
//
// Residents are kept in admission order: a page evicted and later re-admitted
// moves to the tail. Victim selection iterates this slice, never the
// membership map, so FIFO heads and Optimal/LRU tie-breaks are reproducible.
//
// Thread-safety: NOT thread-safe. Each simulation run owns its own FrameSet.
type FrameSet struct {
	capacity int
	order    []PageID        // residents, oldest admission first
	resident map[PageID]bool // membership index over order
	lastUsed map[PageID]int  // page -> step index of last access
}

// NewFrameSet creates an empty FrameSet holding at most capacity pages.
// Returns ErrInvalidCapacity if capacity < 1.
func NewFrameSet(capacity int) (*FrameSet, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &FrameSet{
		capacity: capacity,
		order:    make([]PageID, 0, capacity),
		resident: make(map[PageID]bool, capacity),
		lastUsed: make(map[PageID]int, capacity),
	}, nil
}

// Cap returns the number of frames.
func (fs *FrameSet) Cap() int { return fs.capacity }

// Len returns the number of resident pages.
func (fs *FrameSet) Len() int { return len(fs.order) }

// Full reports whether every frame is occupied.
func (fs *FrameSet) Full() bool { return len(fs.order) >= fs.capacity }

// Contains reports whether page is resident.
func (fs *FrameSet) Contains(page PageID) bool {
	return fs.resident[page]
}

// Admit appends page to the tail of the admission order.
// Panics if page is already resident or the set is full; callers must
// check Contains and Full first.
func (fs *FrameSet) Admit(page PageID) {
	if fs.resident[page] {
		panic(fmt.Sprintf("FrameSet.Admit: page %d is already resident", page))
	}
	if fs.Full() {
		panic(fmt.Sprintf("FrameSet.Admit: no free frame for page %d (capacity %d)", page, fs.capacity))
	}
	fs.order = append(fs.order, page)
	fs.resident[page] = true
}

// Evict removes page from the admission order and the recency map.
// Panics if page is not resident.
func (fs *FrameSet) Evict(page PageID) {
	if !fs.resident[page] {
		panic(fmt.Sprintf("FrameSet.Evict: page %d is not resident", page))
	}
	for i, p := range fs.order {
		if p == page {
			fs.order = append(fs.order[:i], fs.order[i+1:]...)
			break
		}
	}
	delete(fs.resident, page)
	delete(fs.lastUsed, page)
}

// Touch records that page was accessed at step.
func (fs *FrameSet) Touch(page PageID, step int) {
	fs.lastUsed[page] = step
}

// LastUsed returns the step of the last recorded access to page,
// or -1 if none was recorded.
func (fs *FrameSet) LastUsed(page PageID) int {
	if step, ok := fs.lastUsed[page]; ok {
		return step
	}
	return neverUsed
}

// Snapshot returns a copy of the residents in admission order.
// Index 0 is "Frame 1" in rendered tables.
func (fs *FrameSet) Snapshot() []PageID {
	out := make([]PageID, len(fs.order))
	copy(out, fs.order)
	return out
}

// residents exposes the admission-ordered slice without copying.
// Callers must not retain or modify it.
func (fs *FrameSet) residents() []PageID {
	return fs.order
}
