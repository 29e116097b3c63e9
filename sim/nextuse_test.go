package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextUseIndex_BackwardPass(t *testing.T) {
	// GIVEN 1 2 1 3 2 1
	idx := newNextUseIndex([]PageID{1, 2, 1, 3, 2, 1})

	// THEN next[] points at the following occurrence of the same page
	assert.Equal(t, []int{2, 4, 5, never, never, never}, idx.next)
}

func TestNextUseIndex_After(t *testing.T) {
	seq := []PageID{1, 2, 1, 3, 2, 1}
	idx := newNextUseIndex(seq)

	tests := []struct {
		name     string
		page     PageID
		lastUsed int
		step     int
		want     int
	}{
		{"from recorded access", 1, 0, 1, 2},
		{"last occurrence", 1, 5, 5, never},
		{"page 2 after step 3", 2, 1, 3, 4},
		{"unrecorded access scans forward", 3, -1, 0, 3},
		{"unrecorded and absent", 9, -1, 0, never},
		{"stale lastUsed falls back to scan", 2, 0, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.after(tt.page, tt.lastUsed, tt.step))
		})
	}
}

func TestNextUseIndex_Empty(t *testing.T) {
	idx := newNextUseIndex(nil)
	assert.Empty(t, idx.next)
	assert.Equal(t, never, idx.after(1, -1, 0))
}
