package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameSet_InvalidCapacity(t *testing.T) {
	_, err := NewFrameSet(0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestFrameSet_AdmitEvict_PreservesAdmissionOrder(t *testing.T) {
	// GIVEN a frame set with three frames holding 1, 2, 3
	fs, err := NewFrameSet(3)
	require.NoError(t, err)
	for _, p := range []PageID{1, 2, 3} {
		fs.Admit(p)
	}
	assert.True(t, fs.Full())
	assert.Equal(t, []PageID{1, 2, 3}, fs.Snapshot())

	// WHEN the middle page is evicted and later re-admitted
	fs.Evict(2)
	assert.False(t, fs.Contains(2))
	assert.Equal(t, 2, fs.Len())
	fs.Admit(2)

	// THEN it moves to the tail
	assert.Equal(t, []PageID{1, 3, 2}, fs.Snapshot())
	assert.Equal(t, 3, fs.Cap())
}

func TestFrameSet_Recency_DefaultsToSentinelAndClearsOnEvict(t *testing.T) {
	fs, err := NewFrameSet(2)
	require.NoError(t, err)
	fs.Admit(5)

	// THEN an untouched resident reports the never-used sentinel
	assert.Equal(t, -1, fs.LastUsed(5))

	fs.Touch(5, 4)
	assert.Equal(t, 4, fs.LastUsed(5))

	// WHEN evicted THEN its recency is forgotten
	fs.Evict(5)
	assert.Equal(t, -1, fs.LastUsed(5))
}

func TestFrameSet_Snapshot_IsACopy(t *testing.T) {
	fs, err := NewFrameSet(2)
	require.NoError(t, err)
	fs.Admit(1)
	snap := fs.Snapshot()
	snap[0] = 42
	assert.Equal(t, []PageID{1}, fs.Snapshot())
}

func TestFrameSet_PreconditionViolations_Panic(t *testing.T) {
	fs, err := NewFrameSet(1)
	require.NoError(t, err)
	fs.Admit(1)

	assert.Panics(t, func() { fs.Admit(1) }, "double admit")
	assert.Panics(t, func() { fs.Admit(2) }, "admit when full")
	assert.Panics(t, func() { fs.Evict(3) }, "evict non-resident")
}
