package challenge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/areabuilder/challenge"
)

func TestHistory_AppendAndUnique(t *testing.T) {
	var h challenge.History
	assert.True(t, h.IsUniqueAgainst(build(10, 0)))

	h.Append(build(10, 0))
	h.Append(build(12, 0))
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.IsUniqueAgainst(build(12, 0)))
	assert.True(t, h.IsUniqueAgainst(build(14, 0)))
}

func TestHistory_HalveDropsOldest(t *testing.T) {
	var h challenge.History
	for a := 1; a <= 5; a++ {
		h.Append(build(a, 0))
	}

	h.Halve()
	snap := h.Snapshot()
	assert.Len(t, snap, 2)
	assert.Equal(t, 4, snap[0].BuildSpec.Area)
	assert.Equal(t, 5, snap[1].BuildSpec.Area)
	assert.True(t, h.IsUniqueAgainst(build(1, 0)))

	h.Halve()
	assert.Equal(t, 1, h.Len())
	h.Halve()
	assert.Equal(t, 0, h.Len())
	h.Halve()
	assert.Equal(t, 0, h.Len())
}

func TestHistory_SnapshotIsCopy(t *testing.T) {
	var h challenge.History
	h.Append(build(3, 0))
	snap := h.Snapshot()
	snap[0] = build(99, 0)
	assert.False(t, h.IsUniqueAgainst(build(3, 0)))
}
