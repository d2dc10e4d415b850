package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T, externals []int32) *NumberMap[int32] {
	t.Helper()
	m, err := BuildNumberMap(externals)
	require.NoError(t, err)
	return m
}

func TestSinglePartition(t *testing.T) {
	m := newTestMap(t, []int32{10, 20, 30})
	p := SinglePartition(m.NumVertices(), m)

	assert.Equal(t, 1, p.Count())
	assert.Equal(t, []int32{3}, p.Lasts())
	assert.Equal(t, int32(0), p.First(0))
	assert.Equal(t, int32(3), p.Last(0))
}

func TestSplitPartitionsRanges(t *testing.T) {
	m := newTestMap(t, []int32{0, 1, 2, 3, 4, 5, 6})
	p := SplitPartitions(m.NumVertices(), 3, m)

	require.Equal(t, 3, p.Count())
	// 7 vertices across 3 domains: 3, 2, 2.
	assert.Equal(t, []int32{3, 5, 7}, p.Lasts())
	assert.Equal(t, int32(0), p.First(0))
	assert.Equal(t, int32(3), p.First(1))
	assert.Equal(t, int32(5), p.First(2))
}

func TestSplitPartitionsClampsCount(t *testing.T) {
	m := newTestMap(t, []int32{1, 2})
	p := SplitPartitions(m.NumVertices(), 5, m)
	assert.Equal(t, 2, p.Count())

	p = SplitPartitions(m.NumVertices(), 0, m)
	assert.Equal(t, 1, p.Count())
}

func TestPartitionOwnership(t *testing.T) {
	m := newTestMap(t, []int32{10, 20, 30, 40})
	p := SplitPartitions(m.NumVertices(), 2, m)

	assert.Equal(t, 0, p.OwnerOfInternal(0))
	assert.Equal(t, 0, p.OwnerOfInternal(1))
	assert.Equal(t, 1, p.OwnerOfInternal(2))
	assert.Equal(t, 1, p.OwnerOfInternal(3))

	owner, ok := p.OwnerOfExternal(10)
	require.True(t, ok)
	assert.Equal(t, 0, owner)

	owner, ok = p.OwnerOfExternal(40)
	require.True(t, ok)
	assert.Equal(t, 1, owner)

	_, ok = p.OwnerOfExternal(99)
	assert.False(t, ok)
	_, ok = p.OwnerOfExternal(-1)
	assert.False(t, ok)

	assert.EqualValues(t, 2, p.OwnedExternals(0).GetCardinality())
	assert.True(t, p.OwnedExternals(1).Contains(30))
}

func TestPartitionsFromLasts(t *testing.T) {
	m := newTestMap(t, []int32{10, 20, 30, 40})
	orig := SplitPartitions(m.NumVertices(), 2, m)

	rebuilt := PartitionsFromLasts(orig.Lasts(), m)
	assert.Equal(t, orig.Count(), rebuilt.Count())
	assert.Equal(t, orig.Lasts(), rebuilt.Lasts())
	for i := 0; i < orig.Count(); i++ {
		assert.True(t, orig.OwnedExternals(i).Equals(rebuilt.OwnedExternals(i)))
	}
}
