package core_test

import (
	"testing"

	"github.com/katalvlaran/evoclust/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleCSR() (int32, []int32, []int32, []int64) {
	// 0-1, 1-2, 2-0, each weight 1, undirected (symmetric adjacency).
	xadj := []int32{0, 2, 4, 6}
	adjncy := []int32{1, 2, 0, 2, 0, 1}
	ew := []int64{1, 1, 1, 1, 1, 1}
	return 3, xadj, adjncy, ew
}

func TestNewFromCSR_Valid(t *testing.T) {
	n, xadj, adjncy, ew := triangleCSR()
	g, err := core.NewFromCSR(n, xadj, adjncy, ew)
	require.NoError(t, err)
	assert.Equal(t, int32(3), g.N)
	assert.Equal(t, int32(2), g.Degree(0))
	assert.Equal(t, int64(2), g.WeightedDegree(0))
	assert.Equal(t, []int32{0, 1, 2}, g.PartitionIndex)
}

func TestNewFromCSR_RejectsBadXadjLength(t *testing.T) {
	_, _, adjncy, ew := triangleCSR()
	_, err := core.NewFromCSR(3, []int32{0, 2, 4}, adjncy, ew)
	assert.ErrorIs(t, err, core.ErrBadGraph)
}

func TestNewFromCSR_RejectsOutOfRangeAdjncy(t *testing.T) {
	n, xadj, _, ew := triangleCSR()
	bad := []int32{1, 2, 0, 2, 0, 9}
	_, err := core.NewFromCSR(n, xadj, bad, ew)
	assert.ErrorIs(t, err, core.ErrBadGraph)
}

func TestNewFromCSR_UnitWeightsWhenNil(t *testing.T) {
	n, xadj, adjncy, _ := triangleCSR()
	g, err := core.NewFromCSR(n, xadj, adjncy, nil)
	require.NoError(t, err)
	for _, w := range g.EdgeWeight {
		assert.Equal(t, int64(1), w)
	}
}

func TestCloneEmpty_ResetsToSingletons(t *testing.T) {
	n, xadj, adjncy, ew := triangleCSR()
	g, err := core.NewFromCSR(n, xadj, adjncy, ew)
	require.NoError(t, err)
	g.PartitionIndex = []int32{0, 0, 0}
	g.PartitionCount = 1

	fresh := g.CloneEmpty()
	assert.Equal(t, []int32{0, 1, 2}, fresh.PartitionIndex)
	assert.Equal(t, int32(3), fresh.PartitionCount)
	// Topology arrays are shared, not copied.
	assert.Same(t, &g.Adjncy[0], &fresh.Adjncy[0])
}

func TestClone_DeepCopiesPartitionIndex(t *testing.T) {
	n, xadj, adjncy, ew := triangleCSR()
	g, err := core.NewFromCSR(n, xadj, adjncy, ew)
	require.NoError(t, err)
	g.PartitionIndex = []int32{0, 0, 1}

	cp := g.Clone()
	cp.PartitionIndex[0] = 5
	assert.Equal(t, int32(0), g.PartitionIndex[0], "clone must not alias original partition index")
}

func TestSetPartitionCountFromCompute(t *testing.T) {
	n, xadj, adjncy, ew := triangleCSR()
	g, err := core.NewFromCSR(n, xadj, adjncy, ew)
	require.NoError(t, err)
	g.PartitionIndex = []int32{0, 3, 1}
	g.SetPartitionCountFromCompute()
	assert.Equal(t, int32(4), g.PartitionCount)
}
