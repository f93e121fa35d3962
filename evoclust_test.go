package evoclust_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evoclust"
)

func twoCliquesBridgeCSR() evoclust.CSRGraph {
	adj := map[int32][]int32{}
	clique := func(base int32) {
		for i := int32(0); i < 4; i++ {
			for j := int32(0); j < 4; j++ {
				if i == j {
					continue
				}
				adj[base+i] = append(adj[base+i], base+j)
			}
		}
	}
	clique(0)
	clique(4)
	adj[0] = append(adj[0], 4)
	adj[4] = append(adj[4], 0)

	var xadj, adjncy []int32
	xadj = append(xadj, 0)
	for v := int32(0); v < 8; v++ {
		adjncy = append(adjncy, adj[v]...)
		xadj = append(xadj, int32(len(adjncy)))
	}
	return evoclust.CSRGraph{N: 8, Xadj: xadj, Adjncy: adjncy}
}

func TestCluster_SingleIslandFindsValidClustering(t *testing.T) {
	csr := twoCliquesBridgeCSR()
	cfg := evoclust.NewConfig(
		evoclust.WithTimeLimit(50*time.Millisecond),
		evoclust.WithPoolSize(4),
		evoclust.WithLocalRepetitions(3),
		evoclust.WithSeed(7),
	)

	result, err := evoclust.Cluster(context.Background(), csr, cfg)
	require.NoError(t, err)

	assert.Len(t, result.Clustering, 8)
	assert.Greater(t, result.NumClusters, int32(0))
	for _, c := range result.Clustering {
		assert.GreaterOrEqual(t, c, int32(0))
		assert.Less(t, c, result.NumClusters)
	}
}

func TestCluster_MultiIslandFindsValidClustering(t *testing.T) {
	csr := twoCliquesBridgeCSR()
	cfg := evoclust.NewConfig(
		evoclust.WithIslandCount(3),
		evoclust.WithTimeLimit(50*time.Millisecond),
		evoclust.WithPoolSize(4),
		evoclust.WithLocalRepetitions(3),
		evoclust.WithSeed(11),
	)

	result, err := evoclust.Cluster(context.Background(), csr, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Clustering, 8)
}

func TestCluster_RejectsMalformedCSR(t *testing.T) {
	csr := evoclust.CSRGraph{N: 2, Xadj: []int32{0, 1}, Adjncy: []int32{0}}
	_, err := evoclust.Cluster(context.Background(), csr, evoclust.NewConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, evoclust.ErrBadGraph)
}

// triangleBarbellCSR builds S4: two triangles {0,1,2} and {3,4,5} joined
// by a single edge 2-3.
func triangleBarbellCSR() evoclust.CSRGraph {
	adj := map[int32][]int32{
		0: {1, 2}, 1: {0, 2}, 2: {0, 1, 3},
		3: {2, 4, 5}, 4: {3, 5}, 5: {3, 4},
	}
	var xadj, adjncy []int32
	xadj = append(xadj, 0)
	for v := int32(0); v < 6; v++ {
		adjncy = append(adjncy, adj[v]...)
		xadj = append(xadj, int32(len(adjncy)))
	}
	return evoclust.CSRGraph{N: 6, Xadj: xadj, Adjncy: adjncy}
}

// twoTenCliquesBridgeCSR builds S5: two disjoint 10-cliques (nodes 0-9
// and 10-19) joined by a single bridge edge (0,10).
func twoTenCliquesBridgeCSR() evoclust.CSRGraph {
	adj := map[int32][]int32{}
	clique := func(base int32) {
		for i := int32(0); i < 10; i++ {
			for j := int32(0); j < 10; j++ {
				if i == j {
					continue
				}
				adj[base+i] = append(adj[base+i], base+j)
			}
		}
	}
	clique(0)
	clique(10)
	adj[0] = append(adj[0], 10)
	adj[10] = append(adj[10], 0)

	var xadj, adjncy []int32
	xadj = append(xadj, 0)
	for v := int32(0); v < 20; v++ {
		adjncy = append(adjncy, adj[v]...)
		xadj = append(xadj, int32(len(adjncy)))
	}
	return evoclust.CSRGraph{N: 20, Xadj: xadj, Adjncy: adjncy}
}

// starCSR builds S6: a hub node 0 connected to n-1 leaves, each leaf
// connected only to the hub.
func starCSR(n int32) evoclust.CSRGraph {
	var xadj, adjncy []int32
	xadj = append(xadj, 0)
	for v := int32(0); v < n; v++ {
		if v == 0 {
			for leaf := int32(1); leaf < n; leaf++ {
				adjncy = append(adjncy, leaf)
			}
		} else {
			adjncy = append(adjncy, 0)
		}
		xadj = append(xadj, int32(len(adjncy)))
	}
	return evoclust.CSRGraph{N: n, Xadj: xadj, Adjncy: adjncy}
}

func scenarioConfig(seed int64) evoclust.Config {
	return evoclust.NewConfig(
		evoclust.WithTimeLimit(500*time.Millisecond),
		evoclust.WithSeed(seed),
	)
}

func TestCluster_S1_EmptyGraphSucceedsTrivially(t *testing.T) {
	csr := evoclust.CSRGraph{N: 0, Xadj: []int32{0}, Adjncy: nil}
	result, err := evoclust.Cluster(context.Background(), csr, scenarioConfig(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Modularity)
	assert.Equal(t, int32(0), result.NumClusters)
	assert.Nil(t, result.Clustering)
}

func TestCluster_S2_SingleNode(t *testing.T) {
	csr := evoclust.CSRGraph{N: 1, Xadj: []int32{0, 0}, Adjncy: nil}
	result, err := evoclust.Cluster(context.Background(), csr, scenarioConfig(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Modularity)
	assert.Equal(t, int32(1), result.NumClusters)
	assert.Equal(t, []int32{0}, result.Clustering)
}

func TestCluster_S3_DisconnectedPair(t *testing.T) {
	csr := evoclust.CSRGraph{N: 2, Xadj: []int32{0, 0, 0}, Adjncy: nil}
	result, err := evoclust.Cluster(context.Background(), csr, scenarioConfig(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Modularity)
	assert.Equal(t, int32(2), result.NumClusters)
	assert.Equal(t, []int32{0, 1}, result.Clustering)
}

func TestCluster_S4_TwoTriangleBarbell(t *testing.T) {
	result, err := evoclust.Cluster(context.Background(), triangleBarbellCSR(), scenarioConfig(1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), result.NumClusters)
	assert.Equal(t, result.Clustering[0], result.Clustering[1])
	assert.Equal(t, result.Clustering[1], result.Clustering[2])
	assert.Equal(t, result.Clustering[3], result.Clustering[4])
	assert.Equal(t, result.Clustering[4], result.Clustering[5])
	assert.NotEqual(t, result.Clustering[0], result.Clustering[3])
	assert.InDelta(t, 0.357, result.Modularity, 0.02)
}

func TestCluster_S5_TwoCliquesOfTenBridged(t *testing.T) {
	result, err := evoclust.Cluster(context.Background(), twoTenCliquesBridgeCSR(), scenarioConfig(1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), result.NumClusters)
	for i := int32(1); i < 10; i++ {
		assert.Equal(t, result.Clustering[0], result.Clustering[i])
	}
	for i := int32(11); i < 20; i++ {
		assert.Equal(t, result.Clustering[10], result.Clustering[i])
	}
	assert.NotEqual(t, result.Clustering[0], result.Clustering[10])
	assert.InDelta(t, 0.489, result.Modularity, 0.02)
}

func TestCluster_S6_StarOnHundredLeaves(t *testing.T) {
	result, err := evoclust.Cluster(context.Background(), starCSR(101), scenarioConfig(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.Modularity, 0.05)
}

func TestCluster_RespectsContextCancellation(t *testing.T) {
	csr := twoCliquesBridgeCSR()
	cfg := evoclust.NewConfig(evoclust.WithTimeLimit(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evoclust.Cluster(ctx, csr, cfg)
	assert.Error(t, err)
}
