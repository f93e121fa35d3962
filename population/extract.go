package population

import "github.com/katalvlaran/evoclust/core"

// extractBlock builds the induced subgraph of g restricted to the nodes
// currently in `cluster`, plus the mapping from the subgraph's local node
// ids back to g's node ids. No standalone graph_extractor equivalent was
// retrieved from the original source tree; this is adapted from the
// member-list-then-CSR-flatten pattern coarsen.Contract already uses for
// contraction, applied here to induced-subgraph extraction instead.
func extractBlock(g *core.Graph, clustering []int32, cluster int32) (*core.Graph, []int32) {
	var mapping []int32
	localID := make(map[int32]int32)
	for v := int32(0); v < g.N; v++ {
		if clustering[v] == cluster {
			localID[v] = int32(len(mapping))
			mapping = append(mapping, v)
		}
	}

	n := int32(len(mapping))
	xadj := make([]int32, n+1)
	var adjncy []int32
	var edgeWeight []int64
	for i, v := range mapping {
		weights := g.EdgeWeights(v)
		for j, u := range g.Neighbors(v) {
			if id, ok := localID[u]; ok {
				adjncy = append(adjncy, id)
				edgeWeight = append(edgeWeight, weights[j])
			}
		}
		xadj[i+1] = int32(len(adjncy))
	}

	sub, err := core.NewFromCSR(n, xadj, adjncy, edgeWeight)
	if err != nil {
		// n >= 1 is guaranteed by the caller (cluster is always a
		// non-empty, existing cluster id), and the CSR built above is
		// internally consistent by construction.
		panic(err)
	}
	return sub, mapping
}
