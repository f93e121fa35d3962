package core

// Graph is a compressed-sparse-row adjacency structure over N nodes
// numbered [0,N). For node v, its out-neighbors live in
// Adjncy[Xadj[v]:Xadj[v+1]], with parallel entries in EdgeWeight giving
// the weight of each corresponding edge.
//
// Graph is treated as undirected throughout the clustering pipeline: every
// edge (u,v) is expected to appear once in u's adjacency and once in v's,
// as is conventional for METIS/KaHIP-style CSR input. NewFromCSR does not
// verify symmetry — callers that build a Graph by hand are responsible for
// it, exactly as the original CSR contract requires.
type Graph struct {
	N int32

	Xadj       []int32 // length N+1
	Adjncy     []int32 // length Xadj[N], values in [0,N)
	EdgeWeight []int64 // length Xadj[N], parallel to Adjncy

	NodeWeight []int64 // length N
	SelfLoop   []int64 // length N, self-loop weight per node (0 if none)

	PartitionIndex          []int32 // length N, cluster id per node
	SecondaryPartitionIndex []int32 // length N, constrains combine operators

	PartitionCount int32 // 1 + max(PartitionIndex), maintained by callers
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithSelfLoops attaches a per-node self-loop weight vector. len(weights)
// must equal n (checked by NewFromCSR).
func WithSelfLoops(weights []int64) Option {
	return func(g *Graph) { g.SelfLoop = weights }
}

// WithNodeWeights attaches a per-node weight vector. If omitted, NewFromCSR
// fills NodeWeight with unit weight, matching the vwgt==nil convention of
// the external CSR interface (spec.md §6).
func WithNodeWeights(weights []int64) Option {
	return func(g *Graph) { g.NodeWeight = weights }
}

// NewFromCSR validates and wraps raw CSR arrays into a Graph. xadj must
// have length n+1 and be non-decreasing; every entry of adjncy must lie in
// [0,n); edgeWeight must be either nil (unit weight) or parallel to
// adjncy; no edge, node or self-loop weight may be negative. The new
// graph starts in the singleton clustering (node v in cluster v).
func NewFromCSR(n int32, xadj, adjncy []int32, edgeWeight []int64, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, badGraphf("negative node count %d", n)
	}
	if int32(len(xadj)) != n+1 {
		return nil, badGraphf("xadj length %d, want %d", len(xadj), n+1)
	}
	for i := int32(1); i <= n; i++ {
		if xadj[i] < xadj[i-1] {
			return nil, badGraphf("xadj not monotone at index %d", i)
		}
	}
	m := xadj[n]
	if int32(len(adjncy)) != m {
		return nil, badGraphf("adjncy length %d, want %d", len(adjncy), m)
	}
	for _, v := range adjncy {
		if v < 0 || v >= n {
			return nil, badGraphf("adjncy entry %d out of range [0,%d)", v, n)
		}
	}
	if edgeWeight != nil && int32(len(edgeWeight)) != m {
		return nil, badGraphf("edgeWeight length %d, want %d", len(edgeWeight), m)
	}
	for i, w := range edgeWeight {
		if w < 0 {
			return nil, badGraphf("negative edge weight %d at index %d", w, i)
		}
	}

	g := &Graph{
		N:      n,
		Xadj:   xadj,
		Adjncy: adjncy,
	}
	if edgeWeight != nil {
		g.EdgeWeight = edgeWeight
	} else {
		g.EdgeWeight = unitWeights(m)
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.NodeWeight == nil {
		g.NodeWeight = unitWeights(n)
	} else if int32(len(g.NodeWeight)) != n {
		return nil, badGraphf("node weight length %d, want %d", len(g.NodeWeight), n)
	}
	if g.SelfLoop != nil && int32(len(g.SelfLoop)) != n {
		return nil, badGraphf("self-loop length %d, want %d", len(g.SelfLoop), n)
	}
	if g.SelfLoop == nil {
		g.SelfLoop = make([]int64, n)
	}
	for v := int32(0); v < n; v++ {
		if g.NodeWeight[v] < 0 || g.SelfLoop[v] < 0 {
			return nil, badGraphf("negative node or self-loop weight at node %d", v)
		}
	}
	g.PartitionIndex = make([]int32, n)
	for v := range g.PartitionIndex {
		g.PartitionIndex[v] = int32(v)
	}
	g.SecondaryPartitionIndex = nil
	g.PartitionCount = n

	return g, nil
}

func unitWeights(n int32) []int64 {
	w := make([]int64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// Neighbors returns v's adjacency slice (shared backing array — do not
// mutate).
func (g *Graph) Neighbors(v int32) []int32 { return g.Adjncy[g.Xadj[v]:g.Xadj[v+1]] }

// EdgeWeights returns the per-neighbor weights parallel to Neighbors(v).
func (g *Graph) EdgeWeights(v int32) []int64 { return g.EdgeWeight[g.Xadj[v]:g.Xadj[v+1]] }

// Degree returns the number of out-edges of v (unweighted).
func (g *Graph) Degree(v int32) int32 { return g.Xadj[v+1] - g.Xadj[v] }

// WeightedDegree returns the sum of edge weights incident to v, plus its
// self-loop weight once, matching computeWeightedNodeDegrees's
// getWeightedNodeDegree(v) + self convention.
func (g *Graph) WeightedDegree(v int32) int64 {
	var sum int64
	for _, w := range g.EdgeWeights(v) {
		sum += w
	}
	return sum + g.SelfLoop[v]
}

// SetPartitionCountFromCompute recomputes PartitionCount as 1+max(PartitionIndex).
// Call after any direct mutation of PartitionIndex that does not go through
// a helper that maintains the count itself.
func (g *Graph) SetPartitionCountFromCompute() {
	if g.N == 0 {
		g.PartitionCount = 0
		return
	}
	var max int32
	for _, c := range g.PartitionIndex {
		if c > max {
			max = c
		}
	}
	g.PartitionCount = max + 1
}
