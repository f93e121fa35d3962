package core

// CloneEmpty returns a Graph sharing this Graph's topology (Xadj, Adjncy,
// EdgeWeight, NodeWeight, SelfLoop are shared by reference — they are
// never mutated in place once a Graph is constructed) but with a fresh,
// singleton PartitionIndex (PartitionIndex[v] = v for all v). This is the
// starting point for a new Louvain run or a new population individual
// seeded "from singletons".
func (g *Graph) CloneEmpty() *Graph {
	cp := &Graph{
		N:          g.N,
		Xadj:       g.Xadj,
		Adjncy:     g.Adjncy,
		EdgeWeight: g.EdgeWeight,
		NodeWeight: g.NodeWeight,
		SelfLoop:   g.SelfLoop,
	}
	cp.PartitionIndex = make([]int32, g.N)
	for v := range cp.PartitionIndex {
		cp.PartitionIndex[v] = int32(v)
	}
	cp.PartitionCount = g.N
	return cp
}

// Clone returns a deep copy of PartitionIndex and SecondaryPartitionIndex
// (the two fields every operator mutates) while sharing the immutable
// topology arrays, matching the teacher's shallow-topology/deep-mutable-state
// split between Clone and CloneEmpty.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		N:              g.N,
		Xadj:           g.Xadj,
		Adjncy:         g.Adjncy,
		EdgeWeight:     g.EdgeWeight,
		NodeWeight:     g.NodeWeight,
		SelfLoop:       g.SelfLoop,
		PartitionCount: g.PartitionCount,
	}
	cp.PartitionIndex = append([]int32(nil), g.PartitionIndex...)
	if g.SecondaryPartitionIndex != nil {
		cp.SecondaryPartitionIndex = append([]int32(nil), g.SecondaryPartitionIndex...)
	}
	return cp
}

// WithPartition returns a clone whose PartitionIndex is set to clustering
// (not copied — caller must not mutate clustering afterward) and whose
// PartitionCount is recomputed.
func (g *Graph) WithPartition(clustering []int32) *Graph {
	cp := g.Clone()
	cp.PartitionIndex = clustering
	cp.SetPartitionCountFromCompute()
	return cp
}
