package coarsen

import "github.com/katalvlaran/evoclust/core"

// frame is one level of the hierarchy: the finer graph that was contracted
// at that level plus the mapping from its nodes to the next coarser
// level's nodes.
type frame struct {
	graph        *core.Graph
	fineToCoarse []int32
}

// Hierarchy is the LIFO stack of coarsening levels a multilevel run
// pushes onto while coarsening and pops while uncoarsening. It owns its
// frames by value (no shared/parent graph pointers), per spec.md §9's
// redesign note.
type Hierarchy struct {
	frames []frame
}

// NewHierarchy returns an empty Hierarchy.
func NewHierarchy() *Hierarchy { return &Hierarchy{} }

// Push records the finer graph `g` together with `mapping`, which sends
// each node of `g` onto a node of the next coarser level. Call this right
// after Contract(g), passing the fineToCoarse slice it returned.
func (h *Hierarchy) Push(g *core.Graph, mapping []int32) {
	h.frames = append(h.frames, frame{graph: g, fineToCoarse: mapping})
}

// Empty reports whether there are no more levels to pop.
func (h *Hierarchy) Empty() bool { return len(h.frames) == 0 }

// PopFinerAndProject pops the most recently pushed level and projects
// coarseClustering (a clustering over the next coarser level's nodes, the
// targets of the popped frame's mapping) down onto the finer graph stored
// in the popped frame, returning that finer graph with its PartitionIndex
// set to the projected clustering.
//
// Mirrors graph_hierarchy::pop_finer_and_project: each finer node inherits
// the cluster id that its coarse image was assigned.
func (h *Hierarchy) PopFinerAndProject(coarseClustering []int32) *core.Graph {
	n := len(h.frames)
	f := h.frames[n-1]
	h.frames = h.frames[:n-1]

	projected := make([]int32, len(f.fineToCoarse))
	for v, coarseNode := range f.fineToCoarse {
		projected[v] = coarseClustering[coarseNode]
	}
	f.graph.PartitionIndex = projected
	f.graph.SetPartitionCountFromCompute()
	return f.graph
}

// Len reports how many levels are currently on the stack.
func (h *Hierarchy) Len() int { return len(h.frames) }
