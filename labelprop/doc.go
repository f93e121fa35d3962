// Package labelprop implements the label-propagation clustering stage
// used both standalone (to seed a combine operator's "rhs" clustering)
// and as the pre-coarsening phase inside package louvain.
//
// Nodes are visited in a randomized order; each accumulates
// weighted edge mass per neighboring cluster into a reused flat array
// (the "hash map" the original labelpropagation.cpp deliberately avoids
// replacing with a real map, for allocation-cost reasons), and moves to
// whichever neighboring cluster has the most mass, breaking ties with a
// coin flip. A pass that moves zero nodes terminates the iteration loop
// early.
//
// MultiLevel additionally coarsens between passes (grounded on
// performMultiLevelLabelPropagation): each level starts from singleton
// clusters, propagates, and — if any node moved — contracts the graph
// before the next level. Once no level produces a move, the resulting
// hierarchy is uncoarsened with one more label-propagation refinement
// pass per level.
package labelprop
