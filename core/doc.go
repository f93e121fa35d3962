// Package core defines the Graph type shared by every stage of the
// clustering engine: a compressed-sparse-row (CSR) adjacency structure
// plus the per-node bookkeeping (weights, self-loops, partition index)
// that the modularity, label-propagation, coarsening, and Louvain stages
// all read and write in place.
//
// A Graph is built once via NewFromCSR and then threaded, by pointer,
// through the pipeline. Coarsening produces a fresh Graph at each level
// (see package coarsen); nothing in this package mutates another Graph's
// backing arrays.
//
// # Errors
//
//	ErrBadGraph   - malformed CSR arrays (non-monotone Xadj, out-of-range
//	                Adjncy entries, mismatched slice lengths).
//	ErrEmptyGraph - a Graph with zero nodes was passed where at least one
//	                node is required.
package core
