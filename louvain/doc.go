// Package louvain implements the multilevel Louvain modularity optimizer:
// an optional label-propagation pre-coarsening phase (package labelprop),
// followed by repeated rounds of modularity-gain node moves (performNodeMoves
// in the original engine) and contraction (package coarsen), finishing
// with an uncoarsen-and-refine pass back down to the original graph and a
// final canonicalization of cluster ids.
//
// Grounded on louvainmethod.cpp (performClusteringWithLPP, performNodeMoves).
package louvain
