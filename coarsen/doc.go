// Package coarsen builds a quotient graph from a Graph's current
// PartitionIndex (Contract) and maintains the stack of fine→coarse
// mappings needed to project a clustering found on a coarse graph back
// onto the original one (Hierarchy).
//
// Contract is grounded on the original engine's coarsening.cpp/contractor.cpp:
// first-seen cluster-id canonicalization, then a single pass per cluster
// that walks its members' out-edges, using a per-cluster "freshness tag"
// scratch table (edgeLookUp) to decide whether an edge to a given target
// cluster already exists in the coarse graph or must be created — this
// keeps contraction at O(n+m) instead of the O(n²) a map-per-cluster
// approach would cost at scale.
package coarsen
