// Package population holds one island's pool of candidate clusterings
// (Individuals) and the operators that combine, mutate, and select among
// them — the per-island half of the evolutionary search loop, grounded on
// population_clustering.{h,cpp} (class population_clustering) from
// lib/parallel_mh_clustering.
//
// Individual is kept as a plain value type rather than the original's
// heap-owned, explicitly-deleted struct: Go's garbage collector retires
// the manual new/delete bookkeeping the original needs around its raw
// int* partition_map and cut_edges pointer, and value semantics make
// Population.Insert's replace-in-place eviction a plain slice write.
package population
