// Package island runs one island's round loop: local population
// evolution (create/combine/mutate) interleaved with exchange rounds
// against peer islands, grounded on
// parallel_mh_async_clustering.{h,cpp} (class
// parallel_mh_async_clustering).
//
// The original coordinates islands as separate MPI ranks; this package
// instead assumes each island runs as a goroutine in the same process
// (see exchange.LocalTransport), and a caller — typically the root
// package's RunIslands — launches one Controller per island with
// golang.org/x/sync/errgroup and calls CollectBest once every goroutine
// returns.
package island
